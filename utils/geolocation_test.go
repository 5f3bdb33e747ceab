package utils

import (
	"strings"
	"testing"
)

func TestGeolocationErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		code int
		want string
	}{
		{name: "permission denied", code: GeoPermissionDenied, want: "permission denied"},
		{name: "unavailable", code: GeoPositionUnavailable, want: "unavailable"},
		{name: "timeout", code: GeoTimeout, want: "timed out"},
		{name: "unknown", code: 42, want: "An error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GeolocationErrorMessage(tt.code)
			if !strings.Contains(got, tt.want) {
				t.Fatalf("code %d: expected message containing %q, got %q", tt.code, tt.want, got)
			}
		})
	}
}

func TestGeolocationErrorMessagesDistinct(t *testing.T) {
	seen := map[string]int{}
	for _, code := range []int{GeoPermissionDenied, GeoPositionUnavailable, GeoTimeout} {
		msg := GeolocationErrorMessage(code)
		if prev, ok := seen[msg]; ok {
			t.Fatalf("codes %d and %d share the message %q", prev, code, msg)
		}
		seen[msg] = code
	}
}
