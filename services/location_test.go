package services

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func geocodeClientFor(t *testing.T, handler http.HandlerFunc) *GeocodeClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	t.Setenv("POSITIONSTACK_URL", server.URL)
	t.Setenv("POSITIONSTACK_KEY", "test-key")
	return NewGeocodeClient()
}

func TestReverseComposesCityAndRegion(t *testing.T) {
	client := geocodeClientFor(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"type":"locality","locality":"Brooklyn","region_code":"NY"}]}`))
	})

	name, err := client.Reverse(context.Background(), 40.6782, -73.9442)
	if err != nil {
		t.Fatalf("reverse: %v", err)
	}
	if name != "Brooklyn, NY" {
		t.Fatalf("expected 'Brooklyn, NY', got %q", name)
	}
}

func TestReversePrefersLocalityOverStreetAddress(t *testing.T) {
	client := geocodeClientFor(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[
			{"type":"address","name":"123 Fashion Ave","label":"123 Fashion Ave, New York"},
			{"type":"locality","locality":"Manhattan","region":"New York"}
		]}`))
	})

	name, err := client.Reverse(context.Background(), 40.7128, -74.0060)
	if err != nil {
		t.Fatalf("reverse: %v", err)
	}
	if name != "Manhattan, New York" {
		t.Fatalf("expected the locality result, got %q", name)
	}
}

func TestReverseFallsBackToLabel(t *testing.T) {
	client := geocodeClientFor(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"type":"venue","label":"Somewhere, Earth"}]}`))
	})

	name, err := client.Reverse(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("reverse: %v", err)
	}
	if name != "Somewhere, Earth" {
		t.Fatalf("expected label fallback, got %q", name)
	}
}

func TestReverseErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-success status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
		},
		{
			name: "empty result set",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"data":[]}`))
			},
		},
		{
			name: "unusable result",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"data":[{"type":"venue"}]}`))
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`not json`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := geocodeClientFor(t, tt.handler)
			if _, err := client.Reverse(context.Background(), 1, 2); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestResolverFallsThroughToCoordinates(t *testing.T) {
	// Primary provider fails, AI provider has no key configured.
	geocode := geocodeClientFor(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	t.Setenv("GEMINI_API_KEY", "")
	resolver := NewLocationResolver(geocode, NewGeminiClient(), quietLogger())

	name := resolver.ResolveLocationName(context.Background(), 40.7128, -74.0060)
	if name != "40.7128, -74.0060" {
		t.Fatalf("expected formatted coordinates, got %q", name)
	}
}

func TestResolverUsesPrimaryProvider(t *testing.T) {
	geocode := geocodeClientFor(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"type":"city","city":"Austin","region_code":"TX"}]}`))
	})
	t.Setenv("GEMINI_API_KEY", "")
	resolver := NewLocationResolver(geocode, NewGeminiClient(), quietLogger())

	name := resolver.ResolveLocationName(context.Background(), 30.2672, -97.7431)
	if name != "Austin, TX" {
		t.Fatalf("expected 'Austin, TX', got %q", name)
	}
}

func TestResolverUsesAIFallback(t *testing.T) {
	geocode := geocodeClientFor(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	ai := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Brooklyn, New York"}]}}]}`))
	}))
	t.Cleanup(ai.Close)
	t.Setenv("GEMINI_URL", ai.URL)
	t.Setenv("GEMINI_API_KEY", "test-key")

	resolver := NewLocationResolver(geocode, NewGeminiClient(), quietLogger())

	name := resolver.ResolveLocationName(context.Background(), 40.6782, -73.9442)
	if name != "Brooklyn, New York" {
		t.Fatalf("expected AI fallback result, got %q", name)
	}
}
