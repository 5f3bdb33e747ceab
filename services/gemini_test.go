package services

import "testing"

func TestExtractJSONArray(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{
			name: "fenced with language tag",
			text: "Here are the salons:\n```json\n[{\"id\":\"a\"}]\n```\nEnjoy!",
			want: `[{"id":"a"}]`,
			ok:   true,
		},
		{
			name: "fenced without language tag",
			text: "```\n[{\"id\":\"b\"}]\n```",
			want: `[{"id":"b"}]`,
			ok:   true,
		},
		{
			name: "bare JSON array",
			text: "  [{\"id\":\"c\"}]  ",
			want: `[{"id":"c"}]`,
			ok:   true,
		},
		{
			name: "tagged fence wins over bare",
			text: "```json\n[1]\n```\n[2]",
			want: "[1]",
			ok:   true,
		},
		{
			name: "multiline payload",
			text: "```json\n[\n  {\"id\": \"d\"}\n]\n```",
			want: "[\n  {\"id\": \"d\"}\n]",
			ok:   true,
		},
		{
			name: "no JSON at all",
			text: "Sorry, I could not find any salons near you.",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractJSONArray(tt.text)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
