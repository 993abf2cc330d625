package eventparser

import "testing"

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"strips time date and prepositions", "doctor appointment tomorrow at 2:30pm", "Doctor appointment"},
		{"strips next-weekday phrase", "team meeting next monday", "Team meeting"},
		{"strips prepositions only", "coffee with sam", "Coffee sam"},
		{"capitalizes", "dentist", "Dentist"},
		{"collapses whitespace", "  piano   lesson   friday ", "Piano lesson"},
		{"everything stripped", "tomorrow at 3pm", ""},
		{"strips coincidental year", "reunion planning 2026", "Reunion planning"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractTitle(tc.text); got != tc.want {
				t.Fatalf("extractTitle(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}

// A clean title fed back through the extractor comes out unchanged.
func TestExtractTitleIdempotent(t *testing.T) {
	titles := []string{"Doctor appointment", "Team meeting", "Coffee sam"}
	for _, title := range titles {
		if got := extractTitle(title); got != title {
			t.Errorf("extractTitle(%q) = %q, want unchanged", title, got)
		}
	}
}
