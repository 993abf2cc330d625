package eventparser

import "testing"

func TestDetectCategory(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"doctor appointment tomorrow", "medical"},
		{"team meeting next monday", "work"},
		{"coffee with sam", "social"},
		{"soccer practice pickup", "kids"},
		{"plumber coming friday", "household"},
		{"haircut at 2pm", "personal"},
		{"DENTIST visit", "medical"},
		{"something unremarkable", ""},
	}

	for _, tc := range tests {
		if got := detectCategory(tc.text); got != tc.want {
			t.Errorf("detectCategory(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestDetectCategoryFirstTableWins(t *testing.T) {
	// "appointment" (medical) outranks "meeting" (work) because the medical
	// table is enumerated first.
	if got := detectCategory("appointment about the meeting"); got != "medical" {
		t.Errorf("got %q, want medical", got)
	}
}
