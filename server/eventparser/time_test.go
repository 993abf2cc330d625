package eventparser

import "testing"

func TestExtractTime(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  *clockTime
	}{
		{"12-hour with minutes", "doctor at 2:30pm", &clockTime{14, 30}},
		{"12-hour with minutes am", "call at 7:05am", &clockTime{7, 5}},
		{"12-hour simple", "gym at 3pm", &clockTime{15, 0}},
		{"12-hour simple spaced", "gym at 3 pm", &clockTime{15, 0}},
		{"midnight normalization", "flight at 12am", &clockTime{0, 0}},
		{"noon stays noon", "lunch at 12pm", &clockTime{12, 0}},
		{"24-hour colon", "standup 14:45", &clockTime{14, 45}},
		{"24-hour compact", "bus at 0930", &clockTime{9, 30}},
		{"24-hour compact evening", "movie 1830", &clockTime{18, 30}},
		{"no time", "coffee with sam", nil},
		{"invalid colon time", "weird 25:99 thing", nil},
		{"five digit run is not a time", "order 12345 pickup", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := extractTime(tc.text)
			if tc.want == nil {
				if got != nil {
					t.Fatalf("extractTime(%q) = %+v, want nil", tc.text, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("extractTime(%q) = nil, want %+v", tc.text, tc.want)
			}
			if got.hour != tc.want.hour || got.minute != tc.want.minute {
				t.Fatalf("extractTime(%q) = %d:%02d, want %d:%02d", tc.text, got.hour, got.minute, tc.want.hour, tc.want.minute)
			}
		})
	}
}

func TestApplyMeridiem(t *testing.T) {
	if got := applyMeridiem(12, "am"); got != 0 {
		t.Errorf("12am should be hour 0, got %d", got)
	}
	if got := applyMeridiem(12, "pm"); got != 12 {
		t.Errorf("12pm should stay hour 12, got %d", got)
	}
	if got := applyMeridiem(1, "pm"); got != 13 {
		t.Errorf("1pm should be hour 13, got %d", got)
	}
	if got := applyMeridiem(11, "AM"); got != 11 {
		t.Errorf("11AM should stay hour 11, got %d", got)
	}
}
