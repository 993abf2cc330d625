package eventparser

import (
	"testing"
	"time"
)

// Wednesday, August 26 2026. The containing Sunday-start week runs
// Aug 23 (Sun) through Aug 29 (Sat).
var wednesday = time.Date(2026, time.August, 26, 10, 0, 0, 0, time.UTC)

func TestExtractDate(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantDay int
		wantMon time.Month
	}{
		{"today", "dentist today", 26, time.August},
		{"tomorrow", "dentist tomorrow", 27, time.August},
		{"yesterday", "logged yesterday", 25, time.August},
		{"future weekday this week", "soccer friday", 28, time.August},
		{"weekday same day", "soccer wednesday", 26, time.August},
		{"passed weekday rolls forward", "soccer monday", 31, time.August},
		{"abbreviated weekday", "soccer fri", 28, time.August},
		{"next weekday", "meeting next monday", 31, time.August},
		{"next weekday not yet occurred", "meeting next friday", 4, time.September},
		{"this weekday upcoming", "recital this thursday", 27, time.August},
		{"this weekday passed", "recital this monday", 31, time.August},
		{"case insensitive", "brunch SUNDAY", 30, time.August},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := extractDate(tc.text, wednesday)
			if got == nil {
				t.Fatalf("extractDate(%q) = nil, want a date", tc.text)
			}
			if got.Day() != tc.wantDay || got.Month() != tc.wantMon {
				t.Fatalf("extractDate(%q) = %s, want %s %d", tc.text, got.Format("2006-01-02"), tc.wantMon, tc.wantDay)
			}
		})
	}
}

func TestExtractDateNoMatch(t *testing.T) {
	if got := extractDate("coffee with sam", wednesday); got != nil {
		t.Fatalf("expected nil, got %s", got.Format("2006-01-02"))
	}
}

func TestExtractDateRelativePriority(t *testing.T) {
	// Relative keywords outrank weekday names when both are present.
	got := extractDate("tomorrow or friday", wednesday)
	if got == nil || got.Day() != 27 {
		t.Fatalf("expected tomorrow (27th) to win, got %v", got)
	}
}

func TestExtractDateMonthRollover(t *testing.T) {
	// Monday, August 31 2026; "next friday" lands in September.
	monday := time.Date(2026, time.August, 31, 8, 0, 0, 0, time.UTC)
	got := extractDate("next friday", monday)
	if got == nil {
		t.Fatal("expected a date")
	}
	if got.Month() != time.September || got.Day() != 11 {
		t.Fatalf("got %s, want 2026-09-11", got.Format("2006-01-02"))
	}
}
