package timezone

import (
	"testing"
	"time"
)

func TestParseTimezone(t *testing.T) {
	tests := []struct {
		name    string
		tz      string
		wantErr bool
	}{
		{name: "UTC", tz: "UTC", wantErr: false},
		{name: "empty string defaults to UTC", tz: "", wantErr: false},
		{name: "America/New_York", tz: "America/New_York", wantErr: false},
		{name: "Europe/Paris", tz: "Europe/Paris", wantErr: false},
		{name: "invalid timezone", tz: "Invalid/Timezone", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := ParseTimezone(tt.tz)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTimezone(%q) error = %v, wantErr %v", tt.tz, err, tt.wantErr)
			}
			if loc == nil {
				t.Fatalf("ParseTimezone(%q) returned nil location", tt.tz)
			}
			if tt.wantErr && loc != time.UTC {
				t.Errorf("ParseTimezone(%q) should fall back to UTC", tt.tz)
			}
		})
	}
}

func TestIsValidTimezone(t *testing.T) {
	if !IsValidTimezone("America/Los_Angeles") {
		t.Error("expected America/Los_Angeles to be valid")
	}
	if IsValidTimezone("Not/AZone") {
		t.Error("expected Not/AZone to be invalid")
	}
}

func TestStartOfDay(t *testing.T) {
	loc, _ := ParseTimezone("America/New_York")
	// 2026-08-26 01:30 UTC is still 2026-08-25 in New York.
	at := time.Date(2026, time.August, 26, 1, 30, 0, 0, time.UTC)

	start := StartOfDay(at, loc)
	if start.Day() != 25 || start.Hour() != 0 || start.Minute() != 0 {
		t.Errorf("unexpected start of day: %v", start)
	}

	end := EndOfDay(at, loc)
	if end.Day() != 25 || end.Hour() != 23 {
		t.Errorf("unexpected end of day: %v", end)
	}
}
