package eventparser

import (
	"regexp"
	"strconv"
	"strings"
)

// clockTime is an extracted hour/minute pair.
type clockTime struct {
	hour   int
	minute int
}

// Clock-time patterns in priority order. The first pattern that matches and
// validates wins; there is no search for a "best" match.
var (
	timeMeridiemMinutes = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*(am|pm)\b`)
	timeMeridiem        = regexp.MustCompile(`(?i)(\d{1,2})\s*(am|pm)\b`)
	time24Colon         = regexp.MustCompile(`(\d{1,2}):(\d{2})`)
	time24Compact       = regexp.MustCompile(`\b(\d{4})\b`)
)

// extractTime scans text for a clock-time expression and returns the
// hour/minute pair, or nil when nothing matches and validates.
func extractTime(text string) *clockTime {
	if m := timeMeridiemMinutes.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if ct := validClock(applyMeridiem(hour, m[3]), minute); ct != nil {
			return ct
		}
	}
	if m := timeMeridiem.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		if ct := validClock(applyMeridiem(hour, m[2]), 0); ct != nil {
			return ct
		}
	}
	if m := time24Colon.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if ct := validClock(hour, minute); ct != nil {
			return ct
		}
	}
	if m := time24Compact.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1][:2])
		minute, _ := strconv.Atoi(m[1][2:])
		if ct := validClock(hour, minute); ct != nil {
			return ct
		}
	}
	return nil
}

// applyMeridiem converts a 12-hour clock hour to 24-hour form.
// "12am" is midnight (0) and "12pm" is noon (12).
func applyMeridiem(hour int, meridiem string) int {
	switch strings.ToLower(meridiem) {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}
	return hour
}

func validClock(hour, minute int) *clockTime {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return nil
	}
	return &clockTime{hour: hour, minute: minute}
}
