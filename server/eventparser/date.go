package eventparser

import (
	"regexp"
	"strings"
	"time"
)

// weekdayNames maps full names and 3-letter abbreviations to Go weekdays
// (Sunday = 0, matching the week-start convention used throughout).
var weekdayNames = map[string]time.Weekday{
	"sunday": time.Sunday, "sun": time.Sunday,
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
}

const weekdayAlternation = `sunday|monday|tuesday|wednesday|thursday|friday|saturday|sun|mon|tue|wed|thu|fri|sat`

var (
	dateRelative    = regexp.MustCompile(`(?i)\b(today|tomorrow|yesterday)\b`)
	dateNextWeekday = regexp.MustCompile(`(?i)\bnext\s+(` + weekdayAlternation + `)\b`)
	dateThisWeekday = regexp.MustCompile(`(?i)\bthis\s+(` + weekdayAlternation + `)\b`)
	dateBareWeekday = regexp.MustCompile(`(?i)\b(` + weekdayAlternation + `)\b`)
)

// extractDate scans text for a date expression and resolves it to a concrete
// day relative to now. Returns nil when nothing matches. Pure function of
// text and now.
//
// The "next"/"this" phrases are tried before bare weekday names so the
// modifier is not lost to the shorter match.
func extractDate(text string, now time.Time) *time.Time {
	if m := dateRelative.FindStringSubmatch(text); m != nil {
		var offset int
		switch strings.ToLower(m[1]) {
		case "today":
			offset = 0
		case "tomorrow":
			offset = 1
		case "yesterday":
			offset = -1
		}
		d := now.AddDate(0, 0, offset)
		return &d
	}
	if m := dateNextWeekday.FindStringSubmatch(text); m != nil {
		// Resolve into the week following the current one, even when the
		// named day has not yet occurred this week.
		target := weekdayNames[strings.ToLower(m[1])]
		d := now.AddDate(0, 0, 7-int(now.Weekday())+int(target))
		return &d
	}
	if m := dateThisWeekday.FindStringSubmatch(text); m != nil {
		d := weekdayInCurrentWeek(now, weekdayNames[strings.ToLower(m[1])])
		return &d
	}
	if m := dateBareWeekday.FindStringSubmatch(text); m != nil {
		d := weekdayInCurrentWeek(now, weekdayNames[strings.ToLower(m[1])])
		return &d
	}
	return nil
}

// weekdayInCurrentWeek resolves a weekday within the Sunday-start week
// containing now. A day that has already passed advances by 7 days so the
// result is always today or in the future.
func weekdayInCurrentWeek(now time.Time, target time.Weekday) time.Time {
	delta := int(target) - int(now.Weekday())
	if delta < 0 {
		delta += 7
	}
	return now.AddDate(0, 0, delta)
}
