// Package eventparser turns free-form phrases like "doctor appointment
// tomorrow at 2:30pm" into structured calendar event data.
//
// Parsing is a single synchronous pass with no I/O and no shared state, so
// it is safe to call from any number of goroutines. The reference time is an
// explicit input (ParseAt) to keep results deterministic and testable.
package eventparser

import (
	"log/slog"
	"strings"
	"time"
)

// Parse failure messages surfaced to the user. These are part of the API
// contract with the web client and must stay stable.
const (
	ErrEmptyInput      = "Please enter an event description"
	ErrNoTitle         = "Could not extract event title"
	ErrInvalidDatetime = "Invalid date or time detected"
	ErrParseFailed     = "Failed to parse event description"
)

// CategoryGeneral is the fallback category when no keyword table matches.
const CategoryGeneral = "general"

// defaultHour is the start hour used when the input contains no clock time.
const defaultHour = 9

// EventData is the structured event extracted from a phrase.
type EventData struct {
	Title         string   `json:"title"`
	StartDatetime string   `json:"start_datetime"`
	EndDatetime   string   `json:"end_datetime,omitempty"`
	Category      string   `json:"category"`
	Confidence    float64  `json:"confidence"`
	Suggestions   []string `json:"suggestions"`
}

// Result is the envelope returned by Parse. Exactly one of Data / Error is
// populated, governed by Success.
type Result struct {
	Success bool       `json:"success"`
	Data    *EventData `json:"data,omitempty"`
	Error   string     `json:"error,omitempty"`
	// Ambiguities is reserved for future disambiguation hints. It is part of
	// the wire contract but no extraction path populates it yet.
	Ambiguities []string `json:"ambiguities,omitempty"`
}

// Parse parses a natural-language event description against the current
// wall clock. See ParseAt.
func Parse(input string) Result {
	return ParseAt(input, time.Now())
}

// ParseAt parses a natural-language event description relative to now.
// It never panics out to the caller; every failure path yields a Result
// with Success false and one of the Err* messages.
func ParseAt(input string, now time.Time) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("event parsing panicked", "panic", r)
			result = failure(ErrParseFailed)
		}
	}()

	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return failure(ErrEmptyInput)
	}

	// The extractors are independent of each other; each scans the full
	// trimmed input on its own.
	date := extractDate(trimmed, now)
	clock := extractTime(trimmed)
	title := extractTitle(trimmed)
	category := detectCategory(trimmed)

	if title == "" {
		return failure(ErrNoTitle)
	}

	day := now
	if date != nil {
		day = *date
	}
	hour, minute := defaultHour, 0
	if clock != nil {
		hour, minute = clock.hour, clock.minute
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
	// time.Date silently normalizes out-of-range components; if the composed
	// value moved, the intermediate values were not a real calendar time.
	if start.Hour() != hour || start.Minute() != minute {
		return failure(ErrInvalidDatetime)
	}
	end := start.Add(time.Hour)

	if category == "" {
		category = CategoryGeneral
	}

	return Result{
		Success: true,
		Data: &EventData{
			Title:         title,
			StartDatetime: start.Format(time.RFC3339),
			EndDatetime:   end.Format(time.RFC3339),
			Category:      category,
			Confidence:    calculateConfidence(date, clock, title),
			Suggestions:   generateSuggestions(trimmed, category),
		},
	}
}

func failure(msg string) Result {
	return Result{Success: false, Error: msg}
}
