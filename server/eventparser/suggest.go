package eventparser

import (
	"time"
	"unicode"
)

// Confidence scoring constants. These are deliberate, uncalibrated heuristic
// weights: the score accumulates evidence and says nothing statistical.
const (
	confidenceBase       = 0.5
	confidenceDateBonus  = 0.2
	confidenceTimeBonus  = 0.2
	confidenceTitleBonus = 0.1
	confidenceMax        = 1.0
)

// calculateConfidence scores how much of the input was structurally
// recognized. Monotonically non-decreasing in the number of extracted
// signals, clamped to [0, 1].
func calculateConfidence(date *time.Time, clock *clockTime, title string) float64 {
	score := confidenceBase
	if date != nil {
		score += confidenceDateBonus
	}
	if clock != nil {
		score += confidenceTimeBonus
	}
	if len(title) > 3 {
		score += confidenceTitleBonus
	}
	if score > confidenceMax {
		score = confidenceMax
	}
	return score
}

// generateSuggestions produces short advisory hints for improving vague
// input. Both rules are evaluated independently, in order, so up to two
// suggestions can fire. Never returns nil.
func generateSuggestions(text, category string) []string {
	suggestions := []string{}
	if category == "" || category == CategoryGeneral {
		suggestions = append(suggestions, `Add a keyword like "doctor", "meeting" or "dinner" to categorize the event`)
	}
	if !containsDigit(text) {
		suggestions = append(suggestions, `Add a specific time, e.g. "at 3pm"`)
	}
	return suggestions
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
