package eventparser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCalculateConfidence(t *testing.T) {
	now := time.Now()
	clock := &clockTime{15, 0}

	// Base only: no date, no time, short title.
	require.InDelta(t, 0.5, calculateConfidence(nil, nil, "ab"), 1e-9)
	// Title bonus.
	require.InDelta(t, 0.6, calculateConfidence(nil, nil, "coffee sam"), 1e-9)
	// Date bonus.
	require.InDelta(t, 0.7, calculateConfidence(&now, nil, "abc"), 1e-9)
	// Everything fires and the sum clamps at 1.0.
	require.InDelta(t, 1.0, calculateConfidence(&now, clock, "doctor appointment"), 1e-9)
}

func TestCalculateConfidenceRange(t *testing.T) {
	now := time.Now()
	clock := &clockTime{0, 0}
	for _, title := range []string{"", "ab", "a very long event title"} {
		for _, d := range []*time.Time{nil, &now} {
			for _, c := range []*clockTime{nil, clock} {
				score := calculateConfidence(d, c, title)
				require.GreaterOrEqual(t, score, 0.0)
				require.LessOrEqual(t, score, 1.0)
			}
		}
	}
}

func TestGenerateSuggestions(t *testing.T) {
	// No category and no digits: both rules fire, in order.
	got := generateSuggestions("something vague", "")
	require.Len(t, got, 2)
	require.Contains(t, got[0], "categorize")
	require.Contains(t, got[1], "3pm")

	// Category found, no digits: only the time hint.
	got = generateSuggestions("coffee with sam", "social")
	require.Len(t, got, 1)
	require.Contains(t, got[0], "specific time")

	// Digits present and categorized: nothing to suggest.
	got = generateSuggestions("doctor at 2:30pm", "medical")
	require.NotNil(t, got)
	require.Empty(t, got)
}
