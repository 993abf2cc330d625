package eventparser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseAtEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n"} {
		result := ParseAt(input, wednesday)
		require.False(t, result.Success)
		require.Equal(t, ErrEmptyInput, result.Error)
		require.Nil(t, result.Data)
	}
}

func TestParseAtUnextractableTitle(t *testing.T) {
	result := ParseAt("tomorrow at 3pm", wednesday)
	require.False(t, result.Success)
	require.Equal(t, ErrNoTitle, result.Error)
}

func TestParseAtFullPhrase(t *testing.T) {
	result := ParseAt("doctor appointment tomorrow at 2:30pm", wednesday)
	require.True(t, result.Success)
	require.NotNil(t, result.Data)

	data := result.Data
	require.Equal(t, "Doctor appointment", data.Title)
	require.Equal(t, "medical", data.Category)

	start, err := time.Parse(time.RFC3339, data.StartDatetime)
	require.NoError(t, err)
	require.Equal(t, 14, start.Hour())
	require.Equal(t, 30, start.Minute())
	require.Equal(t, 27, start.Day()) // tomorrow relative to Wednesday the 26th

	end, err := time.Parse(time.RFC3339, data.EndDatetime)
	require.NoError(t, err)
	require.Equal(t, time.Hour, end.Sub(start))

	// Every signal fired, so the score clamps at 1.0.
	require.InDelta(t, 1.0, data.Confidence, 1e-9)
	require.Empty(t, data.Suggestions)
}

func TestParseAtNextWeekday(t *testing.T) {
	result := ParseAt("team meeting next monday", wednesday)
	require.True(t, result.Success)

	data := result.Data
	require.Equal(t, "work", data.Category)

	start, err := time.Parse(time.RFC3339, data.StartDatetime)
	require.NoError(t, err)
	// Monday of the week after the current one, even though this week's
	// Monday has already passed.
	require.Equal(t, time.Monday, start.Weekday())
	require.Equal(t, 31, start.Day())
	// No clock time in the input: defaults to 09:00.
	require.Equal(t, 9, start.Hour())
	require.Equal(t, 0, start.Minute())
}

func TestParseAtDefaults(t *testing.T) {
	result := ParseAt("coffee with sam", wednesday)
	require.True(t, result.Success)

	data := result.Data
	require.Equal(t, "Coffee sam", data.Title)
	require.Equal(t, "social", data.Category)

	start, err := time.Parse(time.RFC3339, data.StartDatetime)
	require.NoError(t, err)
	require.Equal(t, wednesday.Day(), start.Day())
	require.Equal(t, 9, start.Hour())

	// Base 0.5 plus the title-length bonus; no date, no time.
	require.InDelta(t, 0.6, data.Confidence, 1e-9)
	// Category was detected, so only the "add a time" hint fires.
	require.Len(t, data.Suggestions, 1)
	require.Contains(t, data.Suggestions[0], "specific time")
}

func TestParseAtUncategorized(t *testing.T) {
	result := ParseAt("mystery thing tomorrow", wednesday)
	require.True(t, result.Success)
	require.Equal(t, CategoryGeneral, result.Data.Category)
	require.Len(t, result.Data.Suggestions, 2)
}

func TestParseAtTimeAppendedDropsTimeHint(t *testing.T) {
	without := ParseAt("walk the dog", wednesday)
	require.True(t, without.Success)
	require.Contains(t, without.Data.Suggestions[len(without.Data.Suggestions)-1], "specific time")

	with := ParseAt("walk the dog at 3pm", wednesday)
	require.True(t, with.Success)
	start, err := time.Parse(time.RFC3339, with.Data.StartDatetime)
	require.NoError(t, err)
	require.Equal(t, 15, start.Hour())
	require.Equal(t, 0, start.Minute())
	for _, s := range with.Data.Suggestions {
		require.NotContains(t, s, "specific time")
	}
}

func TestParseAtMeridiemBoundaries(t *testing.T) {
	midnight := ParseAt("flight check-in 12am", wednesday)
	require.True(t, midnight.Success)
	start, err := time.Parse(time.RFC3339, midnight.Data.StartDatetime)
	require.NoError(t, err)
	require.Equal(t, 0, start.Hour())

	noon := ParseAt("flight check-in 12pm", wednesday)
	require.True(t, noon.Success)
	start, err = time.Parse(time.RFC3339, noon.Data.StartDatetime)
	require.NoError(t, err)
	require.Equal(t, 12, start.Hour())
}

func TestParseAtEndIsAlwaysOneHourAfterStart(t *testing.T) {
	inputs := []string{
		"doctor appointment tomorrow at 2:30pm",
		"team meeting next monday",
		"coffee with sam",
		"movie 1830 saturday",
	}
	for _, input := range inputs {
		result := ParseAt(input, wednesday)
		require.True(t, result.Success, input)
		start, err := time.Parse(time.RFC3339, result.Data.StartDatetime)
		require.NoError(t, err)
		end, err := time.Parse(time.RFC3339, result.Data.EndDatetime)
		require.NoError(t, err)
		require.Equal(t, time.Hour, end.Sub(start), input)
	}
}

func TestParseAtNeverPopulatesAmbiguities(t *testing.T) {
	result := ParseAt("doctor appointment tomorrow at 2:30pm", wednesday)
	require.Nil(t, result.Ambiguities)
}

func TestParseUsesWallClock(t *testing.T) {
	result := Parse("coffee with sam")
	require.True(t, result.Success)
	start, err := time.Parse(time.RFC3339, result.Data.StartDatetime)
	require.NoError(t, err)
	require.Equal(t, time.Now().Day(), start.Day())
}
