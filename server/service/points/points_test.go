package points

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "wednesday rolls back to sunday",
			in:   time.Date(2026, time.August, 26, 10, 30, 0, 0, time.UTC),
			want: time.Date(2026, time.August, 23, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "sunday is its own week start",
			in:   time.Date(2026, time.August, 23, 23, 59, 0, 0, time.UTC),
			want: time.Date(2026, time.August, 23, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "saturday belongs to the preceding sunday",
			in:   time.Date(2026, time.August, 29, 0, 0, 0, 0, time.UTC),
			want: time.Date(2026, time.August, 23, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, StartOfWeek(tt.in).Equal(tt.want))
		})
	}
}

func TestWeekKey(t *testing.T) {
	wednesday := time.Date(2026, time.August, 26, 10, 0, 0, 0, time.UTC)
	saturday := time.Date(2026, time.August, 29, 18, 0, 0, 0, time.UTC)
	nextSunday := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)

	require.Equal(t, WeekKey(wednesday), WeekKey(saturday))
	require.NotEqual(t, WeekKey(wednesday), WeekKey(nextSunday))
	require.Regexp(t, `^\d{4}-W\d{2}$`, WeekKey(wednesday))
}

func TestWeekKeyStableWithinWeek(t *testing.T) {
	weekStart := time.Date(2026, time.August, 23, 0, 0, 0, 0, time.UTC)
	key := WeekKey(weekStart)
	for day := 0; day < 7; day++ {
		require.Equal(t, key, WeekKey(weekStart.AddDate(0, 0, day)))
	}
	require.NotEqual(t, key, WeekKey(weekStart.AddDate(0, 0, 7)))
}
