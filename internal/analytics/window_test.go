package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveWindowDay(t *testing.T) {
	now := time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC)

	w, err := ResolveWindow(PeriodDay, now)
	assert.NoError(t, err)

	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), w.CurrentStart)
	assert.Equal(t, now, w.Now)
	// previous interval has the same length and ends where current starts
	assert.Equal(t, w.CurrentStart, w.PreviousEnd)
	assert.Equal(t, now.Sub(w.CurrentStart), w.PreviousEnd.Sub(w.PreviousStart))
}

func TestResolveWindowWeek(t *testing.T) {
	now := time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC)

	w, err := ResolveWindow(PeriodWeek, now)
	assert.NoError(t, err)

	assert.Equal(t, time.Date(2024, 6, 8, 14, 30, 0, 0, time.UTC), w.CurrentStart)
	assert.Equal(t, time.Date(2024, 6, 1, 14, 30, 0, 0, time.UTC), w.PreviousStart)
	assert.Equal(t, w.CurrentStart, w.PreviousEnd)
}

func TestResolveWindowMonthClamps(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "plain month back",
			now:  time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC),
			want: time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			name: "mar 31 clamps to feb 29 on leap year",
			now:  time.Date(2024, 3, 31, 10, 0, 0, 0, time.UTC),
			want: time.Date(2024, 2, 29, 10, 0, 0, 0, time.UTC),
		},
		{
			name: "mar 31 clamps to feb 28 off leap year",
			now:  time.Date(2023, 3, 31, 10, 0, 0, 0, time.UTC),
			want: time.Date(2023, 2, 28, 10, 0, 0, 0, time.UTC),
		},
		{
			name: "jul 31 clamps to jun 30",
			now:  time.Date(2024, 7, 31, 10, 0, 0, 0, time.UTC),
			want: time.Date(2024, 6, 30, 10, 0, 0, 0, time.UTC),
		},
		{
			name: "jan 31 crosses year boundary to dec 31",
			now:  time.Date(2024, 1, 31, 10, 0, 0, 0, time.UTC),
			want: time.Date(2023, 12, 31, 10, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := ResolveWindow(PeriodMonth, tt.now)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, w.CurrentStart)
			assert.Equal(t, w.CurrentStart, w.PreviousEnd)
		})
	}
}

func TestResolveWindowYear(t *testing.T) {
	// feb 29 of a leap year lands on feb 28 a year back
	now := time.Date(2024, 2, 29, 10, 0, 0, 0, time.UTC)

	w, err := ResolveWindow(PeriodYear, now)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2023, 2, 28, 10, 0, 0, 0, time.UTC), w.CurrentStart)
}

func TestResolveWindowUnknownPeriod(t *testing.T) {
	_, err := ResolveWindow(Period("quarter"), time.Now())
	assert.ErrorIs(t, err, ErrUnknownPeriod)
}

func TestResolveWindowKeepsLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/Detroit")
	assert.NoError(t, err)
	now := time.Date(2024, 6, 15, 1, 30, 0, 0, loc)

	w, err := ResolveWindow(PeriodDay, now)
	assert.NoError(t, err)
	assert.Equal(t, loc, w.CurrentStart.Location())
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, loc), w.CurrentStart)
}
