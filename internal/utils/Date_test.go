package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_AddMonths(t *testing.T) {
	tests := []struct {
		name   string
		date   Date
		months int
		want   Date
	}{
		{
			name:   "mid-month is unchanged in day",
			date:   NewDate(2024, time.January, 15),
			months: 1,
			want:   NewDate(2024, time.February, 15),
		},
		{
			name:   "Jan 31 clamps to Feb 29 in a leap year",
			date:   NewDate(2024, time.January, 31),
			months: 1,
			want:   NewDate(2024, time.February, 29),
		},
		{
			name:   "Jan 31 clamps to Feb 28 in a non-leap year",
			date:   NewDate(2023, time.January, 31),
			months: 1,
			want:   NewDate(2023, time.February, 28),
		},
		{
			name:   "Mar 31 clamps to Apr 30",
			date:   NewDate(2024, time.March, 31),
			months: 1,
			want:   NewDate(2024, time.April, 30),
		},
		{
			name:   "year boundary",
			date:   NewDate(2024, time.December, 5),
			months: 1,
			want:   NewDate(2025, time.January, 5),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.date.AddMonths(tt.months))
		})
	}
}

func TestDate_AddYears(t *testing.T) {
	// Feb 29 clamps to Feb 28 the following year.
	assert.Equal(t, NewDate(2025, time.February, 28), NewDate(2024, time.February, 29).AddYears(1))
	assert.Equal(t, NewDate(2025, time.July, 4), NewDate(2024, time.July, 4).AddYears(1))
}

func TestDate_AddDays(t *testing.T) {
	assert.Equal(t, NewDate(2024, time.March, 1), NewDate(2024, time.February, 29).AddDays(1))
	assert.Equal(t, NewDate(2024, time.January, 8), NewDate(2024, time.January, 1).AddDays(7))
}

func TestDate_DaysUntil(t *testing.T) {
	today := NewDate(2024, time.March, 10)
	assert.Equal(t, 0, today.DaysUntil(today))
	assert.Equal(t, 5, today.DaysUntil(NewDate(2024, time.March, 15)))
	assert.Equal(t, -3, today.DaysUntil(NewDate(2024, time.March, 7)))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2024, time.March, 5), d)

	// Timestamps are tolerated; the time component is dropped.
	d, err = ParseDate("2024-03-05T13:45:00Z")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2024, time.March, 5), d)

	_, err = ParseDate("not-a-date")
	assert.Error(t, err)
}

func TestDate_JSON(t *testing.T) {
	d := NewDate(2024, time.March, 5)
	data, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-05"`, string(data))

	var back Date
	require.NoError(t, back.UnmarshalJSON(data))
	assert.Equal(t, d, back)

	var zero Date
	require.NoError(t, zero.UnmarshalJSON([]byte(`""`)))
	assert.True(t, zero.IsZero())
}

func TestMonthInterval(t *testing.T) {
	first, last := MonthInterval(time.February, 2024)
	assert.Equal(t, NewDate(2024, time.February, 1), first)
	assert.Equal(t, NewDate(2024, time.February, 29), last)
}

func TestMonthByName(t *testing.T) {
	m, err := MonthByName("march")
	require.NoError(t, err)
	assert.Equal(t, time.March, m)

	_, err = MonthByName("Smarch")
	assert.Error(t, err)
}
