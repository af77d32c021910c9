package utils

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is an immutable calendar day with no time-of-day or zone component.
// The zero value is "no date".
type Date struct {
	year  int
	month time.Month
	day   int
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{year: year, month: month, day: day}
}

// DateOf truncates a time.Time to its calendar day in the time's location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{year: year, month: month, day: day}
}

// ParseDate parses an ISO "2006-01-02" string. Full timestamps are accepted
// too; anything after the date component is ignored.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

func (d Date) Year() int         { return d.year }
func (d Date) Month() time.Month { return d.month }
func (d Date) Day() int          { return d.day }

func (d Date) IsZero() bool {
	return d.year == 0 && d.month == 0 && d.day == 0
}

// Time returns the date at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

func (d Date) String() string {
	return d.Time().Format(dateLayout)
}

func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// AddMonths moves the date forward by whole calendar months, clamping the day
// to the last day of the target month (Jan 31 + 1 month = Feb 29 in a leap
// year, Feb 28 otherwise). It never rolls over into the following month.
func (d Date) AddMonths(n int) Date {
	first := time.Date(d.year, d.month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	day := d.day
	if last := daysIn(first.Year(), first.Month()); day > last {
		day = last
	}
	return Date{year: first.Year(), month: first.Month(), day: day}
}

// AddYears moves the date forward by whole years with the same day clamping
// as AddMonths (Feb 29 + 1 year = Feb 28).
func (d Date) AddYears(n int) Date {
	return d.AddMonths(n * 12)
}

func (d Date) Before(o Date) bool { return d.Time().Before(o.Time()) }
func (d Date) After(o Date) bool  { return d.Time().After(o.Time()) }
func (d Date) Equal(o Date) bool  { return d == o }

// DaysUntil returns the number of whole days from d to o; negative when o is
// in the past relative to d.
func (d Date) DaysUntil(o Date) int {
	return int(o.Time().Sub(d.Time()).Hours() / 24)
}

// MonthInterval returns the first and last day of the given calendar month.
func MonthInterval(month time.Month, year int) (Date, Date) {
	return NewDate(year, month, 1), NewDate(year, month, daysIn(year, month))
}

// MonthByName resolves an English month name ("March", case-insensitive).
func MonthByName(name string) (time.Month, error) {
	for m := time.January; m <= time.December; m++ {
		if strings.EqualFold(m.String(), name) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown month name %q", name)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
