package recurring

import (
	"fmt"
	"time"

	"github.com/budgetwise/budgetwise/internal/utils"
	"github.com/budgetwise/budgetwise/pkg/transaction"
)

type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

func ParseFrequency(s string) (Frequency, error) {
	switch Frequency(s) {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return Frequency(s), nil
	}
	return "", fmt.Errorf("unknown frequency %q", s)
}

func (f Frequency) Valid() bool {
	_, err := ParseFrequency(string(f))
	return err == nil
}

// Next advances a due date by one period. Monthly and yearly steps clamp to
// the end of shorter months, so a Jan 31 schedule lands on Feb 29 or Feb 28.
func (f Frequency) Next(d utils.Date) utils.Date {
	switch f {
	case FrequencyDaily:
		return d.AddDays(1)
	case FrequencyWeekly:
		return d.AddDays(7)
	case FrequencyYearly:
		return d.AddYears(1)
	default:
		return d.AddMonths(1)
	}
}

// RecurringTransaction is a schedule template. NextDueDate is the only
// mutable scheduling state; a zero EndDate means the schedule never expires.
type RecurringTransaction struct {
	ID          string
	Name        string
	Amount      float64
	Type        transaction.Type
	Category    string
	Frequency   Frequency
	StartDate   utils.Date
	EndDate     utils.Date
	NextDueDate utils.Date
	IsActive    bool
	Description string
	CreatedAt   time.Time
}

// Expired reports whether the schedule has run past its end date.
func (r RecurringTransaction) Expired() bool {
	return !r.EndDate.IsZero() && r.NextDueDate.After(r.EndDate)
}
