package goal

import (
	"time"

	"github.com/budgetwise/budgetwise/internal/utils"
	"github.com/budgetwise/budgetwise/pkg/transaction"
)

// Goal is a savings (or spending-cap) target with a deadline. CurrentAmount
// is derived from transactions for saving goals and kept as entered for the
// other types.
type Goal struct {
	ID            string
	Name          string
	TargetAmount  float64
	CurrentAmount float64
	Deadline      utils.Date
	Category      string
	Type          transaction.Type
	Description   string
	CreatedAt     time.Time
}

// ProgressPercent reports completion as 0..100. A goal with no positive
// target counts as done as soon as anything at all has been put toward it.
func (g Goal) ProgressPercent() float64 {
	if g.TargetAmount <= 0 {
		if g.CurrentAmount >= 0 {
			return 100
		}
		return 0
	}
	percent := g.CurrentAmount / g.TargetAmount * 100
	if percent > 100 {
		return 100
	}
	return percent
}

// DaysRemaining counts whole days from today to the deadline; it is negative
// once the deadline has passed.
func (g Goal) DaysRemaining(today utils.Date) int {
	return today.DaysUntil(g.Deadline)
}

// NeededPerDay is the daily amount required to close the gap by the deadline.
// Past-deadline goals use a single-day horizon rather than dividing by zero.
func (g Goal) NeededPerDay(today utils.Date) float64 {
	remaining := g.TargetAmount - g.CurrentAmount
	if remaining <= 0 {
		return 0
	}
	days := g.DaysRemaining(today)
	if days < 1 {
		days = 1
	}
	return remaining / float64(days)
}
