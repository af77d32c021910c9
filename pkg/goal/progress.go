package goal

import (
	"github.com/budgetwise/budgetwise/pkg/transaction"
)

// UpdateProgress recomputes CurrentAmount for saving goals from the full
// transaction history: every saving transaction whose category matches the
// goal's category counts toward it. Goals of other types are returned as-is;
// their progress is maintained by hand.
func UpdateProgress(goals []Goal, transactions []transaction.Transaction) []Goal {
	savedByCategory := make(map[string]float64)
	for _, t := range transactions {
		if t.Type == transaction.TypeSaving {
			savedByCategory[t.Category] += t.Amount
		}
	}

	updated := make([]Goal, len(goals))
	for i, g := range goals {
		if g.Type == transaction.TypeSaving {
			g.CurrentAmount = savedByCategory[g.Category]
		}
		updated[i] = g
	}
	return updated
}
