package category

import (
	"github.com/budgetwise/budgetwise/pkg/transaction"
)

// Category describes a budget line. BudgetedAmount is the expected monthly
// amount for the category; Color is a display hint carried through verbatim.
type Category struct {
	ID             string
	Name           string
	Type           transaction.Type
	BudgetedAmount float64
	Color          string
}
