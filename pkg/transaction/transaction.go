package transaction

import (
	"fmt"
	"time"

	"github.com/budgetwise/budgetwise/internal/utils"
)

// Type classifies a transaction as money coming in, going out, or being set
// aside.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
	TypeSaving  Type = "saving"
)

func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeIncome, TypeExpense, TypeSaving:
		return Type(s), nil
	}
	return "", fmt.Errorf("unknown transaction type %q", s)
}

func (t Type) Valid() bool {
	_, err := ParseType(string(t))
	return err == nil
}

// Transaction is a single dated money movement. Transactions are immutable
// once created; corrections are delete-and-recreate. Category holds the
// category name, which is the join key for aggregation — a transaction can
// outlive the category it references.
type Transaction struct {
	ID          string
	Date        utils.Date
	Amount      float64
	Type        Type
	Category    string
	Description string
	CreatedAt   time.Time
}
