package alert

import (
	"time"

	"github.com/budgetwise/budgetwise/internal/utils"
)

type AlertType string

const (
	TypeBudgetWarning  AlertType = "budget_warning"
	TypeGoalReminder   AlertType = "goal_reminder"
	TypeRecurringDue   AlertType = "recurring_due"
	TypeUnusualExpense AlertType = "unusual_expense"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Rank orders priorities for sorting; higher is more urgent.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	default:
		return 1
	}
}

// Alert is a reminder surfaced to the user. TransactionID, Category and
// Amount are set for recurring-due alerts and link back to the schedule that
// produced them.
type Alert struct {
	ID            string
	Type          AlertType
	Title         string
	Message       string
	DueDate       utils.Date
	Priority      Priority
	IsRead        bool
	TransactionID string
	Category      string
	Amount        float64
	CreatedAt     time.Time
}
