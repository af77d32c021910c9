package alert

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/budgetwise/budgetwise/internal/utils"
	"github.com/budgetwise/budgetwise/pkg/recurring"
	"github.com/budgetwise/budgetwise/pkg/transaction"
	"github.com/google/uuid"
)

// criticalCategories mark obligations that hurt when missed. Matching is a
// case-insensitive substring check against the schedule's category.
var criticalCategories = []string{"rent", "mortgage", "loan", "utility", "insurance", "tax", "salary"}

// ScoreTransaction rates how urgent a schedule's reminders should be. The
// components weigh amount (40), type (30), category criticality (20) and
// frequency (10); the maximum score is 100.
func ScoreTransaction(r recurring.RecurringTransaction) int {
	score := 0

	switch {
	case r.Amount >= 50000:
		score += 40
	case r.Amount >= 10000:
		score += 25
	default:
		score += 10
	}

	switch r.Type {
	case transaction.TypeExpense:
		score += 30
	case transaction.TypeSaving:
		score += 20
	default:
		score += 10
	}

	category := strings.ToLower(r.Category)
	critical := false
	for _, keyword := range criticalCategories {
		if strings.Contains(category, keyword) {
			critical = true
			break
		}
	}
	if critical {
		score += 20
	} else {
		score += 5
	}

	// rarer schedules are easier to forget
	if r.Frequency == recurring.FrequencyMonthly || r.Frequency == recurring.FrequencyYearly {
		score += 10
	} else {
		score += 5
	}

	return score
}

func PriorityForScore(score int) Priority {
	switch {
	case score >= 70:
		return PriorityHigh
	case score >= 40:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

func TransactionPriority(r recurring.RecurringTransaction) Priority {
	return PriorityForScore(ScoreTransaction(r))
}

// AdvanceWindowDays is how many days before the due date a reminder appears.
func AdvanceWindowDays(p Priority) int {
	switch p {
	case PriorityHigh:
		return 5
	case PriorityMedium:
		return 3
	default:
		return 1
	}
}

// Generator builds recurring-due alerts. It is pure: callers pass the current
// alert list and persist whatever comes back.
type Generator struct {
	currencySymbol string
}

func NewGenerator(currencySymbol string) *Generator {
	return &Generator{currencySymbol: currencySymbol}
}

// Generate returns the existing alerts followed by any new reminders for
// active schedules. A schedule gets at most one alert per due date: an
// existing recurring-due alert for the same schedule and date suppresses a
// new one regardless of its read state.
func (g *Generator) Generate(
	recurrings []recurring.RecurringTransaction,
	existing []Alert,
	today utils.Date,
	now time.Time,
) []Alert {
	seen := make(map[string]bool, len(existing))
	for _, a := range existing {
		if a.Type == TypeRecurringDue {
			seen[dedupKey(a.TransactionID, a.DueDate)] = true
		}
	}

	result := make([]Alert, len(existing), len(existing)+len(recurrings))
	copy(result, existing)

	for _, r := range recurrings {
		if !r.IsActive {
			continue
		}
		if seen[dedupKey(r.ID, r.NextDueDate)] {
			continue
		}

		daysUntilDue := today.DaysUntil(r.NextDueDate)
		priority := TransactionPriority(r)

		var title, message string
		switch {
		case daysUntilDue < 0:
			overdueDays := -daysUntilDue
			plural := "s"
			if overdueDays == 1 {
				plural = ""
			}
			title = fmt.Sprintf("%s Overdue", r.Name)
			message = fmt.Sprintf("%q is overdue by %d day%s! Amount: %s", r.Name, overdueDays, plural, g.formatAmount(r.Amount))
			// missed payments always escalate to high
			priority = PriorityHigh
		case daysUntilDue <= AdvanceWindowDays(priority):
			title = fmt.Sprintf("%s Due Soon", r.Name)
			switch daysUntilDue {
			case 0:
				message = fmt.Sprintf("%q is due today! Amount: %s", r.Name, g.formatAmount(r.Amount))
			case 1:
				message = fmt.Sprintf("%q is due tomorrow. Amount: %s", r.Name, g.formatAmount(r.Amount))
			default:
				message = fmt.Sprintf("%q is due in %d days. Amount: %s", r.Name, daysUntilDue, g.formatAmount(r.Amount))
			}
		default:
			continue
		}

		result = append(result, Alert{
			ID:            uuid.NewString(),
			Type:          TypeRecurringDue,
			Title:         title,
			Message:       message,
			DueDate:       r.NextDueDate,
			Priority:      priority,
			TransactionID: r.ID,
			Category:      r.Category,
			Amount:        r.Amount,
			CreatedAt:     now,
		})
	}

	return result
}

func dedupKey(transactionID string, dueDate utils.Date) string {
	return transactionID + "|" + dueDate.String()
}

// formatAmount renders a whole-rupee amount with Indian digit grouping, e.g.
// 150000 becomes ₹1,50,000: the last three digits form one group, the rest
// split into pairs.
func (g *Generator) formatAmount(amount float64) string {
	digits := fmt.Sprintf("%.0f", math.Abs(amount))

	var grouped string
	if len(digits) <= 3 {
		grouped = digits
	} else {
		head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
		var pairs []string
		for len(head) > 2 {
			pairs = append([]string{head[len(head)-2:]}, pairs...)
			head = head[:len(head)-2]
		}
		pairs = append([]string{head}, pairs...)
		grouped = strings.Join(pairs, ",") + "," + tail
	}

	if amount < 0 {
		return "-" + g.currencySymbol + grouped
	}
	return g.currencySymbol + grouped
}
