package dashboard

import (
	"sort"
	"time"

	"github.com/budgetwise/budgetwise/internal/utils"
	"github.com/budgetwise/budgetwise/pkg/category"
	"github.com/budgetwise/budgetwise/pkg/transaction"
)

const recentTransactionLimit = 10

// MonthlySummary compares budgeted totals against what actually happened in
// one calendar month. Expected figures come from category budgets alone and
// do not depend on any transactions.
type MonthlySummary struct {
	Month            string
	Year             int
	ExpectedIncome   float64
	ActualIncome     float64
	ExpectedExpenses float64
	ActualExpenses   float64
	ExpectedSavings  float64
	ActualSavings    float64
}

// CategorySummary is one budget line of the month. For expenses the
// difference is budget minus actual (positive = under budget); for income and
// savings it is actual minus budget (positive = ahead of plan).
type CategorySummary struct {
	Category   string
	Budgeted   float64
	Actual     float64
	Difference float64
	Type       transaction.Type
}

type Snapshot struct {
	Summary            MonthlySummary
	IncomeSummary      []CategorySummary
	ExpenseSummary     []CategorySummary
	SavingSummary      []CategorySummary
	RecentTransactions []transaction.Transaction
}

// ComputeSnapshot derives the dashboard for one month. It is pure and
// deterministic: the same inputs always produce the same snapshot.
// Transactions whose category has no budget line still count toward the
// monthly totals but are absent from the per-category tables.
func ComputeSnapshot(
	transactions []transaction.Transaction,
	categories []category.Category,
	month time.Month,
	year int,
) Snapshot {
	first, last := utils.MonthInterval(month, year)

	var monthly []transaction.Transaction
	for _, t := range transactions {
		if t.Date.Before(first) || t.Date.After(last) {
			continue
		}
		monthly = append(monthly, t)
	}

	summary := MonthlySummary{Month: month.String(), Year: year}
	for _, t := range monthly {
		switch t.Type {
		case transaction.TypeIncome:
			summary.ActualIncome += t.Amount
		case transaction.TypeExpense:
			summary.ActualExpenses += t.Amount
		case transaction.TypeSaving:
			summary.ActualSavings += t.Amount
		}
	}
	for _, c := range categories {
		switch c.Type {
		case transaction.TypeIncome:
			summary.ExpectedIncome += c.BudgetedAmount
		case transaction.TypeExpense:
			summary.ExpectedExpenses += c.BudgetedAmount
		case transaction.TypeSaving:
			summary.ExpectedSavings += c.BudgetedAmount
		}
	}

	recent := make([]transaction.Transaction, len(transactions))
	copy(recent, transactions)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date.After(recent[j].Date)
	})
	if len(recent) > recentTransactionLimit {
		recent = recent[:recentTransactionLimit]
	}

	return Snapshot{
		Summary:            summary,
		IncomeSummary:      summarizeCategories(monthly, categories, transaction.TypeIncome),
		ExpenseSummary:     summarizeCategories(monthly, categories, transaction.TypeExpense),
		SavingSummary:      summarizeCategories(monthly, categories, transaction.TypeSaving),
		RecentTransactions: recent,
	}
}

func summarizeCategories(
	monthly []transaction.Transaction,
	categories []category.Category,
	transactionType transaction.Type,
) []CategorySummary {
	var summaries []CategorySummary
	for _, c := range categories {
		if c.Type != transactionType {
			continue
		}
		actual := 0.0
		for _, t := range monthly {
			if t.Type == transactionType && t.Category == c.Name {
				actual += t.Amount
			}
		}
		difference := actual - c.BudgetedAmount
		if transactionType == transaction.TypeExpense {
			difference = c.BudgetedAmount - actual
		}
		summaries = append(summaries, CategorySummary{
			Category:   c.Name,
			Budgeted:   c.BudgetedAmount,
			Actual:     actual,
			Difference: difference,
			Type:       transactionType,
		})
	}
	return summaries
}
