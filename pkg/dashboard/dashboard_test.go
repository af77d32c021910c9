package dashboard

import (
	"fmt"
	"testing"
	"time"

	"github.com/budgetwise/budgetwise/internal/utils"
	"github.com/budgetwise/budgetwise/pkg/category"
	"github.com/budgetwise/budgetwise/pkg/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marchCategories() []category.Category {
	return []category.Category{
		{ID: "1", Name: "Paycheck 1", Type: transaction.TypeIncome, BudgetedAmount: 90000},
		{ID: "2", Name: "Groceries", Type: transaction.TypeExpense, BudgetedAmount: 8000},
		{ID: "3", Name: "Rent", Type: transaction.TypeExpense, BudgetedAmount: 25000},
		{ID: "4", Name: "PPF", Type: transaction.TypeSaving, BudgetedAmount: 12500},
	}
}

func marchTransactions() []transaction.Transaction {
	return []transaction.Transaction{
		{ID: "t1", Date: utils.NewDate(2024, time.March, 1), Amount: 90000, Type: transaction.TypeIncome, Category: "Paycheck 1"},
		{ID: "t2", Date: utils.NewDate(2024, time.March, 5), Amount: 7700, Type: transaction.TypeExpense, Category: "Groceries"},
		{ID: "t3", Date: utils.NewDate(2024, time.March, 5), Amount: 25000, Type: transaction.TypeExpense, Category: "Rent"},
		{ID: "t4", Date: utils.NewDate(2024, time.March, 20), Amount: 12500, Type: transaction.TypeSaving, Category: "PPF"},
		// outside the month
		{ID: "t5", Date: utils.NewDate(2024, time.February, 29), Amount: 999, Type: transaction.TypeExpense, Category: "Groceries"},
		{ID: "t6", Date: utils.NewDate(2024, time.April, 1), Amount: 999, Type: transaction.TypeExpense, Category: "Groceries"},
	}
}

func TestComputeSnapshot_MonthlySummary(t *testing.T) {
	snapshot := ComputeSnapshot(marchTransactions(), marchCategories(), time.March, 2024)

	assert.Equal(t, MonthlySummary{
		Month:            "March",
		Year:             2024,
		ExpectedIncome:   90000,
		ActualIncome:     90000,
		ExpectedExpenses: 33000,
		ActualExpenses:   32700,
		ExpectedSavings:  12500,
		ActualSavings:    12500,
	}, snapshot.Summary)
}

func TestComputeSnapshot_ExpectedTotalsWithoutTransactions(t *testing.T) {
	snapshot := ComputeSnapshot(nil, marchCategories(), time.March, 2024)

	// budgets alone drive the expected side
	assert.Equal(t, 90000.0, snapshot.Summary.ExpectedIncome)
	assert.Equal(t, 33000.0, snapshot.Summary.ExpectedExpenses)
	assert.Equal(t, 12500.0, snapshot.Summary.ExpectedSavings)
	assert.Equal(t, 0.0, snapshot.Summary.ActualIncome)
	assert.Empty(t, snapshot.RecentTransactions)
}

func TestComputeSnapshot_DifferenceSignConvention(t *testing.T) {
	transactions := []transaction.Transaction{
		{ID: "t1", Date: utils.NewDate(2024, time.March, 5), Amount: 7700, Type: transaction.TypeExpense, Category: "Groceries"},
		{ID: "t2", Date: utils.NewDate(2024, time.March, 6), Amount: 80000, Type: transaction.TypeIncome, Category: "Paycheck 1"},
	}

	snapshot := ComputeSnapshot(transactions, marchCategories(), time.March, 2024)

	// under budget on an expense is positive
	require.Len(t, snapshot.ExpenseSummary, 2)
	groceries := snapshot.ExpenseSummary[0]
	assert.Equal(t, "Groceries", groceries.Category)
	assert.Equal(t, 300.0, groceries.Difference)

	// short of plan on income is negative
	require.Len(t, snapshot.IncomeSummary, 1)
	assert.Equal(t, -10000.0, snapshot.IncomeSummary[0].Difference)
}

func TestComputeSnapshot_MonthBoundariesAreInclusive(t *testing.T) {
	transactions := []transaction.Transaction{
		{ID: "t1", Date: utils.NewDate(2024, time.March, 1), Amount: 10, Type: transaction.TypeExpense, Category: "Groceries"},
		{ID: "t2", Date: utils.NewDate(2024, time.March, 31), Amount: 20, Type: transaction.TypeExpense, Category: "Groceries"},
	}

	snapshot := ComputeSnapshot(transactions, marchCategories(), time.March, 2024)

	assert.Equal(t, 30.0, snapshot.Summary.ActualExpenses)
}

func TestComputeSnapshot_OrphanCategoriesCountInTotalsOnly(t *testing.T) {
	transactions := []transaction.Transaction{
		{ID: "t1", Date: utils.NewDate(2024, time.March, 5), Amount: 500, Type: transaction.TypeExpense, Category: "Mystery"},
	}

	snapshot := ComputeSnapshot(transactions, marchCategories(), time.March, 2024)

	assert.Equal(t, 500.0, snapshot.Summary.ActualExpenses)
	for _, summary := range snapshot.ExpenseSummary {
		assert.NotEqual(t, "Mystery", summary.Category)
	}
}

func TestComputeSnapshot_RecentTransactions(t *testing.T) {
	var transactions []transaction.Transaction
	for day := 1; day <= 15; day++ {
		transactions = append(transactions, transaction.Transaction{
			ID:       fmt.Sprintf("t%d", day),
			Date:     utils.NewDate(2024, time.March, day),
			Amount:   10,
			Type:     transaction.TypeExpense,
			Category: "Groceries",
		})
	}

	snapshot := ComputeSnapshot(transactions, marchCategories(), time.March, 2024)

	require.Len(t, snapshot.RecentTransactions, 10)
	assert.Equal(t, "t15", snapshot.RecentTransactions[0].ID, "newest first")
	assert.Equal(t, "t6", snapshot.RecentTransactions[9].ID)
}

func TestComputeSnapshot_Deterministic(t *testing.T) {
	first := ComputeSnapshot(marchTransactions(), marchCategories(), time.March, 2024)
	second := ComputeSnapshot(marchTransactions(), marchCategories(), time.March, 2024)

	assert.Equal(t, first, second)
}
