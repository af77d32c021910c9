package category

import (
	"context"
	"testing"

	"github.com/budgetwise/budgetwise/internal/test_utils"
	"github.com/budgetwise/budgetwise/pkg/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositoryImpl_SeededDefaults(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewRepository(db)

	categories, err := repo.GetAll(context.Background())

	require.NoError(t, err)
	require.Len(t, categories, 26)
	assert.Equal(t, Category{
		ID:             "1",
		Name:           "Paycheck 1",
		Type:           transaction.TypeIncome,
		BudgetedAmount: 0,
		Color:          "#10B981",
	}, categories[0])

	byType := map[transaction.Type]int{}
	for _, category := range categories {
		byType[category.Type]++
	}
	assert.Equal(t, 3, byType[transaction.TypeIncome])
	assert.Equal(t, 16, byType[transaction.TypeExpense])
	assert.Equal(t, 7, byType[transaction.TypeSaving])
}

func TestRepositoryImpl_StoreUpdateDelete(t *testing.T) {
	ctx := context.Background()
	db := test_utils.SetupTestDB(t)
	repo := NewRepository(db)

	stored := Category{
		ID:             "custom-1",
		Name:           "Pet Insurance",
		Type:           transaction.TypeExpense,
		BudgetedAmount: 1500,
		Color:          "#F97316",
	}
	require.NoError(t, repo.Store(ctx, stored))

	stored.BudgetedAmount = 2000
	updated, err := repo.Update(ctx, stored)
	require.NoError(t, err)
	assert.True(t, updated)

	categories, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 27)
	assert.Equal(t, stored, categories[26], "custom category sorts after the seeded ones")

	deleted, err := repo.Delete(ctx, "custom-1")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, "custom-1")
	require.NoError(t, err)
	assert.False(t, deleted)
}
