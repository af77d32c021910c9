package transaction

import (
	"context"
	"testing"
	"time"

	"github.com/budgetwise/budgetwise/internal/test_utils"
	"github.com/budgetwise/budgetwise/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositoryImpl_StoreAndGetAll(t *testing.T) {
	// given
	ctx := context.Background()
	db := test_utils.SetupTestDB(t)
	repo := NewRepository(db)

	first := Transaction{
		ID:          "t1",
		Date:        utils.NewDate(2024, time.March, 5),
		Amount:      5000,
		Type:        TypeIncome,
		Category:    "Paycheck 1",
		Description: "salary",
		CreatedAt:   time.Unix(1709600000, 0),
	}
	second := Transaction{
		ID:        "t2",
		Date:      utils.NewDate(2024, time.March, 7),
		Amount:    120.5,
		Type:      TypeExpense,
		Category:  "Groceries",
		CreatedAt: time.Unix(1709700000, 0),
	}

	// when
	require.NoError(t, repo.Store(ctx, first))
	require.NoError(t, repo.Store(ctx, second))
	transactions, err := repo.GetAll(ctx)

	// then
	require.NoError(t, err)
	require.Len(t, transactions, 2)
	assert.Equal(t, first.ID, transactions[0].ID)
	assert.Equal(t, first.Date, transactions[0].Date)
	assert.Equal(t, first.Amount, transactions[0].Amount)
	assert.Equal(t, first.Type, transactions[0].Type)
	assert.Equal(t, first.Category, transactions[0].Category)
	assert.Equal(t, first.Description, transactions[0].Description)
	assert.Equal(t, first.CreatedAt.Unix(), transactions[0].CreatedAt.Unix())
	assert.Equal(t, second.ID, transactions[1].ID)
}

func TestRepositoryImpl_Delete(t *testing.T) {
	// given
	ctx := context.Background()
	db := test_utils.SetupTestDB(t)
	repo := NewRepository(db)
	require.NoError(t, repo.Store(ctx, Transaction{
		ID:        "t1",
		Date:      utils.NewDate(2024, time.March, 5),
		Amount:    10,
		Type:      TypeExpense,
		Category:  "Groceries",
		CreatedAt: time.Unix(1709600000, 0),
	}))

	// when
	deleted, err := repo.Delete(ctx, "t1")

	// then
	require.NoError(t, err)
	assert.True(t, deleted)
	transactions, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, transactions)

	// deleting again reports not found
	deleted, err = repo.Delete(ctx, "t1")
	require.NoError(t, err)
	assert.False(t, deleted)
}
