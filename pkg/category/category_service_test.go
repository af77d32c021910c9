package category

import (
	"context"
	"testing"

	"github.com/budgetwise/budgetwise/pkg/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceImpl_Create(t *testing.T) {
	repo := NewStubRepository()
	service := NewService(repo)

	created, err := service.Create(context.Background(), Category{
		Name:           "Gym",
		Type:           transaction.TypeExpense,
		BudgetedAmount: 1200,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	stored, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, created, stored[0])
}

func TestServiceImpl_Create_Validation(t *testing.T) {
	repo := NewStubRepository()
	service := NewService(repo)
	_, err := service.Create(context.Background(), Category{Name: "Gym", Type: transaction.TypeExpense})
	require.NoError(t, err)

	tests := []struct {
		name     string
		category Category
		wantErr  error
	}{
		{
			name:     "invalid type",
			category: Category{Name: "Gym", Type: "transfer"},
			wantErr:  ErrInvalidType,
		},
		{
			name:     "blank name",
			category: Category{Name: "   ", Type: transaction.TypeExpense},
			wantErr:  ErrEmptyName,
		},
		{
			name:     "duplicate name within a type, case-insensitive",
			category: Category{Name: "gym", Type: transaction.TypeExpense},
			wantErr:  ErrDuplicateName,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Create(context.Background(), tt.category)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	// the same name under a different type is allowed
	_, err = service.Create(context.Background(), Category{Name: "Gym", Type: transaction.TypeSaving})
	assert.NoError(t, err)
}

func TestServiceImpl_Update_KeepsOwnName(t *testing.T) {
	repo := NewStubRepository()
	service := NewService(repo)
	created, err := service.Create(context.Background(), Category{Name: "Gym", Type: transaction.TypeExpense})
	require.NoError(t, err)

	created.BudgetedAmount = 999
	updated, err := service.Update(context.Background(), created)

	require.NoError(t, err, "renaming a category to its own name is not a duplicate")
	assert.Equal(t, 999.0, updated.BudgetedAmount)
}
