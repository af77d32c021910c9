package transaction

import (
	"context"
	"testing"
	"time"

	"github.com/budgetwise/budgetwise/internal/event_bus"
	"github.com/budgetwise/budgetwise/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var serviceClock = &utils.MockClock{FixedNow: time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)}

func newTestService(repo Repository, bus *event_bus.EventBus) *ServiceImpl {
	return NewService(repo, bus, serviceClock)
}

func TestServiceImpl_Create(t *testing.T) {
	// given
	repo := NewStubRepository()
	bus := event_bus.NewEventBus()
	service := newTestService(repo, bus)

	var published []event_bus.Event
	bus.Subscribe(event_bus.TransactionCreated, func(e event_bus.Event) error {
		published = append(published, e)
		return nil
	})

	// when
	created, err := service.Create(context.Background(), Transaction{
		Amount:   250,
		Type:     TypeExpense,
		Category: "Groceries",
	})

	// then
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, utils.NewDate(2024, time.March, 10), created.Date, "date defaults to today")
	assert.Equal(t, serviceClock.FixedNow, created.CreatedAt)
	require.Len(t, published, 1)
	assert.Equal(t, created, published[0].Data)

	stored, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 1)
}

func TestServiceImpl_Create_RejectsInvalidInput(t *testing.T) {
	service := newTestService(NewStubRepository(), event_bus.NewEventBus())

	_, err := service.Create(context.Background(), Transaction{Amount: 10, Type: "transfer", Category: "x"})
	assert.ErrorIs(t, err, ErrInvalidType)

	_, err = service.Create(context.Background(), Transaction{Amount: -1, Type: TypeExpense, Category: "x"})
	assert.ErrorIs(t, err, ErrNegativeAmount)
}

func TestServiceImpl_Delete(t *testing.T) {
	// given
	repo := NewStubRepository()
	bus := event_bus.NewEventBus()
	service := newTestService(repo, bus)
	created, err := service.Create(context.Background(), Transaction{Amount: 10, Type: TypeSaving, Category: "PPF"})
	require.NoError(t, err)

	deletedIds := make([]string, 0, 1)
	bus.Subscribe(event_bus.TransactionDeleted, func(e event_bus.Event) error {
		deletedIds = append(deletedIds, e.Data.(string))
		return nil
	})

	// when
	ok, err := service.Delete(context.Background(), created.ID)

	// then
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{created.ID}, deletedIds)

	ok, err = service.Delete(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Len(t, deletedIds, 1, "no event for a missing transaction")
}
