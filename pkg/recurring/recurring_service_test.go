package recurring

import (
	"context"
	"testing"
	"time"

	"github.com/budgetwise/budgetwise/internal/event_bus"
	"github.com/budgetwise/budgetwise/internal/utils"
	"github.com/budgetwise/budgetwise/pkg/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var recurringClock = &utils.MockClock{FixedNow: time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)}

func newTestService(repo Repository, bus *event_bus.EventBus) (*ServiceImpl, *transaction.ServiceImpl) {
	transactions := transaction.NewService(transaction.NewStubRepository(), bus, recurringClock)
	return NewService(repo, transactions, bus, recurringClock), transactions
}

func TestServiceImpl_Materialize(t *testing.T) {
	// given
	repo := NewStubRepository()
	require.NoError(t, repo.Store(context.Background(), RecurringTransaction{
		ID:          "r1",
		Name:        "Rent",
		Amount:      25000,
		Type:        transaction.TypeExpense,
		Category:    "Rent",
		Frequency:   FrequencyMonthly,
		StartDate:   utils.NewDate(2024, time.January, 31),
		NextDueDate: utils.NewDate(2024, time.January, 31),
		IsActive:    true,
	}))
	bus := event_bus.NewEventBus()
	materialized := 0
	bus.Subscribe(event_bus.RecurringMaterialized, func(e event_bus.Event) error {
		materialized++
		return nil
	})
	service, transactions := newTestService(repo, bus)

	// when
	created, err := service.Materialize(context.Background(), "r1")

	// then
	require.NoError(t, err)
	assert.Equal(t, utils.NewDate(2024, time.March, 10), created.Date, "transaction is dated today, not the due date")
	assert.Equal(t, 25000.0, created.Amount)
	assert.Equal(t, transaction.TypeExpense, created.Type)
	assert.Equal(t, "Rent", created.Category)
	assert.Equal(t, "Auto-created from recurring: Rent", created.Description)
	assert.Equal(t, 1, materialized)

	stored, err := transactions.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 1)

	// due date advanced one period with end-of-month clamping
	recurring, err := repo.FindByID(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, utils.NewDate(2024, time.February, 29), recurring.NextDueDate)
}

func TestServiceImpl_Materialize_NotFound(t *testing.T) {
	service, _ := newTestService(NewStubRepository(), event_bus.NewEventBus())

	_, err := service.Materialize(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestServiceImpl_SweepDueDates(t *testing.T) {
	// given: one schedule several periods behind, one paused, one current
	repo := NewStubRepository()
	ctx := context.Background()
	require.NoError(t, repo.Store(ctx, RecurringTransaction{
		ID: "behind", Name: "Netflix", Amount: 500, Type: transaction.TypeExpense,
		Category: "Entertainment", Frequency: FrequencyMonthly,
		StartDate:   utils.NewDate(2023, time.December, 1),
		NextDueDate: utils.NewDate(2023, time.December, 1),
		IsActive:    true,
	}))
	require.NoError(t, repo.Store(ctx, RecurringTransaction{
		ID: "paused", Name: "Gym", Amount: 1200, Type: transaction.TypeExpense,
		Category: "Personal Care", Frequency: FrequencyMonthly,
		StartDate:   utils.NewDate(2024, time.January, 1),
		NextDueDate: utils.NewDate(2024, time.January, 1),
		IsActive:    false,
	}))
	require.NoError(t, repo.Store(ctx, RecurringTransaction{
		ID: "current", Name: "Salary", Amount: 90000, Type: transaction.TypeIncome,
		Category: "Paycheck 1", Frequency: FrequencyMonthly,
		StartDate:   utils.NewDate(2024, time.April, 1),
		NextDueDate: utils.NewDate(2024, time.April, 1),
		IsActive:    true,
	}))
	bus := event_bus.NewEventBus()
	changed := 0
	bus.Subscribe(event_bus.RecurringChanged, func(e event_bus.Event) error {
		changed++
		return nil
	})
	service, _ := newTestService(repo, bus)

	// when
	advanced, err := service.SweepDueDates(ctx)

	// then: the overdue schedule moves exactly one period, not all the way
	// up to today
	require.NoError(t, err)
	assert.Equal(t, 1, advanced)
	assert.Equal(t, 1, changed)

	behind, err := repo.FindByID(ctx, "behind")
	require.NoError(t, err)
	assert.Equal(t, utils.NewDate(2024, time.January, 1), behind.NextDueDate)

	paused, err := repo.FindByID(ctx, "paused")
	require.NoError(t, err)
	assert.Equal(t, utils.NewDate(2024, time.January, 1), paused.NextDueDate, "paused schedules are not advanced")

	current, err := repo.FindByID(ctx, "current")
	require.NoError(t, err)
	assert.Equal(t, utils.NewDate(2024, time.April, 1), current.NextDueDate)

	// a second sweep advances the still-overdue schedule again
	advanced, err = service.SweepDueDates(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, advanced)
	behind, err = repo.FindByID(ctx, "behind")
	require.NoError(t, err)
	assert.Equal(t, utils.NewDate(2024, time.February, 1), behind.NextDueDate)
}

func TestServiceImpl_SweepDueDates_DueTodayCounts(t *testing.T) {
	repo := NewStubRepository()
	require.NoError(t, repo.Store(context.Background(), RecurringTransaction{
		ID: "today", Name: "SIP", Amount: 5000, Type: transaction.TypeSaving,
		Category: "SIP", Frequency: FrequencyMonthly,
		StartDate:   utils.NewDate(2024, time.March, 10),
		NextDueDate: utils.NewDate(2024, time.March, 10),
		IsActive:    true,
	}))
	service, _ := newTestService(repo, event_bus.NewEventBus())

	advanced, err := service.SweepDueDates(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, advanced, "due today is due")
}

func TestServiceImpl_Create_DefaultsNextDueDate(t *testing.T) {
	repo := NewStubRepository()
	service, _ := newTestService(repo, event_bus.NewEventBus())

	created, err := service.Create(context.Background(), RecurringTransaction{
		Name: "Insurance", Amount: 8000, Type: transaction.TypeExpense,
		Category: "Personal Care", Frequency: FrequencyYearly,
		StartDate: utils.NewDate(2024, time.June, 1), IsActive: true,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, created.StartDate, created.NextDueDate)
	assert.Equal(t, recurringClock.FixedNow, created.CreatedAt)
}

func TestServiceImpl_Create_Validation(t *testing.T) {
	service, _ := newTestService(NewStubRepository(), event_bus.NewEventBus())
	start := utils.NewDate(2024, time.June, 1)

	_, err := service.Create(context.Background(), RecurringTransaction{Name: "x", Type: "bogus", Frequency: FrequencyMonthly, StartDate: start})
	assert.ErrorIs(t, err, ErrInvalidType)

	_, err = service.Create(context.Background(), RecurringTransaction{Name: "x", Type: transaction.TypeExpense, Frequency: "fortnightly", StartDate: start})
	assert.ErrorIs(t, err, ErrInvalidFrequency)

	_, err = service.Create(context.Background(), RecurringTransaction{Type: transaction.TypeExpense, Frequency: FrequencyMonthly, StartDate: start})
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = service.Create(context.Background(), RecurringTransaction{Name: "x", Type: transaction.TypeExpense, Frequency: FrequencyMonthly})
	assert.ErrorIs(t, err, ErrNoStartDate)
}
