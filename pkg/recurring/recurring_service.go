package recurring

import (
	"context"
	"errors"
	"fmt"

	"github.com/budgetwise/budgetwise/internal/event_bus"
	"github.com/budgetwise/budgetwise/internal/utils"
	"github.com/budgetwise/budgetwise/pkg/transaction"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrInvalidType      = errors.New("invalid recurring transaction type")
	ErrInvalidFrequency = errors.New("invalid frequency")
	ErrEmptyName        = errors.New("recurring transaction name must not be empty")
	ErrNoStartDate      = errors.New("recurring transaction start date is required")
)

// TransactionCreator posts the concrete transaction produced when a schedule
// is materialized.
type TransactionCreator interface {
	Create(ctx context.Context, t transaction.Transaction) (transaction.Transaction, error)
}

type Service interface {
	GetAll(ctx context.Context) ([]RecurringTransaction, error)
	Create(ctx context.Context, recurring RecurringTransaction) (RecurringTransaction, error)
	Update(ctx context.Context, recurring RecurringTransaction) (RecurringTransaction, error)
	Delete(ctx context.Context, id string) (bool, error)
	// Materialize posts a transaction for the schedule dated today and
	// advances the schedule by one period.
	Materialize(ctx context.Context, id string) (transaction.Transaction, error)
	// SweepDueDates advances every active schedule whose due date has
	// passed by one period, returning how many were advanced.
	SweepDueDates(ctx context.Context) (int, error)
}

type ServiceImpl struct {
	repo         Repository
	transactions TransactionCreator
	bus          *event_bus.EventBus
	clock        utils.Clock
}

func NewService(repo Repository, transactions TransactionCreator, bus *event_bus.EventBus, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{repo: repo, transactions: transactions, bus: bus, clock: clock}
}

func (s *ServiceImpl) GetAll(ctx context.Context) ([]RecurringTransaction, error) {
	return s.repo.GetAll(ctx)
}

func (s *ServiceImpl) Create(ctx context.Context, recurring RecurringTransaction) (RecurringTransaction, error) {
	if err := validate(recurring); err != nil {
		return RecurringTransaction{}, err
	}
	if recurring.ID == "" {
		recurring.ID = uuid.NewString()
	}
	if recurring.NextDueDate.IsZero() {
		recurring.NextDueDate = recurring.StartDate
	}
	recurring.CreatedAt = s.clock.Now()

	if err := s.repo.Store(ctx, recurring); err != nil {
		return RecurringTransaction{}, err
	}
	s.publishChanged(ctx)
	return recurring, nil
}

func (s *ServiceImpl) Update(ctx context.Context, recurring RecurringTransaction) (RecurringTransaction, error) {
	if err := validate(recurring); err != nil {
		return RecurringTransaction{}, err
	}
	if recurring.NextDueDate.IsZero() {
		recurring.NextDueDate = recurring.StartDate
	}
	updated, err := s.repo.Update(ctx, recurring)
	if err != nil {
		return RecurringTransaction{}, err
	}
	if !updated {
		return RecurringTransaction{}, fmt.Errorf("%w: %s", ErrNotFound, recurring.ID)
	}
	s.publishChanged(ctx)
	return recurring, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.publishChanged(ctx)
	}
	return deleted, nil
}

func (s *ServiceImpl) Materialize(ctx context.Context, id string) (transaction.Transaction, error) {
	recurring, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return transaction.Transaction{}, err
	}

	created, err := s.transactions.Create(ctx, transaction.Transaction{
		Date:        s.clock.Today(),
		Amount:      recurring.Amount,
		Type:        recurring.Type,
		Category:    recurring.Category,
		Description: fmt.Sprintf("Auto-created from recurring: %s", recurring.Name),
	})
	if err != nil {
		return transaction.Transaction{}, err
	}

	next := recurring.Frequency.Next(recurring.NextDueDate)
	if err := s.repo.UpdateNextDueDate(ctx, recurring.ID, next); err != nil {
		return transaction.Transaction{}, err
	}
	log.Infof("materialized recurring %q, next due %s", recurring.Name, next)

	if err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.RecurringMaterialized, recurring.ID)); err != nil {
		log.Warnf("recurring materialized but a follow-up recompute failed: %v", err)
	}
	return created, nil
}

func (s *ServiceImpl) SweepDueDates(ctx context.Context) (int, error) {
	recurrings, err := s.repo.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	today := s.clock.Today()
	advanced := 0
	for _, recurring := range recurrings {
		if !recurring.IsActive || recurring.NextDueDate.After(today) {
			continue
		}
		// one period per sweep, even when the schedule is several
		// periods behind; repeated sweeps catch it up
		next := recurring.Frequency.Next(recurring.NextDueDate)
		if err := s.repo.UpdateNextDueDate(ctx, recurring.ID, next); err != nil {
			return advanced, err
		}
		advanced++
	}

	if advanced > 0 {
		log.Infof("swept %d overdue recurring transaction(s)", advanced)
		s.publishChanged(ctx)
	}
	return advanced, nil
}

func (s *ServiceImpl) publishChanged(ctx context.Context) {
	if err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.RecurringChanged, nil)); err != nil {
		log.Warnf("recurring schedules changed but a follow-up recompute failed: %v", err)
	}
}

func validate(recurring RecurringTransaction) error {
	if !recurring.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidType, recurring.Type)
	}
	if !recurring.Frequency.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidFrequency, recurring.Frequency)
	}
	if recurring.Name == "" {
		return ErrEmptyName
	}
	if recurring.StartDate.IsZero() {
		return ErrNoStartDate
	}
	return nil
}
