package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/budgetwise/budgetwise/internal/utils"
	"github.com/budgetwise/budgetwise/pkg/transaction"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrInvalidType = errors.New("invalid goal type")
	ErrEmptyName   = errors.New("goal name must not be empty")
	ErrNoDeadline  = errors.New("goal deadline is required")
)

// TransactionSource provides the transaction history that saving-goal
// progress is derived from.
type TransactionSource interface {
	GetAll(ctx context.Context) ([]transaction.Transaction, error)
}

type Service interface {
	// GetAll returns goals with freshly derived progress.
	GetAll(ctx context.Context) ([]Goal, error)
	Create(ctx context.Context, goal Goal) (Goal, error)
	Update(ctx context.Context, goal Goal) (Goal, error)
	Delete(ctx context.Context, id string) (bool, error)
	// RefreshProgress recomputes saving-goal progress and persists only the
	// goals whose amount actually changed.
	RefreshProgress(ctx context.Context) error
}

type ServiceImpl struct {
	repo         Repository
	transactions TransactionSource
	clock        utils.Clock
}

func NewService(repo Repository, transactions TransactionSource, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{repo: repo, transactions: transactions, clock: clock}
}

func (s *ServiceImpl) GetAll(ctx context.Context) ([]Goal, error) {
	goals, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	transactions, err := s.transactions.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return UpdateProgress(goals, transactions), nil
}

func (s *ServiceImpl) Create(ctx context.Context, goal Goal) (Goal, error) {
	if err := validate(goal); err != nil {
		return Goal{}, err
	}
	if goal.ID == "" {
		goal.ID = uuid.NewString()
	}
	goal.CreatedAt = s.clock.Now()

	if err := s.repo.Store(ctx, goal); err != nil {
		return Goal{}, err
	}
	return goal, nil
}

func (s *ServiceImpl) Update(ctx context.Context, goal Goal) (Goal, error) {
	if err := validate(goal); err != nil {
		return Goal{}, err
	}
	updated, err := s.repo.Update(ctx, goal)
	if err != nil {
		return Goal{}, err
	}
	if !updated {
		return Goal{}, fmt.Errorf("goal not found: %s", goal.ID)
	}
	return goal, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id string) (bool, error) {
	return s.repo.Delete(ctx, id)
}

func (s *ServiceImpl) RefreshProgress(ctx context.Context) error {
	goals, err := s.repo.GetAll(ctx)
	if err != nil {
		return err
	}
	transactions, err := s.transactions.GetAll(ctx)
	if err != nil {
		return err
	}

	refreshed := UpdateProgress(goals, transactions)
	for i, goal := range refreshed {
		if goal.CurrentAmount == goals[i].CurrentAmount {
			continue
		}
		if err := s.repo.UpdateCurrentAmount(ctx, goal.ID, goal.CurrentAmount); err != nil {
			return err
		}
		log.Debugf("goal %q progress updated to %.2f", goal.Name, goal.CurrentAmount)
	}
	return nil
}

func validate(goal Goal) error {
	if !goal.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidType, goal.Type)
	}
	if goal.Name == "" {
		return ErrEmptyName
	}
	if goal.Deadline.IsZero() {
		return ErrNoDeadline
	}
	return nil
}
