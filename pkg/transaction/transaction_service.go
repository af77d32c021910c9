package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/budgetwise/budgetwise/internal/event_bus"
	"github.com/budgetwise/budgetwise/internal/utils"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrInvalidType    = errors.New("invalid transaction type")
	ErrNegativeAmount = errors.New("transaction amount must not be negative")
)

type Service interface {
	GetAll(ctx context.Context) ([]Transaction, error)
	Create(ctx context.Context, transaction Transaction) (Transaction, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type ServiceImpl struct {
	repo  Repository
	bus   *event_bus.EventBus
	clock utils.Clock
}

func NewService(repo Repository, bus *event_bus.EventBus, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{repo: repo, bus: bus, clock: clock}
}

func (s *ServiceImpl) GetAll(ctx context.Context) ([]Transaction, error) {
	return s.repo.GetAll(ctx)
}

func (s *ServiceImpl) Create(ctx context.Context, transaction Transaction) (Transaction, error) {
	if !transaction.Type.Valid() {
		return Transaction{}, fmt.Errorf("%w: %q", ErrInvalidType, transaction.Type)
	}
	if transaction.Amount < 0 {
		return Transaction{}, ErrNegativeAmount
	}
	if transaction.ID == "" {
		transaction.ID = uuid.NewString()
	}
	if transaction.Date.IsZero() {
		transaction.Date = s.clock.Today()
	}
	transaction.CreatedAt = s.clock.Now()

	if err := s.repo.Store(ctx, transaction); err != nil {
		return Transaction{}, err
	}

	if err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.TransactionCreated, transaction)); err != nil {
		log.Warnf("transaction created but a follow-up recompute failed: %v", err)
	}

	return transaction, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if !deleted {
		log.Warnf("transaction not deleted, probably because it does not exist (%s)", id)
		return false, nil
	}

	if err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.TransactionDeleted, id)); err != nil {
		log.Warnf("transaction deleted but a follow-up recompute failed: %v", err)
	}

	return true, nil
}
