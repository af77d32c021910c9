package alert

import (
	"context"
	"errors"
	"fmt"

	"github.com/budgetwise/budgetwise/internal/utils"
	"github.com/budgetwise/budgetwise/pkg/recurring"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrInvalidPriority = errors.New("invalid alert priority")
	ErrEmptyMessage    = errors.New("alert message must not be empty")
)

// RecurringSource provides the schedules that reminder generation runs over.
type RecurringSource interface {
	GetAll(ctx context.Context) ([]recurring.RecurringTransaction, error)
}

type Service interface {
	GetAll(ctx context.Context) ([]Alert, error)
	// Refresh regenerates recurring-due reminders and persists the new ones.
	Refresh(ctx context.Context) ([]Alert, error)
	// Import stores an externally supplied alert, e.g. one restored from a
	// backup.
	Import(ctx context.Context, alert Alert) (Alert, error)
	MarkRead(ctx context.Context, id string) (bool, error)
	MarkAllRead(ctx context.Context) error
	Delete(ctx context.Context, id string) (bool, error)
	ClearAll(ctx context.Context) error
}

type ServiceImpl struct {
	repo       Repository
	recurrings RecurringSource
	generator  *Generator
	clock      utils.Clock
}

func NewService(repo Repository, recurrings RecurringSource, generator *Generator, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{repo: repo, recurrings: recurrings, generator: generator, clock: clock}
}

func (s *ServiceImpl) GetAll(ctx context.Context) ([]Alert, error) {
	return s.repo.GetAll(ctx)
}

func (s *ServiceImpl) Refresh(ctx context.Context) ([]Alert, error) {
	existing, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	recurrings, err := s.recurrings.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	all := s.generator.Generate(recurrings, existing, s.clock.Today(), s.clock.Now())

	// the generator appends; everything past the existing alerts is new
	created := all[len(existing):]
	for _, alert := range created {
		if err := s.repo.Store(ctx, alert); err != nil {
			return nil, err
		}
	}
	if len(created) > 0 {
		log.Infof("generated %d new alert(s)", len(created))
	}
	return all, nil
}

func (s *ServiceImpl) Import(ctx context.Context, alert Alert) (Alert, error) {
	if !alert.Priority.Valid() {
		return Alert{}, fmt.Errorf("%w: %q", ErrInvalidPriority, alert.Priority)
	}
	if alert.Message == "" {
		return Alert{}, ErrEmptyMessage
	}
	if alert.ID == "" {
		alert.ID = uuid.NewString()
	}
	if alert.CreatedAt.IsZero() {
		alert.CreatedAt = s.clock.Now()
	}
	if err := s.repo.Store(ctx, alert); err != nil {
		return Alert{}, err
	}
	return alert, nil
}

func (s *ServiceImpl) MarkRead(ctx context.Context, id string) (bool, error) {
	return s.repo.MarkRead(ctx, id)
}

func (s *ServiceImpl) MarkAllRead(ctx context.Context) error {
	return s.repo.MarkAllRead(ctx)
}

func (s *ServiceImpl) Delete(ctx context.Context, id string) (bool, error) {
	return s.repo.Delete(ctx, id)
}

func (s *ServiceImpl) ClearAll(ctx context.Context) error {
	return s.repo.DeleteAll(ctx)
}
