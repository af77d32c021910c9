package recurring

import (
	"context"

	"github.com/budgetwise/budgetwise/internal/utils"
)

type StubRepository struct {
	data []RecurringTransaction
}

func NewStubRepository() *StubRepository {
	return &StubRepository{}
}

func (s *StubRepository) GetAll(ctx context.Context) ([]RecurringTransaction, error) {
	recurrings := make([]RecurringTransaction, len(s.data))
	copy(recurrings, s.data)
	return recurrings, nil
}

func (s *StubRepository) FindByID(ctx context.Context, id string) (RecurringTransaction, error) {
	for _, r := range s.data {
		if r.ID == id {
			return r, nil
		}
	}
	return RecurringTransaction{}, ErrNotFound
}

func (s *StubRepository) Store(ctx context.Context, recurring RecurringTransaction) error {
	s.data = append(s.data, recurring)
	return nil
}

func (s *StubRepository) Update(ctx context.Context, recurring RecurringTransaction) (bool, error) {
	for i, r := range s.data {
		if r.ID == recurring.ID {
			s.data[i] = recurring
			return true, nil
		}
	}
	return false, nil
}

func (s *StubRepository) UpdateNextDueDate(ctx context.Context, id string, nextDueDate utils.Date) error {
	for i, r := range s.data {
		if r.ID == id {
			s.data[i].NextDueDate = nextDueDate
		}
	}
	return nil
}

func (s *StubRepository) Delete(ctx context.Context, id string) (bool, error) {
	for i, r := range s.data {
		if r.ID == id {
			s.data = append(s.data[:i], s.data[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *StubRepository) Cleanup() {
	s.data = nil
}
