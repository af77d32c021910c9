package alert

import (
	"context"
)

type StubRepository struct {
	data []Alert
}

func NewStubRepository() *StubRepository {
	return &StubRepository{}
}

func (s *StubRepository) GetAll(ctx context.Context) ([]Alert, error) {
	alerts := make([]Alert, len(s.data))
	copy(alerts, s.data)
	return alerts, nil
}

func (s *StubRepository) Store(ctx context.Context, alert Alert) error {
	s.data = append(s.data, alert)
	return nil
}

func (s *StubRepository) MarkRead(ctx context.Context, id string) (bool, error) {
	for i, a := range s.data {
		if a.ID == id {
			s.data[i].IsRead = true
			return true, nil
		}
	}
	return false, nil
}

func (s *StubRepository) MarkAllRead(ctx context.Context) error {
	for i := range s.data {
		s.data[i].IsRead = true
	}
	return nil
}

func (s *StubRepository) Delete(ctx context.Context, id string) (bool, error) {
	for i, a := range s.data {
		if a.ID == id {
			s.data = append(s.data[:i], s.data[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *StubRepository) DeleteAll(ctx context.Context) error {
	s.data = nil
	return nil
}

func (s *StubRepository) Cleanup() {
	s.data = nil
}
