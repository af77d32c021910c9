package transaction

import (
	"context"
)

type StubRepository struct {
	data []Transaction
}

func NewStubRepository() *StubRepository {
	return &StubRepository{}
}

func (s *StubRepository) Store(ctx context.Context, transaction Transaction) error {
	s.data = append(s.data, transaction)
	return nil
}

func (s *StubRepository) GetAll(ctx context.Context) ([]Transaction, error) {
	transactions := make([]Transaction, len(s.data))
	copy(transactions, s.data)
	return transactions, nil
}

func (s *StubRepository) Delete(ctx context.Context, id string) (bool, error) {
	for i, t := range s.data {
		if t.ID == id {
			s.data = append(s.data[:i], s.data[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *StubRepository) Cleanup() {
	s.data = nil
}
