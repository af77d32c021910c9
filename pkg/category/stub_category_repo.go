package category

import (
	"context"
)

type StubRepository struct {
	data []Category
}

func NewStubRepository() *StubRepository {
	return &StubRepository{}
}

func (s *StubRepository) GetAll(ctx context.Context) ([]Category, error) {
	categories := make([]Category, len(s.data))
	copy(categories, s.data)
	return categories, nil
}

func (s *StubRepository) Store(ctx context.Context, category Category) error {
	s.data = append(s.data, category)
	return nil
}

func (s *StubRepository) Update(ctx context.Context, category Category) (bool, error) {
	for i, c := range s.data {
		if c.ID == category.ID {
			s.data[i] = category
			return true, nil
		}
	}
	return false, nil
}

func (s *StubRepository) Delete(ctx context.Context, id string) (bool, error) {
	for i, c := range s.data {
		if c.ID == id {
			s.data = append(s.data[:i], s.data[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *StubRepository) Cleanup() {
	s.data = nil
}
