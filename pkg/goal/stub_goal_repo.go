package goal

import (
	"context"
)

type StubRepository struct {
	data []Goal

	// CurrentAmountWrites counts UpdateCurrentAmount calls so tests can
	// verify that unchanged goals are not rewritten.
	CurrentAmountWrites int
}

func NewStubRepository() *StubRepository {
	return &StubRepository{}
}

func (s *StubRepository) GetAll(ctx context.Context) ([]Goal, error) {
	goals := make([]Goal, len(s.data))
	copy(goals, s.data)
	return goals, nil
}

func (s *StubRepository) Store(ctx context.Context, goal Goal) error {
	s.data = append(s.data, goal)
	return nil
}

func (s *StubRepository) Update(ctx context.Context, goal Goal) (bool, error) {
	for i, g := range s.data {
		if g.ID == goal.ID {
			s.data[i] = goal
			return true, nil
		}
	}
	return false, nil
}

func (s *StubRepository) UpdateCurrentAmount(ctx context.Context, id string, currentAmount float64) error {
	s.CurrentAmountWrites++
	for i, g := range s.data {
		if g.ID == id {
			s.data[i].CurrentAmount = currentAmount
		}
	}
	return nil
}

func (s *StubRepository) Delete(ctx context.Context, id string) (bool, error) {
	for i, g := range s.data {
		if g.ID == id {
			s.data = append(s.data[:i], s.data[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *StubRepository) Cleanup() {
	s.data = nil
	s.CurrentAmountWrites = 0
}
