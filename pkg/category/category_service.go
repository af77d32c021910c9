package category

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidType   = errors.New("invalid category type")
	ErrEmptyName     = errors.New("category name must not be empty")
	ErrDuplicateName = errors.New("a category with this name and type already exists")
)

type Service interface {
	GetAll(ctx context.Context) ([]Category, error)
	Create(ctx context.Context, category Category) (Category, error)
	Update(ctx context.Context, category Category) (Category, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type ServiceImpl struct {
	repo Repository
}

func NewService(repo Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) GetAll(ctx context.Context) ([]Category, error) {
	return s.repo.GetAll(ctx)
}

func (s *ServiceImpl) Create(ctx context.Context, category Category) (Category, error) {
	if err := s.validate(ctx, category); err != nil {
		return Category{}, err
	}
	if category.ID == "" {
		category.ID = uuid.NewString()
	}
	if err := s.repo.Store(ctx, category); err != nil {
		return Category{}, err
	}
	return category, nil
}

func (s *ServiceImpl) Update(ctx context.Context, category Category) (Category, error) {
	if err := s.validate(ctx, category); err != nil {
		return Category{}, err
	}
	updated, err := s.repo.Update(ctx, category)
	if err != nil {
		return Category{}, err
	}
	if !updated {
		return Category{}, fmt.Errorf("category not found: %s", category.ID)
	}
	return category, nil
}

// Delete removes a category only. Transactions that referenced it keep their
// category name and simply stop showing up in budget summaries.
func (s *ServiceImpl) Delete(ctx context.Context, id string) (bool, error) {
	return s.repo.Delete(ctx, id)
}

func (s *ServiceImpl) validate(ctx context.Context, category Category) error {
	if !category.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidType, category.Type)
	}
	if strings.TrimSpace(category.Name) == "" {
		return ErrEmptyName
	}
	existing, err := s.repo.GetAll(ctx)
	if err != nil {
		return err
	}
	for _, other := range existing {
		if other.ID == category.ID {
			continue
		}
		if other.Type == category.Type && strings.EqualFold(other.Name, category.Name) {
			return ErrDuplicateName
		}
	}
	return nil
}
