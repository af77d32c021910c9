package dashboard

import (
	"context"
	"time"

	"github.com/budgetwise/budgetwise/pkg/category"
	"github.com/budgetwise/budgetwise/pkg/transaction"
)

type TransactionSource interface {
	GetAll(ctx context.Context) ([]transaction.Transaction, error)
}

type CategorySource interface {
	GetAll(ctx context.Context) ([]category.Category, error)
}

type Service interface {
	GetSnapshot(ctx context.Context, month time.Month, year int) (Snapshot, error)
}

type ServiceImpl struct {
	transactions TransactionSource
	categories   CategorySource
}

func NewService(transactions TransactionSource, categories CategorySource) *ServiceImpl {
	return &ServiceImpl{transactions: transactions, categories: categories}
}

func (s *ServiceImpl) GetSnapshot(ctx context.Context, month time.Month, year int) (Snapshot, error) {
	transactions, err := s.transactions.GetAll(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	categories, err := s.categories.GetAll(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	return ComputeSnapshot(transactions, categories, month, year), nil
}
