package category

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/budgetwise/budgetwise/pkg/transaction"
	log "github.com/sirupsen/logrus"
)

type Repository interface {
	GetAll(ctx context.Context) ([]Category, error)
	Store(ctx context.Context, category Category) error
	Update(ctx context.Context, category Category) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) GetAll(ctx context.Context) ([]Category, error) {
	query := `SELECT id, name, type, budgeted_amount, color FROM categories ORDER BY CAST(id AS INTEGER), id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query categories: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var categories []Category
	for rows.Next() {
		var category Category
		var typeString string
		if err := rows.Scan(
			&category.ID,
			&category.Name,
			&typeString,
			&category.BudgetedAmount,
			&category.Color,
		); err != nil {
			err := fmt.Errorf("could not scan category: %w", err)
			log.Error(err)
			return nil, err
		}
		category.Type = transaction.Type(typeString)
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return categories, nil
}

func (r *RepositoryImpl) Store(ctx context.Context, category Category) error {
	query := `INSERT INTO categories (id, name, type, budgeted_amount, color)
				VALUES (?, ?, ?, ?, ?)`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx,
		category.ID,
		category.Name,
		string(category.Type),
		category.BudgetedAmount,
		category.Color,
	)
	if err != nil {
		err := fmt.Errorf("could not execute query: %v", err)
		log.Error(err)
		return err
	}

	return nil
}

func (r *RepositoryImpl) Update(ctx context.Context, category Category) (bool, error) {
	query := `UPDATE categories SET name = ?, type = ?, budgeted_amount = ?, color = ? WHERE id = ?`
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return false, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx,
		category.Name,
		string(category.Type),
		category.BudgetedAmount,
		category.Color,
		category.ID,
	)
	if err != nil {
		err := fmt.Errorf("could not execute query: %v", err)
		log.Error(err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return false, err
	}
	return rowsAffected == 1, nil
}

func (r *RepositoryImpl) Delete(ctx context.Context, id string) (bool, error) {
	query := "DELETE FROM categories WHERE id = ?"
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return false, err
	}
	defer stmt.Close()
	result, err := stmt.ExecContext(ctx, id)
	if err != nil {
		err := fmt.Errorf("could not execute query: %v", err)
		log.Error(err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return false, err
	}
	return rowsAffected == 1, nil
}
