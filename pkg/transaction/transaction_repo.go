package transaction

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/budgetwise/budgetwise/internal/utils"
	log "github.com/sirupsen/logrus"
)

type Repository interface {
	// Store stores a new Transaction to the database
	Store(ctx context.Context, transaction Transaction) error
	GetAll(ctx context.Context) ([]Transaction, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) Store(ctx context.Context, transaction Transaction) error {
	query := `INSERT INTO transactions (
                    id,
                    date,
                    amount,
                    type,
                    category,
                    description,
                    created_at
				) VALUES (?, ?, ?, ?, ?, ?, ?)`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx,
		transaction.ID,
		transaction.Date.String(),
		transaction.Amount,
		string(transaction.Type),
		transaction.Category,
		transaction.Description,
		transaction.CreatedAt.Unix(),
	)
	if err != nil {
		err := fmt.Errorf("could not execute query: %v", err)
		log.Error(err)
		return err
	}

	return nil
}

func (r *RepositoryImpl) GetAll(ctx context.Context) ([]Transaction, error) {
	query := `SELECT id, date, amount, type, category, description, created_at
				FROM transactions ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query transactions: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var transactions []Transaction
	for rows.Next() {
		var transaction Transaction
		var dateString, typeString string
		var createdAtUnix int64
		if err := rows.Scan(
			&transaction.ID,
			&dateString,
			&transaction.Amount,
			&typeString,
			&transaction.Category,
			&transaction.Description,
			&createdAtUnix,
		); err != nil {
			err := fmt.Errorf("could not scan transaction: %w", err)
			log.Error(err)
			return nil, err
		}
		date, err := utils.ParseDate(dateString)
		if err != nil {
			err := fmt.Errorf("could not parse transaction date: %w", err)
			log.Error(err)
			return nil, err
		}
		transaction.Date = date
		transaction.Type = Type(typeString)
		transaction.CreatedAt = time.Unix(createdAtUnix, 0)
		transactions = append(transactions, transaction)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return transactions, nil
}

func (r *RepositoryImpl) Delete(ctx context.Context, id string) (bool, error) {
	query := "DELETE FROM transactions WHERE id = ?"
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
