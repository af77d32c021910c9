package recurring

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/budgetwise/budgetwise/internal/utils"
	"github.com/budgetwise/budgetwise/pkg/transaction"
	log "github.com/sirupsen/logrus"
)

var ErrNotFound = errors.New("recurring transaction not found")

type Repository interface {
	GetAll(ctx context.Context) ([]RecurringTransaction, error)
	FindByID(ctx context.Context, id string) (RecurringTransaction, error)
	Store(ctx context.Context, recurring RecurringTransaction) error
	Update(ctx context.Context, recurring RecurringTransaction) (bool, error)
	UpdateNextDueDate(ctx context.Context, id string, nextDueDate utils.Date) error
	Delete(ctx context.Context, id string) (bool, error)
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

const selectColumns = `id, name, amount, type, category, frequency, start_date, end_date, next_due_date, is_active, description, created_at`

func (r *RepositoryImpl) GetAll(ctx context.Context) ([]RecurringTransaction, error) {
	query := `SELECT ` + selectColumns + ` FROM recurring_transactions ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query recurring transactions: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var recurrings []RecurringTransaction
	for rows.Next() {
		recurring, err := scanRecurring(rows)
		if err != nil {
			log.Error(err)
			return nil, err
		}
		recurrings = append(recurrings, recurring)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return recurrings, nil
}

func (r *RepositoryImpl) FindByID(ctx context.Context, id string) (RecurringTransaction, error) {
	query := `SELECT ` + selectColumns + ` FROM recurring_transactions WHERE id = ?`
	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		err := fmt.Errorf("could not query recurring transaction: %w", err)
		log.Error(err)
		return RecurringTransaction{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			log.Error(err)
			return RecurringTransaction{}, err
		}
		return RecurringTransaction{}, ErrNotFound
	}
	recurring, err := scanRecurring(rows)
	if err != nil {
		log.Error(err)
		return RecurringTransaction{}, err
	}
	return recurring, nil
}

func (r *RepositoryImpl) Store(ctx context.Context, recurring RecurringTransaction) error {
	query := `INSERT INTO recurring_transactions (` + selectColumns + `)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx,
		recurring.ID,
		recurring.Name,
		recurring.Amount,
		string(recurring.Type),
		recurring.Category,
		string(recurring.Frequency),
		recurring.StartDate.String(),
		endDateValue(recurring.EndDate),
		recurring.NextDueDate.String(),
		recurring.IsActive,
		recurring.Description,
		recurring.CreatedAt.Unix(),
	)
	if err != nil {
		err := fmt.Errorf("could not execute query: %v", err)
		log.Error(err)
		return err
	}

	return nil
}

func (r *RepositoryImpl) Update(ctx context.Context, recurring RecurringTransaction) (bool, error) {
	query := `UPDATE recurring_transactions SET
					name = ?,
					amount = ?,
					type = ?,
					category = ?,
					frequency = ?,
					start_date = ?,
					end_date = ?,
					next_due_date = ?,
					is_active = ?,
					description = ?
				WHERE id = ?`
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return false, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx,
		recurring.Name,
		recurring.Amount,
		string(recurring.Type),
		recurring.Category,
		string(recurring.Frequency),
		recurring.StartDate.String(),
		endDateValue(recurring.EndDate),
		recurring.NextDueDate.String(),
		recurring.IsActive,
		recurring.Description,
		recurring.ID,
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

func (r *RepositoryImpl) UpdateNextDueDate(ctx context.Context, id string, nextDueDate utils.Date) error {
	query := "UPDATE recurring_transactions SET next_due_date = ? WHERE id = ?"
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return err
	}
	defer stmt.Close()

	if _, err := stmt.ExecContext(ctx, nextDueDate.String(), id); err != nil {
		err := fmt.Errorf("could not execute query: %v", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *RepositoryImpl) Delete(ctx context.Context, id string) (bool, error) {
	query := "DELETE FROM recurring_transactions WHERE id = ?"
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

func scanRecurring(rows *sql.Rows) (RecurringTransaction, error) {
	var recurring RecurringTransaction
	var typeString, frequencyString, startDateString, nextDueDateString string
	var endDateString sql.NullString
	var createdAtUnix int64
	if err := rows.Scan(
		&recurring.ID,
		&recurring.Name,
		&recurring.Amount,
		&typeString,
		&recurring.Category,
		&frequencyString,
		&startDateString,
		&endDateString,
		&nextDueDateString,
		&recurring.IsActive,
		&recurring.Description,
		&createdAtUnix,
	); err != nil {
		return RecurringTransaction{}, fmt.Errorf("could not scan recurring transaction: %w", err)
	}

	recurring.Type = transaction.Type(typeString)
	recurring.Frequency = Frequency(frequencyString)
	recurring.CreatedAt = time.Unix(createdAtUnix, 0)

	startDate, err := utils.ParseDate(startDateString)
	if err != nil {
		return RecurringTransaction{}, fmt.Errorf("could not parse start date: %w", err)
	}
	recurring.StartDate = startDate

	nextDueDate, err := utils.ParseDate(nextDueDateString)
	if err != nil {
		return RecurringTransaction{}, fmt.Errorf("could not parse next due date: %w", err)
	}
	recurring.NextDueDate = nextDueDate

	if endDateString.Valid && endDateString.String != "" {
		endDate, err := utils.ParseDate(endDateString.String)
		if err != nil {
			return RecurringTransaction{}, fmt.Errorf("could not parse end date: %w", err)
		}
		recurring.EndDate = endDate
	}

	return recurring, nil
}

func endDateValue(endDate utils.Date) any {
	if endDate.IsZero() {
		return nil
	}
	return endDate.String()
}
