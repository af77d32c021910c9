package alert

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/budgetwise/budgetwise/internal/utils"
	log "github.com/sirupsen/logrus"
)

type Repository interface {
	GetAll(ctx context.Context) ([]Alert, error)
	Store(ctx context.Context, alert Alert) error
	MarkRead(ctx context.Context, id string) (bool, error)
	MarkAllRead(ctx context.Context) error
	Delete(ctx context.Context, id string) (bool, error)
	DeleteAll(ctx context.Context) error
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) GetAll(ctx context.Context) ([]Alert, error) {
	query := `SELECT id, type, title, message, due_date, priority, is_read, transaction_id, category, amount, created_at
				FROM alerts ORDER BY created_at DESC, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query alerts: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var alerts []Alert
	for rows.Next() {
		var alert Alert
		var typeString, priorityString string
		var dueDateString, transactionID, category sql.NullString
		var amount sql.NullFloat64
		var createdAtUnix int64
		if err := rows.Scan(
			&alert.ID,
			&typeString,
			&alert.Title,
			&alert.Message,
			&dueDateString,
			&priorityString,
			&alert.IsRead,
			&transactionID,
			&category,
			&amount,
			&createdAtUnix,
		); err != nil {
			err := fmt.Errorf("could not scan alert: %w", err)
			log.Error(err)
			return nil, err
		}
		alert.Type = AlertType(typeString)
		alert.Priority = Priority(priorityString)
		alert.TransactionID = transactionID.String
		alert.Category = category.String
		alert.Amount = amount.Float64
		alert.CreatedAt = time.Unix(createdAtUnix, 0)
		if dueDateString.Valid && dueDateString.String != "" {
			dueDate, err := utils.ParseDate(dueDateString.String)
			if err != nil {
				err := fmt.Errorf("could not parse alert due date: %w", err)
				log.Error(err)
				return nil, err
			}
			alert.DueDate = dueDate
		}
		alerts = append(alerts, alert)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return alerts, nil
}

func (r *RepositoryImpl) Store(ctx context.Context, alert Alert) error {
	query := `INSERT INTO alerts (
                    id,
                    type,
                    title,
                    message,
                    due_date,
                    priority,
                    is_read,
                    transaction_id,
                    category,
                    amount,
                    created_at
				) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return err
	}
	defer stmt.Close()

	var dueDate any
	if !alert.DueDate.IsZero() {
		dueDate = alert.DueDate.String()
	}

	_, err = stmt.ExecContext(ctx,
		alert.ID,
		string(alert.Type),
		alert.Title,
		alert.Message,
		dueDate,
		string(alert.Priority),
		alert.IsRead,
		nullable(alert.TransactionID),
		nullable(alert.Category),
		alert.Amount,
		alert.CreatedAt.Unix(),
	)
	if err != nil {
		err := fmt.Errorf("could not execute query: %v", err)
		log.Error(err)
		return err
	}

	return nil
}

func (r *RepositoryImpl) MarkRead(ctx context.Context, id string) (bool, error) {
	return r.exec(ctx, "UPDATE alerts SET is_read = 1 WHERE id = ?", id)
}

func (r *RepositoryImpl) MarkAllRead(ctx context.Context) error {
	_, err := r.exec(ctx, "UPDATE alerts SET is_read = 1 WHERE is_read = 0")
	return err
}

func (r *RepositoryImpl) Delete(ctx context.Context, id string) (bool, error) {
	return r.exec(ctx, "DELETE FROM alerts WHERE id = ?", id)
}

func (r *RepositoryImpl) DeleteAll(ctx context.Context) error {
	_, err := r.exec(ctx, "DELETE FROM alerts")
	return err
}

func (r *RepositoryImpl) exec(ctx context.Context, query string, args ...any) (bool, error) {
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return false, err
	}
	defer stmt.Close()
	result, err := stmt.ExecContext(ctx, args...)
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
	return rowsAffected >= 1, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
