package goal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/budgetwise/budgetwise/internal/utils"
	"github.com/budgetwise/budgetwise/pkg/transaction"
	log "github.com/sirupsen/logrus"
)

type Repository interface {
	GetAll(ctx context.Context) ([]Goal, error)
	Store(ctx context.Context, goal Goal) error
	Update(ctx context.Context, goal Goal) (bool, error)
	// UpdateCurrentAmount writes only the derived progress column, leaving
	// user-entered fields untouched.
	UpdateCurrentAmount(ctx context.Context, id string, currentAmount float64) error
	Delete(ctx context.Context, id string) (bool, error)
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) GetAll(ctx context.Context) ([]Goal, error) {
	query := `SELECT id, name, target_amount, current_amount, deadline, category, type, description, created_at
				FROM goals ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query goals: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var goals []Goal
	for rows.Next() {
		var goal Goal
		var deadlineString, typeString string
		var createdAtUnix int64
		if err := rows.Scan(
			&goal.ID,
			&goal.Name,
			&goal.TargetAmount,
			&goal.CurrentAmount,
			&deadlineString,
			&goal.Category,
			&typeString,
			&goal.Description,
			&createdAtUnix,
		); err != nil {
			err := fmt.Errorf("could not scan goal: %w", err)
			log.Error(err)
			return nil, err
		}
		deadline, err := utils.ParseDate(deadlineString)
		if err != nil {
			err := fmt.Errorf("could not parse goal deadline: %w", err)
			log.Error(err)
			return nil, err
		}
		goal.Deadline = deadline
		goal.Type = transaction.Type(typeString)
		goal.CreatedAt = time.Unix(createdAtUnix, 0)
		goals = append(goals, goal)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return goals, nil
}

func (r *RepositoryImpl) Store(ctx context.Context, goal Goal) error {
	query := `INSERT INTO goals (
                    id,
                    name,
                    target_amount,
                    current_amount,
                    deadline,
                    category,
                    type,
                    description,
                    created_at
				) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx,
		goal.ID,
		goal.Name,
		goal.TargetAmount,
		goal.CurrentAmount,
		goal.Deadline.String(),
		goal.Category,
		string(goal.Type),
		goal.Description,
		goal.CreatedAt.Unix(),
	)
	if err != nil {
		err := fmt.Errorf("could not execute query: %v", err)
		log.Error(err)
		return err
	}

	return nil
}

func (r *RepositoryImpl) Update(ctx context.Context, goal Goal) (bool, error) {
	query := `UPDATE goals SET
					name = ?,
					target_amount = ?,
					current_amount = ?,
					deadline = ?,
					category = ?,
					type = ?,
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
		goal.Name,
		goal.TargetAmount,
		goal.CurrentAmount,
		goal.Deadline.String(),
		goal.Category,
		string(goal.Type),
		goal.Description,
		goal.ID,
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

func (r *RepositoryImpl) UpdateCurrentAmount(ctx context.Context, id string, currentAmount float64) error {
	query := "UPDATE goals SET current_amount = ? WHERE id = ?"
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return err
	}
	defer stmt.Close()

	if _, err := stmt.ExecContext(ctx, currentAmount, id); err != nil {
		err := fmt.Errorf("could not execute query: %v", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *RepositoryImpl) Delete(ctx context.Context, id string) (bool, error) {
	query := "DELETE FROM goals WHERE id = ?"
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
