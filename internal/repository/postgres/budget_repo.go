package postgres

import (
	"context"
	"errors"

	"github.com/fritzgwapo0907/budgetmate-backend/internal/models"
	"github.com/fritzgwapo0907/budgetmate-backend/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type budgetRepo struct{ pool *pgxpool.Pool }

func NewBudget(pool *pgxpool.Pool) repository.Budget {
	return &budgetRepo{pool: pool}
}

func (r *budgetRepo) Create(ctx context.Context, e models.BudgetEntry) (models.BudgetEntry, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO budget(user_id, category, amount, type)
		 VALUES($1,$2,$3,$4)
		 RETURNING id, user_id, category, amount, type, created_at`,
		e.UserID, e.Category, e.Amount, e.Type,
	).Scan(&e.ID, &e.UserID, &e.Category, &e.Amount, &e.Type, &e.CreatedAt)
	return e, err
}

func (r *budgetRepo) ListByAccount(ctx context.Context, userID int64) ([]models.BudgetEntry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, category, amount, type, created_at
		   FROM budget
		  WHERE user_id=$1
		  ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.BudgetEntry
	for rows.Next() {
		var e models.BudgetEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Category, &e.Amount, &e.Type, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *budgetRepo) ListAll(ctx context.Context) ([]models.LedgerEntry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT budget.id, accounts.username, budget.category, budget.amount, budget.type
		   FROM budget
		   JOIN accounts ON budget.user_id = accounts.id
		  ORDER BY budget.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.LedgerEntry
	for rows.Next() {
		var e models.LedgerEntry
		if err := rows.Scan(&e.TransactionID, &e.Username, &e.Description, &e.Amount, &e.Type); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *budgetRepo) Update(ctx context.Context, id int64, amount float64, category string) (models.BudgetEntry, error) {
	var e models.BudgetEntry
	err := r.pool.QueryRow(ctx,
		`UPDATE budget
		    SET amount=$2, category=$3
		  WHERE id=$1
		  RETURNING id, user_id, category, amount, type, created_at`,
		id, amount, category,
	).Scan(&e.ID, &e.UserID, &e.Category, &e.Amount, &e.Type, &e.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.BudgetEntry{}, repository.ErrNoRows
	}
	return e, err
}

func (r *budgetRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM budget WHERE id=$1`, id)
	return err
}
