package postgres

import (
	"context"
	"errors"

	"github.com/fritzgwapo0907/budgetmate-backend/internal/models"
	"github.com/fritzgwapo0907/budgetmate-backend/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type accountsRepo struct{ pool *pgxpool.Pool }

func NewAccounts(pool *pgxpool.Pool) repository.Accounts {
	return &accountsRepo{pool: pool}
}

func (r *accountsRepo) Create(ctx context.Context, username, passwordHash, fname, lname string) (models.Account, error) {
	var a models.Account
	err := r.pool.QueryRow(ctx,
		`INSERT INTO accounts(username, password, fname, lname)
		 VALUES($1,$2,$3,$4)
		 RETURNING id, username, password, fname, lname`,
		username, passwordHash, fname, lname,
	).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.FirstName, &a.LastName)
	return a, err
}

func (r *accountsRepo) GetByUsername(ctx context.Context, username string) (models.Account, error) {
	var a models.Account
	err := r.pool.QueryRow(ctx,
		`SELECT id, username, password, fname, lname FROM accounts WHERE username=$1`,
		username,
	).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.FirstName, &a.LastName)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Account{}, repository.ErrNoRows
	}
	return a, err
}

func (r *accountsRepo) ExistsUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM accounts WHERE username=$1)`, username,
	).Scan(&exists)
	return exists, err
}

func (r *accountsRepo) List(ctx context.Context) ([]models.Account, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, username, password, fname, lname FROM accounts ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Account
	for rows.Next() {
		var a models.Account
		if err := rows.Scan(&a.ID, &a.Username, &a.PasswordHash, &a.FirstName, &a.LastName); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
