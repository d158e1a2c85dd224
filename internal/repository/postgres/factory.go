package postgres

import (
	repo "github.com/fritzgwapo0907/budgetmate-backend/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	Accounts repo.Accounts
	Budget   repo.Budget
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Accounts: &accountsRepo{pool},
		Budget:   &budgetRepo{pool},
	}
}
