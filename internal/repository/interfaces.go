package repository

import (
	"context"

	"github.com/fritzgwapo0907/budgetmate-backend/internal/models"
)

type Accounts interface {
	Create(ctx context.Context, username, passwordHash, fname, lname string) (models.Account, error)
	GetByUsername(ctx context.Context, username string) (models.Account, error)
	ExistsUsername(ctx context.Context, username string) (bool, error)
	List(ctx context.Context) ([]models.Account, error)
}

type Budget interface {
	// Create inserts the entry and returns the stored row in the same
	// round trip (id and created_at are assigned by the store).
	Create(ctx context.Context, e models.BudgetEntry) (models.BudgetEntry, error)
	ListByAccount(ctx context.Context, userID int64) ([]models.BudgetEntry, error)
	ListAll(ctx context.Context) ([]models.LedgerEntry, error)
	// Update changes amount and category only and returns the new row
	// state; repository.ErrNoRows when the id matched nothing.
	Update(ctx context.Context, id int64, amount float64, category string) (models.BudgetEntry, error)
	Delete(ctx context.Context, id int64) error
}
