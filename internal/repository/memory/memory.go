// Package memory holds map-backed repository implementations. They mirror
// the postgres semantics (assigned ids, ordering, ErrNoRows) closely enough
// to stand in for the store in service and handler tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fritzgwapo0907/budgetmate-backend/internal/models"
	"github.com/fritzgwapo0907/budgetmate-backend/internal/repository"
)

type AccountsRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]models.Account
}

func NewAccounts() *AccountsRepo {
	return &AccountsRepo{nextID: 1, rows: map[int64]models.Account{}}
}

func (r *AccountsRepo) Create(_ context.Context, username, passwordHash, fname, lname string) (models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	// same error the postgres driver raises, so callers can classify it
	for _, a := range r.rows {
		if a.Username == username {
			return models.Account{}, &pgconn.PgError{
				Code:           pgerrcode.UniqueViolation,
				Message:        `duplicate key value violates unique constraint "accounts_username_key"`,
				ConstraintName: "accounts_username_key",
			}
		}
	}
	a := models.Account{
		ID:           r.nextID,
		Username:     username,
		PasswordHash: passwordHash,
		FirstName:    fname,
		LastName:     lname,
	}
	r.rows[a.ID] = a
	r.nextID++
	return a, nil
}

func (r *AccountsRepo) GetByUsername(_ context.Context, username string) (models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.rows {
		if a.Username == username {
			return a, nil
		}
	}
	return models.Account{}, repository.ErrNoRows
}

func (r *AccountsRepo) ExistsUsername(_ context.Context, username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.rows {
		if a.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *AccountsRepo) List(_ context.Context) ([]models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Account, 0, len(r.rows))
	for _, a := range r.rows {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type BudgetRepo struct {
	mu       sync.Mutex
	nextID   int64
	rows     map[int64]models.BudgetEntry
	accounts *AccountsRepo
}

// NewBudget takes the accounts repo so ListAll can join usernames the way
// the SQL implementation does.
func NewBudget(accounts *AccountsRepo) *BudgetRepo {
	return &BudgetRepo{nextID: 1, rows: map[int64]models.BudgetEntry{}, accounts: accounts}
}

func (r *BudgetRepo) Create(_ context.Context, e models.BudgetEntry) (models.BudgetEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.ID = r.nextID
	e.CreatedAt = time.Now().UTC()
	r.rows[e.ID] = e
	r.nextID++
	return e, nil
}

func (r *BudgetRepo) ListByAccount(_ context.Context, userID int64) ([]models.BudgetEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.BudgetEntry
	for _, e := range r.rows {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *BudgetRepo) ListAll(ctx context.Context) ([]models.LedgerEntry, error) {
	r.mu.Lock()
	entries := make([]models.BudgetEntry, 0, len(r.rows))
	for _, e := range r.rows {
		entries = append(entries, e)
	}
	r.mu.Unlock()
	sortNewestFirst(entries)

	var out []models.LedgerEntry
	for _, e := range entries {
		username := ""
		r.accounts.mu.Lock()
		if a, ok := r.accounts.rows[e.UserID]; ok {
			username = a.Username
		}
		r.accounts.mu.Unlock()
		if username == "" {
			continue // inner join: orphan rows drop out
		}
		out = append(out, models.LedgerEntry{
			TransactionID: e.ID,
			Username:      username,
			Description:   e.Category,
			Amount:        e.Amount,
			Type:          e.Type,
		})
	}
	return out, nil
}

func (r *BudgetRepo) Update(_ context.Context, id int64, amount float64, category string) (models.BudgetEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.rows[id]
	if !ok {
		return models.BudgetEntry{}, repository.ErrNoRows
	}
	e.Amount = amount
	e.Category = category
	r.rows[id] = e
	return e, nil
}

func (r *BudgetRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
	return nil
}

func sortNewestFirst(entries []models.BudgetEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].ID > entries[j].ID
		}
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
}
