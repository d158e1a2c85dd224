package services

import (
	"context"
	"errors"
	"math"

	"github.com/fritzgwapo0907/budgetmate-backend/internal/metrics"
	"github.com/fritzgwapo0907/budgetmate-backend/internal/models"
	repo "github.com/fritzgwapo0907/budgetmate-backend/internal/repository"
)

type BudgetService struct {
	budget   repo.Budget
	accounts repo.Accounts
}

func NewBudgetService(budget repo.Budget, accounts repo.Accounts) *BudgetService {
	return &BudgetService{budget: budget, accounts: accounts}
}

// Overview is the combined payload: every account plus every budget entry
// joined with its owner's username.
type Overview struct {
	Users        []models.Account     `json:"users"`
	Transactions []models.LedgerEntry `json:"transactions"`
}

// Add rounds the amount to cents and inserts the entry; the stored row
// (with id and created_at) comes back in the same round trip.
func (s *BudgetService) Add(ctx context.Context, userID int64, description string, amount float64, entryType string) (models.BudgetEntry, error) {
	e := models.BudgetEntry{
		UserID:   userID,
		Category: description,
		Amount:   roundCents(amount),
		Type:     entryType,
	}
	e, err := s.budget.Create(ctx, e)
	if err != nil {
		metrics.EntriesFailed.Inc()
		return models.BudgetEntry{}, err
	}
	metrics.EntriesTotal.WithLabelValues(e.Type).Inc()
	return e, nil
}

// ListByAccount returns the account's entries newest first. An unknown
// account id yields an empty list, not an error.
func (s *BudgetService) ListByAccount(ctx context.Context, userID int64) ([]models.BudgetEntry, error) {
	return s.budget.ListByAccount(ctx, userID)
}

func (s *BudgetService) Overview(ctx context.Context) (Overview, error) {
	users, err := s.accounts.List(ctx)
	if err != nil {
		return Overview{}, err
	}
	txs, err := s.budget.ListAll(ctx)
	if err != nil {
		return Overview{}, err
	}
	// empty tables serialize as [], not null
	if users == nil {
		users = []models.Account{}
	}
	if txs == nil {
		txs = []models.LedgerEntry{}
	}
	return Overview{Users: users, Transactions: txs}, nil
}

// Update changes amount and category only; type and owner are immutable
// after creation.
func (s *BudgetService) Update(ctx context.Context, id int64, amount float64, category string) (models.BudgetEntry, error) {
	e, err := s.budget.Update(ctx, id, roundCents(amount), category)
	if err != nil {
		if errors.Is(err, repo.ErrNoRows) {
			return models.BudgetEntry{}, ErrNotFound
		}
		metrics.EntriesFailed.Inc()
		return models.BudgetEntry{}, err
	}
	return e, nil
}

// Remove deletes unconditionally; a missing id is not an error.
func (s *BudgetService) Remove(ctx context.Context, id int64) error {
	return s.budget.Delete(ctx, id)
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
