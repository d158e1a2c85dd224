package models

import "time"

type EntryType string

// income/expense is the convention the frontend sends; the store does not
// enforce it and neither does the service layer.
const (
	EntryIncome  EntryType = "income"
	EntryExpense EntryType = "expense"
)

// BudgetEntry is one income or expense row owned by an account.
type BudgetEntry struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Category  string    `json:"category"`
	Amount    float64   `json:"amount"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// LedgerEntry is a budget row joined with the owning account's username,
// shaped for the combined listing payload.
type LedgerEntry struct {
	TransactionID int64   `json:"transaction_id"`
	Username      string  `json:"username"`
	Description   string  `json:"description"`
	Amount        float64 `json:"amount"`
	Type          string  `json:"type"`
}
