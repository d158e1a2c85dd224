package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fritzgwapo0907/budgetmate-backend/internal/api/httpx"
	"github.com/fritzgwapo0907/budgetmate-backend/internal/api/validate"
	"github.com/fritzgwapo0907/budgetmate-backend/internal/middleware"
	"github.com/fritzgwapo0907/budgetmate-backend/internal/models"
	"github.com/fritzgwapo0907/budgetmate-backend/internal/services"
)

type BudgetHandler struct {
	svc *services.BudgetService
	log *slog.Logger
}

func NewBudgetHandler(svc *services.BudgetService, log *slog.Logger) *BudgetHandler {
	return &BudgetHandler{svc: svc, log: log}
}

// jsonFloat decodes from a JSON number or a numeric string. The shipped
// frontend sends amounts through toFixed(), which produces strings.
type jsonFloat float64

func (f *jsonFloat) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*f = jsonFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = jsonFloat(v)
	return nil
}

type addTransactionRequest struct {
	UserID      int64      `json:"userId"`
	Description string     `json:"description"`
	Amount      *jsonFloat `json:"amount"`
	Type        string     `json:"type"`
}

type transactionPayload struct {
	ID          int64   `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
}

type addTransactionResponse struct {
	Success     bool               `json:"success"`
	Transaction transactionPayload `json:"transaction"`
}

type entryPayload struct {
	ID        int64   `json:"id"`
	Category  string  `json:"category"`
	Amount    float64 `json:"amount"`
	Type      string  `json:"type"`
	CreatedAt string  `json:"created_at"`
}

type entriesResponse struct {
	Transactions []entryPayload `json:"transactions"`
}

type updateTransactionRequest struct {
	Amount   *jsonFloat `json:"amount"`
	Category *string    `json:"category"`
}

type updatedPayload struct {
	ID       int64   `json:"id"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Type     string  `json:"type"`
}

type updateTransactionResponse struct {
	Success     bool           `json:"success"`
	Transaction updatedPayload `json:"transaction"`
}

// Overview serves the combined users + transactions payload.
func (h *BudgetHandler) Overview(w http.ResponseWriter, r *http.Request) {
	ov, err := h.svc.Overview(r.Context())
	if err != nil {
		h.log.Error("overview", "err", err, "request_id", middleware.RequestIDFrom(r.Context()))
		httpx.WriteEnvelope(w, http.StatusInternalServerError, false, "server error")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, ov)
}

// Add creates a budget entry. Amount is rounded to cents before the insert
// and the stored row comes back in the response.
func (h *BudgetHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteEnvelope(w, http.StatusBadRequest, false, "Description, amount, and type are required")
		return
	}
	if req.Amount == nil || !validate.Required(req.Description, req.Type) {
		httpx.WriteEnvelope(w, http.StatusBadRequest, false, "Description, amount, and type are required")
		return
	}

	e, err := h.svc.Add(r.Context(), req.UserID, req.Description, float64(*req.Amount), req.Type)
	if err != nil {
		h.log.Error("add transaction", "err", err, "request_id", middleware.RequestIDFrom(r.Context()))
		httpx.WriteEnvelope(w, http.StatusInternalServerError, false, "Server error while adding transaction")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, addTransactionResponse{
		Success: true,
		Transaction: transactionPayload{
			ID:          e.ID,
			Description: e.Category,
			Amount:      e.Amount,
			Type:        e.Type,
		},
	})
}

// ListByAccount returns the account's entries newest first. Unknown ids
// yield an empty list.
func (h *BudgetHandler) ListByAccount(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "user_id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	entries, err := h.svc.ListByAccount(r.Context(), userID)
	if err != nil {
		h.log.Error("list transactions", "err", err, "request_id", middleware.RequestIDFrom(r.Context()))
		httpx.WriteEnvelope(w, http.StatusInternalServerError, false, "server error")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, entriesResponse{Transactions: toEntryPayloads(entries)})
}

// Update rewrites amount and category only. Type and owner stay as created.
func (h *BudgetHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	var req updateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteEnvelope(w, http.StatusBadRequest, false, "Amount and category are required")
		return
	}
	if req.Amount == nil || req.Category == nil {
		httpx.WriteEnvelope(w, http.StatusBadRequest, false, "Amount and category are required")
		return
	}

	e, err := h.svc.Update(r.Context(), id, float64(*req.Amount), *req.Category)
	switch {
	case errors.Is(err, services.ErrNotFound):
		httpx.WriteEnvelope(w, http.StatusNotFound, false, "Transaction not found")
	case err != nil:
		h.log.Error("update transaction", "err", err, "request_id", middleware.RequestIDFrom(r.Context()))
		httpx.WriteEnvelope(w, http.StatusInternalServerError, false, "Server error while updating transaction")
	default:
		httpx.WriteJSON(w, http.StatusOK, updateTransactionResponse{
			Success: true,
			Transaction: updatedPayload{
				ID:       e.ID,
				Category: e.Category,
				Amount:   e.Amount,
				Type:     e.Type,
			},
		})
	}
}

// Delete removes an entry unconditionally; unknown ids still succeed.
func (h *BudgetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "transaction_id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := h.svc.Remove(r.Context(), id); err != nil {
		h.log.Error("delete transaction", "err", err, "request_id", middleware.RequestIDFrom(r.Context()))
		httpx.WriteEnvelope(w, http.StatusInternalServerError, false, "server error")
		return
	}
	httpx.WriteEnvelope(w, http.StatusOK, true, "Transaction deleted successfully")
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

func toEntryPayloads(entries []models.BudgetEntry) []entryPayload {
	out := make([]entryPayload, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryPayload{
			ID:        e.ID,
			Category:  e.Category,
			Amount:    e.Amount,
			Type:      e.Type,
			CreatedAt: e.CreatedAt.Format(time.RFC3339),
		})
	}
	return out
}
