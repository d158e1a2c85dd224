package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/fritzgwapo0907/budgetmate-backend/internal/api/httpx"
	"github.com/fritzgwapo0907/budgetmate-backend/internal/api/validate"
	"github.com/fritzgwapo0907/budgetmate-backend/internal/middleware"
	"github.com/fritzgwapo0907/budgetmate-backend/internal/models"
	"github.com/fritzgwapo0907/budgetmate-backend/internal/services"
)

type AccountsHandler struct {
	svc *services.AccountService
	log *slog.Logger
}

func NewAccountsHandler(svc *services.AccountService, log *slog.Logger) *AccountsHandler {
	return &AccountsHandler{svc: svc, log: log}
}

type addUserRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"fname"`
	LastName  string `json:"lname"`
}

type checkUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type checkUserResponse struct {
	ID int64 `json:"id"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type usersResponse struct {
	Users []models.Account `json:"users"`
}

// Add registers a new account. All four fields are required; a taken
// username is a 400 with the same body shape as a missing field.
func (h *AccountsHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteEnvelope(w, http.StatusBadRequest, false, "All fields are required")
		return
	}
	if !validate.Required(req.Username, req.Password, req.FirstName, req.LastName) {
		httpx.WriteEnvelope(w, http.StatusBadRequest, false, "All fields are required")
		return
	}

	err := h.svc.Register(r.Context(), req.Username, req.Password, req.FirstName, req.LastName)
	switch {
	case errors.Is(err, services.ErrUsernameTaken):
		httpx.WriteEnvelope(w, http.StatusBadRequest, false, "Username already exists")
	case err != nil:
		h.log.Error("register", "err", err, "request_id", middleware.RequestIDFrom(r.Context()))
		httpx.WriteEnvelope(w, http.StatusInternalServerError, false, "server error")
	default:
		httpx.WriteEnvelope(w, http.StatusOK, true, "User registered successfully")
	}
}

// Check verifies credentials and returns the account id. There is no token
// or session; the id itself is the caller's handle.
func (h *AccountsHandler) Check(w http.ResponseWriter, r *http.Request) {
	var req checkUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, messageResponse{Message: "Username and password required"})
		return
	}
	if !validate.Required(req.Username, req.Password) {
		httpx.WriteJSON(w, http.StatusBadRequest, messageResponse{Message: "Username and password required"})
		return
	}

	id, err := h.svc.Authenticate(r.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		httpx.WriteJSON(w, http.StatusUnauthorized, messageResponse{Message: "Invalid credentials"})
	case err != nil:
		h.log.Error("check user", "err", err, "request_id", middleware.RequestIDFrom(r.Context()))
		httpx.WriteEnvelope(w, http.StatusInternalServerError, false, "server error")
	default:
		httpx.WriteJSON(w, http.StatusOK, checkUserResponse{ID: id})
	}
}

// List returns every account ordered by id.
func (h *AccountsHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.List(r.Context())
	if err != nil {
		h.log.Error("list users", "err", err, "request_id", middleware.RequestIDFrom(r.Context()))
		httpx.WriteEnvelope(w, http.StatusInternalServerError, false, "server error")
		return
	}
	if users == nil {
		users = []models.Account{}
	}
	httpx.WriteJSON(w, http.StatusOK, usersResponse{Users: users})
}
