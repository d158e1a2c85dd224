package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/fritzgwapo0907/budgetmate-backend/internal/config"
	"github.com/fritzgwapo0907/budgetmate-backend/internal/logger"
	"github.com/fritzgwapo0907/budgetmate-backend/internal/repository/memory"
	"github.com/fritzgwapo0907/budgetmate-backend/internal/services"
)

type RouterSuite struct {
	suite.Suite
	handler http.Handler
}

func (s *RouterSuite) SetupTest() {
	accounts := memory.NewAccounts()
	budget := memory.NewBudget(accounts)
	cfg := config.Config{Env: "test", CORSOrigin: "http://localhost:5173"}
	s.handler = NewRouter(cfg, logger.New("test"),
		services.NewAccountService(accounts),
		services.NewBudgetService(budget, accounts))
}

func (s *RouterSuite) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.T(), json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *RouterSuite) decode(rec *httptest.ResponseRecorder) map[string]interface{} {
	var out map[string]interface{}
	require.NoError(s.T(), json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func (s *RouterSuite) register(username string) {
	rec := s.do(http.MethodPost, "/add-user", map[string]string{
		"username": username, "password": "pw", "fname": "Test", "lname": "User",
	})
	require.Equal(s.T(), http.StatusOK, rec.Code, rec.Body.String())
}

func (s *RouterSuite) TestRegisterAndDuplicate() {
	rec := s.do(http.MethodPost, "/add-user", map[string]string{
		"username": "alice", "password": "pw", "fname": "Alice", "lname": "Smith",
	})
	s.Equal(http.StatusOK, rec.Code)
	body := s.decode(rec)
	s.Equal(true, body["success"])
	s.Equal("User registered successfully", body["message"])
	s.Nil(body["data"])

	rec = s.do(http.MethodPost, "/add-user", map[string]string{
		"username": "alice", "password": "pw2", "fname": "Alicia", "lname": "Stone",
	})
	s.Equal(http.StatusBadRequest, rec.Code)
	body = s.decode(rec)
	s.Equal(false, body["success"])
	s.Equal("Username already exists", body["message"])
}

func (s *RouterSuite) TestRegisterMissingField() {
	rec := s.do(http.MethodPost, "/add-user", map[string]string{
		"username": "bob", "password": "pw", "fname": "Bob",
	})
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("All fields are required", s.decode(rec)["message"])
}

func (s *RouterSuite) TestCheckUser() {
	s.register("carol")

	rec := s.do(http.MethodPost, "/check-user", map[string]string{"username": "carol", "password": "pw"})
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(float64(1), s.decode(rec)["id"])

	wrongPw := s.do(http.MethodPost, "/check-user", map[string]string{"username": "carol", "password": "nope"})
	s.Equal(http.StatusUnauthorized, wrongPw.Code)

	unknown := s.do(http.MethodPost, "/check-user", map[string]string{"username": "mallory", "password": "pw"})
	s.Equal(http.StatusUnauthorized, unknown.Code)

	// wrong password and unknown username are indistinguishable
	s.Equal(wrongPw.Body.String(), unknown.Body.String())
	s.Equal("Invalid credentials", s.decode(unknown)["message"])
}

func (s *RouterSuite) TestCheckUserMissingFields() {
	rec := s.do(http.MethodPost, "/check-user", map[string]string{"username": "carol"})
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("Username and password required", s.decode(rec)["message"])
}

func (s *RouterSuite) TestAddTransactionRoundsAmount() {
	s.register("dave")

	rec := s.do(http.MethodPost, "/add-transaction", map[string]interface{}{
		"userId": 1, "description": "groceries", "amount": 19.995, "type": "expense",
	})
	s.Equal(http.StatusCreated, rec.Code, rec.Body.String())
	body := s.decode(rec)
	s.Equal(true, body["success"])

	tx := body["transaction"].(map[string]interface{})
	s.Equal(20.0, tx["amount"])
	s.Equal("groceries", tx["description"])
	s.Equal("expense", tx["type"])
	s.Equal(float64(1), tx["id"])
}

func (s *RouterSuite) TestAddTransactionStringAmount() {
	s.register("dora")

	// the shipped frontend sends amount as a toFixed() string
	rec := s.do(http.MethodPost, "/add-transaction", map[string]interface{}{
		"userId": 1, "description": "groceries", "amount": "19.995", "type": "expense",
	})
	s.Equal(http.StatusCreated, rec.Code, rec.Body.String())
	tx := s.decode(rec)["transaction"].(map[string]interface{})
	s.Equal(20.0, tx["amount"])

	rec = s.do(http.MethodPost, "/add-transaction", map[string]interface{}{
		"userId": 1, "description": "junk", "amount": "not-a-number", "type": "expense",
	})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterSuite) TestUpdateTransactionStringAmount() {
	s.register("dina")
	rec := s.do(http.MethodPost, "/add-transaction", map[string]interface{}{
		"userId": 1, "description": "coffee", "amount": 3.5, "type": "expense",
	})
	require.Equal(s.T(), http.StatusCreated, rec.Code)

	rec = s.do(http.MethodPut, "/update-transaction/1", map[string]interface{}{
		"amount": "4.995", "category": "espresso",
	})
	s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	tx := s.decode(rec)["transaction"].(map[string]interface{})
	s.Equal(5.0, tx["amount"])
	s.Equal("espresso", tx["category"])
}

func (s *RouterSuite) TestAddTransactionValidation() {
	for _, body := range []map[string]interface{}{
		{"userId": 1, "amount": 5.0, "type": "expense"},            // no description
		{"userId": 1, "description": "x", "type": "expense"},       // no amount
		{"userId": 1, "description": "x", "amount": 5.0},           // no type
		{"userId": 1, "description": "x", "amount": nil, "type": "expense"}, // null amount
	} {
		rec := s.do(http.MethodPost, "/add-transaction", body)
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Equal("Description, amount, and type are required", s.decode(rec)["message"])
	}
}

func (s *RouterSuite) TestListTransactions() {
	s.register("eve")
	rec := s.do(http.MethodPost, "/add-transaction", map[string]interface{}{
		"userId": 1, "description": "salary", "amount": 1500.0, "type": "income",
	})
	require.Equal(s.T(), http.StatusCreated, rec.Code)

	rec = s.do(http.MethodGet, "/transactions/1", nil)
	s.Equal(http.StatusOK, rec.Code)
	txs := s.decode(rec)["transactions"].([]interface{})
	require.Len(s.T(), txs, 1)

	tx := txs[0].(map[string]interface{})
	s.Equal("salary", tx["category"])
	s.Equal(1500.0, tx["amount"])
	s.Equal("income", tx["type"])

	_, err := time.Parse(time.RFC3339, tx["created_at"].(string))
	s.NoError(err, "created_at must be an ISO-8601 timestamp")
}

func (s *RouterSuite) TestListTransactionsUnknownAccount() {
	rec := s.do(http.MethodGet, "/transactions/999", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"transactions":[]}`, rec.Body.String())
}

func (s *RouterSuite) TestUpdateTransaction() {
	s.register("frank")
	rec := s.do(http.MethodPost, "/add-transaction", map[string]interface{}{
		"userId": 1, "description": "coffee", "amount": 3.5, "type": "expense",
	})
	require.Equal(s.T(), http.StatusCreated, rec.Code)

	rec = s.do(http.MethodPut, "/update-transaction/1", map[string]interface{}{
		"amount": 4.995, "category": "espresso",
	})
	s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	tx := s.decode(rec)["transaction"].(map[string]interface{})
	s.Equal(5.0, tx["amount"])
	s.Equal("espresso", tx["category"])
	s.Equal("expense", tx["type"], "type is immutable through updates")
}

func (s *RouterSuite) TestUpdateTransactionValidation() {
	rec := s.do(http.MethodPut, "/update-transaction/1", map[string]interface{}{"amount": 4.0})
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("Amount and category are required", s.decode(rec)["message"])
}

func (s *RouterSuite) TestUpdateTransactionNotFound() {
	rec := s.do(http.MethodPut, "/update-transaction/404", map[string]interface{}{
		"amount": 4.0, "category": "x",
	})
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("Transaction not found", s.decode(rec)["message"])
}

func (s *RouterSuite) TestDeleteTransactionIsIdempotent() {
	rec := s.do(http.MethodDelete, "/delete-transaction/12345", nil)
	s.Equal(http.StatusOK, rec.Code)
	body := s.decode(rec)
	s.Equal(true, body["success"])
	s.Equal("Transaction deleted successfully", body["message"])
}

func (s *RouterSuite) TestUsersListShape() {
	s.register("grace")

	rec := s.do(http.MethodGet, "/users", nil)
	s.Equal(http.StatusOK, rec.Code)
	users := s.decode(rec)["users"].([]interface{})
	require.Len(s.T(), users, 1)

	u := users[0].(map[string]interface{})
	s.Equal("grace", u["username"])
	s.Equal("Test", u["fname"])
	s.Equal("User", u["lname"])
	s.NotContains(u, "password", "password hash never leaves the service")
}

func (s *RouterSuite) TestOverview() {
	s.register("heidi")
	rec := s.do(http.MethodPost, "/add-transaction", map[string]interface{}{
		"userId": 1, "description": "rent", "amount": 800.0, "type": "expense",
	})
	require.Equal(s.T(), http.StatusCreated, rec.Code)

	rec = s.do(http.MethodGet, "/", nil)
	s.Equal(http.StatusOK, rec.Code)
	body := s.decode(rec)

	users := body["users"].([]interface{})
	require.Len(s.T(), users, 1)

	txs := body["transactions"].([]interface{})
	require.Len(s.T(), txs, 1)
	tx := txs[0].(map[string]interface{})
	s.Equal(float64(1), tx["transaction_id"])
	s.Equal("heidi", tx["username"])
	s.Equal("rent", tx["description"])
	s.Equal(800.0, tx["amount"])
	s.Equal("expense", tx["type"])
}

func (s *RouterSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("ok", rec.Body.String())
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}
