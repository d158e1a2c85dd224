package services

import (
	"context"
	"errors"
	"strings"

	"github.com/fritzgwapo0907/budgetmate-backend/internal/auth"
	"github.com/fritzgwapo0907/budgetmate-backend/internal/models"
	repo "github.com/fritzgwapo0907/budgetmate-backend/internal/repository"
	"github.com/fritzgwapo0907/budgetmate-backend/internal/sqlerr"
)

type AccountService struct {
	r repo.Accounts
}

func NewAccountService(r repo.Accounts) *AccountService { return &AccountService{r: r} }

// Register hashes the password and stores a new account. The pre-insert
// existence check gives losers of the duplicate race a friendly error in
// the common case; the unique constraint catches the rest.
func (s *AccountService) Register(ctx context.Context, username, password, fname, lname string) error {
	a := models.Account{
		Username:  strings.TrimSpace(username),
		FirstName: strings.TrimSpace(fname),
		LastName:  strings.TrimSpace(lname),
	}
	if err := a.Validate(); err != nil {
		return err
	}

	taken, err := s.r.ExistsUsername(ctx, a.Username)
	if err != nil {
		return err
	}
	if taken {
		return ErrUsernameTaken
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	if _, err := s.r.Create(ctx, a.Username, hash, a.FirstName, a.LastName); err != nil {
		if sqlerr.IsUniqueViolation(err) {
			return ErrUsernameTaken
		}
		return err
	}
	return nil
}

// Authenticate returns the account id when the password matches the stored
// hash. Unknown usernames and wrong passwords are indistinguishable to the
// caller.
func (s *AccountService) Authenticate(ctx context.Context, username, password string) (int64, error) {
	a, err := s.r.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNoRows) {
			return 0, ErrInvalidCredentials
		}
		return 0, err
	}
	if err := auth.VerifyPassword(password, a.PasswordHash); err != nil {
		return 0, ErrInvalidCredentials
	}
	return a.ID, nil
}

func (s *AccountService) List(ctx context.Context) ([]models.Account, error) {
	return s.r.List(ctx)
}
