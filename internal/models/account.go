package models

import (
	"errors"
	"strings"
)

type Account struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	FirstName    string `json:"fname"`
	LastName     string `json:"lname"`
}

func (a *Account) Validate() error {
	if strings.TrimSpace(a.Username) == "" {
		return errors.New("username required")
	}
	if strings.TrimSpace(a.FirstName) == "" {
		return errors.New("fname required")
	}
	if strings.TrimSpace(a.LastName) == "" {
		return errors.New("lname required")
	}
	return nil
}
