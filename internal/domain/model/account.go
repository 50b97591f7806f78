package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Account represents a registered user. Relationship sets (reactions,
// subscriptions, watch history, notifications) live in their own tables
// and are queried through the repositories rather than loaded eagerly.
type Account struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	CreatedAt time.Time
}

var (
	ErrEmptyName        = errors.New("first and last name are required")
	ErrInvalidEmail     = errors.New("email address is not valid")
	ErrSelfSubscription = errors.New("an account cannot subscribe to itself")
)

// NewAccount validates and creates an Account ready for persistence.
func NewAccount(firstName, lastName, email string) (*Account, error) {
	if strings.TrimSpace(firstName) == "" || strings.TrimSpace(lastName) == "" {
		return nil, ErrEmptyName
	}
	if !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}

	return &Account{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		CreatedAt: time.Now(),
	}, nil
}

// FullName is the display name used in notification messages and
// comment author snapshots.
func (a *Account) FullName() string {
	return fmt.Sprintf("%s %s", a.FirstName, a.LastName)
}

// NewVideoNotification formats the message fanned out to subscribers
// when this account publishes a new video.
func (a *Account) NewVideoNotification() string {
	return fmt.Sprintf("User %s has posted a new video!", a.FullName())
}
