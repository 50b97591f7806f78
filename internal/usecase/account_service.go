package usecase

import (
	"context"
	"fmt"

	"github.com/clipstream-dev/clipstream/internal/domain/model"
	"github.com/clipstream-dev/clipstream/internal/domain/repository"
)

// AccountService manages account registration and the per-account
// engagement views (watch history, notification inbox).
type AccountService interface {
	// Register creates a new account.
	Register(ctx context.Context, firstName, lastName, email string) (*model.Account, error)

	// GetAccount retrieves an account by ID.
	GetAccount(ctx context.Context, id int64) (*model.Account, error)

	// WatchHistory returns the account's watched video IDs, most
	// recently watched first.
	WatchHistory(ctx context.Context, accountID int64) ([]int64, error)

	// Notifications returns the account's inbox messages.
	Notifications(ctx context.Context, accountID int64) ([]string, error)
}

type accountService struct {
	accounts repository.AccountRepository
}

// NewAccountService creates a new AccountService instance.
func NewAccountService(accounts repository.AccountRepository) AccountService {
	return &accountService{accounts: accounts}
}

func (s *accountService) Register(ctx context.Context, firstName, lastName, email string) (*model.Account, error) {
	account, err := model.NewAccount(firstName, lastName, email)
	if err != nil {
		return nil, err
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *accountService) GetAccount(ctx context.Context, id int64) (*model.Account, error) {
	return s.accounts.GetByID(ctx, id)
}

func (s *accountService) WatchHistory(ctx context.Context, accountID int64) ([]int64, error) {
	if _, err := s.accounts.GetByID(ctx, accountID); err != nil {
		return nil, err
	}

	history, err := s.accounts.WatchHistory(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("load watch history: %w", err)
	}
	return history, nil
}

func (s *accountService) Notifications(ctx context.Context, accountID int64) ([]string, error) {
	if _, err := s.accounts.GetByID(ctx, accountID); err != nil {
		return nil, err
	}

	notifications, err := s.accounts.Notifications(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("load notifications: %w", err)
	}
	return notifications, nil
}
