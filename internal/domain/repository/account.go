package repository

import (
	"context"

	"github.com/clipstream-dev/clipstream/internal/domain/model"
)

// AccountRepository defines persistence operations for accounts and the
// per-account engagement sets that hang off them.
// Implementations are provided by the infrastructure layer (PostgreSQL).
type AccountRepository interface {
	// Create persists a new account and fills in its generated ID.
	// Returns ErrDuplicateAccount if the email is already registered.
	Create(ctx context.Context, account *model.Account) error

	// GetByID retrieves an account by ID.
	// Returns ErrAccountNotFound if it does not exist.
	GetByID(ctx context.Context, id int64) (*model.Account, error)

	// RecordWatch appends a video to the account's watch history. A
	// re-watch moves the video to the most-recent position instead of
	// adding a duplicate entry.
	RecordWatch(ctx context.Context, accountID, videoID int64) error

	// WatchHistory returns watched video IDs, most recently watched first.
	WatchHistory(ctx context.Context, accountID int64) ([]int64, error)

	// AddNotification appends a message to the account's inbox.
	// The inbox has set semantics: re-delivering an identical message
	// is a no-op.
	AddNotification(ctx context.Context, accountID int64, message string) error

	// Notifications returns the account's inbox messages.
	Notifications(ctx context.Context, accountID int64) ([]string, error)
}
