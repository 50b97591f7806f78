package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/clipstream-dev/clipstream/internal/domain/model"
	"github.com/clipstream-dev/clipstream/internal/domain/repository"
)

// AccountRepository implements repository.AccountRepository using PostgreSQL.
type AccountRepository struct {
	db DBTX
}

// NewAccountRepository creates a new AccountRepository instance.
func NewAccountRepository(db DBTX) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create persists a new account.
func (r *AccountRepository) Create(ctx context.Context, account *model.Account) error {
	const query = `
		INSERT INTO accounts (first_name, last_name, email, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		account.FirstName,
		account.LastName,
		account.Email,
		account.CreatedAt,
	).Scan(&account.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return repository.ErrDuplicateAccount
		}
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}

// GetByID retrieves an account by its identifier.
func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*model.Account, error) {
	const query = `
		SELECT id, first_name, last_name, email, created_at
		FROM accounts
		WHERE id = $1
	`

	var account model.Account
	err := r.db.QueryRow(ctx, query, id).Scan(
		&account.ID,
		&account.FirstName,
		&account.LastName,
		&account.Email,
		&account.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account by ID: %w", err)
	}

	return &account, nil
}

// RecordWatch upserts the (account, video) history row, bumping its
// timestamp. A re-watch therefore moves the video to the most-recent
// position without creating a duplicate entry.
func (r *AccountRepository) RecordWatch(ctx context.Context, accountID, videoID int64) error {
	const query = `
		INSERT INTO watch_history (account_id, video_id, watched_at)
		VALUES ($1, $2, now())
		ON CONFLICT (account_id, video_id) DO UPDATE SET watched_at = now()
	`

	_, err := r.db.Exec(ctx, query, accountID, videoID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return repository.ErrAccountNotFound
		}
		return fmt.Errorf("failed to record watch: %w", err)
	}

	return nil
}

// WatchHistory returns watched video IDs, most recently watched first.
func (r *AccountRepository) WatchHistory(ctx context.Context, accountID int64) ([]int64, error) {
	const query = `
		SELECT video_id
		FROM watch_history
		WHERE account_id = $1
		ORDER BY watched_at DESC
	`

	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query watch history: %w", err)
	}
	defer rows.Close()

	var videoIDs []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan watch history: %w", err)
		}
		videoIDs = append(videoIDs, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating watch history: %w", err)
	}

	return videoIDs, nil
}

// AddNotification appends a message to the account's inbox. The primary
// key over (account_id, message) gives the inbox set semantics.
func (r *AccountRepository) AddNotification(ctx context.Context, accountID int64, message string) error {
	const query = `
		INSERT INTO notifications (account_id, message)
		VALUES ($1, $2)
		ON CONFLICT (account_id, message) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query, accountID, message)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return repository.ErrAccountNotFound
		}
		return fmt.Errorf("failed to add notification: %w", err)
	}

	return nil
}

// Notifications returns the account's inbox messages.
func (r *AccountRepository) Notifications(ctx context.Context, accountID int64) ([]string, error) {
	const query = `SELECT message FROM notifications WHERE account_id = $1`

	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	var messages []string
	for rows.Next() {
		var msg string
		if err := rows.Scan(&msg); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		messages = append(messages, msg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notifications: %w", err)
	}

	return messages, nil
}

// Compile-time verification that AccountRepository implements repository.AccountRepository.
var _ repository.AccountRepository = (*AccountRepository)(nil)
