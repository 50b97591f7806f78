package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/clipstream-dev/clipstream/internal/domain/repository"
)

// SubscriptionRepository implements repository.SubscriptionRepository
// using PostgreSQL. Each edge row carries both relationship directions:
// the subscriber's outgoing set and the target's incoming set are
// queries over the same table, so one insert or delete keeps them in
// lockstep.
type SubscriptionRepository struct {
	db DBTX
}

// NewSubscriptionRepository creates a new SubscriptionRepository instance.
func NewSubscriptionRepository(db DBTX) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// IsSubscribed reports whether subscriber currently follows target.
func (r *SubscriptionRepository) IsSubscribed(ctx context.Context, subscriberID, targetID int64) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM subscriptions WHERE subscriber_id = $1 AND target_id = $2
		)
	`

	var subscribed bool
	if err := r.db.QueryRow(ctx, query, subscriberID, targetID).Scan(&subscribed); err != nil {
		return false, fmt.Errorf("failed to check subscription: %w", err)
	}

	return subscribed, nil
}

// Subscribe records the edge. Subscribing twice is a no-op.
func (r *SubscriptionRepository) Subscribe(ctx context.Context, subscriberID, targetID int64) error {
	const query = `
		INSERT INTO subscriptions (subscriber_id, target_id)
		VALUES ($1, $2)
		ON CONFLICT (subscriber_id, target_id) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query, subscriberID, targetID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return repository.ErrAccountNotFound
		}
		return fmt.Errorf("failed to subscribe: %w", err)
	}

	return nil
}

// Unsubscribe removes the edge. Unsubscribing when not subscribed is a no-op.
func (r *SubscriptionRepository) Unsubscribe(ctx context.Context, subscriberID, targetID int64) error {
	const query = `DELETE FROM subscriptions WHERE subscriber_id = $1 AND target_id = $2`

	if _, err := r.db.Exec(ctx, query, subscriberID, targetID); err != nil {
		return fmt.Errorf("failed to unsubscribe: %w", err)
	}

	return nil
}

// ListSubscriptions returns the account IDs the subscriber follows.
func (r *SubscriptionRepository) ListSubscriptions(ctx context.Context, subscriberID int64) ([]int64, error) {
	const query = `SELECT target_id FROM subscriptions WHERE subscriber_id = $1 ORDER BY target_id`
	return r.listIDs(ctx, query, subscriberID)
}

// ListSubscribers returns the account IDs following the target.
func (r *SubscriptionRepository) ListSubscribers(ctx context.Context, targetID int64) ([]int64, error) {
	const query = `SELECT subscriber_id FROM subscriptions WHERE target_id = $1 ORDER BY subscriber_id`
	return r.listIDs(ctx, query, targetID)
}

func (r *SubscriptionRepository) listIDs(ctx context.Context, query string, arg int64) ([]int64, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query subscriptions: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan subscription: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subscriptions: %w", err)
	}

	return ids, nil
}

// Compile-time verification that SubscriptionRepository implements repository.SubscriptionRepository.
var _ repository.SubscriptionRepository = (*SubscriptionRepository)(nil)
