package repository

import (
	"context"

	"github.com/clipstream-dev/clipstream/internal/domain/model"
)

// ReactionRepository stores the tagged reaction state per
// (account, video) pair and keeps the video's aggregate counters in
// lockstep with it.
type ReactionRepository interface {
	// Get returns the account's current reaction to the video.
	// ReactionNone is returned when no reaction is recorded.
	Get(ctx context.Context, accountID, videoID int64) (model.ReactionState, error)

	// Apply writes the transition's target state and adjusts the
	// video's like/dislike counters by the change's deltas, all within
	// a single transaction. Counter adjustments are atomic column
	// arithmetic so concurrent toggles on the same video cannot lose
	// updates.
	Apply(ctx context.Context, accountID, videoID int64, change model.ReactionChange) error
}

// SubscriptionRepository stores subscription edges. A single edge row
// represents both the subscriber's "subscribed to" membership and the
// target's "subscribed by" membership, so the two directions cannot
// drift apart.
type SubscriptionRepository interface {
	// IsSubscribed reports whether subscriber currently follows target.
	IsSubscribed(ctx context.Context, subscriberID, targetID int64) (bool, error)

	// Subscribe records the edge. Subscribing twice is a no-op.
	Subscribe(ctx context.Context, subscriberID, targetID int64) error

	// Unsubscribe removes the edge. Unsubscribing when not subscribed
	// is a no-op.
	Unsubscribe(ctx context.Context, subscriberID, targetID int64) error

	// ListSubscriptions returns the account IDs the subscriber follows.
	ListSubscriptions(ctx context.Context, subscriberID int64) ([]int64, error)

	// ListSubscribers returns the account IDs following the target.
	ListSubscribers(ctx context.Context, targetID int64) ([]int64, error)
}
