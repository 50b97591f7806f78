package usecase

import (
	"context"
	"fmt"

	"github.com/clipstream-dev/clipstream/internal/domain/model"
	"github.com/clipstream-dev/clipstream/internal/domain/repository"
)

// SubscriptionService coordinates the subscription relationship between
// accounts. The relationship is a single edge, so subscribing and being
// subscribed to are two views of the same row.
type SubscriptionService interface {
	// ToggleSubscription flips the subscription edge from subscriber to
	// target and reports whether the subscriber follows the target
	// afterwards.
	ToggleSubscription(ctx context.Context, subscriberID, targetID int64) (bool, error)

	// ListSubscriptions returns the account IDs the subscriber follows.
	ListSubscriptions(ctx context.Context, subscriberID int64) ([]int64, error)

	// ListSubscribers returns the account IDs following the target.
	ListSubscribers(ctx context.Context, targetID int64) ([]int64, error)
}

type subscriptionService struct {
	accounts      repository.AccountRepository
	subscriptions repository.SubscriptionRepository
}

// NewSubscriptionService creates a new SubscriptionService instance.
func NewSubscriptionService(
	accounts repository.AccountRepository,
	subscriptions repository.SubscriptionRepository,
) SubscriptionService {
	return &subscriptionService{
		accounts:      accounts,
		subscriptions: subscriptions,
	}
}

func (s *subscriptionService) ToggleSubscription(ctx context.Context, subscriberID, targetID int64) (bool, error) {
	if subscriberID == targetID {
		return false, model.ErrSelfSubscription
	}

	if _, err := s.accounts.GetByID(ctx, targetID); err != nil {
		return false, err
	}

	subscribed, err := s.subscriptions.IsSubscribed(ctx, subscriberID, targetID)
	if err != nil {
		return false, fmt.Errorf("check subscription: %w", err)
	}

	if subscribed {
		if err := s.subscriptions.Unsubscribe(ctx, subscriberID, targetID); err != nil {
			return false, fmt.Errorf("unsubscribe: %w", err)
		}
		return false, nil
	}

	if err := s.subscriptions.Subscribe(ctx, subscriberID, targetID); err != nil {
		return false, fmt.Errorf("subscribe: %w", err)
	}
	return true, nil
}

func (s *subscriptionService) ListSubscriptions(ctx context.Context, subscriberID int64) ([]int64, error) {
	return s.subscriptions.ListSubscriptions(ctx, subscriberID)
}

func (s *subscriptionService) ListSubscribers(ctx context.Context, targetID int64) ([]int64, error) {
	return s.subscriptions.ListSubscribers(ctx, targetID)
}
