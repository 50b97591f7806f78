package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/clipstream-dev/clipstream/internal/domain/repository"
	"github.com/clipstream-dev/clipstream/internal/infrastructure/metrics"
)

// NotificationService fans a publish announcement out to every current
// subscriber's inbox. The inbox rows are the source of truth; the queue
// events emitted alongside them are best effort.
type NotificationService interface {
	// NotifySubscribers appends the publisher's new-video message to
	// each subscriber's inbox. Subscribers that vanished since the edge
	// was created are skipped. Delivery is sequential; a store failure
	// aborts the fan-out with the remaining inboxes untouched.
	NotifySubscribers(ctx context.Context, publisherID int64) error
}

type notificationService struct {
	accounts      repository.AccountRepository
	subscriptions repository.SubscriptionRepository
	queue         repository.MessageQueue
}

// NewNotificationService creates a new NotificationService instance.
func NewNotificationService(
	accounts repository.AccountRepository,
	subscriptions repository.SubscriptionRepository,
	queue repository.MessageQueue,
) NotificationService {
	return &notificationService{
		accounts:      accounts,
		subscriptions: subscriptions,
		queue:         queue,
	}
}

func (s *notificationService) NotifySubscribers(ctx context.Context, publisherID int64) error {
	publisher, err := s.accounts.GetByID(ctx, publisherID)
	if err != nil {
		return fmt.Errorf("get publisher: %w", err)
	}

	subscriberIDs, err := s.subscriptions.ListSubscribers(ctx, publisherID)
	if err != nil {
		return fmt.Errorf("list subscribers: %w", err)
	}

	message := publisher.NewVideoNotification()

	for _, subscriberID := range subscriberIDs {
		err := s.accounts.AddNotification(ctx, subscriberID, message)
		if errors.Is(err, repository.ErrAccountNotFound) {
			// Subscriber was deleted after the edge was read; skip it.
			continue
		}
		if err != nil {
			metrics.NotificationFanoutTotal.WithLabelValues(metrics.FanoutFailed).Inc()
			return fmt.Errorf("notify subscriber %d: %w", subscriberID, err)
		}
		metrics.NotificationFanoutTotal.WithLabelValues(metrics.FanoutDelivered).Inc()

		event := repository.NotificationEvent{
			AccountID: subscriberID,
			Message:   message,
		}
		if err := s.queue.PublishNotificationEvent(ctx, event); err != nil {
			slog.Warn("failed to publish notification event",
				"account_id", subscriberID,
				"error", err,
			)
		}
	}

	return nil
}
