package usecase

import (
	"context"
	"io"
	"time"

	"github.com/clipstream-dev/clipstream/internal/domain/model"
	"github.com/clipstream-dev/clipstream/internal/domain/repository"
)

// mockVideoRepository provides a configurable mock for VideoRepository.
type mockVideoRepository struct {
	createFn             func(ctx context.Context, video *model.Video) error
	getByIDFn            func(ctx context.Context, id int64) (*model.Video, error)
	listFn               func(ctx context.Context) ([]*model.Video, error)
	incrementViewCountFn func(ctx context.Context, id int64) error
	deleteFn             func(ctx context.Context, id int64) error
}

func (m *mockVideoRepository) Create(ctx context.Context, video *model.Video) error {
	if m.createFn != nil {
		return m.createFn(ctx, video)
	}
	return nil
}

func (m *mockVideoRepository) GetByID(ctx context.Context, id int64) (*model.Video, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockVideoRepository) List(ctx context.Context) ([]*model.Video, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockVideoRepository) IncrementViewCount(ctx context.Context, id int64) error {
	if m.incrementViewCountFn != nil {
		return m.incrementViewCountFn(ctx, id)
	}
	return nil
}

func (m *mockVideoRepository) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// mockAccountRepository provides a configurable mock for AccountRepository.
type mockAccountRepository struct {
	createFn          func(ctx context.Context, account *model.Account) error
	getByIDFn         func(ctx context.Context, id int64) (*model.Account, error)
	recordWatchFn     func(ctx context.Context, accountID, videoID int64) error
	watchHistoryFn    func(ctx context.Context, accountID int64) ([]int64, error)
	addNotificationFn func(ctx context.Context, accountID int64, message string) error
	notificationsFn   func(ctx context.Context, accountID int64) ([]string, error)
}

func (m *mockAccountRepository) Create(ctx context.Context, account *model.Account) error {
	if m.createFn != nil {
		return m.createFn(ctx, account)
	}
	return nil
}

func (m *mockAccountRepository) GetByID(ctx context.Context, id int64) (*model.Account, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockAccountRepository) RecordWatch(ctx context.Context, accountID, videoID int64) error {
	if m.recordWatchFn != nil {
		return m.recordWatchFn(ctx, accountID, videoID)
	}
	return nil
}

func (m *mockAccountRepository) WatchHistory(ctx context.Context, accountID int64) ([]int64, error) {
	if m.watchHistoryFn != nil {
		return m.watchHistoryFn(ctx, accountID)
	}
	return nil, nil
}

func (m *mockAccountRepository) AddNotification(ctx context.Context, accountID int64, message string) error {
	if m.addNotificationFn != nil {
		return m.addNotificationFn(ctx, accountID, message)
	}
	return nil
}

func (m *mockAccountRepository) Notifications(ctx context.Context, accountID int64) ([]string, error) {
	if m.notificationsFn != nil {
		return m.notificationsFn(ctx, accountID)
	}
	return nil, nil
}

// mockReactionRepository provides a configurable mock for ReactionRepository.
type mockReactionRepository struct {
	getFn   func(ctx context.Context, accountID, videoID int64) (model.ReactionState, error)
	applyFn func(ctx context.Context, accountID, videoID int64, change model.ReactionChange) error
}

func (m *mockReactionRepository) Get(ctx context.Context, accountID, videoID int64) (model.ReactionState, error) {
	if m.getFn != nil {
		return m.getFn(ctx, accountID, videoID)
	}
	return model.ReactionNone, nil
}

func (m *mockReactionRepository) Apply(ctx context.Context, accountID, videoID int64, change model.ReactionChange) error {
	if m.applyFn != nil {
		return m.applyFn(ctx, accountID, videoID, change)
	}
	return nil
}

// mockSubscriptionRepository provides a configurable mock for SubscriptionRepository.
type mockSubscriptionRepository struct {
	isSubscribedFn      func(ctx context.Context, subscriberID, targetID int64) (bool, error)
	subscribeFn         func(ctx context.Context, subscriberID, targetID int64) error
	unsubscribeFn       func(ctx context.Context, subscriberID, targetID int64) error
	listSubscriptionsFn func(ctx context.Context, subscriberID int64) ([]int64, error)
	listSubscribersFn   func(ctx context.Context, targetID int64) ([]int64, error)
}

func (m *mockSubscriptionRepository) IsSubscribed(ctx context.Context, subscriberID, targetID int64) (bool, error) {
	if m.isSubscribedFn != nil {
		return m.isSubscribedFn(ctx, subscriberID, targetID)
	}
	return false, nil
}

func (m *mockSubscriptionRepository) Subscribe(ctx context.Context, subscriberID, targetID int64) error {
	if m.subscribeFn != nil {
		return m.subscribeFn(ctx, subscriberID, targetID)
	}
	return nil
}

func (m *mockSubscriptionRepository) Unsubscribe(ctx context.Context, subscriberID, targetID int64) error {
	if m.unsubscribeFn != nil {
		return m.unsubscribeFn(ctx, subscriberID, targetID)
	}
	return nil
}

func (m *mockSubscriptionRepository) ListSubscriptions(ctx context.Context, subscriberID int64) ([]int64, error) {
	if m.listSubscriptionsFn != nil {
		return m.listSubscriptionsFn(ctx, subscriberID)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) ListSubscribers(ctx context.Context, targetID int64) ([]int64, error) {
	if m.listSubscribersFn != nil {
		return m.listSubscribersFn(ctx, targetID)
	}
	return nil, nil
}

// mockCommentRepository provides a configurable mock for CommentRepository.
type mockCommentRepository struct {
	createFn        func(ctx context.Context, comment *model.Comment) error
	listByVideoIDFn func(ctx context.Context, videoID int64) ([]*model.Comment, error)
}

func (m *mockCommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	if m.createFn != nil {
		return m.createFn(ctx, comment)
	}
	return nil
}

func (m *mockCommentRepository) ListByVideoID(ctx context.Context, videoID int64) ([]*model.Comment, error) {
	if m.listByVideoIDFn != nil {
		return m.listByVideoIDFn(ctx, videoID)
	}
	return nil, nil
}

// mockObjectStorage provides a configurable mock for ObjectStorage.
type mockObjectStorage struct {
	putFn    func(ctx context.Context, reader io.Reader, size int64, contentType string) (string, error)
	deleteFn func(ctx context.Context, url string) error
	existsFn func(ctx context.Context, url string) (bool, error)
}

func (m *mockObjectStorage) Put(ctx context.Context, reader io.Reader, size int64, contentType string) (string, error) {
	if m.putFn != nil {
		return m.putFn(ctx, reader, size, contentType)
	}
	return "http://storage.local/videos/blob", nil
}

func (m *mockObjectStorage) Delete(ctx context.Context, url string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, url)
	}
	return nil
}

func (m *mockObjectStorage) Exists(ctx context.Context, url string) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, url)
	}
	return false, nil
}

// mockMessageQueue provides a configurable mock for MessageQueue.
type mockMessageQueue struct {
	publishCleanupTaskFn       func(ctx context.Context, task repository.CleanupTask) error
	consumeCleanupTasksFn      func(ctx context.Context, handler func(task repository.CleanupTask) error) error
	publishNotificationEventFn func(ctx context.Context, event repository.NotificationEvent) error
}

func (m *mockMessageQueue) PublishCleanupTask(ctx context.Context, task repository.CleanupTask) error {
	if m.publishCleanupTaskFn != nil {
		return m.publishCleanupTaskFn(ctx, task)
	}
	return nil
}

func (m *mockMessageQueue) ConsumeCleanupTasks(ctx context.Context, handler func(task repository.CleanupTask) error) error {
	if m.consumeCleanupTasksFn != nil {
		return m.consumeCleanupTasksFn(ctx, handler)
	}
	return nil
}

func (m *mockMessageQueue) PublishNotificationEvent(ctx context.Context, event repository.NotificationEvent) error {
	if m.publishNotificationEventFn != nil {
		return m.publishNotificationEventFn(ctx, event)
	}
	return nil
}

func (m *mockMessageQueue) Close() error {
	return nil
}

// mockVideoCache provides a configurable mock for VideoCache.
type mockVideoCache struct {
	getFn    func(ctx context.Context, videoID int64) (*model.Video, error)
	setFn    func(ctx context.Context, video *model.Video, ttl time.Duration) error
	deleteFn func(ctx context.Context, videoID int64) error
}

func (m *mockVideoCache) Get(ctx context.Context, videoID int64) (*model.Video, error) {
	if m.getFn != nil {
		return m.getFn(ctx, videoID)
	}
	return nil, nil
}

func (m *mockVideoCache) Set(ctx context.Context, video *model.Video, ttl time.Duration) error {
	if m.setFn != nil {
		return m.setFn(ctx, video, ttl)
	}
	return nil
}

func (m *mockVideoCache) Delete(ctx context.Context, videoID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, videoID)
	}
	return nil
}

// mockNotificationService provides a configurable mock for NotificationService.
type mockNotificationService struct {
	notifySubscribersFn func(ctx context.Context, publisherID int64) error
}

func (m *mockNotificationService) NotifySubscribers(ctx context.Context, publisherID int64) error {
	if m.notifySubscribersFn != nil {
		return m.notifySubscribersFn(ctx, publisherID)
	}
	return nil
}
