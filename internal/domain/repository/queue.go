package repository

import "context"

// CleanupTask asks the janitor worker to retry deleting blobs that a
// synchronous compensating action failed to remove.
type CleanupTask struct {
	URLs       []string `json:"urls"`
	RetryCount int      `json:"retry_count"`
}

// NotificationEvent mirrors an inbox write so downstream consumers
// (push delivery, websockets) can react to it. The durable inbox row is
// the source of truth; events are best effort.
type NotificationEvent struct {
	AccountID int64  `json:"account_id"`
	Message   string `json:"message"`
}

// MessageQueue defines the queue collaborator.
// Implementations are provided by the infrastructure layer (RabbitMQ).
type MessageQueue interface {
	// PublishCleanupTask enqueues a blob-cleanup retry.
	PublishCleanupTask(ctx context.Context, task CleanupTask) error

	// ConsumeCleanupTasks delivers cleanup tasks to the handler until
	// the context is cancelled. A handler error requeues the task with
	// an incremented retry count.
	ConsumeCleanupTasks(ctx context.Context, handler func(task CleanupTask) error) error

	// PublishNotificationEvent emits a notification event for
	// downstream delivery.
	PublishNotificationEvent(ctx context.Context, event NotificationEvent) error

	// Close gracefully closes the connection to the message queue.
	Close() error
}
