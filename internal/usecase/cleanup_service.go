package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/clipstream-dev/clipstream/internal/domain/repository"
	"github.com/clipstream-dev/clipstream/internal/infrastructure/metrics"
)

const (
	// DefaultMaxRetries is the default maximum number of retry attempts before a task is dropped.
	DefaultMaxRetries = 3
)

// CleanupServiceConfig holds configuration for CleanupService.
type CleanupServiceConfig struct {
	// MaxRetries is the maximum number of retry attempts before a task is dropped.
	MaxRetries int
}

// DefaultCleanupServiceConfig returns the default configuration.
func DefaultCleanupServiceConfig() CleanupServiceConfig {
	return CleanupServiceConfig{
		MaxRetries: DefaultMaxRetries,
	}
}

// CleanupService retries blob deletions that a synchronous compensating
// action could not complete, so a failed publish never leaks storage
// permanently.
type CleanupService interface {
	// ProcessTask handles a blob-cleanup task from the message queue.
	// Returns nil on success or permanent failure (max retries exceeded).
	// Returns error for transient failures that should trigger a retry.
	ProcessTask(ctx context.Context, task repository.CleanupTask) error
}

type cleanupService struct {
	storage repository.ObjectStorage

	maxRetries int
}

// NewCleanupService creates a new CleanupService instance.
func NewCleanupService(storage repository.ObjectStorage, cfg CleanupServiceConfig) CleanupService {
	return &cleanupService{
		storage:    storage,
		maxRetries: cfg.MaxRetries,
	}
}

// ProcessTask deletes every blob named by the task. Blobs that are
// already gone count as deleted.
func (s *cleanupService) ProcessTask(ctx context.Context, task repository.CleanupTask) error {
	if task.RetryCount >= s.maxRetries {
		// Give up; the blob URLs are logged for manual cleanup.
		slog.Error("dropping cleanup task after max retries",
			"urls", task.URLs,
			"retry_count", task.RetryCount,
		)
		metrics.BlobCleanupTotal.WithLabelValues(metrics.CleanupFailed).Inc()
		return nil
	}

	for _, url := range task.URLs {
		exists, err := s.storage.Exists(ctx, url)
		if err != nil {
			metrics.BlobCleanupTotal.WithLabelValues(metrics.CleanupRequeued).Inc()
			return fmt.Errorf("check blob %s: %w", url, err)
		}
		if !exists {
			continue
		}

		if err := s.storage.Delete(ctx, url); err != nil {
			metrics.BlobCleanupTotal.WithLabelValues(metrics.CleanupRequeued).Inc()
			return fmt.Errorf("delete blob %s: %w", url, err)
		}

		slog.Info("deleted orphaned blob", "url", url)
		metrics.BlobCleanupTotal.WithLabelValues(metrics.CleanupDeleted).Inc()
	}

	return nil
}
