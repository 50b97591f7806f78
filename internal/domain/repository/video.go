package repository

import (
	"context"

	"github.com/clipstream-dev/clipstream/internal/domain/model"
)

// VideoRepository defines persistence operations for video records.
// Implementations are provided by the infrastructure layer (PostgreSQL).
type VideoRepository interface {
	// Create persists a new video and fills in its generated ID.
	Create(ctx context.Context, video *model.Video) error

	// GetByID retrieves a video by ID.
	// Returns ErrVideoNotFound if it does not exist.
	GetByID(ctx context.Context, id int64) (*model.Video, error)

	// List returns all videos, newest first.
	List(ctx context.Context) ([]*model.Video, error)

	// IncrementViewCount atomically bumps the view counter. The
	// increment happens store-side so concurrent views never lose
	// updates.
	// Returns ErrVideoNotFound if the video does not exist.
	IncrementViewCount(ctx context.Context, id int64) error

	// Delete removes a video record.
	// Returns ErrVideoNotFound if the video does not exist.
	Delete(ctx context.Context, id int64) error
}

// CommentRepository defines persistence operations for the append-only
// comment collection attached to videos.
type CommentRepository interface {
	// Create persists a new comment and fills in its generated ID.
	Create(ctx context.Context, comment *model.Comment) error

	// ListByVideoID returns a video's comments, oldest first.
	ListByVideoID(ctx context.Context, videoID int64) ([]*model.Comment, error)
}
