package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/clipstream-dev/clipstream/internal/domain/model"
	"github.com/clipstream-dev/clipstream/internal/domain/repository"
)

var (
	// ErrNotOwner is returned when an account attempts an owner-only
	// operation on a video it does not own.
	ErrNotOwner = errors.New("account does not own this video")

	// ErrUploadFailed is returned when a blob could not be stored.
	ErrUploadFailed = errors.New("failed to upload file")

	// ErrDeletionFailed is returned when a stored blob could not be removed.
	ErrDeletionFailed = errors.New("failed to delete file")
)

// UploadVideoInput contains the input parameters for publishing a video.
type UploadVideoInput struct {
	OwnerID int64
	Title   string

	Description string

	Video            io.Reader
	VideoSize        int64
	VideoContentType string

	Thumbnail            io.Reader
	ThumbnailSize        int64
	ThumbnailContentType string
}

// VideoDetail bundles a video with its comment thread for detail views.
type VideoDetail struct {
	Video    *model.Video
	Comments []*model.Comment
}

// VideoService defines the interface for video business logic operations.
type VideoService interface {
	// UploadVideo stores both blobs, persists the video record, and
	// announces the publish to subscribers. If the record cannot be
	// made durable the blobs are deleted so no orphan survives the
	// failed publish.
	UploadVideo(ctx context.Context, input UploadVideoInput) (*model.Video, error)

	// DeleteVideo removes a video's blobs and record. Only the owner
	// may delete.
	DeleteVideo(ctx context.Context, videoID, requesterID int64) error

	// GetVideo retrieves video metadata by ID without side effects.
	GetVideo(ctx context.Context, videoID int64) (*model.Video, error)

	// WatchVideo serves a detail view: it counts the view, records the
	// viewer's watch history, and returns the video with its comments.
	WatchVideo(ctx context.Context, videoID, viewerID int64) (*VideoDetail, error)

	// ListVideos returns all videos, newest first.
	ListVideos(ctx context.Context) ([]*model.Video, error)
}

type videoService struct {
	videos   repository.VideoRepository
	comments repository.CommentRepository
	accounts repository.AccountRepository
	storage  repository.ObjectStorage
	queue    repository.MessageQueue
	notifier NotificationService
}

// NewVideoService creates a new VideoService instance.
func NewVideoService(
	videos repository.VideoRepository,
	comments repository.CommentRepository,
	accounts repository.AccountRepository,
	storage repository.ObjectStorage,
	queue repository.MessageQueue,
	notifier NotificationService,
) VideoService {
	return &videoService{
		videos:   videos,
		comments: comments,
		accounts: accounts,
		storage:  storage,
		queue:    queue,
		notifier: notifier,
	}
}

// UploadVideo runs the publish saga: blobs first, record second,
// announcement last. Any failure after the blobs exist triggers a
// compensating delete of both.
func (s *videoService) UploadVideo(ctx context.Context, input UploadVideoInput) (*model.Video, error) {
	videoURL, err := s.storage.Put(ctx, input.Video, input.VideoSize, input.VideoContentType)
	if err != nil {
		return nil, fmt.Errorf("%w: video: %v", ErrUploadFailed, err)
	}

	thumbnailURL, err := s.storage.Put(ctx, input.Thumbnail, input.ThumbnailSize, input.ThumbnailContentType)
	if err != nil {
		// The video blob is already stored; remove it before surfacing
		// the failure.
		s.compensate(ctx, videoURL)
		return nil, fmt.Errorf("%w: thumbnail: %v", ErrUploadFailed, err)
	}

	video, err := model.NewVideo(input.OwnerID, input.Title, input.Description, videoURL, thumbnailURL)
	if err != nil {
		s.compensate(ctx, videoURL, thumbnailURL)
		return nil, err
	}

	if err := s.videos.Create(ctx, video); err != nil {
		s.compensate(ctx, videoURL, thumbnailURL)
		return nil, fmt.Errorf("create video: %w", err)
	}

	if err := s.notifier.NotifySubscribers(ctx, video.OwnerID); err != nil {
		// The video is durable; an incomplete fan-out does not unwind
		// the publish.
		slog.Warn("failed to notify subscribers",
			"video_id", video.ID,
			"owner_id", video.OwnerID,
			"error", err,
		)
	}

	return video, nil
}

// compensate deletes blobs left behind by a failed publish. Deletes
// that fail here are handed to the janitor queue for retry.
func (s *videoService) compensate(ctx context.Context, urls ...string) {
	var failed []string
	for _, url := range urls {
		if err := s.storage.Delete(ctx, url); err != nil {
			slog.Warn("compensating blob delete failed",
				"url", url,
				"error", err,
			)
			failed = append(failed, url)
		}
	}
	if len(failed) == 0 {
		return
	}

	task := repository.CleanupTask{URLs: failed}
	if err := s.queue.PublishCleanupTask(ctx, task); err != nil {
		slog.Error("failed to enqueue blob cleanup task",
			"urls", failed,
			"error", err,
		)
	}
}

func (s *videoService) DeleteVideo(ctx context.Context, videoID, requesterID int64) error {
	video, err := s.videos.GetByID(ctx, videoID)
	if err != nil {
		return err
	}

	if !video.IsOwnedBy(requesterID) {
		return ErrNotOwner
	}

	for _, url := range []string{video.VideoURL, video.ThumbnailURL} {
		if err := s.storage.Delete(ctx, url); err != nil {
			return fmt.Errorf("%w: %v", ErrDeletionFailed, err)
		}
	}

	if err := s.videos.Delete(ctx, videoID); err != nil {
		return fmt.Errorf("delete video record: %w", err)
	}
	return nil
}

func (s *videoService) GetVideo(ctx context.Context, videoID int64) (*model.Video, error) {
	return s.videos.GetByID(ctx, videoID)
}

func (s *videoService) WatchVideo(ctx context.Context, videoID, viewerID int64) (*VideoDetail, error) {
	if err := s.videos.IncrementViewCount(ctx, videoID); err != nil {
		return nil, err
	}

	if viewerID != 0 {
		if err := s.accounts.RecordWatch(ctx, viewerID, videoID); err != nil {
			// History is auxiliary to serving the video.
			slog.Warn("failed to record watch history",
				"account_id", viewerID,
				"video_id", videoID,
				"error", err,
			)
		}
	}

	video, err := s.videos.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}

	comments, err := s.comments.ListByVideoID(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	return &VideoDetail{Video: video, Comments: comments}, nil
}

func (s *videoService) ListVideos(ctx context.Context) ([]*model.Video, error) {
	return s.videos.List(ctx)
}
