package usecase

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/clipstream-dev/clipstream/internal/domain/model"
	"github.com/clipstream-dev/clipstream/internal/infrastructure/cache"
	"github.com/clipstream-dev/clipstream/internal/infrastructure/metrics"
)

// CachedVideoServiceConfig holds configuration for CachedVideoService.
type CachedVideoServiceConfig struct {
	// CacheTTL is the TTL for cached video metadata.
	CacheTTL time.Duration
}

// DefaultCachedVideoServiceConfig returns the default configuration.
func DefaultCachedVideoServiceConfig() CachedVideoServiceConfig {
	return CachedVideoServiceConfig{
		CacheTTL: 5 * time.Minute,
	}
}

// cachedVideoService wraps VideoService with caching capabilities.
// It implements the decorator pattern to add caching without modifying the original service.
type cachedVideoService struct {
	delegate VideoService
	cache    cache.VideoCache
	sfGroup  singleflight.Group

	cacheTTL time.Duration
}

// NewCachedVideoService creates a new CachedVideoService wrapping the provided VideoService.
func NewCachedVideoService(
	delegate VideoService,
	videoCache cache.VideoCache,
	cfg CachedVideoServiceConfig,
) VideoService {
	return &cachedVideoService{
		delegate: delegate,
		cache:    videoCache,
		cacheTTL: cfg.CacheTTL,
	}
}

// UploadVideo delegates to the underlying service.
// No caching for publish operations - the video is immediately returned.
func (s *cachedVideoService) UploadVideo(ctx context.Context, input UploadVideoInput) (*model.Video, error) {
	return s.delegate.UploadVideo(ctx, input)
}

// DeleteVideo invalidates the cache and delegates to the underlying service.
// Invalidation happens first so a cached copy cannot outlive the record.
func (s *cachedVideoService) DeleteVideo(ctx context.Context, videoID, requesterID int64) error {
	if err := s.cache.Delete(ctx, videoID); err != nil {
		// Log but don't fail - cache invalidation failure is non-critical
		slog.Warn("failed to invalidate cache on delete",
			"video_id", videoID,
			"error", err,
		)
	}

	return s.delegate.DeleteVideo(ctx, videoID, requesterID)
}

// GetVideo retrieves video metadata with caching.
// Uses singleflight to prevent cache stampede on concurrent requests for the same video.
func (s *cachedVideoService) GetVideo(ctx context.Context, videoID int64) (*model.Video, error) {
	// Use singleflight to coalesce concurrent requests
	key := strconv.FormatInt(videoID, 10)
	result, err, shared := s.sfGroup.Do(key, func() (any, error) {
		return s.getVideoWithCache(ctx, videoID)
	})

	// Record singleflight metrics
	if shared {
		metrics.SingleflightRequestsTotal.WithLabelValues(metrics.SingleflightShared).Inc()
	} else {
		metrics.SingleflightRequestsTotal.WithLabelValues(metrics.SingleflightInitiated).Inc()
	}

	if err != nil {
		return nil, err
	}

	return result.(*model.Video), nil
}

// WatchVideo delegates to the underlying service and refreshes the cache
// with the post-view snapshot. The view counter moves on every watch, so
// rewriting the entry keeps metadata reads current instead of leaving a
// stale copy behind.
func (s *cachedVideoService) WatchVideo(ctx context.Context, videoID, viewerID int64) (*VideoDetail, error) {
	detail, err := s.delegate.WatchVideo(ctx, videoID, viewerID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, detail.Video, s.cacheTTL); err != nil {
		slog.Warn("failed to refresh cache on watch",
			"video_id", videoID,
			"error", err,
		)
	}

	return detail, nil
}

// ListVideos delegates to the underlying service.
func (s *cachedVideoService) ListVideos(ctx context.Context) ([]*model.Video, error) {
	return s.delegate.ListVideos(ctx)
}

// getVideoWithCache implements the cache-aside pattern.
func (s *cachedVideoService) getVideoWithCache(ctx context.Context, videoID int64) (*model.Video, error) {
	// Try cache first
	video, err := s.cache.Get(ctx, videoID)
	if err != nil {
		// Log cache error but continue to database
		slog.Warn("cache get failed, falling back to database",
			"video_id", videoID,
			"error", err,
		)
	}

	if video != nil {
		return video, nil // Cache hit
	}

	// Cache miss - fetch from database
	video, err = s.delegate.GetVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}

	// Store in cache (async-safe: errors logged but not propagated)
	if err := s.cache.Set(ctx, video, s.cacheTTL); err != nil {
		slog.Warn("failed to cache video",
			"video_id", videoID,
			"error", err,
		)
	}

	return video, nil
}
