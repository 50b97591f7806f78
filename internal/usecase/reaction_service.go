package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/clipstream-dev/clipstream/internal/domain/model"
	"github.com/clipstream-dev/clipstream/internal/domain/repository"
	"github.com/clipstream-dev/clipstream/internal/infrastructure/cache"
	"github.com/clipstream-dev/clipstream/internal/infrastructure/metrics"
)

// ReactionService coordinates reaction toggles. All counter bookkeeping
// is derived from the pure transition in model, so the service never
// inspects or recomputes counters itself.
type ReactionService interface {
	// ToggleLike applies a like toggle for the account on the video and
	// returns the video with refreshed counters.
	ToggleLike(ctx context.Context, accountID, videoID int64) (*model.Video, error)

	// ToggleDislike applies a dislike toggle for the account on the video
	// and returns the video with refreshed counters.
	ToggleDislike(ctx context.Context, accountID, videoID int64) (*model.Video, error)
}

type reactionService struct {
	videos    repository.VideoRepository
	reactions repository.ReactionRepository
	cache     cache.VideoCache
}

// NewReactionService creates a new ReactionService instance.
func NewReactionService(
	videos repository.VideoRepository,
	reactions repository.ReactionRepository,
	videoCache cache.VideoCache,
) ReactionService {
	return &reactionService{
		videos:    videos,
		reactions: reactions,
		cache:     videoCache,
	}
}

func (s *reactionService) ToggleLike(ctx context.Context, accountID, videoID int64) (*model.Video, error) {
	return s.toggle(ctx, accountID, videoID, model.ToggleLike, metrics.ReactionActionLike)
}

func (s *reactionService) ToggleDislike(ctx context.Context, accountID, videoID int64) (*model.Video, error) {
	return s.toggle(ctx, accountID, videoID, model.ToggleDislike, metrics.ReactionActionDislike)
}

func (s *reactionService) toggle(
	ctx context.Context,
	accountID, videoID int64,
	transition func(model.ReactionState) model.ReactionChange,
	action string,
) (*model.Video, error) {
	current, err := s.reactions.Get(ctx, accountID, videoID)
	if err != nil {
		return nil, fmt.Errorf("get reaction state: %w", err)
	}

	change := transition(current)

	if err := s.reactions.Apply(ctx, accountID, videoID, change); err != nil {
		return nil, err
	}

	metrics.ReactionTransitionsTotal.WithLabelValues(action, outcomeOf(change)).Inc()

	// Counters changed, so the cached copy is stale.
	if err := s.cache.Delete(ctx, videoID); err != nil {
		slog.Warn("failed to invalidate video cache after reaction",
			"video_id", videoID,
			"error", err,
		)
	}

	video, err := s.videos.GetByID(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("reload video after reaction: %w", err)
	}
	return video, nil
}

func outcomeOf(change model.ReactionChange) string {
	switch {
	case change.To == model.ReactionNone:
		return metrics.ReactionOutcomeCleared
	case change.From == model.ReactionNone:
		return metrics.ReactionOutcomeSet
	default:
		return metrics.ReactionOutcomeSwitched
	}
}
