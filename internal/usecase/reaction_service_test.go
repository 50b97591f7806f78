package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/clipstream-dev/clipstream/internal/domain/model"
	"github.com/clipstream-dev/clipstream/internal/domain/repository"
)

func TestReactionService_ToggleLike(t *testing.T) {
	tests := []struct {
		name       string
		setupMock  func(videos *mockVideoRepository, reactions *mockReactionRepository, cache *mockVideoCache)
		wantErr    error
		wantChange *model.ReactionChange
	}{
		{
			name: "first like sets the reaction",
			setupMock: func(videos *mockVideoRepository, reactions *mockReactionRepository, cache *mockVideoCache) {
				reactions.getFn = func(ctx context.Context, accountID, videoID int64) (model.ReactionState, error) {
					return model.ReactionNone, nil
				}
				videos.getByIDFn = func(ctx context.Context, id int64) (*model.Video, error) {
					return &model.Video{ID: id, LikeCount: 1}, nil
				}
			},
			wantChange: &model.ReactionChange{From: model.ReactionNone, To: model.ReactionLiked, LikeDelta: +1},
		},
		{
			name: "second like returns to neutral",
			setupMock: func(videos *mockVideoRepository, reactions *mockReactionRepository, cache *mockVideoCache) {
				reactions.getFn = func(ctx context.Context, accountID, videoID int64) (model.ReactionState, error) {
					return model.ReactionLiked, nil
				}
				videos.getByIDFn = func(ctx context.Context, id int64) (*model.Video, error) {
					return &model.Video{ID: id}, nil
				}
			},
			wantChange: &model.ReactionChange{From: model.ReactionLiked, To: model.ReactionNone, LikeDelta: -1},
		},
		{
			name: "like while disliked adjusts both counters",
			setupMock: func(videos *mockVideoRepository, reactions *mockReactionRepository, cache *mockVideoCache) {
				reactions.getFn = func(ctx context.Context, accountID, videoID int64) (model.ReactionState, error) {
					return model.ReactionDisliked, nil
				}
				videos.getByIDFn = func(ctx context.Context, id int64) (*model.Video, error) {
					return &model.Video{ID: id, LikeCount: 1}, nil
				}
			},
			wantChange: &model.ReactionChange{From: model.ReactionDisliked, To: model.ReactionLiked, LikeDelta: +1, DislikeDelta: -1},
		},
		{
			name: "video not found",
			setupMock: func(videos *mockVideoRepository, reactions *mockReactionRepository, cache *mockVideoCache) {
				reactions.applyFn = func(ctx context.Context, accountID, videoID int64, change model.ReactionChange) error {
					return repository.ErrVideoNotFound
				}
			},
			wantErr: repository.ErrVideoNotFound,
		},
		{
			name: "reaction lookup failure",
			setupMock: func(videos *mockVideoRepository, reactions *mockReactionRepository, cache *mockVideoCache) {
				reactions.getFn = func(ctx context.Context, accountID, videoID int64) (model.ReactionState, error) {
					return model.ReactionNone, errors.New("connection refused")
				}
			},
			wantErr: errors.New("get reaction state"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			videos := &mockVideoRepository{}
			reactions := &mockReactionRepository{}
			videoCache := &mockVideoCache{}

			var applied *model.ReactionChange
			reactions.applyFn = func(ctx context.Context, accountID, videoID int64, change model.ReactionChange) error {
				applied = &change
				return nil
			}

			tt.setupMock(videos, reactions, videoCache)

			svc := NewReactionService(videos, reactions, videoCache)
			video, err := svc.ToggleLike(context.Background(), 1, 10)

			if tt.wantErr != nil {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.wantErr)
				}
				if errors.Is(tt.wantErr, repository.ErrVideoNotFound) && !errors.Is(err, repository.ErrVideoNotFound) {
					t.Errorf("expected ErrVideoNotFound, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if video == nil {
				t.Fatal("expected refreshed video, got nil")
			}
			if applied == nil {
				t.Fatal("expected Apply to be called")
			}
			if *applied != *tt.wantChange {
				t.Errorf("applied change = %+v, want %+v", *applied, *tt.wantChange)
			}
		})
	}
}

func TestReactionService_ToggleDislike(t *testing.T) {
	videos := &mockVideoRepository{
		getByIDFn: func(ctx context.Context, id int64) (*model.Video, error) {
			return &model.Video{ID: id, DislikeCount: 1}, nil
		},
	}
	reactions := &mockReactionRepository{
		getFn: func(ctx context.Context, accountID, videoID int64) (model.ReactionState, error) {
			return model.ReactionLiked, nil
		},
	}

	var applied model.ReactionChange
	reactions.applyFn = func(ctx context.Context, accountID, videoID int64, change model.ReactionChange) error {
		applied = change
		return nil
	}

	svc := NewReactionService(videos, reactions, &mockVideoCache{})
	if _, err := svc.ToggleDislike(context.Background(), 1, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := model.ReactionChange{From: model.ReactionLiked, To: model.ReactionDisliked, LikeDelta: -1, DislikeDelta: +1}
	if applied != want {
		t.Errorf("applied change = %+v, want %+v", applied, want)
	}
}

func TestReactionService_ToggleLike_InvalidatesCache(t *testing.T) {
	videos := &mockVideoRepository{
		getByIDFn: func(ctx context.Context, id int64) (*model.Video, error) {
			return &model.Video{ID: id}, nil
		},
	}

	invalidated := false
	videoCache := &mockVideoCache{
		deleteFn: func(ctx context.Context, videoID int64) error {
			invalidated = true
			return nil
		},
	}

	svc := NewReactionService(videos, &mockReactionRepository{}, videoCache)
	if _, err := svc.ToggleLike(context.Background(), 1, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !invalidated {
		t.Error("expected cache to be invalidated after reaction")
	}
}
