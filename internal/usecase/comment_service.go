package usecase

import (
	"context"
	"fmt"

	"github.com/clipstream-dev/clipstream/internal/domain/model"
	"github.com/clipstream-dev/clipstream/internal/domain/repository"
)

// CommentService manages the append-only comment threads on videos.
type CommentService interface {
	// AddComment appends a comment to a video, snapshotting the
	// author's display name at write time.
	AddComment(ctx context.Context, videoID, authorID int64, body string) (*model.Comment, error)

	// ListComments returns a video's comments, oldest first.
	ListComments(ctx context.Context, videoID int64) ([]*model.Comment, error)
}

type commentService struct {
	videos   repository.VideoRepository
	accounts repository.AccountRepository
	comments repository.CommentRepository
}

// NewCommentService creates a new CommentService instance.
func NewCommentService(
	videos repository.VideoRepository,
	accounts repository.AccountRepository,
	comments repository.CommentRepository,
) CommentService {
	return &commentService{
		videos:   videos,
		accounts: accounts,
		comments: comments,
	}
}

func (s *commentService) AddComment(ctx context.Context, videoID, authorID int64, body string) (*model.Comment, error) {
	author, err := s.accounts.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	comment, err := model.NewComment(videoID, author, body)
	if err != nil {
		return nil, err
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *commentService) ListComments(ctx context.Context, videoID int64) ([]*model.Comment, error) {
	if _, err := s.videos.GetByID(ctx, videoID); err != nil {
		return nil, err
	}

	comments, err := s.comments.ListByVideoID(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}
