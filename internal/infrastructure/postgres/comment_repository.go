package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/clipstream-dev/clipstream/internal/domain/model"
	"github.com/clipstream-dev/clipstream/internal/domain/repository"
)

// CommentRepository implements repository.CommentRepository using PostgreSQL.
type CommentRepository struct {
	db DBTX
}

// NewCommentRepository creates a new CommentRepository instance.
func NewCommentRepository(db DBTX) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create persists a new comment.
func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	const query = `
		INSERT INTO comments (video_id, author_id, author_name, body, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		comment.VideoID,
		comment.AuthorID,
		comment.AuthorName,
		comment.Body,
		comment.CreatedAt,
	).Scan(&comment.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return repository.ErrVideoNotFound
		}
		return fmt.Errorf("failed to create comment: %w", err)
	}

	return nil
}

// ListByVideoID returns a video's comments, oldest first.
func (r *CommentRepository) ListByVideoID(ctx context.Context, videoID int64) ([]*model.Comment, error) {
	const query = `
		SELECT id, video_id, author_id, author_name, body, created_at
		FROM comments
		WHERE video_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(ctx, query, videoID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	var comments []*model.Comment
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.VideoID, &c.AuthorID, &c.AuthorName, &c.Body, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}

	return comments, nil
}

// Compile-time verification that CommentRepository implements repository.CommentRepository.
var _ repository.CommentRepository = (*CommentRepository)(nil)
