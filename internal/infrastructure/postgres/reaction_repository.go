package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/clipstream-dev/clipstream/internal/domain/model"
	"github.com/clipstream-dev/clipstream/internal/domain/repository"
)

// ReactionRepository implements repository.ReactionRepository using
// PostgreSQL. The reaction state row and the video counter adjustments
// commit in one transaction, which is what keeps likeCount/dislikeCount
// equal to the membership counts at every boundary.
type ReactionRepository struct {
	db DBTX
}

// NewReactionRepository creates a new ReactionRepository instance.
func NewReactionRepository(db DBTX) *ReactionRepository {
	return &ReactionRepository{db: db}
}

// Get returns the account's current reaction to the video, or
// ReactionNone when no row exists.
func (r *ReactionRepository) Get(ctx context.Context, accountID, videoID int64) (model.ReactionState, error) {
	const query = `
		SELECT state
		FROM reactions
		WHERE account_id = $1 AND video_id = $2
	`

	var state string
	err := r.db.QueryRow(ctx, query, accountID, videoID).Scan(&state)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ReactionNone, nil
		}
		return model.ReactionNone, fmt.Errorf("failed to get reaction: %w", err)
	}

	return model.ReactionState(state), nil
}

// Apply writes the transition target and adjusts the video counters in
// a single transaction. Neutral is represented by row absence, so a
// transition to ReactionNone deletes the row.
func (r *ReactionRepository) Apply(ctx context.Context, accountID, videoID int64, change model.ReactionChange) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if change.To == model.ReactionNone {
		const del = `DELETE FROM reactions WHERE account_id = $1 AND video_id = $2`
		if _, err := tx.Exec(ctx, del, accountID, videoID); err != nil {
			return fmt.Errorf("failed to clear reaction: %w", err)
		}
	} else {
		const upsert = `
			INSERT INTO reactions (account_id, video_id, state)
			VALUES ($1, $2, $3)
			ON CONFLICT (account_id, video_id) DO UPDATE SET state = EXCLUDED.state
		`
		if _, err := tx.Exec(ctx, upsert, accountID, videoID, change.To.String()); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return repository.ErrVideoNotFound
			}
			return fmt.Errorf("failed to write reaction: %w", err)
		}
	}

	const adjust = `
		UPDATE videos
		SET like_count = like_count + $2, dislike_count = dislike_count + $3, updated_at = now()
		WHERE id = $1
	`
	tag, err := tx.Exec(ctx, adjust, videoID, change.LikeDelta, change.DislikeDelta)
	if err != nil {
		return fmt.Errorf("failed to adjust counters: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrVideoNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit reaction: %w", err)
	}

	return nil
}

// Compile-time verification that ReactionRepository implements repository.ReactionRepository.
var _ repository.ReactionRepository = (*ReactionRepository)(nil)
