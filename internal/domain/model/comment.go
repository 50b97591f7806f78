package model

import (
	"errors"
	"time"
)

// Comment immutably binds an author and a text snapshot to a video at
// creation time. AuthorName is copied from the account so later renames
// do not rewrite history.
type Comment struct {
	ID         int64
	VideoID    int64
	AuthorID   int64
	AuthorName string
	Body       string
	CreatedAt  time.Time
}

var (
	ErrEmptyComment   = errors.New("comment body cannot be empty")
	ErrCommentTooLong = errors.New("comment exceeds maximum length of 2000 characters")
)

const maxCommentLength = 2000

// NewComment validates and creates a Comment for the given video.
func NewComment(videoID int64, author *Account, body string) (*Comment, error) {
	if body == "" {
		return nil, ErrEmptyComment
	}
	if len(body) > maxCommentLength {
		return nil, ErrCommentTooLong
	}

	return &Comment{
		VideoID:    videoID,
		AuthorID:   author.ID,
		AuthorName: author.FullName(),
		Body:       body,
		CreatedAt:  time.Now(),
	}, nil
}
