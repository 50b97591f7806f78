package model

import (
	"errors"
	"strings"
	"time"
)

// Video represents a published video asset. Counters are owned by the
// engagement store and only ever adjusted through atomic column
// arithmetic, never by writing back a stale snapshot.
type Video struct {
	ID           int64
	OwnerID      int64
	Title        string
	Description  string
	VideoURL     string
	ThumbnailURL string
	ViewCount    int64
	LikeCount    int64
	DislikeCount int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

var (
	ErrEmptyTitle         = errors.New("title cannot be empty")
	ErrInvalidOwnerID     = errors.New("owner ID must be positive")
	ErrTitleTooLong       = errors.New("title exceeds maximum length of 255 characters")
	ErrInvalidResourceURL = errors.New("resource URL is not scheme-prefixed")
)

const maxTitleLength = 255

// recognized URI scheme prefixes for durable resource locators
var allowedURLPrefixes = []string{"http://", "https://"}

// ValidateResourceURL reports whether a blob URL is well formed enough
// to be persisted. A video record never becomes durable with a locator
// that fails this predicate.
func ValidateResourceURL(url string) error {
	for _, prefix := range allowedURLPrefixes {
		if strings.HasPrefix(url, prefix) {
			return nil
		}
	}
	return ErrInvalidResourceURL
}

// NewVideo creates a Video with zeroed counters. The resource URLs must
// pass ValidateResourceURL before the record is considered durable.
func NewVideo(ownerID int64, title, description, videoURL, thumbnailURL string) (*Video, error) {
	if ownerID <= 0 {
		return nil, ErrInvalidOwnerID
	}
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if len(title) > maxTitleLength {
		return nil, ErrTitleTooLong
	}
	if err := ValidateResourceURL(videoURL); err != nil {
		return nil, err
	}
	if err := ValidateResourceURL(thumbnailURL); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Video{
		OwnerID:      ownerID,
		Title:        title,
		Description:  description,
		VideoURL:     videoURL,
		ThumbnailURL: thumbnailURL,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// IsOwnedBy reports whether the account may perform owner-only
// operations such as deletion.
func (v *Video) IsOwnedBy(accountID int64) bool {
	return v.OwnerID == accountID
}
