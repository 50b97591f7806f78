package model

import (
	"errors"
	"strings"
	"testing"
)

func TestNewVideo(t *testing.T) {
	tests := []struct {
		name         string
		ownerID      int64
		title        string
		videoURL     string
		thumbnailURL string
		wantErr      error
	}{
		{
			name:         "valid video",
			ownerID:      1,
			title:        "My Video",
			videoURL:     "http://cdn/v1",
			thumbnailURL: "http://cdn/t1",
			wantErr:      nil,
		},
		{
			name:         "https URLs accepted",
			ownerID:      1,
			title:        "My Video",
			videoURL:     "https://cdn/v1",
			thumbnailURL: "https://cdn/t1",
			wantErr:      nil,
		},
		{
			name:         "invalid owner",
			ownerID:      0,
			title:        "My Video",
			videoURL:     "http://cdn/v1",
			thumbnailURL: "http://cdn/t1",
			wantErr:      ErrInvalidOwnerID,
		},
		{
			name:         "empty title",
			ownerID:      1,
			title:        "",
			videoURL:     "http://cdn/v1",
			thumbnailURL: "http://cdn/t1",
			wantErr:      ErrEmptyTitle,
		},
		{
			name:         "title too long",
			ownerID:      1,
			title:        strings.Repeat("a", 256),
			videoURL:     "http://cdn/v1",
			thumbnailURL: "http://cdn/t1",
			wantErr:      ErrTitleTooLong,
		},
		{
			name:         "malformed video URL",
			ownerID:      1,
			title:        "My Video",
			videoURL:     "ftp://bad",
			thumbnailURL: "http://cdn/t1",
			wantErr:      ErrInvalidResourceURL,
		},
		{
			name:         "malformed thumbnail URL",
			ownerID:      1,
			title:        "My Video",
			videoURL:     "http://cdn/v1",
			thumbnailURL: "ftp://bad",
			wantErr:      ErrInvalidResourceURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			video, err := NewVideo(tt.ownerID, tt.title, "desc", tt.videoURL, tt.thumbnailURL)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if video.ViewCount != 0 || video.LikeCount != 0 || video.DislikeCount != 0 {
				t.Error("expected zeroed counters on a new video")
			}
			if video.CreatedAt.IsZero() {
				t.Error("expected CreatedAt to be set")
			}
		})
	}
}

func TestVideo_IsOwnedBy(t *testing.T) {
	video := &Video{ID: 7, OwnerID: 42}

	if !video.IsOwnedBy(42) {
		t.Error("owner should be recognized")
	}
	if video.IsOwnedBy(43) {
		t.Error("non-owner should not be recognized")
	}
}

func TestValidateResourceURL(t *testing.T) {
	if err := ValidateResourceURL("http://cdn/v1"); err != nil {
		t.Errorf("http URL rejected: %v", err)
	}
	if err := ValidateResourceURL("ftp://bad"); !errors.Is(err, ErrInvalidResourceURL) {
		t.Errorf("ftp URL accepted, err = %v", err)
	}
	if err := ValidateResourceURL(""); !errors.Is(err, ErrInvalidResourceURL) {
		t.Errorf("empty URL accepted, err = %v", err)
	}
}
