package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/clipstream-dev/clipstream/internal/api/middleware"
	"github.com/clipstream-dev/clipstream/internal/domain/model"
	"github.com/clipstream-dev/clipstream/internal/domain/repository"
	"github.com/clipstream-dev/clipstream/internal/usecase"
)

// Request/Response types

type VideoResponse struct {
	ID           int64  `json:"id"`
	OwnerID      int64  `json:"owner_id"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	VideoURL     string `json:"video_url"`
	ThumbnailURL string `json:"thumbnail_url"`
	ViewCount    int64  `json:"view_count"`
	LikeCount    int64  `json:"like_count"`
	DislikeCount int64  `json:"dislike_count"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

type CommentResponse struct {
	ID         int64  `json:"id"`
	AuthorID   int64  `json:"author_id"`
	AuthorName string `json:"author_name"`
	Body       string `json:"body"`
	CreatedAt  string `json:"created_at"`
}

type VideoDetailResponse struct {
	VideoResponse
	Comments []CommentResponse `json:"comments"`
}

type AddCommentRequest struct {
	Body string `json:"body"`
}

// VideoHandler handles video-related HTTP requests.
type VideoHandler struct {
	videos    usecase.VideoService
	reactions usecase.ReactionService
	comments  usecase.CommentService

	maxUploadSize int64
}

// NewVideoHandler creates a new VideoHandler.
func NewVideoHandler(
	videos usecase.VideoService,
	reactions usecase.ReactionService,
	comments usecase.CommentService,
	maxUploadSize int64,
) *VideoHandler {
	return &VideoHandler{
		videos:        videos,
		reactions:     reactions,
		comments:      comments,
		maxUploadSize: maxUploadSize,
	}
}

// Upload handles POST /v1/videos
// Expects a multipart form with "video" and "thumbnail" file parts plus
// "title" and "description" fields.
func (h *VideoHandler) Upload(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetAccountID(r.Context())
	if ownerID == 0 {
		Error(w, http.StatusUnauthorized, "missing_identity", "X-Account-Id header is required")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		Error(w, http.StatusBadRequest, "invalid_request", "Expected a multipart form within the size limit")
		return
	}
	defer r.MultipartForm.RemoveAll()

	videoFile, videoHeader, err := r.FormFile("video")
	if err != nil {
		Error(w, http.StatusBadRequest, "missing_video", "A video file part is required")
		return
	}
	defer videoFile.Close()

	thumbFile, thumbHeader, err := r.FormFile("thumbnail")
	if err != nil {
		Error(w, http.StatusBadRequest, "missing_thumbnail", "A thumbnail file part is required")
		return
	}
	defer thumbFile.Close()

	title := r.FormValue("title")
	if title == "" {
		Error(w, http.StatusBadRequest, "invalid_title", "Title is required")
		return
	}

	video, err := h.videos.UploadVideo(r.Context(), usecase.UploadVideoInput{
		OwnerID:              ownerID,
		Title:                title,
		Description:          r.FormValue("description"),
		Video:                videoFile,
		VideoSize:            videoHeader.Size,
		VideoContentType:     videoHeader.Header.Get("Content-Type"),
		Thumbnail:            thumbFile,
		ThumbnailSize:        thumbHeader.Size,
		ThumbnailContentType: thumbHeader.Header.Get("Content-Type"),
	})
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	JSON(w, http.StatusCreated, toVideoResponse(video))
}

// Get handles GET /v1/videos/{id}
func (h *VideoHandler) Get(w http.ResponseWriter, r *http.Request) {
	videoID, err := videoIDParam(r)
	if err != nil {
		Error(w, http.StatusBadRequest, "invalid_video_id", "Video ID must be a positive integer")
		return
	}

	detail, err := h.videos.WatchVideo(r.Context(), videoID, middleware.GetAccountID(r.Context()))
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := VideoDetailResponse{
		VideoResponse: toVideoResponse(detail.Video),
		Comments:      make([]CommentResponse, 0, len(detail.Comments)),
	}
	for _, c := range detail.Comments {
		resp.Comments = append(resp.Comments, toCommentResponse(c))
	}

	JSON(w, http.StatusOK, resp)
}

// Metadata handles GET /v1/videos/{id}/metadata
//
// Unlike Get it records no view and reads through the metadata cache,
// so players can poll counters cheaply.
func (h *VideoHandler) Metadata(w http.ResponseWriter, r *http.Request) {
	videoID, err := videoIDParam(r)
	if err != nil {
		Error(w, http.StatusBadRequest, "invalid_video_id", "Video ID must be a positive integer")
		return
	}

	video, err := h.videos.GetVideo(r.Context(), videoID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, toVideoResponse(video))
}

// List handles GET /v1/videos
func (h *VideoHandler) List(w http.ResponseWriter, r *http.Request) {
	videos, err := h.videos.ListVideos(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := make([]VideoResponse, 0, len(videos))
	for _, v := range videos {
		resp = append(resp, toVideoResponse(v))
	}

	JSON(w, http.StatusOK, resp)
}

// Like handles POST /v1/videos/{id}/like
func (h *VideoHandler) Like(w http.ResponseWriter, r *http.Request) {
	h.toggleReaction(w, r, h.reactions.ToggleLike)
}

// Dislike handles POST /v1/videos/{id}/dislike
func (h *VideoHandler) Dislike(w http.ResponseWriter, r *http.Request) {
	h.toggleReaction(w, r, h.reactions.ToggleDislike)
}

func (h *VideoHandler) toggleReaction(
	w http.ResponseWriter,
	r *http.Request,
	toggle func(ctx context.Context, accountID, videoID int64) (*model.Video, error),
) {
	accountID := middleware.GetAccountID(r.Context())
	if accountID == 0 {
		Error(w, http.StatusUnauthorized, "missing_identity", "X-Account-Id header is required")
		return
	}

	videoID, err := videoIDParam(r)
	if err != nil {
		Error(w, http.StatusBadRequest, "invalid_video_id", "Video ID must be a positive integer")
		return
	}

	video, err := toggle(r.Context(), accountID, videoID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, toVideoResponse(video))
}

// Delete handles DELETE /v1/videos/{id}
func (h *VideoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	accountID := middleware.GetAccountID(r.Context())
	if accountID == 0 {
		Error(w, http.StatusUnauthorized, "missing_identity", "X-Account-Id header is required")
		return
	}

	videoID, err := videoIDParam(r)
	if err != nil {
		Error(w, http.StatusBadRequest, "invalid_video_id", "Video ID must be a positive integer")
		return
	}

	if err := h.videos.DeleteVideo(r.Context(), videoID, accountID); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddComment handles POST /v1/videos/{id}/comments
func (h *VideoHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	accountID := middleware.GetAccountID(r.Context())
	if accountID == 0 {
		Error(w, http.StatusUnauthorized, "missing_identity", "X-Account-Id header is required")
		return
	}

	videoID, err := videoIDParam(r)
	if err != nil {
		Error(w, http.StatusBadRequest, "invalid_video_id", "Video ID must be a positive integer")
		return
	}

	var req AddCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	comment, err := h.comments.AddComment(r.Context(), videoID, accountID, req.Body)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	JSON(w, http.StatusCreated, toCommentResponse(comment))
}

// ListComments handles GET /v1/videos/{id}/comments
func (h *VideoHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	videoID, err := videoIDParam(r)
	if err != nil {
		Error(w, http.StatusBadRequest, "invalid_video_id", "Video ID must be a positive integer")
		return
	}

	comments, err := h.comments.ListComments(r.Context(), videoID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		resp = append(resp, toCommentResponse(c))
	}

	JSON(w, http.StatusOK, resp)
}

func (h *VideoHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrVideoNotFound):
		Error(w, http.StatusNotFound, "video_not_found", "Video not found")
	case errors.Is(err, repository.ErrAccountNotFound):
		Error(w, http.StatusNotFound, "account_not_found", "Account not found")
	case errors.Is(err, usecase.ErrNotOwner):
		Error(w, http.StatusForbidden, "not_owner", "Only the owner may perform this operation")
	case errors.Is(err, model.ErrEmptyTitle):
		Error(w, http.StatusBadRequest, "invalid_title", "Title cannot be empty")
	case errors.Is(err, model.ErrTitleTooLong):
		Error(w, http.StatusBadRequest, "invalid_title", "Title exceeds maximum length")
	case errors.Is(err, model.ErrEmptyComment):
		Error(w, http.StatusBadRequest, "invalid_comment", "Comment body cannot be empty")
	case errors.Is(err, model.ErrCommentTooLong):
		Error(w, http.StatusBadRequest, "invalid_comment", "Comment exceeds maximum length")
	case errors.Is(err, model.ErrInvalidResourceURL):
		Error(w, http.StatusUnprocessableEntity, "invalid_resource_url", "Stored blob URL failed validation")
	case errors.Is(err, usecase.ErrUploadFailed):
		Error(w, http.StatusBadGateway, "upload_failed", "Failed to store the uploaded files")
	case errors.Is(err, usecase.ErrDeletionFailed):
		Error(w, http.StatusBadGateway, "deletion_failed", "Failed to delete the stored files")
	default:
		Error(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
	}
}

func videoIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid video ID")
	}
	return id, nil
}

func toVideoResponse(v *model.Video) VideoResponse {
	return VideoResponse{
		ID:           v.ID,
		OwnerID:      v.OwnerID,
		Title:        v.Title,
		Description:  v.Description,
		VideoURL:     v.VideoURL,
		ThumbnailURL: v.ThumbnailURL,
		ViewCount:    v.ViewCount,
		LikeCount:    v.LikeCount,
		DislikeCount: v.DislikeCount,
		CreatedAt:    v.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:    v.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func toCommentResponse(c *model.Comment) CommentResponse {
	return CommentResponse{
		ID:         c.ID,
		AuthorID:   c.AuthorID,
		AuthorName: c.AuthorName,
		Body:       c.Body,
		CreatedAt:  c.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
