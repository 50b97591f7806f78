package handler

import (
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

type RegisterAccountRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type AccountResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

type SubscriptionResponse struct {
	TargetID   int64 `json:"target_id"`
	Subscribed bool  `json:"subscribed"`
}

// AccountHandler handles account-related HTTP requests.
type AccountHandler struct {
	accounts      usecase.AccountService
	subscriptions usecase.SubscriptionService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(
	accounts usecase.AccountService,
	subscriptions usecase.SubscriptionService,
) *AccountHandler {
	return &AccountHandler{
		accounts:      accounts,
		subscriptions: subscriptions,
	}
}

// Register handles POST /v1/accounts
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	account, err := h.accounts.Register(r.Context(), req.FirstName, req.LastName, req.Email)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	JSON(w, http.StatusCreated, toAccountResponse(account))
}

// Get handles GET /v1/accounts/{id}
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	accountID, err := accountIDParam(r)
	if err != nil {
		Error(w, http.StatusBadRequest, "invalid_account_id", "Account ID must be a positive integer")
		return
	}

	account, err := h.accounts.GetAccount(r.Context(), accountID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, toAccountResponse(account))
}

// ToggleSubscription handles POST /v1/accounts/{id}/subscription
func (h *AccountHandler) ToggleSubscription(w http.ResponseWriter, r *http.Request) {
	subscriberID := middleware.GetAccountID(r.Context())
	if subscriberID == 0 {
		Error(w, http.StatusUnauthorized, "missing_identity", "X-Account-Id header is required")
		return
	}

	targetID, err := accountIDParam(r)
	if err != nil {
		Error(w, http.StatusBadRequest, "invalid_account_id", "Account ID must be a positive integer")
		return
	}

	subscribed, err := h.subscriptions.ToggleSubscription(r.Context(), subscriberID, targetID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, SubscriptionResponse{
		TargetID:   targetID,
		Subscribed: subscribed,
	})
}

// Subscriptions handles GET /v1/accounts/{id}/subscriptions
func (h *AccountHandler) Subscriptions(w http.ResponseWriter, r *http.Request) {
	accountID, err := accountIDParam(r)
	if err != nil {
		Error(w, http.StatusBadRequest, "invalid_account_id", "Account ID must be a positive integer")
		return
	}

	ids, err := h.subscriptions.ListSubscriptions(r.Context(), accountID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, idsOrEmpty(ids))
}

// Subscribers handles GET /v1/accounts/{id}/subscribers
func (h *AccountHandler) Subscribers(w http.ResponseWriter, r *http.Request) {
	accountID, err := accountIDParam(r)
	if err != nil {
		Error(w, http.StatusBadRequest, "invalid_account_id", "Account ID must be a positive integer")
		return
	}

	ids, err := h.subscriptions.ListSubscribers(r.Context(), accountID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, idsOrEmpty(ids))
}

// WatchHistory handles GET /v1/accounts/me/history
func (h *AccountHandler) WatchHistory(w http.ResponseWriter, r *http.Request) {
	accountID := middleware.GetAccountID(r.Context())
	if accountID == 0 {
		Error(w, http.StatusUnauthorized, "missing_identity", "X-Account-Id header is required")
		return
	}

	history, err := h.accounts.WatchHistory(r.Context(), accountID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, idsOrEmpty(history))
}

// Notifications handles GET /v1/accounts/me/notifications
func (h *AccountHandler) Notifications(w http.ResponseWriter, r *http.Request) {
	accountID := middleware.GetAccountID(r.Context())
	if accountID == 0 {
		Error(w, http.StatusUnauthorized, "missing_identity", "X-Account-Id header is required")
		return
	}

	notifications, err := h.accounts.Notifications(r.Context(), accountID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	if notifications == nil {
		notifications = []string{}
	}
	JSON(w, http.StatusOK, notifications)
}

func (h *AccountHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrAccountNotFound):
		Error(w, http.StatusNotFound, "account_not_found", "Account not found")
	case errors.Is(err, repository.ErrDuplicateAccount):
		Error(w, http.StatusConflict, "duplicate_account", "An account with this email already exists")
	case errors.Is(err, model.ErrSelfSubscription):
		Error(w, http.StatusBadRequest, "self_subscription", "An account cannot subscribe to itself")
	case errors.Is(err, model.ErrEmptyName):
		Error(w, http.StatusBadRequest, "invalid_name", "First and last name are required")
	case errors.Is(err, model.ErrInvalidEmail):
		Error(w, http.StatusBadRequest, "invalid_email", "Email address is not valid")
	default:
		Error(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
	}
}

func accountIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid account ID")
	}
	return id, nil
}

func idsOrEmpty(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}

func toAccountResponse(a *model.Account) AccountResponse {
	return AccountResponse{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Email:     a.Email,
		CreatedAt: a.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
