package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"complainthub.backend/internal/domain/entities"
	domainerrors "complainthub.backend/internal/domain/errors"
	"complainthub.backend/internal/interfaces/http/middleware"
	"complainthub.backend/internal/interfaces/http/response"
	"complainthub.backend/internal/usecases"
)

// NotificationHandler handles the notification digest and push token
// registration.
type NotificationHandler struct {
	notificationUsecase *usecases.NotificationUsecase
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationUsecase *usecases.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{
		notificationUsecase: notificationUsecase,
	}
}

// Digest returns recent posts from followed users bucketed into "new"
// (last hour) and "today" (since midnight).
// GET /notifications-feed
func (h *NotificationHandler) Digest(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	digest, err := h.notificationUsecase.Digest(c.Request.Context(), userID, time.Now())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, digest)
}

// SavePushToken stores the caller's push delivery token.
// POST /save-push-token
func (h *NotificationHandler) SavePushToken(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	var input entities.SavePushTokenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.notificationUsecase.SavePushToken(c.Request.Context(), userID, input.Token); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Push token saved"})
}

// TestPush sends a test notification to the caller's registered token.
// POST /notifications-test
func (h *NotificationHandler) TestPush(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	if err := h.notificationUsecase.TestPush(c.Request.Context(), userID); err != nil {
		if err == domainerrors.ErrInvalidInput {
			response.Error(c, domainerrors.BadRequest("No push token registered"))
			return
		}
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("User not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Test notification sent"})
}
