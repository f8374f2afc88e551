package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	domainerrors "complainthub.backend/internal/domain/errors"
	"complainthub.backend/internal/interfaces/http/middleware"
	"complainthub.backend/internal/interfaces/http/response"
	"complainthub.backend/internal/usecases"
)

// ComplaintHandler handles complaint creation, feeds and deletion.
type ComplaintHandler struct {
	complaintUsecase *usecases.ComplaintUsecase
	feedUsecase      *usecases.FeedUsecase
}

// NewComplaintHandler creates a new complaint handler
func NewComplaintHandler(complaintUsecase *usecases.ComplaintUsecase, feedUsecase *usecases.FeedUsecase) *ComplaintHandler {
	return &ComplaintHandler{
		complaintUsecase: complaintUsecase,
		feedUsecase:      feedUsecase,
	}
}

// Create accepts a multipart form with an optional text field and up to
// five attachments under "files".
// POST /complaints
func (h *ComplaintHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid multipart form"))
		return
	}

	text := c.PostForm("text_content")
	files := form.File["files"]

	complaint, err := h.complaintUsecase.Create(c.Request.Context(), userID, text, files)
	if err != nil {
		if err == domainerrors.ErrInvalidInput {
			response.Error(c, domainerrors.BadRequest("A complaint needs text or at least one file, and at most five files"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message":   "Complaint created successfully",
		"complaint": complaint,
	})
}

// GlobalFeed returns everyone else's posts for the caller.
// GET /complaints-feed
func (h *ComplaintHandler) GlobalFeed(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	posts, err := h.feedUsecase.GlobalFeed(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, posts)
}

// OwnFeed returns the caller's own posts.
// GET /my-complaints
func (h *ComplaintHandler) OwnFeed(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	posts, err := h.feedUsecase.OwnFeed(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, posts)
}

// UserFeed returns another user's posts with the caller's reaction flags.
// GET /complaints-by-user?user_id=
func (h *ComplaintHandler) UserFeed(c *gin.Context) {
	viewerID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	targetID, err := uuid.Parse(c.Query("user_id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid user_id"))
		return
	}

	posts, err := h.feedUsecase.UserFeed(c.Request.Context(), viewerID, targetID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, posts)
}

// LikedFeed returns posts the caller liked, excluding their own.
// GET /liked-posts
func (h *ComplaintHandler) LikedFeed(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	posts, err := h.feedUsecase.LikedFeed(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, posts)
}

// Delete removes one of the caller's own complaints along with its files.
// DELETE /complaints/:id
func (h *ComplaintHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	complaintID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid complaint ID"))
		return
	}

	if err := h.complaintUsecase.Delete(c.Request.Context(), userID, complaintID); err != nil {
		if err == domainerrors.ErrForbidden {
			response.Error(c, domainerrors.Forbidden("You can only delete your own complaints"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Complaint deleted successfully",
	})
}
