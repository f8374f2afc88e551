package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"complainthub.backend/internal/domain/entities"
	domainerrors "complainthub.backend/internal/domain/errors"
	"complainthub.backend/internal/interfaces/http/middleware"
	"complainthub.backend/internal/interfaces/http/response"
	"complainthub.backend/internal/usecases"
)

// ProfileHandler handles profile endpoints
type ProfileHandler struct {
	profileUsecase *usecases.ProfileUsecase
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileUsecase *usecases.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{
		profileUsecase: profileUsecase,
	}
}

// GetOwn returns the caller's own profile with follow counts.
// GET /profile
func (h *ProfileHandler) GetOwn(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	profile, err := h.profileUsecase.Get(c.Request.Context(), userID, userID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("User not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, profile)
}

// GetByID returns another user's profile, including whether the caller
// follows them.
// GET /profile/:id
func (h *ProfileHandler) GetByID(c *gin.Context) {
	viewerID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid user ID"))
		return
	}

	profile, err := h.profileUsecase.Get(c.Request.Context(), viewerID, userID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("User not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, profile)
}

// Update applies a partial profile update.
// PUT /update-profile
func (h *ProfileHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	var input entities.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.profileUsecase.Update(c.Request.Context(), userID, &input); err != nil {
		if err == domainerrors.ErrInvalidInput {
			response.Error(c, domainerrors.BadRequest("No fields to update"))
			return
		}
		if err == domainerrors.ErrAlreadyExists {
			response.Error(c, domainerrors.Conflict("Username or email already taken"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Profile updated successfully",
	})
}

// UploadProfileImage replaces the caller's profile picture.
// POST /upload-profile
func (h *ProfileHandler) UploadProfileImage(c *gin.Context) {
	h.uploadImage(c, usecases.ImageKindProfile)
}

// UploadCoverImage replaces the caller's cover picture.
// POST /upload-cover
func (h *ProfileHandler) UploadCoverImage(c *gin.Context) {
	h.uploadImage(c, usecases.ImageKindCover)
}

func (h *ProfileHandler) uploadImage(c *gin.Context, kind string) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	fh, err := c.FormFile("image")
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Image file is required"))
		return
	}

	url, err := h.profileUsecase.UploadImage(c.Request.Context(), userID, kind, fh)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Image uploaded successfully",
		"url":     url,
	})
}
