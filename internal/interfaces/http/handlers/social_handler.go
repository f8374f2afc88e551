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

// SocialHandler handles likes, saves, reposts, comments and follows.
type SocialHandler struct {
	socialUsecase *usecases.SocialUsecase
}

// NewSocialHandler creates a new social handler
func NewSocialHandler(socialUsecase *usecases.SocialUsecase) *SocialHandler {
	return &SocialHandler{
		socialUsecase: socialUsecase,
	}
}

func (h *SocialHandler) bindReaction(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return uuid.Nil, uuid.Nil, false
	}

	var input entities.ReactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return uuid.Nil, uuid.Nil, false
	}

	return userID, input.ComplaintID, true
}

// Like records a like. Repeats are absorbed silently.
// POST /like
func (h *SocialHandler) Like(c *gin.Context) {
	userID, complaintID, ok := h.bindReaction(c)
	if !ok {
		return
	}

	if err := h.socialUsecase.Like(c.Request.Context(), userID, complaintID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Post liked"})
}

// Unlike removes a like.
// DELETE /like
func (h *SocialHandler) Unlike(c *gin.Context) {
	userID, complaintID, ok := h.bindReaction(c)
	if !ok {
		return
	}

	if err := h.socialUsecase.Unlike(c.Request.Context(), userID, complaintID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Like removed"})
}

// Save bookmarks a post for the caller.
// POST /save
func (h *SocialHandler) Save(c *gin.Context) {
	userID, complaintID, ok := h.bindReaction(c)
	if !ok {
		return
	}

	if err := h.socialUsecase.Save(c.Request.Context(), userID, complaintID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Post saved"})
}

// Unsave removes a bookmark.
// DELETE /save
func (h *SocialHandler) Unsave(c *gin.Context) {
	userID, complaintID, ok := h.bindReaction(c)
	if !ok {
		return
	}

	if err := h.socialUsecase.Unsave(c.Request.Context(), userID, complaintID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Save removed"})
}

// Repost shares a post. Reposting the same post twice is a conflict.
// POST /repost
func (h *SocialHandler) Repost(c *gin.Context) {
	userID, complaintID, ok := h.bindReaction(c)
	if !ok {
		return
	}

	if err := h.socialUsecase.Repost(c.Request.Context(), userID, complaintID); err != nil {
		if err == domainerrors.ErrAlreadyReposted {
			response.Error(c, domainerrors.Conflict("You already reposted this post"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Post reposted"})
}

// Comment appends a comment to a post.
// POST /comment
func (h *SocialHandler) Comment(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	var input entities.CommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	comment, err := h.socialUsecase.Comment(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Comment added",
		"comment": comment,
	})
}

// Comments lists a post's comments, newest first.
// GET /comments/:complaint_id
func (h *SocialHandler) Comments(c *gin.Context) {
	complaintID, err := uuid.Parse(c.Param("complaint_id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid complaint ID"))
		return
	}

	comments, err := h.socialUsecase.Comments(c.Request.Context(), complaintID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, comments)
}

// Follow subscribes the caller to another user.
// POST /follow
func (h *SocialHandler) Follow(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	var input entities.FollowInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.socialUsecase.Follow(c.Request.Context(), userID, input.FollowingID); err != nil {
		if err == domainerrors.ErrSelfFollow {
			response.Error(c, domainerrors.BadRequest("You cannot follow yourself"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Followed successfully"})
}

// Unfollow removes a follow edge.
// POST /unfollow
func (h *SocialHandler) Unfollow(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	var input entities.FollowInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.socialUsecase.Unfollow(c.Request.Context(), userID, input.FollowingID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Unfollowed successfully"})
}

// Followers lists the users following the given user.
// GET /followers/:id
func (h *SocialHandler) Followers(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid user ID"))
		return
	}

	users, err := h.socialUsecase.Followers(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, users)
}

// Following lists the users the given user follows.
// GET /following/:id
func (h *SocialHandler) Following(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid user ID"))
		return
	}

	users, err := h.socialUsecase.Following(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, users)
}
