package entities

import (
	"time"

	"github.com/google/uuid"
)

// Comment is an append-only reply to a complaint.
type Comment struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	ComplaintID uuid.UUID `json:"complaint_id"`
	Comment     string    `json:"comment"`
	CreatedAt   time.Time `json:"created_at"`
}

// CommentView is the shape returned by comment listings.
type CommentView struct {
	Text     string `json:"text"`
	Username string `json:"username"`
}

// ReactionInput targets a complaint with a like/save/repost mutation.
type ReactionInput struct {
	ComplaintID uuid.UUID `json:"complaint_id" binding:"required"`
}

// CommentInput represents input for appending a comment.
type CommentInput struct {
	ComplaintID uuid.UUID `json:"complaint_id" binding:"required"`
	Comment     string    `json:"comment" binding:"required,min=1,max=2000"`
}

// FollowInput targets a user with a follow/unfollow mutation.
type FollowInput struct {
	FollowingID uuid.UUID `json:"following_id" binding:"required"`
}
