package repositories

import (
	"context"

	"github.com/google/uuid"
	"complainthub.backend/internal/domain/entities"
)

// ReactionRepository defines the like/save/repost membership edges. Add
// operations on likes and saves are insert-if-absent; AddRepost reports a
// duplicate as ErrAlreadyExists.
type ReactionRepository interface {
	AddLike(ctx context.Context, userID, complaintID uuid.UUID) error
	RemoveLike(ctx context.Context, userID, complaintID uuid.UUID) error
	AddSave(ctx context.Context, userID, complaintID uuid.UUID) error
	RemoveSave(ctx context.Context, userID, complaintID uuid.UUID) error
	AddRepost(ctx context.Context, userID, complaintID uuid.UUID) error
}

// CommentRepository defines comment operations
type CommentRepository interface {
	Create(ctx context.Context, comment *entities.Comment) error
	ListByComplaint(ctx context.Context, complaintID uuid.UUID) ([]*entities.CommentView, error)
}

// FollowerRepository defines the directed follow graph. Follow is
// insert-if-absent; self-follow rejection happens at the service layer.
type FollowerRepository interface {
	Follow(ctx context.Context, followerID, followingID uuid.UUID) error
	Unfollow(ctx context.Context, followerID, followingID uuid.UUID) error
	Followers(ctx context.Context, userID uuid.UUID) ([]*entities.UserSummary, error)
	Following(ctx context.Context, userID uuid.UUID) ([]*entities.UserSummary, error)
	FollowingIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}
