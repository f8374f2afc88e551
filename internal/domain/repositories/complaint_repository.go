package repositories

import (
	"context"

	"github.com/google/uuid"
	"complainthub.backend/internal/domain/entities"
)

// ComplaintRepository defines complaint write operations
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *entities.Complaint) error
	AddFiles(ctx context.Context, files []*entities.ComplaintFile) error
	// DeleteFiles removes the attachment rows of a complaint and returns
	// their stored paths so the caller can unlink them from disk.
	DeleteFiles(ctx context.Context, complaintID uuid.UUID) ([]string, error)
	// DeleteOwned deletes the complaint only when ownerID owns it. A missing
	// row and a foreign row are both reported as ErrForbidden.
	DeleteOwned(ctx context.Context, complaintID, ownerID uuid.UUID) error
	// OwnerPushToken returns the push token of the complaint's author, unless
	// the author is excludeID or has no token registered (ErrNotFound).
	OwnerPushToken(ctx context.Context, complaintID, excludeID uuid.UUID) (string, error)
}

// FeedRepository defines the read side of the feed composition: complaint
// rows joined to authors, counts and viewer-relative flags. File grouping
// happens in the usecase layer.
type FeedRepository interface {
	GlobalFeed(ctx context.Context, viewerID uuid.UUID) ([]*entities.FeedPost, error)
	OwnFeed(ctx context.Context, viewerID uuid.UUID) ([]*entities.FeedPost, error)
	UserFeed(ctx context.Context, viewerID, targetID uuid.UUID) ([]*entities.FeedPost, error)
	LikedFeed(ctx context.Context, viewerID uuid.UUID) ([]*entities.FeedPost, error)
	FilesByComplaints(ctx context.Context, complaintIDs []uuid.UUID) ([]*entities.ComplaintFile, error)
	// RecentByAuthors returns posts authored by any of the given users,
	// newest first, each with at most one representative file.
	RecentByAuthors(ctx context.Context, authorIDs []uuid.UUID) ([]*entities.NotificationPost, error)
}
