package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"complainthub.backend/internal/domain/entities"
	domainerrors "complainthub.backend/internal/domain/errors"
	"complainthub.backend/internal/domain/push"
	"complainthub.backend/internal/domain/repositories"
)

// NotificationUsecase derives the activity digest from the follow graph and
// manages push registration.
type NotificationUsecase struct {
	feedRepo     repositories.FeedRepository
	followerRepo repositories.FollowerRepository
	userRepo     repositories.UserRepository
	sender       push.Sender
}

// NewNotificationUsecase creates a new notification usecase
func NewNotificationUsecase(
	feedRepo repositories.FeedRepository,
	followerRepo repositories.FollowerRepository,
	userRepo repositories.UserRepository,
	sender push.Sender,
) *NotificationUsecase {
	return &NotificationUsecase{
		feedRepo:     feedRepo,
		followerRepo: followerRepo,
		userRepo:     userRepo,
		sender:       sender,
	}
}

// Digest buckets recent posts by followed users (and the viewer) into "new"
// (last 60 minutes) and "today" (since local midnight, before the cutoff).
// Older posts are dropped. The query's descending order is preserved inside
// each bucket.
func (u *NotificationUsecase) Digest(ctx context.Context, viewerID uuid.UUID, now time.Time) (*entities.NotificationDigest, error) {
	ids, err := u.followerRepo.FollowingIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	ids = append(ids, viewerID)

	posts, err := u.feedRepo.RecentByAuthors(ctx, ids)
	if err != nil {
		return nil, err
	}

	hourAgo := now.Add(-time.Hour)
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	digest := &entities.NotificationDigest{
		New:   []*entities.NotificationPost{},
		Today: []*entities.NotificationPost{},
	}
	for _, post := range posts {
		if post.File.Valid {
			post.File = null.StringFrom(NormalizeFileURL(post.File.String))
		}
		switch {
		case post.CreatedAt.After(hourAgo):
			digest.New = append(digest.New, post)
		case !post.CreatedAt.Before(midnight):
			digest.Today = append(digest.Today, post)
		}
	}
	return digest, nil
}

// SavePushToken registers the caller's push delivery destination.
func (u *NotificationUsecase) SavePushToken(ctx context.Context, userID uuid.UUID, token string) error {
	return u.userRepo.SetPushToken(ctx, userID, token)
}

// TestPush sends a test notification to the caller's registered token.
func (u *NotificationUsecase) TestPush(ctx context.Context, userID uuid.UUID) error {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !user.ExpoPushToken.Valid || user.ExpoPushToken.String == "" {
		return domainerrors.ErrInvalidInput
	}

	return u.sender.Send(ctx, push.Message{
		To:    user.ExpoPushToken.String,
		Title: "Test Notification",
		Body:  "Push delivery is working.",
		Sound: "default",
	})
}
