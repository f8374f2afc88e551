package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"complainthub.backend/internal/domain/entities"
	domainerrors "complainthub.backend/internal/domain/errors"
	"complainthub.backend/internal/domain/push"
	"complainthub.backend/internal/domain/repositories"
	"complainthub.backend/pkg/logger"
)

// SocialUsecase mutates the reaction and follow edges. Reactions that target
// another user's content dispatch a best-effort push notification; delivery
// failures are logged and never surface to the caller.
type SocialUsecase struct {
	reactionRepo  repositories.ReactionRepository
	commentRepo   repositories.CommentRepository
	followerRepo  repositories.FollowerRepository
	complaintRepo repositories.ComplaintRepository
	userRepo      repositories.UserRepository
	sender        push.Sender
}

// NewSocialUsecase creates a new social usecase
func NewSocialUsecase(
	reactionRepo repositories.ReactionRepository,
	commentRepo repositories.CommentRepository,
	followerRepo repositories.FollowerRepository,
	complaintRepo repositories.ComplaintRepository,
	userRepo repositories.UserRepository,
	sender push.Sender,
) *SocialUsecase {
	return &SocialUsecase{
		reactionRepo:  reactionRepo,
		commentRepo:   commentRepo,
		followerRepo:  followerRepo,
		complaintRepo: complaintRepo,
		userRepo:      userRepo,
		sender:        sender,
	}
}

// Like inserts the like edge; liking twice is a no-op.
func (u *SocialUsecase) Like(ctx context.Context, userID, complaintID uuid.UUID) error {
	if err := u.reactionRepo.AddLike(ctx, userID, complaintID); err != nil {
		return err
	}
	u.notifyOwner(ctx, complaintID, userID, "New Like", "Someone liked your complaint!")
	return nil
}

// Unlike removes the like edge.
func (u *SocialUsecase) Unlike(ctx context.Context, userID, complaintID uuid.UUID) error {
	return u.reactionRepo.RemoveLike(ctx, userID, complaintID)
}

// Save inserts the save edge, independent of like state.
func (u *SocialUsecase) Save(ctx context.Context, userID, complaintID uuid.UUID) error {
	return u.reactionRepo.AddSave(ctx, userID, complaintID)
}

// Unsave removes the save edge.
func (u *SocialUsecase) Unsave(ctx context.Context, userID, complaintID uuid.UUID) error {
	return u.reactionRepo.RemoveSave(ctx, userID, complaintID)
}

// Repost inserts the repost edge. A duplicate is a conflict, not a silent
// success.
func (u *SocialUsecase) Repost(ctx context.Context, userID, complaintID uuid.UUID) error {
	if err := u.reactionRepo.AddRepost(ctx, userID, complaintID); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return domainerrors.ErrAlreadyReposted
		}
		return err
	}
	return nil
}

// Comment appends a comment and notifies the post owner.
func (u *SocialUsecase) Comment(ctx context.Context, userID uuid.UUID, input *entities.CommentInput) (*entities.Comment, error) {
	comment := &entities.Comment{
		ID:          uuid.New(),
		UserID:      userID,
		ComplaintID: input.ComplaintID,
		Comment:     input.Comment,
		CreatedAt:   time.Now(),
	}
	if err := u.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	u.notifyOwner(ctx, input.ComplaintID, userID, "New Comment", "Someone commented on your post!")
	return comment, nil
}

// Comments lists a complaint's comments, newest first.
func (u *SocialUsecase) Comments(ctx context.Context, complaintID uuid.UUID) ([]*entities.CommentView, error) {
	return u.commentRepo.ListByComplaint(ctx, complaintID)
}

// Follow inserts the follow edge. Following yourself is rejected; following
// twice is a no-op.
func (u *SocialUsecase) Follow(ctx context.Context, followerID, followingID uuid.UUID) error {
	if followerID == followingID {
		return domainerrors.ErrSelfFollow
	}
	if err := u.followerRepo.Follow(ctx, followerID, followingID); err != nil {
		return err
	}
	u.notifyUser(ctx, followingID, "New Follower", "Someone just followed you!")
	return nil
}

// Unfollow removes the follow edge.
func (u *SocialUsecase) Unfollow(ctx context.Context, followerID, followingID uuid.UUID) error {
	return u.followerRepo.Unfollow(ctx, followerID, followingID)
}

// Followers lists the users following userID.
func (u *SocialUsecase) Followers(ctx context.Context, userID uuid.UUID) ([]*entities.UserSummary, error) {
	return u.followerRepo.Followers(ctx, userID)
}

// Following lists the users userID follows.
func (u *SocialUsecase) Following(ctx context.Context, userID uuid.UUID) ([]*entities.UserSummary, error) {
	return u.followerRepo.Following(ctx, userID)
}

// notifyOwner pushes to the complaint owner's registered destination. The
// owner's own reactions are skipped by the token lookup.
func (u *SocialUsecase) notifyOwner(ctx context.Context, complaintID, actorID uuid.UUID, title, body string) {
	token, err := u.complaintRepo.OwnerPushToken(ctx, complaintID, actorID)
	if err != nil {
		return
	}
	u.deliver(ctx, token, title, body)
}

// notifyUser pushes to a specific user's registered destination.
func (u *SocialUsecase) notifyUser(ctx context.Context, userID uuid.UUID, title, body string) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil || !user.ExpoPushToken.Valid || user.ExpoPushToken.String == "" {
		return
	}
	u.deliver(ctx, user.ExpoPushToken.String, title, body)
}

func (u *SocialUsecase) deliver(ctx context.Context, token, title, body string) {
	msg := push.Message{To: token, Title: title, Body: body, Sound: "default"}
	if err := u.sender.Send(ctx, msg); err != nil {
		logger.Warn(ctx, "push delivery failed",
			zap.String("title", title), zap.Error(err))
	}
}
