package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"complainthub.backend/internal/domain/entities"
	domainerrors "complainthub.backend/internal/domain/errors"
	"complainthub.backend/internal/domain/push"
	"complainthub.backend/internal/interfaces/http/middleware"
)

// Function-field stubs for the repository boundaries. Unset fields return
// zero values so each test only wires the calls it cares about.

type userRepoStub struct {
	createFn       func(ctx context.Context, user *entities.User) error
	getByIDFn      func(ctx context.Context, id uuid.UUID) (*entities.User, error)
	getByEmailFn   func(ctx context.Context, email string) (*entities.User, error)
	updateFieldsFn func(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	setPushTokenFn func(ctx context.Context, id uuid.UUID, token string) error
	profileFn      func(ctx context.Context, viewerID, userID uuid.UUID) (*entities.Profile, error)
	searchFn       func(ctx context.Context, viewerID uuid.UUID, query string, limit int) ([]*entities.UserSearchResult, error)
	newestFn       func(ctx context.Context, viewerID uuid.UUID, limit int) ([]*entities.UserSearchResult, error)
	randomFn       func(ctx context.Context, viewerID uuid.UUID, limit int) ([]*entities.UserSearchResult, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *entities.User) error {
	if s.createFn != nil {
		return s.createFn(ctx, user)
	}
	return nil
}

func (s *userRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	if s.getByEmailFn != nil {
		return s.getByEmailFn(ctx, email)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if s.updateFieldsFn != nil {
		return s.updateFieldsFn(ctx, id, fields)
	}
	return nil
}

func (s *userRepoStub) SetPushToken(ctx context.Context, id uuid.UUID, token string) error {
	if s.setPushTokenFn != nil {
		return s.setPushTokenFn(ctx, id, token)
	}
	return nil
}

func (s *userRepoStub) Profile(ctx context.Context, viewerID, userID uuid.UUID) (*entities.Profile, error) {
	if s.profileFn != nil {
		return s.profileFn(ctx, viewerID, userID)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) Search(ctx context.Context, viewerID uuid.UUID, query string, limit int) ([]*entities.UserSearchResult, error) {
	if s.searchFn != nil {
		return s.searchFn(ctx, viewerID, query, limit)
	}
	return []*entities.UserSearchResult{}, nil
}

func (s *userRepoStub) Newest(ctx context.Context, viewerID uuid.UUID, limit int) ([]*entities.UserSearchResult, error) {
	if s.newestFn != nil {
		return s.newestFn(ctx, viewerID, limit)
	}
	return []*entities.UserSearchResult{}, nil
}

func (s *userRepoStub) Random(ctx context.Context, viewerID uuid.UUID, limit int) ([]*entities.UserSearchResult, error) {
	if s.randomFn != nil {
		return s.randomFn(ctx, viewerID, limit)
	}
	return []*entities.UserSearchResult{}, nil
}

type otpRepoStub struct {
	createFn            func(ctx context.Context, userID uuid.UUID, code string, expiresAt time.Time) error
	invalidatePendingFn func(ctx context.Context, userID uuid.UUID) error
	consumeFn           func(ctx context.Context, userID uuid.UUID, code string, now time.Time) error
}

func (s *otpRepoStub) Create(ctx context.Context, userID uuid.UUID, code string, expiresAt time.Time) error {
	if s.createFn != nil {
		return s.createFn(ctx, userID, code, expiresAt)
	}
	return nil
}

func (s *otpRepoStub) InvalidatePending(ctx context.Context, userID uuid.UUID) error {
	if s.invalidatePendingFn != nil {
		return s.invalidatePendingFn(ctx, userID)
	}
	return nil
}

func (s *otpRepoStub) Consume(ctx context.Context, userID uuid.UUID, code string, now time.Time) error {
	if s.consumeFn != nil {
		return s.consumeFn(ctx, userID, code, now)
	}
	return nil
}

type mailerStub struct {
	sendOtpFn func(ctx context.Context, email, code string) error
	sent      []string
}

func (s *mailerStub) SendOtp(ctx context.Context, email, code string) error {
	s.sent = append(s.sent, code)
	if s.sendOtpFn != nil {
		return s.sendOtpFn(ctx, email, code)
	}
	return nil
}

type reactionRepoStub struct {
	addLikeFn    func(ctx context.Context, userID, complaintID uuid.UUID) error
	removeLikeFn func(ctx context.Context, userID, complaintID uuid.UUID) error
	addSaveFn    func(ctx context.Context, userID, complaintID uuid.UUID) error
	removeSaveFn func(ctx context.Context, userID, complaintID uuid.UUID) error
	addRepostFn  func(ctx context.Context, userID, complaintID uuid.UUID) error
}

func (s *reactionRepoStub) AddLike(ctx context.Context, userID, complaintID uuid.UUID) error {
	if s.addLikeFn != nil {
		return s.addLikeFn(ctx, userID, complaintID)
	}
	return nil
}

func (s *reactionRepoStub) RemoveLike(ctx context.Context, userID, complaintID uuid.UUID) error {
	if s.removeLikeFn != nil {
		return s.removeLikeFn(ctx, userID, complaintID)
	}
	return nil
}

func (s *reactionRepoStub) AddSave(ctx context.Context, userID, complaintID uuid.UUID) error {
	if s.addSaveFn != nil {
		return s.addSaveFn(ctx, userID, complaintID)
	}
	return nil
}

func (s *reactionRepoStub) RemoveSave(ctx context.Context, userID, complaintID uuid.UUID) error {
	if s.removeSaveFn != nil {
		return s.removeSaveFn(ctx, userID, complaintID)
	}
	return nil
}

func (s *reactionRepoStub) AddRepost(ctx context.Context, userID, complaintID uuid.UUID) error {
	if s.addRepostFn != nil {
		return s.addRepostFn(ctx, userID, complaintID)
	}
	return nil
}

type commentRepoStub struct {
	createFn func(ctx context.Context, comment *entities.Comment) error
	listFn   func(ctx context.Context, complaintID uuid.UUID) ([]*entities.CommentView, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *entities.Comment) error {
	if s.createFn != nil {
		return s.createFn(ctx, comment)
	}
	return nil
}

func (s *commentRepoStub) ListByComplaint(ctx context.Context, complaintID uuid.UUID) ([]*entities.CommentView, error) {
	if s.listFn != nil {
		return s.listFn(ctx, complaintID)
	}
	return []*entities.CommentView{}, nil
}

type followerRepoStub struct {
	followFn       func(ctx context.Context, followerID, followingID uuid.UUID) error
	unfollowFn     func(ctx context.Context, followerID, followingID uuid.UUID) error
	followersFn    func(ctx context.Context, userID uuid.UUID) ([]*entities.UserSummary, error)
	followingFn    func(ctx context.Context, userID uuid.UUID) ([]*entities.UserSummary, error)
	followingIDsFn func(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

func (s *followerRepoStub) Follow(ctx context.Context, followerID, followingID uuid.UUID) error {
	if s.followFn != nil {
		return s.followFn(ctx, followerID, followingID)
	}
	return nil
}

func (s *followerRepoStub) Unfollow(ctx context.Context, followerID, followingID uuid.UUID) error {
	if s.unfollowFn != nil {
		return s.unfollowFn(ctx, followerID, followingID)
	}
	return nil
}

func (s *followerRepoStub) Followers(ctx context.Context, userID uuid.UUID) ([]*entities.UserSummary, error) {
	if s.followersFn != nil {
		return s.followersFn(ctx, userID)
	}
	return []*entities.UserSummary{}, nil
}

func (s *followerRepoStub) Following(ctx context.Context, userID uuid.UUID) ([]*entities.UserSummary, error) {
	if s.followingFn != nil {
		return s.followingFn(ctx, userID)
	}
	return []*entities.UserSummary{}, nil
}

func (s *followerRepoStub) FollowingIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	if s.followingIDsFn != nil {
		return s.followingIDsFn(ctx, userID)
	}
	return nil, nil
}

type complaintRepoStub struct {
	createFn         func(ctx context.Context, complaint *entities.Complaint) error
	addFilesFn       func(ctx context.Context, files []*entities.ComplaintFile) error
	deleteFilesFn    func(ctx context.Context, complaintID uuid.UUID) ([]string, error)
	deleteOwnedFn    func(ctx context.Context, complaintID, ownerID uuid.UUID) error
	ownerPushTokenFn func(ctx context.Context, complaintID, excludeID uuid.UUID) (string, error)
}

func (s *complaintRepoStub) Create(ctx context.Context, complaint *entities.Complaint) error {
	if s.createFn != nil {
		return s.createFn(ctx, complaint)
	}
	return nil
}

func (s *complaintRepoStub) AddFiles(ctx context.Context, files []*entities.ComplaintFile) error {
	if s.addFilesFn != nil {
		return s.addFilesFn(ctx, files)
	}
	return nil
}

func (s *complaintRepoStub) DeleteFiles(ctx context.Context, complaintID uuid.UUID) ([]string, error) {
	if s.deleteFilesFn != nil {
		return s.deleteFilesFn(ctx, complaintID)
	}
	return nil, nil
}

func (s *complaintRepoStub) DeleteOwned(ctx context.Context, complaintID, ownerID uuid.UUID) error {
	if s.deleteOwnedFn != nil {
		return s.deleteOwnedFn(ctx, complaintID, ownerID)
	}
	return nil
}

func (s *complaintRepoStub) OwnerPushToken(ctx context.Context, complaintID, excludeID uuid.UUID) (string, error) {
	if s.ownerPushTokenFn != nil {
		return s.ownerPushTokenFn(ctx, complaintID, excludeID)
	}
	return "", domainerrors.ErrNotFound
}

type uowStub struct {
	doFn func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (s *uowStub) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.doFn != nil {
		return s.doFn(ctx, fn)
	}
	return fn(ctx)
}

type feedRepoStub struct {
	globalFeedFn        func(ctx context.Context, viewerID uuid.UUID) ([]*entities.FeedPost, error)
	ownFeedFn           func(ctx context.Context, viewerID uuid.UUID) ([]*entities.FeedPost, error)
	userFeedFn          func(ctx context.Context, viewerID, targetID uuid.UUID) ([]*entities.FeedPost, error)
	likedFeedFn         func(ctx context.Context, viewerID uuid.UUID) ([]*entities.FeedPost, error)
	filesByComplaintsFn func(ctx context.Context, complaintIDs []uuid.UUID) ([]*entities.ComplaintFile, error)
	recentByAuthorsFn   func(ctx context.Context, authorIDs []uuid.UUID) ([]*entities.NotificationPost, error)
}

func (s *feedRepoStub) GlobalFeed(ctx context.Context, viewerID uuid.UUID) ([]*entities.FeedPost, error) {
	if s.globalFeedFn != nil {
		return s.globalFeedFn(ctx, viewerID)
	}
	return []*entities.FeedPost{}, nil
}

func (s *feedRepoStub) OwnFeed(ctx context.Context, viewerID uuid.UUID) ([]*entities.FeedPost, error) {
	if s.ownFeedFn != nil {
		return s.ownFeedFn(ctx, viewerID)
	}
	return []*entities.FeedPost{}, nil
}

func (s *feedRepoStub) UserFeed(ctx context.Context, viewerID, targetID uuid.UUID) ([]*entities.FeedPost, error) {
	if s.userFeedFn != nil {
		return s.userFeedFn(ctx, viewerID, targetID)
	}
	return []*entities.FeedPost{}, nil
}

func (s *feedRepoStub) LikedFeed(ctx context.Context, viewerID uuid.UUID) ([]*entities.FeedPost, error) {
	if s.likedFeedFn != nil {
		return s.likedFeedFn(ctx, viewerID)
	}
	return []*entities.FeedPost{}, nil
}

func (s *feedRepoStub) FilesByComplaints(ctx context.Context, complaintIDs []uuid.UUID) ([]*entities.ComplaintFile, error) {
	if s.filesByComplaintsFn != nil {
		return s.filesByComplaintsFn(ctx, complaintIDs)
	}
	return nil, nil
}

func (s *feedRepoStub) RecentByAuthors(ctx context.Context, authorIDs []uuid.UUID) ([]*entities.NotificationPost, error) {
	if s.recentByAuthorsFn != nil {
		return s.recentByAuthorsFn(ctx, authorIDs)
	}
	return nil, nil
}

type pushSenderStub struct {
	sendFn func(ctx context.Context, msg push.Message) error
	sent   []push.Message
}

func (s *pushSenderStub) Send(ctx context.Context, msg push.Message) error {
	s.sent = append(s.sent, msg)
	if s.sendFn != nil {
		return s.sendFn(ctx, msg)
	}
	return nil
}

// asUser injects an authenticated identity the way the auth middleware does.
func asUser(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Set(middleware.UserEmailKey, "test@example.com")
		c.Set(middleware.UserRoleKey, "user")
		c.Next()
	}
}
