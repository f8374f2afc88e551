package usecases_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"complainthub.backend/internal/domain/entities"
	"complainthub.backend/internal/domain/push"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	args := m.Called(ctx, f)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return f(ctx)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockUserRepository) SetPushToken(ctx context.Context, id uuid.UUID, token string) error {
	args := m.Called(ctx, id, token)
	return args.Error(0)
}

func (m *MockUserRepository) Profile(ctx context.Context, viewerID, userID uuid.UUID) (*entities.Profile, error) {
	args := m.Called(ctx, viewerID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Profile), args.Error(1)
}

func (m *MockUserRepository) Search(ctx context.Context, viewerID uuid.UUID, query string, limit int) ([]*entities.UserSearchResult, error) {
	args := m.Called(ctx, viewerID, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.UserSearchResult), args.Error(1)
}

func (m *MockUserRepository) Newest(ctx context.Context, viewerID uuid.UUID, limit int) ([]*entities.UserSearchResult, error) {
	args := m.Called(ctx, viewerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.UserSearchResult), args.Error(1)
}

func (m *MockUserRepository) Random(ctx context.Context, viewerID uuid.UUID, limit int) ([]*entities.UserSearchResult, error) {
	args := m.Called(ctx, viewerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.UserSearchResult), args.Error(1)
}

// Mock OtpRepository
type MockOtpRepository struct {
	mock.Mock
}

func (m *MockOtpRepository) Create(ctx context.Context, userID uuid.UUID, code string, expiresAt time.Time) error {
	args := m.Called(ctx, userID, code, expiresAt)
	return args.Error(0)
}

func (m *MockOtpRepository) InvalidatePending(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockOtpRepository) Consume(ctx context.Context, userID uuid.UUID, code string, now time.Time) error {
	args := m.Called(ctx, userID, code, now)
	return args.Error(0)
}

// Mock ComplaintRepository
type MockComplaintRepository struct {
	mock.Mock
}

func (m *MockComplaintRepository) Create(ctx context.Context, complaint *entities.Complaint) error {
	args := m.Called(ctx, complaint)
	return args.Error(0)
}

func (m *MockComplaintRepository) AddFiles(ctx context.Context, files []*entities.ComplaintFile) error {
	args := m.Called(ctx, files)
	return args.Error(0)
}

func (m *MockComplaintRepository) DeleteFiles(ctx context.Context, complaintID uuid.UUID) ([]string, error) {
	args := m.Called(ctx, complaintID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockComplaintRepository) DeleteOwned(ctx context.Context, complaintID, ownerID uuid.UUID) error {
	args := m.Called(ctx, complaintID, ownerID)
	return args.Error(0)
}

func (m *MockComplaintRepository) OwnerPushToken(ctx context.Context, complaintID, excludeID uuid.UUID) (string, error) {
	args := m.Called(ctx, complaintID, excludeID)
	return args.String(0), args.Error(1)
}

// Mock FeedRepository
type MockFeedRepository struct {
	mock.Mock
}

func (m *MockFeedRepository) GlobalFeed(ctx context.Context, viewerID uuid.UUID) ([]*entities.FeedPost, error) {
	args := m.Called(ctx, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.FeedPost), args.Error(1)
}

func (m *MockFeedRepository) OwnFeed(ctx context.Context, viewerID uuid.UUID) ([]*entities.FeedPost, error) {
	args := m.Called(ctx, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.FeedPost), args.Error(1)
}

func (m *MockFeedRepository) UserFeed(ctx context.Context, viewerID, targetID uuid.UUID) ([]*entities.FeedPost, error) {
	args := m.Called(ctx, viewerID, targetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.FeedPost), args.Error(1)
}

func (m *MockFeedRepository) LikedFeed(ctx context.Context, viewerID uuid.UUID) ([]*entities.FeedPost, error) {
	args := m.Called(ctx, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.FeedPost), args.Error(1)
}

func (m *MockFeedRepository) FilesByComplaints(ctx context.Context, complaintIDs []uuid.UUID) ([]*entities.ComplaintFile, error) {
	args := m.Called(ctx, complaintIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ComplaintFile), args.Error(1)
}

func (m *MockFeedRepository) RecentByAuthors(ctx context.Context, authorIDs []uuid.UUID) ([]*entities.NotificationPost, error) {
	args := m.Called(ctx, authorIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.NotificationPost), args.Error(1)
}

// Mock ReactionRepository
type MockReactionRepository struct {
	mock.Mock
}

func (m *MockReactionRepository) AddLike(ctx context.Context, userID, complaintID uuid.UUID) error {
	args := m.Called(ctx, userID, complaintID)
	return args.Error(0)
}

func (m *MockReactionRepository) RemoveLike(ctx context.Context, userID, complaintID uuid.UUID) error {
	args := m.Called(ctx, userID, complaintID)
	return args.Error(0)
}

func (m *MockReactionRepository) AddSave(ctx context.Context, userID, complaintID uuid.UUID) error {
	args := m.Called(ctx, userID, complaintID)
	return args.Error(0)
}

func (m *MockReactionRepository) RemoveSave(ctx context.Context, userID, complaintID uuid.UUID) error {
	args := m.Called(ctx, userID, complaintID)
	return args.Error(0)
}

func (m *MockReactionRepository) AddRepost(ctx context.Context, userID, complaintID uuid.UUID) error {
	args := m.Called(ctx, userID, complaintID)
	return args.Error(0)
}

// Mock CommentRepository
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *entities.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) ListByComplaint(ctx context.Context, complaintID uuid.UUID) ([]*entities.CommentView, error) {
	args := m.Called(ctx, complaintID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.CommentView), args.Error(1)
}

// Mock FollowerRepository
type MockFollowerRepository struct {
	mock.Mock
}

func (m *MockFollowerRepository) Follow(ctx context.Context, followerID, followingID uuid.UUID) error {
	args := m.Called(ctx, followerID, followingID)
	return args.Error(0)
}

func (m *MockFollowerRepository) Unfollow(ctx context.Context, followerID, followingID uuid.UUID) error {
	args := m.Called(ctx, followerID, followingID)
	return args.Error(0)
}

func (m *MockFollowerRepository) Followers(ctx context.Context, userID uuid.UUID) ([]*entities.UserSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.UserSummary), args.Error(1)
}

func (m *MockFollowerRepository) Following(ctx context.Context, userID uuid.UUID) ([]*entities.UserSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.UserSummary), args.Error(1)
}

func (m *MockFollowerRepository) FollowingIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

// Mock push.Sender
type MockPushSender struct {
	mock.Mock
}

func (m *MockPushSender) Send(ctx context.Context, msg push.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

// Mock mail.OtpSender
type MockOtpSender struct {
	mock.Mock
}

func (m *MockOtpSender) SendOtp(ctx context.Context, email, code string) error {
	args := m.Called(ctx, email, code)
	return args.Error(0)
}
