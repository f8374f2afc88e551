package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// UserRole represents user roles
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

// User represents a registered account.
type User struct {
	ID              uuid.UUID   `json:"id"`
	FirstName       string      `json:"first_name"`
	LastName        string      `json:"last_name"`
	Username        string      `json:"username"`
	Email           string      `json:"email"`
	PhoneCode       string      `json:"phone_code"`
	PhoneNumber     string      `json:"phone_number"`
	DateOfBirth     null.Time   `json:"date_of_birth,omitempty"`
	PasswordHash    string      `json:"-"`
	Role            UserRole    `json:"role"`
	Bio             null.String `json:"bio,omitempty"`
	ProfileImageURL null.String `json:"profile_image_url"`
	CoverImageURL   null.String `json:"cover_image_url"`
	ExpoPushToken   null.String `json:"-"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"-"`
}

// Profile is a user row enriched with follow counts and, for other users'
// profiles, the viewer's follow state.
type Profile struct {
	User
	Following   int64 `json:"following"`
	Followers   int64 `json:"followers"`
	IsFollowing *bool `json:"is_following,omitempty"`
}

// UserSummary is the compact shape returned by follower/following listings.
type UserSummary struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

// UserSearchResult is a discovery row with the viewer's follow state.
type UserSearchResult struct {
	ID              uuid.UUID   `json:"id"`
	FirstName       string      `json:"first_name"`
	LastName        string      `json:"last_name"`
	Username        string      `json:"username"`
	ProfileImageURL null.String `json:"profile_image_url"`
	IsFollowing     bool        `json:"is_following"`
}

// ExploreUsers groups the two discovery lists.
type ExploreUsers struct {
	NewUsers         []*UserSearchResult `json:"newUsers"`
	RecommendedUsers []*UserSearchResult `json:"recommendedUsers"`
}

// OtpVerification is a short-lived one-time code issued at signup and login.
type OtpVerification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Code      string
	ExpiresAt time.Time
	Verified  bool
	CreatedAt time.Time
}

// SignupInput represents input for creating a user
type SignupInput struct {
	FirstName   string `json:"first_name" binding:"required,min=1,max=100"`
	LastName    string `json:"last_name" binding:"required,min=1,max=100"`
	Username    string `json:"username" binding:"required,min=3,max=50"`
	Email       string `json:"email" binding:"required,email"`
	PhoneCode   string `json:"phone_code"`
	PhoneNumber string `json:"phone_number"`
	DateOfBirth string `json:"date_of_birth"`
	Password    string `json:"password" binding:"required,min=8"`
}

// LoginInput represents input for the password step of login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// VerifyOtpInput represents input for consuming a one-time code
type VerifyOtpInput struct {
	Email string `json:"email" binding:"required,email"`
	Otp   string `json:"otp" binding:"required,len=6"`
}

// ResendOtpInput represents input for reissuing a one-time code
type ResendOtpInput struct {
	Email string `json:"email" binding:"required,email"`
}

// UpdateProfileInput represents a partial profile update. Empty fields are
// left untouched.
type UpdateProfileInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// SavePushTokenInput registers a push delivery destination.
type SavePushTokenInput struct {
	Token string `json:"token" binding:"required"`
}
