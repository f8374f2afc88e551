package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"complainthub.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	// UpdateFields applies a partial update; keys are column names.
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	SetPushToken(ctx context.Context, id uuid.UUID, token string) error
	// Profile returns a user with follow counts. When viewerID differs from
	// userID the viewer's follow state is included.
	Profile(ctx context.Context, viewerID, userID uuid.UUID) (*entities.Profile, error)
	Search(ctx context.Context, viewerID uuid.UUID, query string, limit int) ([]*entities.UserSearchResult, error)
	Newest(ctx context.Context, viewerID uuid.UUID, limit int) ([]*entities.UserSearchResult, error)
	Random(ctx context.Context, viewerID uuid.UUID, limit int) ([]*entities.UserSearchResult, error)
}

// OtpRepository defines one-time-code operations
type OtpRepository interface {
	Create(ctx context.Context, userID uuid.UUID, code string, expiresAt time.Time) error
	// InvalidatePending marks every unconsumed code for the user as used, so
	// only the most recently issued code is live.
	InvalidatePending(ctx context.Context, userID uuid.UUID) error
	// Consume marks a matching, unexpired, unconsumed code as verified.
	// Returns ErrNotFound when no such code exists.
	Consume(ctx context.Context, userID uuid.UUID, code string, now time.Time) error
}
