package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	domainerrors "complainthub.backend/internal/domain/errors"
	"complainthub.backend/internal/infrastructure/models"
)

// OtpRepository implements one-time-code operations
type OtpRepository struct {
	db *gorm.DB
}

// NewOtpRepository creates a new OTP repository
func NewOtpRepository(db *gorm.DB) *OtpRepository {
	return &OtpRepository{db: db}
}

// Create stores a new one-time code.
func (r *OtpRepository) Create(ctx context.Context, userID uuid.UUID, code string, expiresAt time.Time) error {
	m := &models.OtpVerification{
		ID:        uuid.New(),
		UserID:    userID,
		OtpCode:   code,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// InvalidatePending marks every unconsumed code for the user as used.
func (r *OtpRepository) InvalidatePending(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&models.OtpVerification{}).
		Where("user_id = ? AND verified = ?", userID, false).
		Update("verified", true).Error
}

// Consume marks a matching, unexpired, unconsumed code as verified.
func (r *OtpRepository) Consume(ctx context.Context, userID uuid.UUID, code string, now time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&models.OtpVerification{}).
		Where("user_id = ? AND otp_code = ? AND verified = ? AND expires_at > ?", userID, code, false, now).
		Update("verified", true)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}
