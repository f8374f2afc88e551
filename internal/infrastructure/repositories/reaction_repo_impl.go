package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	domainerrors "complainthub.backend/internal/domain/errors"
	"complainthub.backend/internal/infrastructure/models"
)

// ReactionRepository implements the like/save/repost membership edges.
type ReactionRepository struct {
	db *gorm.DB
}

// NewReactionRepository creates a new reaction repository
func NewReactionRepository(db *gorm.DB) *ReactionRepository {
	return &ReactionRepository{db: db}
}

// AddLike inserts the like edge; a duplicate is a no-op.
func (r *ReactionRepository) AddLike(ctx context.Context, userID, complaintID uuid.UUID) error {
	m := &models.Like{UserID: userID, ComplaintID: complaintID, CreatedAt: time.Now()}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(m).Error
}

// RemoveLike deletes the like edge if present.
func (r *ReactionRepository) RemoveLike(ctx context.Context, userID, complaintID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND complaint_id = ?", userID, complaintID).
		Delete(&models.Like{}).Error
}

// AddSave inserts the save edge; a duplicate is a no-op.
func (r *ReactionRepository) AddSave(ctx context.Context, userID, complaintID uuid.UUID) error {
	m := &models.Save{UserID: userID, ComplaintID: complaintID, CreatedAt: time.Now()}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(m).Error
}

// RemoveSave deletes the save edge if present.
func (r *ReactionRepository) RemoveSave(ctx context.Context, userID, complaintID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND complaint_id = ?", userID, complaintID).
		Delete(&models.Save{}).Error
}

// AddRepost inserts the repost edge. Unlike likes and saves, a duplicate is
// surfaced as ErrAlreadyExists so the handler can report a conflict.
func (r *ReactionRepository) AddRepost(ctx context.Context, userID, complaintID uuid.UUID) error {
	m := &models.Repost{UserID: userID, ComplaintID: complaintID, CreatedAt: time.Now()}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(m)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrAlreadyExists
	}
	return nil
}
