package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"complainthub.backend/internal/domain/entities"
	"complainthub.backend/internal/infrastructure/models"
)

// CommentRepository implements comment operations
type CommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create appends a comment.
func (r *CommentRepository) Create(ctx context.Context, comment *entities.Comment) error {
	m := &models.Comment{
		ID:          comment.ID,
		UserID:      comment.UserID,
		ComplaintID: comment.ComplaintID,
		Comment:     comment.Comment,
		CreatedAt:   comment.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	comment.ID = m.ID
	return nil
}

// ListByComplaint returns the comments on a complaint, newest first.
func (r *CommentRepository) ListByComplaint(ctx context.Context, complaintID uuid.UUID) ([]*entities.CommentView, error) {
	var views []*entities.CommentView
	err := r.db.WithContext(ctx).Raw(`
		SELECT c.comment AS text, u.username
		FROM comments c
		JOIN users u ON c.user_id = u.id
		WHERE c.complaint_id = ?
		ORDER BY c.created_at DESC`,
		complaintID,
	).Scan(&views).Error
	if err != nil {
		return nil, err
	}
	if views == nil {
		views = []*entities.CommentView{}
	}
	return views, nil
}
