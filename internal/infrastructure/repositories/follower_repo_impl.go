package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"complainthub.backend/internal/domain/entities"
	"complainthub.backend/internal/infrastructure/models"
)

// FollowerRepository implements the directed follow graph.
type FollowerRepository struct {
	db *gorm.DB
}

// NewFollowerRepository creates a new follower repository
func NewFollowerRepository(db *gorm.DB) *FollowerRepository {
	return &FollowerRepository{db: db}
}

// Follow inserts the follow edge; a duplicate is a no-op.
func (r *FollowerRepository) Follow(ctx context.Context, followerID, followingID uuid.UUID) error {
	m := &models.Follower{FollowerID: followerID, FollowingID: followingID, CreatedAt: time.Now()}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(m).Error
}

// Unfollow deletes the follow edge if present.
func (r *FollowerRepository) Unfollow(ctx context.Context, followerID, followingID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&models.Follower{}).Error
}

// Followers lists the users following userID.
func (r *FollowerRepository) Followers(ctx context.Context, userID uuid.UUID) ([]*entities.UserSummary, error) {
	var summaries []*entities.UserSummary
	err := r.db.WithContext(ctx).Raw(`
		SELECT u.id, u.username, u.first_name, u.last_name
		FROM followers f
		JOIN users u ON f.follower_id = u.id
		WHERE f.following_id = ?`,
		userID,
	).Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	if summaries == nil {
		summaries = []*entities.UserSummary{}
	}
	return summaries, nil
}

// Following lists the users userID follows.
func (r *FollowerRepository) Following(ctx context.Context, userID uuid.UUID) ([]*entities.UserSummary, error) {
	var summaries []*entities.UserSummary
	err := r.db.WithContext(ctx).Raw(`
		SELECT u.id, u.username, u.first_name, u.last_name
		FROM followers f
		JOIN users u ON f.following_id = u.id
		WHERE f.follower_id = ?`,
		userID,
	).Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	if summaries == nil {
		summaries = []*entities.UserSummary{}
	}
	return summaries, nil
}

// FollowingIDs returns the ids of the users userID follows.
func (r *FollowerRepository) FollowingIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&models.Follower{}).
		Where("follower_id = ?", userID).
		Pluck("following_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
