package models

import (
	"time"

	"github.com/google/uuid"
)

// Follower is the directed follow edge: follower_id follows following_id.
type Follower struct {
	FollowerID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_followers_pair"`
	FollowingID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_followers_pair;index"`
	CreatedAt   time.Time
}
