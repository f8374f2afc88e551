package models

import (
	"time"

	"github.com/google/uuid"
)

// Like, Save and Repost are (user, complaint) membership edges. The
// composite unique index is the invariant: at most one row per pair.

type Like struct {
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_likes_user_complaint"`
	ComplaintID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_likes_user_complaint;index"`
	CreatedAt   time.Time
}

type Save struct {
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_saves_user_complaint"`
	ComplaintID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_saves_user_complaint;index"`
	CreatedAt   time.Time
}

type Repost struct {
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reposts_user_complaint"`
	ComplaintID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reposts_user_complaint;index"`
	CreatedAt   time.Time
}
