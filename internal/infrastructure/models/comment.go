package models

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	ComplaintID uuid.UUID `gorm:"type:uuid;not null;index"`
	Comment     string    `gorm:"type:text;not null"`
	CreatedAt   time.Time

	User      User      `gorm:"foreignKey:UserID"`
	Complaint Complaint `gorm:"foreignKey:ComplaintID"`
}
