package models

import (
	"time"

	"github.com/google/uuid"
)

type Complaint struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Text      *string   `gorm:"type:text"`
	CreatedAt time.Time `gorm:"index"`

	User User `gorm:"foreignKey:UserID"`
}
