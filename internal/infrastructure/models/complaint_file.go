package models

import (
	"github.com/google/uuid"
)

type ComplaintFile struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	ComplaintID uuid.UUID `gorm:"type:uuid;not null;index"`
	FileURL     string    `gorm:"type:varchar(512);not null"`
	FileType    string    `gorm:"type:varchar(20);not null"`

	Complaint Complaint `gorm:"foreignKey:ComplaintID"`
}
