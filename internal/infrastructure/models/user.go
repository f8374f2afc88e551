package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	FirstName       string    `gorm:"type:varchar(100);not null"`
	LastName        string    `gorm:"type:varchar(100);not null"`
	Username        string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	Email           string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PhoneCode       string    `gorm:"type:varchar(8)"`
	PhoneNumber     string    `gorm:"type:varchar(20)"`
	DateOfBirth     *time.Time
	PasswordHash    string  `gorm:"type:varchar(255);not null"`
	Role            string  `gorm:"type:varchar(50);not null;default:'user'"`
	Bio             *string `gorm:"type:text"`
	ProfileImageURL *string `gorm:"type:varchar(512)"`
	CoverImageURL   *string `gorm:"type:varchar(512)"`
	ExpoPushToken   *string `gorm:"type:varchar(255)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
