package models

import (
	"time"

	"github.com/google/uuid"
)

// User logs in by email; the display name is optional.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Email        string    `gorm:"uniqueIndex;not null"`
	Name         string
	Bio          string
	AvatarURL    string `gorm:"default:'avatar.svg'"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
