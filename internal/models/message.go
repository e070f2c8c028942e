package models

import (
	"time"

	"github.com/google/uuid"
)

// Message is a single authored post in exactly one room. It never outlives
// its room: room deletion cascades here.
type Message struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null"`
	RoomID    uuid.UUID `gorm:"type:uuid;not null"`
	Body      string    `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User User `gorm:"foreignKey:UserID"`
	Room Room `gorm:"foreignKey:RoomID"`
}
