package models

import (
	"time"

	"github.com/google/uuid"
)

// Room is a topic-tagged discussion thread. The host and topic references
// are nullable: deleting either leaves the room in place.
type Room struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	HostID      *uuid.UUID `gorm:"type:uuid"`
	TopicID     *uuid.UUID `gorm:"type:uuid"`
	Name        string     `gorm:"not null"`
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Host         *User     `gorm:"foreignKey:HostID;constraint:OnDelete:SET NULL"`
	Topic        *Topic    `gorm:"foreignKey:TopicID;constraint:OnDelete:SET NULL"`
	Participants []User    `gorm:"many2many:room_participants"`
	Messages     []Message `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE"`
}
