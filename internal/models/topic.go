package models

import (
	"time"

	"github.com/google/uuid"
)

// Topic is a label shared by any number of rooms. Names are matched
// case-sensitively; the unique index backs the get-or-create path.
type Topic struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string    `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
}
