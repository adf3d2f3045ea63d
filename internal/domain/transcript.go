package domain

import (
	"time"

	"github.com/google/uuid"
)

// Transcript is raw user-submitted text. UpdatedAt stays NULL until the
// first mutation; services manage both timestamps explicitly in UTC.
type Transcript struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID  `json:"userId" gorm:"type:uuid;index;not null"`
	Title     string     `json:"title" gorm:"size:200;not null"`
	Content   string     `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt" gorm:"default:null;autoUpdateTime:false"`
}
