package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultLanguage is the prompt language used for users that never set one.
const DefaultLanguage = "Chinese"

type User struct {
	ID                uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email             string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash      string    `json:"-" gorm:"not null"`
	DisplayName       string    `json:"displayName"`
	PreferredLanguage string    `json:"preferredLanguage" gorm:"not null;default:'Chinese'"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// RefreshToken stores only a SHA-256 digest of the raw token. The digest
// column is unique-indexed so refresh lookups are a single keyed query.
type RefreshToken struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `json:"userId" gorm:"type:uuid;index;not null"`
	TokenHash string    `json:"-" gorm:"uniqueIndex;not null"`
	ExpiresAt time.Time `json:"expiresAt" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
}
