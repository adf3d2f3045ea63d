package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Note is the AI-derived summary of exactly one transcript. TranscriptID is
// unique-indexed to enforce the one-to-one relationship at the schema level.
// LastQuestions holds the most recently generated follow-up questions.
type Note struct {
	ID            uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID        uuid.UUID      `json:"userId" gorm:"type:uuid;index;not null"`
	TranscriptID  uuid.UUID      `json:"transcriptId" gorm:"type:uuid;uniqueIndex;not null"`
	Title         string         `json:"title" gorm:"size:200;not null"`
	Content       string         `json:"content" gorm:"type:text;not null"`
	LastQuestions datatypes.JSON `json:"lastQuestions,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     *time.Time     `json:"updatedAt" gorm:"default:null;autoUpdateTime:false"`
}
