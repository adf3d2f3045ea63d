package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/notebuddy/notebuddy-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
}

type TranscriptRepository interface {
	Create(ctx context.Context, transcript *domain.Transcript) error
	GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.Transcript, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Transcript, error)
	UpdateFields(ctx context.Context, id, userID uuid.UUID, updates map[string]interface{}) error
	// DeleteWithNote removes the transcript and its note, if any, in one
	// transaction.
	DeleteWithNote(ctx context.Context, id, userID uuid.UUID) error
}

type NoteRepository interface {
	Create(ctx context.Context, note *domain.Note) error
	GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.Note, error)
	GetByTranscriptID(ctx context.Context, transcriptID, userID uuid.UUID) (*domain.Note, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Note, error)
	UpdateFields(ctx context.Context, id, userID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type RefreshTokenRepository interface {
	Create(ctx context.Context, token *domain.RefreshToken) error
	// GetLiveByHash returns the unexpired token row with the given digest.
	GetLiveByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	// Rotate swaps the row's digest and expiry in place, invalidating the
	// previous raw token.
	Rotate(ctx context.Context, id uuid.UUID, newHash string, expiresAt time.Time) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

type Repositories struct {
	User         UserRepository
	Transcript   TranscriptRepository
	Note         NoteRepository
	RefreshToken RefreshTokenRepository
}
