package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/notebuddy/notebuddy-backend/internal/domain"
	"github.com/notebuddy/notebuddy-backend/internal/repository"
	"gorm.io/gorm"
)

type TranscriptService struct {
	transcriptRepo repository.TranscriptRepository
}

func NewTranscriptService(transcriptRepo repository.TranscriptRepository) *TranscriptService {
	return &TranscriptService{transcriptRepo: transcriptRepo}
}

type CreateTranscriptInput struct {
	Title   string
	Content string
}

type UpdateTranscriptInput struct {
	Title   *string
	Content *string
}

func (s *TranscriptService) Create(ctx context.Context, userID uuid.UUID, input CreateTranscriptInput) (*domain.Transcript, error) {
	transcript := &domain.Transcript{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     input.Title,
		Content:   input.Content,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.transcriptRepo.Create(ctx, transcript); err != nil {
		return nil, err
	}

	return transcript, nil
}

func (s *TranscriptService) Get(ctx context.Context, id, userID uuid.UUID) (*domain.Transcript, error) {
	transcript, err := s.transcriptRepo.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTranscriptNotFound
		}
		return nil, err
	}
	return transcript, nil
}

func (s *TranscriptService) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Transcript, error) {
	return s.transcriptRepo.ListByUser(ctx, userID, limit, offset)
}

// Update applies only the supplied fields and stamps updated_at.
func (s *TranscriptService) Update(ctx context.Context, id, userID uuid.UUID, input UpdateTranscriptInput) (*domain.Transcript, error) {
	updates := make(map[string]interface{})

	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Content != nil {
		updates["content"] = *input.Content
	}
	updates["updated_at"] = time.Now().UTC()

	if err := s.transcriptRepo.UpdateFields(ctx, id, userID, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTranscriptNotFound
		}
		return nil, err
	}

	return s.Get(ctx, id, userID)
}

// Delete removes the transcript and cascades to its note.
func (s *TranscriptService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if err := s.transcriptRepo.DeleteWithNote(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTranscriptNotFound
		}
		return err
	}
	return nil
}
