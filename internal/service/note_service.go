package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/notebuddy/notebuddy-backend/internal/ai"
	"github.com/notebuddy/notebuddy-backend/internal/domain"
	"github.com/notebuddy/notebuddy-backend/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// NoteGenerator is the slice of the AI client the note service needs; tests
// substitute a stub.
type NoteGenerator interface {
	GenerateNote(ctx context.Context, transcriptContent, language string) (ai.NoteDraft, error)
	GenerateFollowUpQuestions(ctx context.Context, noteContent, language string) ([]string, error)
	IncorporateAnswer(ctx context.Context, noteContent, question, answer, language string) (ai.NoteDraft, error)
}

type NoteService struct {
	noteRepo       repository.NoteRepository
	transcriptRepo repository.TranscriptRepository
	userRepo       repository.UserRepository
	generator      NoteGenerator
}

func NewNoteService(noteRepo repository.NoteRepository, transcriptRepo repository.TranscriptRepository, userRepo repository.UserRepository, generator NoteGenerator) *NoteService {
	return &NoteService{
		noteRepo:       noteRepo,
		transcriptRepo: transcriptRepo,
		userRepo:       userRepo,
		generator:      generator,
	}
}

type CreateNoteInput struct {
	TranscriptID uuid.UUID
	Title        string
	Content      string
}

type UpdateNoteInput struct {
	Title   *string
	Content *string
}

// Create inserts a note written by hand rather than generated. The target
// transcript must be owned by the caller and must not already have a note.
func (s *NoteService) Create(ctx context.Context, userID uuid.UUID, input CreateNoteInput) (*domain.Note, error) {
	if _, err := s.transcriptRepo.GetByID(ctx, input.TranscriptID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTranscriptNotFound
		}
		return nil, err
	}

	if _, err := s.noteRepo.GetByTranscriptID(ctx, input.TranscriptID, userID); err == nil {
		return nil, domain.ErrNoteExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	note := &domain.Note{
		ID:           uuid.New(),
		UserID:       userID,
		TranscriptID: input.TranscriptID,
		Title:        input.Title,
		Content:      input.Content,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, err
	}

	return note, nil
}

func (s *NoteService) Get(ctx context.Context, id, userID uuid.UUID) (*domain.Note, error) {
	note, err := s.noteRepo.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNoteNotFound
		}
		return nil, err
	}
	return note, nil
}

func (s *NoteService) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Note, error) {
	return s.noteRepo.ListByUser(ctx, userID, limit, offset)
}

func (s *NoteService) Update(ctx context.Context, id, userID uuid.UUID, input UpdateNoteInput) (*domain.Note, error) {
	updates := make(map[string]interface{})

	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Content != nil {
		updates["content"] = *input.Content
	}
	updates["updated_at"] = time.Now().UTC()

	if err := s.noteRepo.UpdateFields(ctx, id, userID, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNoteNotFound
		}
		return nil, err
	}

	return s.Get(ctx, id, userID)
}

func (s *NoteService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if err := s.noteRepo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNoteNotFound
		}
		return err
	}
	return nil
}

// GenerateFromTranscript produces the transcript's note via the AI
// generator. Regenerating an existing note overwrites title and content on
// the same row, resets created_at, and clears updated_at and the stored
// questions, so the note reads as freshly created.
func (s *NoteService) GenerateFromTranscript(ctx context.Context, transcriptID, userID uuid.UUID) (*domain.Note, error) {
	transcript, err := s.transcriptRepo.GetByID(ctx, transcriptID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTranscriptNotFound
		}
		return nil, err
	}

	language, err := s.promptLanguage(ctx, userID)
	if err != nil {
		return nil, err
	}

	draft, err := s.generator.GenerateNote(ctx, transcript.Content, language)
	if err != nil {
		return nil, err
	}

	existing, err := s.noteRepo.GetByTranscriptID(ctx, transcriptID, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		note := &domain.Note{
			ID:           uuid.New(),
			UserID:       userID,
			TranscriptID: transcriptID,
			Title:        draft.Title,
			Content:      draft.Content,
			CreatedAt:    time.Now().UTC(),
		}
		if err := s.noteRepo.Create(ctx, note); err != nil {
			return nil, err
		}
		return note, nil
	}

	updates := map[string]interface{}{
		"title":          draft.Title,
		"content":        draft.Content,
		"created_at":     time.Now().UTC(),
		"updated_at":     nil,
		"last_questions": nil,
	}
	if err := s.noteRepo.UpdateFields(ctx, existing.ID, userID, updates); err != nil {
		return nil, err
	}

	return s.Get(ctx, existing.ID, userID)
}

// GenerateQuestions returns 3-5 follow-up questions for the note and
// remembers them on the row without touching the note's own timestamps.
func (s *NoteService) GenerateQuestions(ctx context.Context, noteID, userID uuid.UUID) ([]string, error) {
	note, err := s.Get(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}

	language, err := s.promptLanguage(ctx, userID)
	if err != nil {
		return nil, err
	}

	questions, err := s.generator.GenerateFollowUpQuestions(ctx, note.Content, language)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(questions); err == nil {
		_ = s.noteRepo.UpdateFields(ctx, noteID, userID, map[string]interface{}{
			"last_questions": datatypes.JSON(encoded),
		})
	}

	return questions, nil
}

// IntegrateAnswer rewrites the note so it reflects the answer to one
// follow-up question.
func (s *NoteService) IntegrateAnswer(ctx context.Context, noteID, userID uuid.UUID, question, answer string) (*domain.Note, error) {
	note, err := s.Get(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}

	language, err := s.promptLanguage(ctx, userID)
	if err != nil {
		return nil, err
	}

	draft, err := s.generator.IncorporateAnswer(ctx, note.Content, question, answer, language)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"title":      draft.Title,
		"content":    draft.Content,
		"updated_at": time.Now().UTC(),
	}
	if err := s.noteRepo.UpdateFields(ctx, noteID, userID, updates); err != nil {
		return nil, err
	}

	return s.Get(ctx, noteID, userID)
}

func (s *NoteService) promptLanguage(ctx context.Context, userID uuid.UUID) (string, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if user.PreferredLanguage == "" {
		return domain.DefaultLanguage, nil
	}
	return user.PreferredLanguage, nil
}
