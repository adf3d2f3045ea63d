package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/notebuddy/notebuddy-backend/internal/domain"
	"gorm.io/gorm"
)

type transcriptRepository struct {
	db *gorm.DB
}

func NewTranscriptRepository(db *gorm.DB) *transcriptRepository {
	return &transcriptRepository{db: db}
}

func (r *transcriptRepository) Create(ctx context.Context, transcript *domain.Transcript) error {
	return r.db.WithContext(ctx).Create(transcript).Error
}

func (r *transcriptRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.Transcript, error) {
	var transcript domain.Transcript
	err := r.db.WithContext(ctx).
		First(&transcript, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}
	return &transcript, nil
}

func (r *transcriptRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Transcript, error) {
	var transcripts []*domain.Transcript
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&transcripts).Error
	if err != nil {
		return nil, err
	}
	return transcripts, nil
}

func (r *transcriptRepository) UpdateFields(ctx context.Context, id, userID uuid.UUID, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Transcript{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *transcriptRepository) DeleteWithNote(ctx context.Context, id, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&domain.Note{}, "transcript_id = ? AND user_id = ?", id, userID).Error; err != nil {
			return err
		}

		result := tx.Delete(&domain.Transcript{}, "id = ? AND user_id = ?", id, userID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
