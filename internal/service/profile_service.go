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

type ProfileService struct {
	userRepo repository.UserRepository
}

func NewProfileService(userRepo repository.UserRepository) *ProfileService {
	return &ProfileService{userRepo: userRepo}
}

type UpdateProfileInput struct {
	DisplayName       *string
	PreferredLanguage *string
}

func (s *ProfileService) Get(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// Update applies only the supplied profile fields.
func (s *ProfileService) Update(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*domain.User, error) {
	updates := make(map[string]interface{})

	if input.DisplayName != nil {
		updates["display_name"] = *input.DisplayName
	}
	if input.PreferredLanguage != nil {
		updates["preferred_language"] = *input.PreferredLanguage
	}

	if len(updates) > 0 {
		updates["updated_at"] = time.Now().UTC()
		if err := s.userRepo.UpdateFields(ctx, userID, updates); err != nil {
			return nil, err
		}
	}

	return s.Get(ctx, userID)
}
