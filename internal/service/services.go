package service

import (
	"github.com/notebuddy/notebuddy-backend/internal/config"
	"github.com/notebuddy/notebuddy-backend/internal/repository"
)

type Services struct {
	Auth       *AuthService
	Transcript *TranscriptService
	Note       *NoteService
	Profile    *ProfileService
}

func NewServices(repos *repository.Repositories, generator NoteGenerator, cfg *config.Config) *Services {
	return &Services{
		Auth:       NewAuthService(repos.User, repos.RefreshToken, cfg),
		Transcript: NewTranscriptService(repos.Transcript),
		Note:       NewNoteService(repos.Note, repos.Transcript, repos.User, generator),
		Profile:    NewProfileService(repos.User),
	}
}
