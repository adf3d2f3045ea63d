package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/notebuddy/notebuddy-backend/internal/api/handlers"
	"github.com/notebuddy/notebuddy-backend/internal/api/middleware"
	"github.com/notebuddy/notebuddy-backend/internal/config"
	"github.com/notebuddy/notebuddy-backend/internal/service"
)

func NewRouter(services *service.Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	profileHandler := handlers.NewProfileHandler(services.Profile)
	transcriptHandler := handlers.NewTranscriptHandler(services.Transcript, services.Note, cfg)
	noteHandler := handlers.NewNoteHandler(services.Note, cfg)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public auth routes
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)

			// Protected auth routes
			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services.Auth))
				r.Post("/logout", authHandler.Logout)
			})
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))

			r.Route("/profile", func(r chi.Router) {
				r.Get("/", profileHandler.Get)
				r.Put("/", profileHandler.Update)
			})

			r.Route("/transcripts", func(r chi.Router) {
				r.Post("/", transcriptHandler.Create)
				r.Get("/", transcriptHandler.List)
				r.Get("/{id}", transcriptHandler.Get)
				r.Put("/{id}", transcriptHandler.Update)
				r.Delete("/{id}", transcriptHandler.Delete)
				r.Post("/{id}/generate-note", transcriptHandler.GenerateNote)
			})

			r.Route("/notes", func(r chi.Router) {
				r.Post("/", noteHandler.Create)
				r.Get("/", noteHandler.List)
				r.Get("/{id}", noteHandler.Get)
				r.Put("/{id}", noteHandler.Update)
				r.Delete("/{id}", noteHandler.Delete)
				r.Post("/{id}/generate-questions", noteHandler.GenerateQuestions)
				r.Post("/{id}/update-with-answer", noteHandler.UpdateWithAnswer)
			})
		})
	})

	return r
}
