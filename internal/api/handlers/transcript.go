package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/notebuddy/notebuddy-backend/internal/api/middleware"
	"github.com/notebuddy/notebuddy-backend/internal/config"
	"github.com/notebuddy/notebuddy-backend/internal/domain"
	"github.com/notebuddy/notebuddy-backend/internal/service"
)

type TranscriptHandler struct {
	transcriptService *service.TranscriptService
	noteService       *service.NoteService
	cfg               *config.Config
}

func NewTranscriptHandler(transcriptService *service.TranscriptService, noteService *service.NoteService, cfg *config.Config) *TranscriptHandler {
	return &TranscriptHandler{
		transcriptService: transcriptService,
		noteService:       noteService,
		cfg:               cfg,
	}
}

type CreateTranscriptRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type UpdateTranscriptRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type TranscriptResponse struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

type NoteGenerationResponse struct {
	Note    NoteResponse `json:"note"`
	Message string       `json:"message"`
}

func newTranscriptResponse(t *domain.Transcript) TranscriptResponse {
	return TranscriptResponse{
		ID:        t.ID.String(),
		UserID:    t.UserID.String(),
		Title:     t.Title,
		Content:   t.Content,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func (h *TranscriptHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Could not validate credentials", http.StatusUnauthorized)
		return
	}

	var req CreateTranscriptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		http.Error(w, "Title and content are required", http.StatusBadRequest)
		return
	}

	transcript, err := h.transcriptService.Create(r.Context(), userID, service.CreateTranscriptInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		log.Printf("ERROR [transcript.Create] failed to create transcript: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, newTranscriptResponse(transcript))
}

func (h *TranscriptHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Could not validate credentials", http.StatusUnauthorized)
		return
	}

	limit, offset := parsePagination(r)

	transcripts, err := h.transcriptService.List(r.Context(), userID, limit, offset)
	if err != nil {
		log.Printf("ERROR [transcript.List] failed to list transcripts: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	resp := make([]TranscriptResponse, 0, len(transcripts))
	for _, t := range transcripts {
		resp = append(resp, newTranscriptResponse(t))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *TranscriptHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Could not validate credentials", http.StatusUnauthorized)
		return
	}

	id, ok := parseIDParam(r)
	if !ok {
		http.Error(w, "Transcript not found", http.StatusNotFound)
		return
	}

	transcript, err := h.transcriptService.Get(r.Context(), id, userID)
	if err != nil {
		if errors.Is(err, domain.ErrTranscriptNotFound) {
			http.Error(w, "Transcript not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [transcript.Get] failed to fetch transcript: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, newTranscriptResponse(transcript))
}

func (h *TranscriptHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Could not validate credentials", http.StatusUnauthorized)
		return
	}

	id, ok := parseIDParam(r)
	if !ok {
		http.Error(w, "Transcript not found", http.StatusNotFound)
		return
	}

	var req UpdateTranscriptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	transcript, err := h.transcriptService.Update(r.Context(), id, userID, service.UpdateTranscriptInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		if errors.Is(err, domain.ErrTranscriptNotFound) {
			http.Error(w, "Transcript not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [transcript.Update] failed to update transcript: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, newTranscriptResponse(transcript))
}

func (h *TranscriptHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Could not validate credentials", http.StatusUnauthorized)
		return
	}

	id, ok := parseIDParam(r)
	if !ok {
		http.Error(w, "Transcript not found", http.StatusNotFound)
		return
	}

	if err := h.transcriptService.Delete(r.Context(), id, userID); err != nil {
		if errors.Is(err, domain.ErrTranscriptNotFound) {
			http.Error(w, "Transcript not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [transcript.Delete] failed to delete transcript: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Transcript deleted successfully"})
}

// GenerateNote runs the AI generation for a transcript. Regeneration
// overwrites the existing note in place instead of failing or duplicating.
func (h *TranscriptHandler) GenerateNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Could not validate credentials", http.StatusUnauthorized)
		return
	}

	id, ok := parseIDParam(r)
	if !ok {
		http.Error(w, "Transcript not found", http.StatusNotFound)
		return
	}

	note, err := h.noteService.GenerateFromTranscript(r.Context(), id, userID)
	if err != nil {
		if errors.Is(err, domain.ErrTranscriptNotFound) {
			http.Error(w, "Transcript not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [transcript.GenerateNote] generation failed: %v", err)
		http.Error(w, aiFailureMessage(err, h.cfg, "generating note"), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, NoteGenerationResponse{
		Note:    newNoteResponse(note),
		Message: "Note generated successfully",
	})
}
