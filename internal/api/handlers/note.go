package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/notebuddy/notebuddy-backend/internal/api/middleware"
	"github.com/notebuddy/notebuddy-backend/internal/config"
	"github.com/notebuddy/notebuddy-backend/internal/domain"
	"github.com/notebuddy/notebuddy-backend/internal/service"
)

type NoteHandler struct {
	noteService *service.NoteService
	cfg         *config.Config
}

func NewNoteHandler(noteService *service.NoteService, cfg *config.Config) *NoteHandler {
	return &NoteHandler{noteService: noteService, cfg: cfg}
}

type CreateNoteRequest struct {
	TranscriptID string `json:"transcriptId"`
	Title        string `json:"title"`
	Content      string `json:"content"`
}

type UpdateNoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type AnswerSubmissionRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type NoteResponse struct {
	ID           string     `json:"id"`
	UserID       string     `json:"userId"`
	TranscriptID string     `json:"transcriptId"`
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    *time.Time `json:"updatedAt"`
}

type FollowUpQuestionsResponse struct {
	Questions []string `json:"questions"`
	Message   string   `json:"message"`
}

type NoteUpdateResponse struct {
	Note    NoteResponse `json:"note"`
	Message string       `json:"message"`
}

func newNoteResponse(n *domain.Note) NoteResponse {
	return NoteResponse{
		ID:           n.ID.String(),
		UserID:       n.UserID.String(),
		TranscriptID: n.TranscriptID.String(),
		Title:        n.Title,
		Content:      n.Content,
		CreatedAt:    n.CreatedAt,
		UpdatedAt:    n.UpdatedAt,
	}
}

func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Could not validate credentials", http.StatusUnauthorized)
		return
	}

	var req CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	transcriptID, err := uuid.Parse(req.TranscriptID)
	if err != nil {
		http.Error(w, "A valid transcript ID is required", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		http.Error(w, "Title and content are required", http.StatusBadRequest)
		return
	}

	note, err := h.noteService.Create(r.Context(), userID, service.CreateNoteInput{
		TranscriptID: transcriptID,
		Title:        req.Title,
		Content:      req.Content,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTranscriptNotFound):
			http.Error(w, "Transcript not found", http.StatusNotFound)
		case errors.Is(err, domain.ErrNoteExists):
			http.Error(w, "Note already exists for this transcript", http.StatusBadRequest)
		default:
			log.Printf("ERROR [note.Create] failed to create note: %v", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusCreated, newNoteResponse(note))
}

func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Could not validate credentials", http.StatusUnauthorized)
		return
	}

	limit, offset := parsePagination(r)

	notes, err := h.noteService.List(r.Context(), userID, limit, offset)
	if err != nil {
		log.Printf("ERROR [note.List] failed to list notes: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	resp := make([]NoteResponse, 0, len(notes))
	for _, n := range notes {
		resp = append(resp, newNoteResponse(n))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Could not validate credentials", http.StatusUnauthorized)
		return
	}

	id, ok := parseIDParam(r)
	if !ok {
		http.Error(w, "Note not found", http.StatusNotFound)
		return
	}

	note, err := h.noteService.Get(r.Context(), id, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNoteNotFound) {
			http.Error(w, "Note not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [note.Get] failed to fetch note: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, newNoteResponse(note))
}

func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Could not validate credentials", http.StatusUnauthorized)
		return
	}

	id, ok := parseIDParam(r)
	if !ok {
		http.Error(w, "Note not found", http.StatusNotFound)
		return
	}

	var req UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	note, err := h.noteService.Update(r.Context(), id, userID, service.UpdateNoteInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNoteNotFound) {
			http.Error(w, "Note not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [note.Update] failed to update note: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, newNoteResponse(note))
}

func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Could not validate credentials", http.StatusUnauthorized)
		return
	}

	id, ok := parseIDParam(r)
	if !ok {
		http.Error(w, "Note not found", http.StatusNotFound)
		return
	}

	if err := h.noteService.Delete(r.Context(), id, userID); err != nil {
		if errors.Is(err, domain.ErrNoteNotFound) {
			http.Error(w, "Note not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [note.Delete] failed to delete note: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Note deleted successfully"})
}

func (h *NoteHandler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Could not validate credentials", http.StatusUnauthorized)
		return
	}

	id, ok := parseIDParam(r)
	if !ok {
		http.Error(w, "Note not found", http.StatusNotFound)
		return
	}

	questions, err := h.noteService.GenerateQuestions(r.Context(), id, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNoteNotFound) {
			http.Error(w, "Note not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [note.GenerateQuestions] generation failed: %v", err)
		http.Error(w, aiFailureMessage(err, h.cfg, "generating questions"), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, FollowUpQuestionsResponse{
		Questions: questions,
		Message:   "Follow-up questions generated successfully",
	})
}

func (h *NoteHandler) UpdateWithAnswer(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Could not validate credentials", http.StatusUnauthorized)
		return
	}

	id, ok := parseIDParam(r)
	if !ok {
		http.Error(w, "Note not found", http.StatusNotFound)
		return
	}

	var req AnswerSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Question) == "" || strings.TrimSpace(req.Answer) == "" {
		http.Error(w, "Both question and answer are required", http.StatusBadRequest)
		return
	}

	note, err := h.noteService.IntegrateAnswer(r.Context(), id, userID, req.Question, req.Answer)
	if err != nil {
		if errors.Is(err, domain.ErrNoteNotFound) {
			http.Error(w, "Note not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [note.UpdateWithAnswer] update failed: %v", err)
		http.Error(w, aiFailureMessage(err, h.cfg, "updating note"), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, NoteUpdateResponse{
		Note:    newNoteResponse(note),
		Message: "Note updated successfully with answer",
	})
}
