package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/notebuddy/notebuddy-backend/internal/ai"
	"github.com/notebuddy/notebuddy-backend/internal/config"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func parseIDParam(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// parsePagination reads skip/limit query parameters with the API defaults.
func parsePagination(r *http.Request) (limit, offset int) {
	limit = defaultListLimit
	offset = 0

	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= maxListLimit {
			limit = n
		}
	}
	if v := r.URL.Query().Get("skip"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}

// aiFailureMessage picks the client-facing message for a failed completion
// call. In production every provider failure collapses to a single generic
// message so no provider detail leaks.
func aiFailureMessage(err error, cfg *config.Config, action string) string {
	if cfg.IsProduction() {
		return "Internal error. Please contact the product team."
	}

	switch ai.KindOf(err) {
	case ai.KindAuth:
		return "DeepSeek API authentication failed. Please check your API key configuration."
	case ai.KindNetwork:
		return "Unable to connect to DeepSeek API. Please check your internet connection."
	case ai.KindRateLimit:
		return "DeepSeek API quota exceeded. Please check your usage limits."
	default:
		return "Error " + action + ": " + err.Error()
	}
}
