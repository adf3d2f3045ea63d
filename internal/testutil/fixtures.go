package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/notebuddy/notebuddy-backend/internal/domain"
	"github.com/notebuddy/notebuddy-backend/internal/service"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	email    string
	password string
	language string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		email:    fmt.Sprintf("testuser_%s@example.com", uuid.New().String()[:8]),
		password: "testpassword123",
		language: domain.DefaultLanguage,
	}
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// WithLanguage sets the preferred prompt language
func (b *UserBuilder) WithLanguage(language string) *UserBuilder {
	b.language = language
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := service.HashPassword(b.password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:                uuid.New(),
		Email:             b.email,
		PasswordHash:      hashedPassword,
		PreferredLanguage: b.language,
		CreatedAt:         time.Now().UTC(),
		UpdatedAt:         time.Now().UTC(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// TokenResponse matches the API token response
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
}

// BuildAndAuthenticate creates a user via the API, logs in, and returns the
// user and its access token.
func (b *UserBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	registerBody, _ := json.Marshal(map[string]string{
		"email":    b.email,
		"password": b.password,
	})

	resp, err := http.Post(ts.APIURL("/auth/register"), "application/json", bytes.NewBuffer(registerBody))
	if err != nil {
		t.Fatalf("failed to register user: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("unexpected register status code: %d", resp.StatusCode)
	}

	var userResp struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&userResp); err != nil {
		t.Fatalf("failed to decode register response: %v", err)
	}

	tokens := b.Login(t, ts)

	userID, _ := uuid.Parse(userResp.ID)
	user := &domain.User{
		ID:    userID,
		Email: userResp.Email,
	}

	return user, tokens.AccessToken
}

// Login authenticates via the API and returns the full token pair.
func (b *UserBuilder) Login(t *testing.T, ts *TestServer) TokenResponse {
	t.Helper()

	body, _ := json.Marshal(map[string]string{
		"email":    b.email,
		"password": b.password,
	})

	resp, err := http.Post(ts.APIURL("/auth/login"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to log in: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected login status code: %d", resp.StatusCode)
	}

	var tokens TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokens); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}

	return tokens
}

// TranscriptBuilder creates test transcripts
type TranscriptBuilder struct {
	owner   *domain.User
	title   string
	content string
}

// NewTranscriptBuilder creates a new TranscriptBuilder with default values
func NewTranscriptBuilder() *TranscriptBuilder {
	return &TranscriptBuilder{
		title:   "Test Transcript",
		content: "This is the raw transcript content used in tests.",
	}
}

// WithOwner sets the owning user
func (b *TranscriptBuilder) WithOwner(user *domain.User) *TranscriptBuilder {
	b.owner = user
	return b
}

// WithTitle sets the title
func (b *TranscriptBuilder) WithTitle(title string) *TranscriptBuilder {
	b.title = title
	return b
}

// WithContent sets the content
func (b *TranscriptBuilder) WithContent(content string) *TranscriptBuilder {
	b.content = content
	return b
}

// Build creates the transcript in the database
func (b *TranscriptBuilder) Build(t *testing.T, db *gorm.DB) *domain.Transcript {
	t.Helper()

	if b.owner == nil {
		user, _ := NewUserBuilder().Build(t, db)
		b.owner = user
	}

	transcript := &domain.Transcript{
		ID:        uuid.New(),
		UserID:    b.owner.ID,
		Title:     b.title,
		Content:   b.content,
		CreatedAt: time.Now().UTC(),
	}

	if err := db.Create(transcript).Error; err != nil {
		t.Fatalf("failed to create transcript: %v", err)
	}

	return transcript
}

// NoteBuilder creates test notes
type NoteBuilder struct {
	owner      *domain.User
	transcript *domain.Transcript
	title      string
	content    string
}

// NewNoteBuilder creates a new NoteBuilder with default values
func NewNoteBuilder() *NoteBuilder {
	return &NoteBuilder{
		title:   "Test Note",
		content: "Structured note content used in tests.",
	}
}

// WithOwner sets the owning user
func (b *NoteBuilder) WithOwner(user *domain.User) *NoteBuilder {
	b.owner = user
	return b
}

// WithTranscript sets the source transcript
func (b *NoteBuilder) WithTranscript(transcript *domain.Transcript) *NoteBuilder {
	b.transcript = transcript
	return b
}

// WithTitle sets the title
func (b *NoteBuilder) WithTitle(title string) *NoteBuilder {
	b.title = title
	return b
}

// WithContent sets the content
func (b *NoteBuilder) WithContent(content string) *NoteBuilder {
	b.content = content
	return b
}

// Build creates the note (and any missing owner/transcript) in the database
func (b *NoteBuilder) Build(t *testing.T, db *gorm.DB) *domain.Note {
	t.Helper()

	if b.owner == nil {
		user, _ := NewUserBuilder().Build(t, db)
		b.owner = user
	}
	if b.transcript == nil {
		b.transcript = NewTranscriptBuilder().WithOwner(b.owner).Build(t, db)
	}

	note := &domain.Note{
		ID:           uuid.New(),
		UserID:       b.owner.ID,
		TranscriptID: b.transcript.ID,
		Title:        b.title,
		Content:      b.content,
		CreatedAt:    time.Now().UTC(),
	}

	if err := db.Create(note).Error; err != nil {
		t.Fatalf("failed to create note: %v", err)
	}

	return note
}

// CreateAuthenticatedRequest creates an HTTP request with auth token
func CreateAuthenticatedRequest(t *testing.T, method, url string, body interface{}, token string) *http.Request {
	t.Helper()

	var bodyReader *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		bodyReader = bytes.NewBuffer(jsonBody)
	} else {
		bodyReader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, url, bodyReader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req
}

// DoAuthenticatedRequest builds and executes an authenticated request.
func DoAuthenticatedRequest(t *testing.T, method, url string, body interface{}, token string) *http.Response {
	t.Helper()

	req := CreateAuthenticatedRequest(t, method, url, body, token)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}
