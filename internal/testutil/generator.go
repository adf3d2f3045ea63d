package testutil

import (
	"context"
	"sync"

	"github.com/notebuddy/notebuddy-backend/internal/ai"
)

// StubGenerator implements service.NoteGenerator with canned responses so
// tests never reach the real completion API.
type StubGenerator struct {
	mu sync.Mutex

	NoteDraft    ai.NoteDraft
	UpdatedDraft ai.NoteDraft
	Questions    []string
	Err          error

	GenerateCalls    int
	QuestionCalls    int
	IncorporateCalls int

	LastLanguage string
	LastQuestion string
	LastAnswer   string
}

func NewStubGenerator() *StubGenerator {
	return &StubGenerator{
		NoteDraft:    ai.NoteDraft{Title: "Generated Title", Content: "Generated content."},
		UpdatedDraft: ai.NoteDraft{Title: "Updated Title", Content: "Updated content."},
		Questions:    []string{"Question one?", "Question two?"},
	}
}

func (g *StubGenerator) GenerateNote(ctx context.Context, transcriptContent, language string) (ai.NoteDraft, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.GenerateCalls++
	g.LastLanguage = language
	if g.Err != nil {
		return ai.NoteDraft{}, g.Err
	}
	return g.NoteDraft, nil
}

func (g *StubGenerator) GenerateFollowUpQuestions(ctx context.Context, noteContent, language string) ([]string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.QuestionCalls++
	g.LastLanguage = language
	if g.Err != nil {
		return nil, g.Err
	}
	return g.Questions, nil
}

func (g *StubGenerator) IncorporateAnswer(ctx context.Context, noteContent, question, answer, language string) (ai.NoteDraft, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.IncorporateCalls++
	g.LastLanguage = language
	g.LastQuestion = question
	g.LastAnswer = answer
	if g.Err != nil {
		return ai.NoteDraft{}, g.Err
	}
	return g.UpdatedDraft, nil
}
