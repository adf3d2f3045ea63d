package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/notebuddy/notebuddy-backend/internal/config"
)

const (
	completionTimeout = 60 * time.Second
	maxTokens         = 2000
	temperature       = 0.7
)

// Client talks to the DeepSeek chat-completions API. The wire format is
// OpenAI-compatible; a single completion can take tens of seconds, so the
// HTTP client carries a generous timeout and callers wait synchronously.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		apiKey:  cfg.DeepSeekAPIKey,
		baseURL: strings.TrimRight(cfg.DeepSeekBaseURL, "/"),
		model:   cfg.DeepSeekModel,
		httpClient: &http.Client{
			Timeout: completionTimeout,
		},
	}
}

// NoteDraft is the flat two-field object every note-producing prompt asks
// the model to return.
type NoteDraft struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type questionList struct {
	Questions []string `json:"questions"`
}

// GenerateNote turns raw transcript content into a structured note draft.
func (c *Client) GenerateNote(ctx context.Context, transcriptContent, language string) (NoteDraft, error) {
	var draft NoteDraft
	text, err := c.complete(ctx, noteGenerationPrompt(transcriptContent, language))
	if err != nil {
		return draft, err
	}
	if err := json.Unmarshal([]byte(text), &draft); err != nil {
		return draft, &Error{Kind: KindMalformed, Message: "completion is not valid JSON", Err: err}
	}
	return draft, nil
}

// GenerateFollowUpQuestions asks for 3-5 clarifying questions about a note.
func (c *Client) GenerateFollowUpQuestions(ctx context.Context, noteContent, language string) ([]string, error) {
	text, err := c.complete(ctx, followUpQuestionsPrompt(noteContent, language))
	if err != nil {
		return nil, err
	}
	var list questionList
	if err := json.Unmarshal([]byte(text), &list); err != nil {
		return nil, &Error{Kind: KindMalformed, Message: "completion is not valid JSON", Err: err}
	}
	return list.Questions, nil
}

// IncorporateAnswer rewrites a note so it reflects the answer to one
// follow-up question.
func (c *Client) IncorporateAnswer(ctx context.Context, noteContent, question, answer, language string) (NoteDraft, error) {
	var draft NoteDraft
	text, err := c.complete(ctx, incorporateAnswerPrompt(noteContent, question, answer, language))
	if err != nil {
		return draft, err
	}
	if err := json.Unmarshal([]byte(text), &draft); err != nil {
		return draft, &Error{Kind: KindMalformed, Message: "completion is not valid JSON", Err: err}
	}
	return draft, nil
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	Temperature    float64       `json:"temperature"`
	MaxTokens      int           `json:"max_tokens"`
	ResponseFormat respFormat    `json:"response_format"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type respFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// complete issues one chat completion and returns the raw completion text.
// There is no retry: the first failure fails the caller's request.
func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:          c.model,
		Messages:       []chatMessage{{Role: "user", Content: prompt}},
		Temperature:    temperature,
		MaxTokens:      maxTokens,
		ResponseFormat: respFormat{Type: "text"},
	})
	if err != nil {
		return "", &Error{Kind: KindOther, Message: "failed to encode request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", &Error{Kind: KindOther, Message: "failed to build request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &Error{Kind: KindNetwork, Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", classifyStatus(resp)
	}

	var completion chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", &Error{Kind: KindMalformed, Message: "failed to decode provider response", Err: err}
	}

	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return "", &Error{Kind: KindMalformed, Message: "provider returned an empty completion"}
	}

	return completion.Choices[0].Message.Content, nil
}

func classifyStatus(resp *http.Response) *Error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	message := fmt.Sprintf("provider returned status %d", resp.StatusCode)
	var body chatResponse
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != nil && body.Error.Message != "" {
		message = body.Error.Message
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &Error{Kind: KindAuth, Message: message}
	case http.StatusTooManyRequests:
		return &Error{Kind: KindRateLimit, Message: message}
	default:
		return &Error{Kind: KindOther, Message: message}
	}
}
