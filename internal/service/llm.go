package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/recipewreck/backend/config"
	"github.com/recipewreck/backend/internal/parser"
	"github.com/recipewreck/backend/internal/types"
)

// maxHistoryTurns caps the conversation history sent to the model.
const maxHistoryTurns = 20

const recipeSystemPrompt = `You are RecipeWreck, a chef who only produces absurd, ` +
	`ill-advised joke recipes. Respond in plain text with exactly these sections:

Title: <recipe name>

Ingredients:
- <one ingredient per line>

Steps:
1. <one step per line>

Keep it short and deranged. Do not add any other sections.`

const roleSystemPrompt = `You are an onboarding assistant that helps a user design ` +
	`a custom AI role. Reply conversationally first. Then, on a new line, emit the ` +
	`proposed role as a JSON object wrapped in the literal markers ` +
	parser.JSONStartMarker + ` and ` + parser.JSONEndMarker + `. The JSON object must ` +
	`have exactly these fields: "title" (string), "description" (string), ` +
	`"systemPromptText" (string), "category" (string), "tags" (array of strings).`

// LLMService calls the text-generation API.
type LLMService struct {
	apiKey string
	apiURL string
	client *http.Client
	logger *zap.Logger
}

// NewLLMService creates a new LLMService instance
func NewLLMService(cfg *config.Config, logger *zap.Logger) (*LLMService, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY or GEMINI_API_KEY_FILE must be set")
	}

	return &LLMService{
		apiKey: cfg.GeminiAPIKey,
		apiURL: cfg.GeminiAPIURL,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
		logger: logger,
	}, nil
}

// geminiPart is a single text fragment of a content block.
type geminiPart struct {
	Text string `json:"text"`
}

// geminiContent is one turn of a generateContent conversation.
type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

// geminiRequest is the request body for the generateContent API.
type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

// geminiResponse is the response body from the generateContent API.
type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// GenerateRecipeText asks the model for a joke recipe as free text.
func (s *LLMService) GenerateRecipeText(ctx context.Context, prompt string) (string, error) {
	contents := []geminiContent{
		{Role: "user", Parts: []geminiPart{{Text: recipeSystemPrompt + "\n\nMake a recipe for: " + prompt}}},
	}
	return s.generate(ctx, contents)
}

// GenerateRoleChat sends the onboarding conversation to the model and returns
// its raw reply. History beyond the last maxHistoryTurns turns is dropped.
func (s *LLMService) GenerateRoleChat(ctx context.Context, message string, history []types.ChatTurn) (string, error) {
	if len(history) > maxHistoryTurns {
		history = history[len(history)-maxHistoryTurns:]
	}

	contents := make([]geminiContent, 0, len(history)+2)
	contents = append(contents, geminiContent{
		Role:  "user",
		Parts: []geminiPart{{Text: roleSystemPrompt}},
	})
	for _, turn := range history {
		parts := make([]geminiPart, 0, len(turn.Parts))
		for _, p := range turn.Parts {
			parts = append(parts, geminiPart{Text: p.Text})
		}
		contents = append(contents, geminiContent{Role: turn.Role, Parts: parts})
	}
	contents = append(contents, geminiContent{
		Role:  "user",
		Parts: []geminiPart{{Text: message}},
	})

	return s.generate(ctx, contents)
}

// generate performs one generateContent call and returns the first
// candidate's text.
func (s *LLMService) generate(ctx context.Context, contents []geminiContent) (string, error) {
	jsonData, err := json.Marshal(geminiRequest{Contents: contents})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		s.logger.Error("generation API request failed",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body))
		return "", fmt.Errorf("API request failed with status %d", resp.StatusCode)
	}

	var result geminiResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from API")
	}

	var text strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}

	return text.String(), nil
}
