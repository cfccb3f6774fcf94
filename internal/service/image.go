package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/recipewreck/backend/config"
)

// ImageService calls the image-generation API. Generated images are returned
// inline as base64 and never stored server-side.
type ImageService struct {
	apiKey string
	apiURL string
	client *http.Client
	logger *zap.Logger
}

// NewImageService creates a new ImageService instance
func NewImageService(cfg *config.Config, logger *zap.Logger) (*ImageService, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY or GEMINI_API_KEY_FILE must be set")
	}

	return &ImageService{
		apiKey: cfg.GeminiAPIKey,
		apiURL: cfg.ImageAPIURL,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
		logger: logger,
	}, nil
}

// imageRequest is the request body for the image generateContent API.
type imageRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig imageGenConfig  `json:"generationConfig"`
}

type imageGenConfig struct {
	ResponseModalities []string `json:"responseModalities"`
}

// inlineData is a binary part of an image response, base64-encoded.
type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

// imageResponse is the response body from the image generateContent API.
type imageResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				InlineData *inlineData `json:"inlineData"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateImage generates an image for the prompt and returns it as a base64
// payload.
func (s *ImageService) GenerateImage(ctx context.Context, prompt string) (string, error) {
	const maxRetries = 3

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		data, err := s.generateImageAttempt(ctx, prompt)
		if err == nil {
			return data, nil
		}
		lastErr = err
		s.logger.Warn("image generation attempt failed",
			zap.Int("attempt", attempt),
			zap.Error(err))
		if attempt < maxRetries {
			time.Sleep(time.Duration(attempt) * time.Second)
		}
	}

	return "", fmt.Errorf("failed to generate image after %d attempts: %w", maxRetries, lastErr)
}

// generateImageAttempt performs a single image generation attempt
func (s *ImageService) generateImageAttempt(ctx context.Context, prompt string) (string, error) {
	reqBody := imageRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: buildImagePrompt(prompt)}}},
		},
		GenerationConfig: imageGenConfig{
			ResponseModalities: []string{"TEXT", "IMAGE"},
		},
	}

	jsonData, err := json.Marshal(reqBody)
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
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result imageResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	for _, candidate := range result.Candidates {
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && part.InlineData.Data != "" {
				return part.InlineData.Data, nil
			}
		}
	}

	return "", fmt.Errorf("no image data in API response")
}

// buildImagePrompt frames the user prompt as a food-photography shot of a
// disastrous dish.
func buildImagePrompt(prompt string) string {
	full := "A professional food photography shot of a catastrophic, unappetizing dish: " +
		prompt + ". Harsh lighting, questionable presentation, high resolution."
	// Keep the prompt inside typical vendor limits. Truncate on a rune
	// boundary so a multi-byte character is never split.
	if runes := []rune(full); len(runes) > 900 {
		full = string(runes[:900])
	}
	return full
}
