package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/recipewreck/backend/internal/parser"
	"github.com/recipewreck/backend/internal/types"
)

// WreckService assembles a recipe card from one text-generation call and one
// image-generation call. Results are request-scoped and never persisted.
type WreckService struct {
	llm    ILLMService
	image  IImageService
	logger *zap.Logger
}

// NewWreckService creates a new WreckService instance
func NewWreckService(llm ILLMService, image IImageService, logger *zap.Logger) *WreckService {
	return &WreckService{
		llm:    llm,
		image:  image,
		logger: logger,
	}
}

// GenerateWreck generates the recipe text, parses it into a structured card
// and attaches an independently generated image. The two vendor calls run
// sequentially; text and image are combined positionally with no
// cross-validation.
func (s *WreckService) GenerateWreck(ctx context.Context, prompt string) (*types.WreckResponse, error) {
	raw, err := s.llm.GenerateRecipeText(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("text generation failed: %w", err)
	}

	recipe := parser.ParseRecipe(raw)

	imageB64, err := s.image.GenerateImage(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("image generation failed: %w", err)
	}

	s.logger.Info("generated wreck",
		zap.String("title", recipe.Title),
		zap.Int("ingredients", len(recipe.Ingredients)),
		zap.Int("steps", len(recipe.Steps)))

	return &types.WreckResponse{
		Title:       recipe.Title,
		Ingredients: recipe.Ingredients,
		Steps:       recipe.Steps,
		ImageBase64: imageB64,
	}, nil
}
