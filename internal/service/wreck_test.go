package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/recipewreck/backend/internal/parser"
	"github.com/recipewreck/backend/internal/service"
	"github.com/recipewreck/backend/internal/testhelpers/mocks"
)

func TestWreckService_GenerateWreck(t *testing.T) {
	ctx := context.Background()

	t.Run("assembles card from text and image", func(t *testing.T) {
		llm := &mocks.MockLLMService{
			RecipeText: "Title: Deep-Fried Regret\nIngredients:\n- Butter\n- Sugar\nSteps:\n1. Mix\n2. Fry",
		}
		image := &mocks.MockImageService{Image: "aW1hZ2U="}
		svc := service.NewWreckService(llm, image, zap.NewNop())

		result, err := svc.GenerateWreck(ctx, "regret")

		require.NoError(t, err)
		assert.Equal(t, "Deep-Fried Regret", result.Title)
		assert.Equal(t, []string{"Butter", "Sugar"}, result.Ingredients)
		assert.Equal(t, []string{"Mix", "Fry"}, result.Steps)
		assert.Equal(t, "aW1hZ2U=", result.ImageBase64)
		assert.Equal(t, "regret", llm.LastRecipePrompt)
	})

	t.Run("unstructured text degrades to defaults", func(t *testing.T) {
		llm := &mocks.MockLLMService{RecipeText: "sorry, I can only talk about insurance"}
		image := &mocks.MockImageService{Image: "aW1hZ2U="}
		svc := service.NewWreckService(llm, image, zap.NewNop())

		result, err := svc.GenerateWreck(ctx, "anything")

		require.NoError(t, err)
		assert.Equal(t, parser.DefaultTitle, result.Title)
		assert.Empty(t, result.Ingredients)
		assert.Empty(t, result.Steps)
	})

	t.Run("text generation failure is fatal", func(t *testing.T) {
		llm := &mocks.MockLLMService{Err: errors.New("timeout")}
		svc := service.NewWreckService(llm, &mocks.MockImageService{}, zap.NewNop())

		result, err := svc.GenerateWreck(ctx, "anything")

		assert.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("image generation failure is fatal", func(t *testing.T) {
		llm := &mocks.MockLLMService{RecipeText: "Title: Fine"}
		image := &mocks.MockImageService{Err: errors.New("quota exceeded")}
		svc := service.NewWreckService(llm, image, zap.NewNop())

		result, err := svc.GenerateWreck(ctx, "anything")

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}
