package service

import (
	"context"

	"github.com/recipewreck/backend/internal/types"
)

// ILLMService defines the interface for text-generation calls
type ILLMService interface {
	GenerateRecipeText(ctx context.Context, prompt string) (string, error)
	GenerateRoleChat(ctx context.Context, message string, history []types.ChatTurn) (string, error)
}

// IImageService defines the interface for image-generation calls
type IImageService interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// IWreckService defines the interface for recipe-card generation
type IWreckService interface {
	GenerateWreck(ctx context.Context, prompt string) (*types.WreckResponse, error)
}

// IRoleService defines the interface for the onboarding chat and role CRUD
type IRoleService interface {
	Chat(ctx context.Context, message string, history []types.ChatTurn) (*types.RoleChatResponse, error)
	CreateRole(ctx context.Context, req *types.CreateRoleRequest) (*types.AiRoleJSON, error)
	GetRole(ctx context.Context, id string) (*types.AiRoleJSON, error)
	ListRoles(ctx context.Context) ([]types.AiRoleJSON, error)
	UpdateRole(ctx context.Context, id string, req *types.UpdateRoleRequest) (*types.AiRoleJSON, error)
	DeleteRole(ctx context.Context, id string) error
}
