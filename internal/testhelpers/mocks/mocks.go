package mocks

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/recipewreck/backend/internal/models"
	"github.com/recipewreck/backend/internal/store"
	"github.com/recipewreck/backend/internal/types"
)

// MockLLMService is a mock implementation of the LLM service
type MockLLMService struct {
	RecipeText string
	RoleText   string
	Err        error

	LastRecipePrompt string
	LastMessage      string
	LastHistory      []types.ChatTurn
}

func (m *MockLLMService) GenerateRecipeText(ctx context.Context, prompt string) (string, error) {
	m.LastRecipePrompt = prompt
	if m.Err != nil {
		return "", m.Err
	}
	return m.RecipeText, nil
}

func (m *MockLLMService) GenerateRoleChat(ctx context.Context, message string, history []types.ChatTurn) (string, error) {
	m.LastMessage = message
	m.LastHistory = history
	if m.Err != nil {
		return "", m.Err
	}
	return m.RoleText, nil
}

// MockImageService is a mock implementation of the image service
type MockImageService struct {
	Image string
	Err   error
}

func (m *MockImageService) GenerateImage(ctx context.Context, prompt string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return m.Image, nil
}

// MockRoleStore is an in-memory implementation of store.RoleStore
type MockRoleStore struct {
	Roles     map[string]*models.AiRole
	InsertErr error
}

func NewMockRoleStore() *MockRoleStore {
	return &MockRoleStore{Roles: make(map[string]*models.AiRole)}
}

func (m *MockRoleStore) Insert(ctx context.Context, role *models.AiRole) (string, time.Time, error) {
	if m.InsertErr != nil {
		return "", time.Time{}, m.InsertErr
	}
	role.ID = primitive.NewObjectID()
	role.CreatedAt = time.Now().UTC()
	copied := *role
	m.Roles[role.ID.Hex()] = &copied
	return role.ID.Hex(), role.CreatedAt, nil
}

func (m *MockRoleStore) Get(ctx context.Context, id string) (*models.AiRole, error) {
	role, ok := m.Roles[id]
	if !ok {
		return nil, store.ErrRoleNotFound
	}
	copied := *role
	return &copied, nil
}

func (m *MockRoleStore) List(ctx context.Context) ([]models.AiRole, error) {
	roles := make([]models.AiRole, 0, len(m.Roles))
	for _, role := range m.Roles {
		roles = append(roles, *role)
	}
	return roles, nil
}

func (m *MockRoleStore) Update(ctx context.Context, id string, role *models.AiRole) (*models.AiRole, error) {
	existing, ok := m.Roles[id]
	if !ok {
		return nil, store.ErrRoleNotFound
	}
	existing.Title = role.Title
	existing.Description = role.Description
	existing.SystemPromptText = role.SystemPromptText
	existing.Category = role.Category
	existing.Tags = role.Tags
	existing.Version++
	copied := *existing
	return &copied, nil
}

func (m *MockRoleStore) Delete(ctx context.Context, id string) error {
	if _, ok := m.Roles[id]; !ok {
		return store.ErrRoleNotFound
	}
	delete(m.Roles, id)
	return nil
}
