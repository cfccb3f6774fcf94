package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/recipewreck/backend/internal/parser"
	"github.com/recipewreck/backend/internal/service"
	"github.com/recipewreck/backend/internal/store"
	"github.com/recipewreck/backend/internal/testhelpers/mocks"
	"github.com/recipewreck/backend/internal/types"
)

const sessionTag = "onboarding-demo"

func roleTextWith(payload string) string {
	return "Sounds fun!\n" + parser.JSONStartMarker + "\n" + payload + "\n" + parser.JSONEndMarker
}

func TestRoleService_Chat(t *testing.T) {
	ctx := context.Background()

	t.Run("valid payload is persisted and returned", func(t *testing.T) {
		roleStore := mocks.NewMockRoleStore()
		llm := &mocks.MockLLMService{
			RoleText: roleTextWith(`{"title":"Joke Bot","description":"d","systemPromptText":"p","category":"Creative","tags":["Fun"]}`),
		}
		svc := service.NewRoleService(roleStore, llm, sessionTag, zap.NewNop())

		resp, err := svc.Chat(ctx, "make a joke bot", nil)

		require.NoError(t, err)
		assert.Equal(t, "Sounds fun!", resp.AiResponseText)
		assert.Equal(t, "Joke Bot", resp.AiRoleJson.Title)
		assert.Equal(t, []string{"fun"}, resp.AiRoleJson.Tags)
		assert.Equal(t, 1, resp.AiRoleJson.Version)
		assert.Equal(t, sessionTag, resp.AiRoleJson.CreatedBy)
		assert.False(t, resp.AiRoleJson.CreatedAt.IsZero())

		// The id is the store-assigned one.
		require.Len(t, roleStore.Roles, 1)
		_, ok := roleStore.Roles[resp.AiRoleJson.ID]
		assert.True(t, ok)
	})

	t.Run("schema failure warns but still persists", func(t *testing.T) {
		roleStore := mocks.NewMockRoleStore()
		llm := &mocks.MockLLMService{
			RoleText: roleTextWith(`{"title":"t","description":"d","systemPromptText":"p","category":"NotARealCategory","tags":[]}`),
		}
		svc := service.NewRoleService(roleStore, llm, sessionTag, zap.NewNop())

		resp, err := svc.Chat(ctx, "msg", nil)

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(resp.AiRoleJson.Title, parser.WarnTitlePrefix))
		require.Len(t, roleStore.Roles, 1)
		for _, stored := range roleStore.Roles {
			assert.True(t, strings.HasPrefix(stored.Title, parser.WarnTitlePrefix))
		}
	})

	t.Run("fallback candidate is not persisted", func(t *testing.T) {
		roleStore := mocks.NewMockRoleStore()
		llm := &mocks.MockLLMService{RoleText: "no markers in sight"}
		svc := service.NewRoleService(roleStore, llm, sessionTag, zap.NewNop())

		resp, err := svc.Chat(ctx, "msg", nil)

		require.NoError(t, err)
		assert.Equal(t, parser.ErrorCategory, resp.AiRoleJson.Category)
		assert.Empty(t, roleStore.Roles)
		assert.Zero(t, resp.AiRoleJson.Version)
		assert.NotEmpty(t, resp.AiRoleJson.ID)
	})

	t.Run("persist failure still returns the candidate", func(t *testing.T) {
		roleStore := mocks.NewMockRoleStore()
		roleStore.InsertErr = errors.New("connection refused")
		llm := &mocks.MockLLMService{
			RoleText: roleTextWith(`{"title":"t","description":"d","systemPromptText":"p","category":"Custom","tags":[]}`),
		}
		svc := service.NewRoleService(roleStore, llm, sessionTag, zap.NewNop())

		resp, err := svc.Chat(ctx, "msg", nil)

		require.NoError(t, err)
		assert.Equal(t, "t", resp.AiRoleJson.Title)
		assert.Equal(t, 1, resp.AiRoleJson.Version)
		// Temporary id, nothing durable.
		assert.NotEmpty(t, resp.AiRoleJson.ID)
		assert.Empty(t, roleStore.Roles)
	})

	t.Run("model transport failure propagates", func(t *testing.T) {
		roleStore := mocks.NewMockRoleStore()
		llm := &mocks.MockLLMService{Err: errors.New("network down")}
		svc := service.NewRoleService(roleStore, llm, sessionTag, zap.NewNop())

		resp, err := svc.Chat(ctx, "msg", nil)

		assert.Error(t, err)
		assert.Nil(t, resp)
	})
}

func TestRoleService_CRUD(t *testing.T) {
	ctx := context.Background()
	roleStore := mocks.NewMockRoleStore()
	svc := service.NewRoleService(roleStore, &mocks.MockLLMService{}, sessionTag, zap.NewNop())

	created, err := svc.CreateRole(ctx, &types.CreateRoleRequest{
		Title:            "Pirate Tutor",
		Description:      "Teaches like a pirate",
		SystemPromptText: "You are a pirate tutor.",
		Tags:             []string{"ARR", "Teaching"},
	})
	require.NoError(t, err)
	assert.Equal(t, parser.DefaultCategory, created.Category)
	assert.Equal(t, []string{"arr", "teaching"}, created.Tags)
	assert.Equal(t, 1, created.Version)
	assert.Equal(t, sessionTag, created.CreatedBy)

	got, err := svc.GetRole(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, got.Title)

	roles, err := svc.ListRoles(ctx)
	require.NoError(t, err)
	assert.Len(t, roles, 1)

	updated, err := svc.UpdateRole(ctx, created.ID, &types.UpdateRoleRequest{
		Title:            "Pirate Professor",
		Description:      "Teaches like a pirate",
		SystemPromptText: "You are a pirate professor.",
		Category:         "Education",
	})
	require.NoError(t, err)
	assert.Equal(t, "Pirate Professor", updated.Title)
	assert.Equal(t, 2, updated.Version)

	require.NoError(t, svc.DeleteRole(ctx, created.ID))

	_, err = svc.GetRole(ctx, created.ID)
	assert.ErrorIs(t, err, store.ErrRoleNotFound)
}
