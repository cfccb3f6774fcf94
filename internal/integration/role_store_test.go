package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/recipewreck/backend/config"
	"github.com/recipewreck/backend/internal/database"
	"github.com/recipewreck/backend/internal/models"
	"github.com/recipewreck/backend/internal/store"
)

// setupRoleStore starts a MongoDB container and returns a store backed by it.
func setupRoleStore(t *testing.T) *store.MongoRoleStore {
	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor: wait.ForAll(
			wait.ForLog("Waiting for connections"),
			wait.ForListeningPort("27017/tcp"),
		),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Error terminating mongo container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "27017")
	require.NoError(t, err)

	cfg := &config.Config{
		MongoURI:      fmt.Sprintf("mongodb://%s:%s", host, port.Port()),
		MongoDatabase: "recipewreck_test",
	}
	db, err := database.NewMongoDatabase(cfg, zap.NewNop())
	require.NoError(t, err)

	return store.NewMongoRoleStore(db, zap.NewNop())
}

func newRole(title string) *models.AiRole {
	return &models.AiRole{
		Title:            title,
		Description:      "Tells jokes",
		SystemPromptText: "You are a joke bot.",
		Category:         "Creative",
		Tags:             []string{"fun"},
		Version:          1,
		CreatedBy:        "onboarding-demo",
	}
}

func TestMongoRoleStore(t *testing.T) {
	roleStore := setupRoleStore(t)
	ctx := context.Background()

	t.Run("insert assigns id and timestamp", func(t *testing.T) {
		role := newRole("Joke Bot")

		id, createdAt, err := roleStore.Insert(ctx, role)

		require.NoError(t, err)
		assert.NotEmpty(t, id)
		assert.False(t, createdAt.IsZero())
		assert.Equal(t, id, role.ID.Hex())
	})

	t.Run("get round-trips the document", func(t *testing.T) {
		id, _, err := roleStore.Insert(ctx, newRole("Pirate Tutor"))
		require.NoError(t, err)

		got, err := roleStore.Get(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, "Pirate Tutor", got.Title)
		assert.Equal(t, "You are a joke bot.", got.SystemPromptText)
		assert.Equal(t, []string{"fun"}, got.Tags)
		assert.Equal(t, 1, got.Version)
		assert.Equal(t, "onboarding-demo", got.CreatedBy)
	})

	t.Run("get with malformed id is not found", func(t *testing.T) {
		_, err := roleStore.Get(ctx, "not-a-hex-id")

		assert.ErrorIs(t, err, store.ErrRoleNotFound)
	})

	t.Run("get with unknown id is not found", func(t *testing.T) {
		_, err := roleStore.Get(ctx, "64b0c0ffee0ddba11feed000")

		assert.ErrorIs(t, err, store.ErrRoleNotFound)
	})

	t.Run("list is newest first", func(t *testing.T) {
		_, _, err := roleStore.Insert(ctx, newRole("Older"))
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
		_, _, err = roleStore.Insert(ctx, newRole("Newer"))
		require.NoError(t, err)

		roles, err := roleStore.List(ctx)

		require.NoError(t, err)
		require.GreaterOrEqual(t, len(roles), 2)
		assert.Equal(t, "Newer", roles[0].Title)
	})

	t.Run("update replaces fields and bumps the version", func(t *testing.T) {
		id, _, err := roleStore.Insert(ctx, newRole("Draft"))
		require.NoError(t, err)

		updated, err := roleStore.Update(ctx, id, &models.AiRole{
			Title:            "Final",
			Description:      "Polished",
			SystemPromptText: "You are final.",
			Category:         "Education",
			Tags:             []string{"done"},
		})

		require.NoError(t, err)
		assert.Equal(t, "Final", updated.Title)
		assert.Equal(t, "Education", updated.Category)
		assert.Equal(t, 2, updated.Version)

		// Persisted, not just returned.
		got, err := roleStore.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 2, got.Version)
	})

	t.Run("update of unknown id is not found", func(t *testing.T) {
		_, err := roleStore.Update(ctx, "64b0c0ffee0ddba11feed000", newRole("Ghost"))

		assert.ErrorIs(t, err, store.ErrRoleNotFound)
	})

	t.Run("delete removes the document", func(t *testing.T) {
		id, _, err := roleStore.Insert(ctx, newRole("Doomed"))
		require.NoError(t, err)

		require.NoError(t, roleStore.Delete(ctx, id))

		_, err = roleStore.Get(ctx, id)
		assert.ErrorIs(t, err, store.ErrRoleNotFound)

		assert.ErrorIs(t, roleStore.Delete(ctx, id), store.ErrRoleNotFound)
	})
}
