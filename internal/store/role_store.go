package store

import (
	"context"
	"errors"
	"time"

	"github.com/recipewreck/backend/internal/models"
)

// ErrRoleNotFound is returned when no role document matches the given id.
var ErrRoleNotFound = errors.New("role not found")

// RoleStore isolates role persistence behind a small interface so the
// parsing and validation logic stays testable without a live database.
type RoleStore interface {
	// Insert stores a new role and returns the store-assigned id and
	// creation timestamp.
	Insert(ctx context.Context, role *models.AiRole) (string, time.Time, error)
	Get(ctx context.Context, id string) (*models.AiRole, error)
	List(ctx context.Context) ([]models.AiRole, error)
	Update(ctx context.Context, id string, role *models.AiRole) (*models.AiRole, error)
	Delete(ctx context.Context, id string) error
}
