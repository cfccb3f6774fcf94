package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/recipewreck/backend/internal/models"
	"github.com/recipewreck/backend/internal/parser"
	"github.com/recipewreck/backend/internal/store"
	"github.com/recipewreck/backend/internal/types"
)

// RoleService runs the onboarding chat flow and the thin CRUD surface over
// persisted AI roles.
type RoleService struct {
	store      store.RoleStore
	llm        ILLMService
	sessionTag string
	logger     *zap.Logger
}

// NewRoleService creates a new RoleService instance
func NewRoleService(roleStore store.RoleStore, llm ILLMService, sessionTag string, logger *zap.Logger) *RoleService {
	return &RoleService{
		store:      roleStore,
		llm:        llm,
		sessionTag: sessionTag,
		logger:     logger,
	}
}

// Chat runs one onboarding turn: model call, split, two-phase validation,
// best-effort persistence. Only the model call itself can fail; every parse
// or validation failure degrades into a fallback candidate, and a persistence
// failure is logged and the non-durable candidate returned as-is.
func (s *RoleService) Chat(ctx context.Context, message string, history []types.ChatTurn) (*types.RoleChatResponse, error) {
	raw, err := s.llm.GenerateRoleChat(ctx, message, history)
	if err != nil {
		return nil, fmt.Errorf("chat generation failed: %w", err)
	}

	chatText, candidate := parser.SplitRoleResponse(raw, message)

	roleJSON := types.AiRoleJSON{
		ID:               uuid.New().String(),
		Title:            candidate.Title,
		Description:      candidate.Description,
		SystemPromptText: candidate.SystemPromptText,
		Category:         candidate.Category,
		Tags:             candidate.Tags,
	}

	if !candidate.IsFallback() {
		if verr := parser.ValidateStrict(candidate); verr != nil {
			// Warn, don't reject: keep the candidate but make the
			// schema failure visible in its title.
			candidate = parser.MarkWarned(candidate)
			roleJSON.Title = candidate.Title
			s.logger.Warn("role candidate failed schema validation",
				zap.String("title", candidate.Title),
				zap.Error(verr))
		}

		role := &models.AiRole{
			Title:            candidate.Title,
			Description:      candidate.Description,
			SystemPromptText: candidate.SystemPromptText,
			Category:         candidate.Category,
			Tags:             candidate.Tags,
			Version:          1,
			CreatedAt:        time.Now().UTC(),
			CreatedBy:        s.sessionTag,
		}
		roleJSON.Version = role.Version
		roleJSON.CreatedAt = role.CreatedAt
		roleJSON.CreatedBy = role.CreatedBy

		id, createdAt, err := s.store.Insert(ctx, role)
		if err != nil {
			// The generated candidate is still returned, but it is
			// not durable.
			s.logger.Error("failed to persist role candidate",
				zap.String("title", role.Title),
				zap.Error(err))
		} else {
			roleJSON.ID = id
			roleJSON.CreatedAt = createdAt
		}
	}

	return &types.RoleChatResponse{
		AiResponseText: chatText,
		AiRoleJson:     roleJSON,
	}, nil
}

// CreateRole persists a role supplied directly by the client.
func (s *RoleService) CreateRole(ctx context.Context, req *types.CreateRoleRequest) (*types.AiRoleJSON, error) {
	role := &models.AiRole{
		Title:            req.Title,
		Description:      req.Description,
		SystemPromptText: req.SystemPromptText,
		Category:         req.Category,
		Tags:             lowerTags(req.Tags),
		Version:          1,
		CreatedBy:        s.sessionTag,
	}
	if role.Category == "" {
		role.Category = parser.DefaultCategory
	}

	if _, _, err := s.store.Insert(ctx, role); err != nil {
		return nil, err
	}

	result := roleJSON(role)
	return &result, nil
}

// GetRole fetches one role by id.
func (s *RoleService) GetRole(ctx context.Context, id string) (*types.AiRoleJSON, error) {
	role, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	result := roleJSON(role)
	return &result, nil
}

// ListRoles lists all persisted roles, newest first.
func (s *RoleService) ListRoles(ctx context.Context) ([]types.AiRoleJSON, error) {
	roles, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]types.AiRoleJSON, 0, len(roles))
	for i := range roles {
		result = append(result, roleJSON(&roles[i]))
	}
	return result, nil
}

// UpdateRole replaces a role's fields; the store increments its version.
func (s *RoleService) UpdateRole(ctx context.Context, id string, req *types.UpdateRoleRequest) (*types.AiRoleJSON, error) {
	role := &models.AiRole{
		Title:            req.Title,
		Description:      req.Description,
		SystemPromptText: req.SystemPromptText,
		Category:         req.Category,
		Tags:             lowerTags(req.Tags),
	}
	if role.Category == "" {
		role.Category = parser.DefaultCategory
	}

	updated, err := s.store.Update(ctx, id, role)
	if err != nil {
		return nil, err
	}
	result := roleJSON(updated)
	return &result, nil
}

// DeleteRole removes a role by id.
func (s *RoleService) DeleteRole(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// roleJSON converts a stored role document into its wire form.
func roleJSON(role *models.AiRole) types.AiRoleJSON {
	return types.AiRoleJSON{
		ID:               role.ID.Hex(),
		Title:            role.Title,
		Description:      role.Description,
		SystemPromptText: role.SystemPromptText,
		Category:         role.Category,
		Tags:             role.Tags,
		Version:          role.Version,
		CreatedAt:        role.CreatedAt,
		CreatedBy:        role.CreatedBy,
	}
}

func lowerTags(tags []string) []string {
	lowered := make([]string, 0, len(tags))
	for _, t := range tags {
		lowered = append(lowered, strings.ToLower(t))
	}
	return lowered
}
