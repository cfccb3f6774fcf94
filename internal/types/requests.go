package types

import (
	"time"
)

// GenerateWreckRequest is the body of the recipe-generation endpoint.
type GenerateWreckRequest struct {
	Prompt string `json:"prompt" binding:"required,min=1,max=500"`
}

// WreckResponse is the generated recipe card returned to the caller. It is
// assembled per request and never stored server-side.
type WreckResponse struct {
	Title       string   `json:"title"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
	ImageBase64 string   `json:"imageBase64"`
}

// ChatPart is one text fragment of a conversation turn.
type ChatPart struct {
	Text string `json:"text" binding:"required,max=2000"`
}

// ChatTurn is one turn of the onboarding conversation history.
type ChatTurn struct {
	Role  string     `json:"role" binding:"required,oneof=user model"`
	Parts []ChatPart `json:"parts" binding:"required,min=1,dive"`
}

// RoleChatRequest is the body of the onboarding-chat endpoint. History beyond
// the last 20 turns is dropped, not rejected.
type RoleChatRequest struct {
	Message             string     `json:"message" binding:"required,min=1,max=2000"`
	ConversationHistory []ChatTurn `json:"conversationHistory" binding:"omitempty,dive"`
}

// AiRoleJSON is the wire form of a role candidate, durable or not. The id is
// the store-assigned hex id after a successful insert, otherwise the
// temporary request-scoped one.
type AiRoleJSON struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	SystemPromptText string    `json:"systemPromptText"`
	Category         string    `json:"category"`
	Tags             []string  `json:"tags"`
	Version          int       `json:"version"`
	CreatedAt        time.Time `json:"createdAt"`
	CreatedBy        string    `json:"createdBy"`
}

// RoleChatResponse is the body returned by the onboarding-chat endpoint.
type RoleChatResponse struct {
	AiResponseText string     `json:"aiResponseText"`
	AiRoleJson     AiRoleJSON `json:"aiRoleJson"`
}

// CreateRoleRequest is the body for creating a role directly.
type CreateRoleRequest struct {
	Title            string   `json:"title" binding:"required,max=120"`
	Description      string   `json:"description" binding:"required,max=500"`
	SystemPromptText string   `json:"systemPromptText" binding:"required,max=4000"`
	Category         string   `json:"category" binding:"omitempty,max=40"`
	Tags             []string `json:"tags" binding:"omitempty,max=10,dive,max=40"`
}

// UpdateRoleRequest is the body for updating an existing role.
type UpdateRoleRequest struct {
	Title            string   `json:"title" binding:"required,max=120"`
	Description      string   `json:"description" binding:"required,max=500"`
	SystemPromptText string   `json:"systemPromptText" binding:"required,max=4000"`
	Category         string   `json:"category" binding:"omitempty,max=40"`
	Tags             []string `json:"tags" binding:"omitempty,max=10,dive,max=40"`
}
