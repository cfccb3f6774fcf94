package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AiRole is a persisted AI role document in the ai_roles collection.
type AiRole struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title            string             `bson:"title" json:"title"`
	Description      string             `bson:"description" json:"description"`
	SystemPromptText string             `bson:"system_prompt_text" json:"systemPromptText"`
	Category         string             `bson:"category" json:"category"`
	Tags             []string           `bson:"tags" json:"tags"`
	Version          int                `bson:"version" json:"version"`
	CreatedAt        time.Time          `bson:"created_at" json:"createdAt"`
	CreatedBy        string             `bson:"created_by" json:"createdBy"`
}
