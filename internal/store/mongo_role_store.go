package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/recipewreck/backend/internal/models"
)

const roleCollection = "ai_roles"

// opTimeout bounds every single store operation.
const opTimeout = 10 * time.Second

// MongoRoleStore implements RoleStore against a MongoDB collection.
type MongoRoleStore struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

// NewMongoRoleStore creates a role store on the given database.
func NewMongoRoleStore(db *mongo.Database, logger *zap.Logger) *MongoRoleStore {
	return &MongoRoleStore{
		collection: db.Collection(roleCollection),
		logger:     logger,
	}
}

func (s *MongoRoleStore) Insert(ctx context.Context, role *models.AiRole) (string, time.Time, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	role.CreatedAt = time.Now().UTC()
	result, err := s.collection.InsertOne(ctx, role)
	if err != nil {
		s.logger.Error("failed to insert role",
			zap.String("title", role.Title),
			zap.Error(err))
		return "", time.Time{}, fmt.Errorf("failed to insert role: %w", err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", time.Time{}, errors.New("unexpected inserted id type")
	}
	role.ID = id

	return id.Hex(), role.CreatedAt, nil
}

func (s *MongoRoleStore) Get(ctx context.Context, id string) (*models.AiRole, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrRoleNotFound
	}

	var role models.AiRole
	err = s.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&role)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrRoleNotFound
		}
		s.logger.Error("failed to find role", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to find role: %w", err)
	}

	return &role, nil
}

func (s *MongoRoleStore) List(ctx context.Context) ([]models.AiRole, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		s.logger.Error("failed to list roles", zap.Error(err))
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	defer cursor.Close(ctx)

	roles := []models.AiRole{}
	if err := cursor.All(ctx, &roles); err != nil {
		return nil, fmt.Errorf("failed to decode roles: %w", err)
	}

	return roles, nil
}

func (s *MongoRoleStore) Update(ctx context.Context, id string, role *models.AiRole) (*models.AiRole, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrRoleNotFound
	}

	update := bson.M{
		"$set": bson.M{
			"title":              role.Title,
			"description":        role.Description,
			"system_prompt_text": role.SystemPromptText,
			"category":           role.Category,
			"tags":               role.Tags,
		},
		"$inc": bson.M{"version": 1},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.AiRole
	err = s.collection.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrRoleNotFound
		}
		s.logger.Error("failed to update role", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to update role: %w", err)
	}

	return &updated, nil
}

func (s *MongoRoleStore) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrRoleNotFound
	}

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		s.logger.Error("failed to delete role", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("failed to delete role: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrRoleNotFound
	}

	return nil
}
