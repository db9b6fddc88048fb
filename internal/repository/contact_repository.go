package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/herbalgarden/storefront/internal/domain"
)

type mongoContactRepository struct {
	collection *mongo.Collection
}

func NewContactRepository(db *mongo.Database) ContactRepository {
	return &mongoContactRepository{
		collection: db.Collection("contacts"),
	}
}

func (m *mongoContactRepository) Insert(ctx context.Context, contact *domain.Contact) error {
	result, err := m.collection.InsertOne(ctx, contact)
	if err != nil {
		return fmt.Errorf("failed to insert contact: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		contact.ID = oid
	}
	return nil
}

func (m *mongoContactRepository) ListAll(ctx context.Context) ([]domain.Contact, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := m.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}
	defer cursor.Close(ctx)

	contacts := make([]domain.Contact, 0)
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, fmt.Errorf("failed to decode contacts: %w", err)
	}

	return contacts, nil
}
