package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/herbalgarden/storefront/internal/domain"
)

type mongoProductRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(db *mongo.Database) ProductRepository {
	return &mongoProductRepository{
		collection: db.Collection("products"),
	}
}

func (m *mongoProductRepository) List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	query := bson.M{}

	if filter.Search != "" {
		query["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.MinPrice != nil || filter.MaxPrice != nil {
		price := bson.M{}
		if filter.MinPrice != nil {
			price["$gte"] = *filter.MinPrice
		}
		if filter.MaxPrice != nil {
			price["$lte"] = *filter.MaxPrice
		}
		query["price"] = price
	}
	if filter.Featured {
		query["featured"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := m.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer cursor.Close(ctx)

	products := make([]domain.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	return products, nil
}

func (m *mongoProductRepository) Resolve(ctx context.Context, id string) (*domain.Product, error) {
	// Storage identifier first, numeric catalog identifier second.
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		var product domain.Product
		err := m.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&product)
		if err == nil {
			return &product, nil
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("failed to get product by _id: %w", err)
		}
	}

	catalogID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil, ErrProductNotFound
	}

	var product domain.Product
	if err := m.collection.FindOne(ctx, bson.M{"id": catalogID}).Decode(&product); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product by catalog id: %w", err)
	}

	return &product, nil
}

func (m *mongoProductRepository) Search(ctx context.Context, query string) ([]domain.Product, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter := bson.M{
		"$or": bson.A{
			bson.M{"name": pattern},
			bson.M{"scientificName": pattern},
			bson.M{"description": pattern},
		},
	}

	cursor, err := m.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	defer cursor.Close(ctx)

	products := make([]domain.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode search results: %w", err)
	}

	return products, nil
}

func (m *mongoProductRepository) Count(ctx context.Context) (int64, error) {
	count, err := m.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

func (m *mongoProductRepository) InsertMany(ctx context.Context, products []domain.Product) error {
	docs := make([]interface{}, 0, len(products))
	now := time.Now().UTC()
	for i := range products {
		if products[i].CreatedAt.IsZero() {
			products[i].CreatedAt = now
		}
		docs = append(docs, products[i])
	}

	if _, err := m.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert products: %w", err)
	}
	return nil
}
