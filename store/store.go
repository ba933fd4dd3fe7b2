// Package store wraps the MongoDB collection that holds ingested articles.
// The handle is constructed once in main and passed to the ingestion job and
// the query controllers; records expire through the TTL index on expireAt,
// nothing deletes them explicitly.
package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"news-ko-backend/models"
)

type Store struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// Connect establishes a MongoDB connection, pings it and returns a Store
// bound to the given database/collection.
func Connect(ctx context.Context, uri, database, collection string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return &Store{
		client: client,
		coll:   client.Database(database).Collection(collection),
	}, nil
}

// EnsureIndexes creates the unique id index and the TTL index that lets
// MongoDB expire records once expireAt passes.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "expireAt", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0),
		},
	})
	if err != nil {
		return fmt.Errorf("create indexes: %w", err)
	}
	return nil
}

// Put writes one article record. Records are never updated in place.
func (s *Store) Put(ctx context.Context, article models.Article) error {
	if _, err := s.coll.InsertOne(ctx, article); err != nil {
		return fmt.Errorf("insert article %s: %w", article.ID, err)
	}
	return nil
}

// GetByID returns the article with the given id, or nil when no record
// matches.
func (s *Store) GetByID(ctx context.Context, id string) (*models.Article, error) {
	var article models.Article
	err := s.coll.FindOne(ctx, bson.M{"id": id}).Decode(&article)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find article %s: %w", id, err)
	}
	return &article, nil
}

// Scan returns all records, filtered by category equality when category is
// non-empty.
func (s *Store) Scan(ctx context.Context, category string) ([]models.Article, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	cur, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("scan articles: %w", err)
	}
	defer cur.Close(ctx)

	out := []models.Article{}
	for cur.Next(ctx) {
		var a models.Article
		if err := cur.Decode(&a); err != nil {
			continue
		}
		out = append(out, a)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("scan articles: %w", err)
	}
	return out, nil
}

// Ping reports store connectivity for the health endpoint.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
