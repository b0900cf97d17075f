package database

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/salesboard/internal/pkg/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoClient represents a MongoDB database client
type MongoClient struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoClient creates a new MongoDB client
func NewMongoClient(config models.MongoConfig) (*MongoClient, error) {
	timeout := time.Duration(config.ConnectTimeout) * time.Second
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Verify connection
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoClient{
		client: client,
		db:     client.Database(config.Database),
	}, nil
}

// Collection returns a handle to the named collection
func (m *MongoClient) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

// Close disconnects the MongoDB client
func (m *MongoClient) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
