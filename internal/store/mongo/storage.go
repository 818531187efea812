package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Storage struct {
	client   *mongo.Client
	database *mongo.Database
	config   Config
}

type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

func New(cfg Config) (*Storage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(100).
		SetMinPoolSize(10)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	database := client.Database(cfg.Database)

	return &Storage{
		client:   client,
		database: database,
		config:   cfg,
	}, nil
}

func (s *Storage) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Storage) Database() *mongo.Database {
	return s.database
}

func (s *Storage) CreateIndexes(ctx context.Context) error {
	// numero lookups always go through a filter query, so keep it indexed
	// even though uniqueness is enforced by the gateway, not the store
	mesasIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "numero", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "reservas.dataReserva", Value: 1}},
		},
	}
	if _, err := s.database.Collection("mesas").Indexes().CreateMany(ctx, mesasIndexes); err != nil {
		return fmt.Errorf("failed to create mesas indexes: %w", err)
	}

	auditIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "mesa_id", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "timestamp", Value: 1}},
		},
	}
	if _, err := s.database.Collection("mesa_audit").Indexes().CreateMany(ctx, auditIndexes); err != nil {
		return fmt.Errorf("failed to create mesa_audit indexes: %w", err)
	}

	return nil
}
