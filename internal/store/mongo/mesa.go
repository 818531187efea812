package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Lu1zH3nriq/portalAdmin/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MesaRepository struct {
	collection *mongo.Collection
}

func NewMesaRepository(db *mongo.Database) *MesaRepository {
	return &MesaRepository{
		collection: db.Collection("mesas"),
	}
}

func (r *MesaRepository) List(ctx context.Context) ([]domain.Mesa, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list mesas: %w", err)
	}
	defer cursor.Close(ctx)

	mesas := []domain.Mesa{}
	if err := cursor.All(ctx, &mesas); err != nil {
		return nil, fmt.Errorf("failed to decode mesas: %w", err)
	}

	return mesas, nil
}

func (r *MesaRepository) Create(ctx context.Context, mesa *domain.Mesa) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if mesa.ID.IsZero() {
		mesa.ID = primitive.NewObjectID()
	}
	mesa.CreatedAt = time.Now()
	mesa.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, mesa)
	if err != nil {
		return fmt.Errorf("failed to create mesa: %w", err)
	}

	return nil
}

func (r *MesaRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Mesa, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var mesa domain.Mesa
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&mesa)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMesaNotFound
		}
		return nil, fmt.Errorf("failed to get mesa: %w", err)
	}

	return &mesa, nil
}

// GetByNumero resolves a mesa through a filter query; numero is not a key
// in the store, only _id is.
func (r *MesaRepository) GetByNumero(ctx context.Context, numero int) (*domain.Mesa, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var mesa domain.Mesa
	err := r.collection.FindOne(ctx, bson.M{"numero": numero}).Decode(&mesa)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMesaNotFound
		}
		return nil, fmt.Errorf("failed to get mesa by numero: %w", err)
	}

	return &mesa, nil
}

// Replace writes the full document back; every mutation is a
// read-modify-write and the last write wins.
func (r *MesaRepository) Replace(ctx context.Context, mesa *domain.Mesa) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	mesa.UpdatedAt = time.Now()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": mesa.ID}, mesa)
	if err != nil {
		return fmt.Errorf("failed to replace mesa: %w", err)
	}

	if result.MatchedCount == 0 {
		return domain.ErrMesaNotFound
	}

	return nil
}

func (r *MesaRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete mesa: %w", err)
	}

	if result.DeletedCount == 0 {
		return domain.ErrMesaNotFound
	}

	return nil
}
