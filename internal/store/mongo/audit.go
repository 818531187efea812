package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/Lu1zH3nriq/portalAdmin/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MesaAuditRepository struct {
	collection *mongo.Collection
}

func NewMesaAuditRepository(db *mongo.Database) *MesaAuditRepository {
	return &MesaAuditRepository{
		collection: db.Collection("mesa_audit"),
	}
}

func (r *MesaAuditRepository) Create(ctx context.Context, audit *domain.MesaAudit) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if audit.ID.IsZero() {
		audit.ID = primitive.NewObjectID()
	}
	if audit.Timestamp.IsZero() {
		audit.Timestamp = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, audit)
	if err != nil {
		return fmt.Errorf("failed to create mesa audit: %w", err)
	}

	return nil
}

func (r *MesaAuditRepository) GetByMesaID(ctx context.Context, mesaID string, limit int) ([]domain.MesaAudit, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"mesa_id": mesaID}
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}).SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get mesa audits: %w", err)
	}
	defer cursor.Close(ctx)

	var audits []domain.MesaAudit
	if err := cursor.All(ctx, &audits); err != nil {
		return nil, fmt.Errorf("failed to decode mesa audits: %w", err)
	}

	return audits, nil
}
