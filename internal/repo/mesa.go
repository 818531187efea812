package repo

import (
	"context"

	"github.com/Lu1zH3nriq/portalAdmin/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MesaRepository interface {
	List(ctx context.Context) ([]domain.Mesa, error)
	Create(ctx context.Context, mesa *domain.Mesa) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Mesa, error)
	GetByNumero(ctx context.Context, numero int) (*domain.Mesa, error)
	Replace(ctx context.Context, mesa *domain.Mesa) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
