package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Lu1zH3nriq/portalAdmin/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MesaRepository is an in-memory implementation backing unit tests.
type MesaRepository struct {
	mu    sync.RWMutex
	store map[primitive.ObjectID]domain.Mesa
}

func NewMesaRepository() *MesaRepository {
	return &MesaRepository{store: make(map[primitive.ObjectID]domain.Mesa)}
}

func (r *MesaRepository) List(ctx context.Context) ([]domain.Mesa, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Mesa, 0, len(r.store))
	for _, m := range r.store {
		out = append(out, cloneMesa(m))
	}
	return out, nil
}

func (r *MesaRepository) Create(ctx context.Context, mesa *domain.Mesa) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if mesa.ID.IsZero() {
		mesa.ID = primitive.NewObjectID()
	}
	mesa.CreatedAt = time.Now()
	mesa.UpdatedAt = mesa.CreatedAt
	r.store[mesa.ID] = cloneMesa(*mesa)
	return nil
}

func (r *MesaRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Mesa, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if m, ok := r.store[id]; ok {
		c := cloneMesa(m)
		return &c, nil
	}
	return nil, domain.ErrMesaNotFound
}

func (r *MesaRepository) GetByNumero(ctx context.Context, numero int) (*domain.Mesa, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.store {
		if m.Numero == numero {
			c := cloneMesa(m)
			return &c, nil
		}
	}
	return nil, domain.ErrMesaNotFound
}

func (r *MesaRepository) Replace(ctx context.Context, mesa *domain.Mesa) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[mesa.ID]; !ok {
		return domain.ErrMesaNotFound
	}
	mesa.UpdatedAt = time.Now()
	r.store[mesa.ID] = cloneMesa(*mesa)
	return nil
}

func (r *MesaRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[id]; !ok {
		return domain.ErrMesaNotFound
	}
	delete(r.store, id)
	return nil
}

func cloneMesa(m domain.Mesa) domain.Mesa {
	reservas := make([]domain.Reserva, len(m.Reservas))
	copy(reservas, m.Reservas)
	m.Reservas = reservas
	return m
}
