package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Lu1zH3nriq/portalAdmin/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MesaAuditRepository struct {
	mu      sync.RWMutex
	records []domain.MesaAudit
}

func NewMesaAuditRepository() *MesaAuditRepository {
	return &MesaAuditRepository{}
}

func (r *MesaAuditRepository) Create(ctx context.Context, audit *domain.MesaAudit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if audit.ID.IsZero() {
		audit.ID = primitive.NewObjectID()
	}
	if audit.Timestamp.IsZero() {
		audit.Timestamp = time.Now()
	}
	r.records = append(r.records, *audit)
	return nil
}

func (r *MesaAuditRepository) GetByMesaID(ctx context.Context, mesaID string, limit int) ([]domain.MesaAudit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.MesaAudit
	// newest first, same order as the mongo repository
	for i := len(r.records) - 1; i >= 0 && len(out) < limit; i-- {
		if r.records[i].MesaID == mesaID {
			out = append(out, r.records[i])
		}
	}
	return out, nil
}
