package repo

import (
	"context"

	"github.com/Lu1zH3nriq/portalAdmin/internal/domain"
)

type MesaAuditRepository interface {
	Create(ctx context.Context, audit *domain.MesaAudit) error
	GetByMesaID(ctx context.Context, mesaID string, limit int) ([]domain.MesaAudit, error)
}
