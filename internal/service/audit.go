package service

import (
	"context"
	"fmt"

	"github.com/Lu1zH3nriq/portalAdmin/internal/domain"
	"github.com/Lu1zH3nriq/portalAdmin/internal/repo"
	"go.uber.org/zap"
)

// AuditService persists the event stream produced by MesaService. It runs
// on the worker side of the queue.
type AuditService struct {
	auditRepo repo.MesaAuditRepository
	logger    *zap.SugaredLogger
}

func NewAuditService(auditRepo repo.MesaAuditRepository, logger *zap.SugaredLogger) *AuditService {
	return &AuditService{
		auditRepo: auditRepo,
		logger:    logger,
	}
}

func (s *AuditService) ProcessMesaEvent(ctx context.Context, event domain.MesaEvent) error {
	audit := &domain.MesaAudit{
		MesaID:    event.MesaID,
		EventType: event.EventType,
		Numero:    event.Numero,
		Status:    event.Status,
		Detail:    event.Detail,
		Timestamp: event.Timestamp,
	}

	if err := s.auditRepo.Create(ctx, audit); err != nil {
		s.logger.Errorw("failed to create audit record", "mesa_id", event.MesaID, "error", err)
		return fmt.Errorf("failed to create audit record: %w", err)
	}

	s.logger.Infow("mesa audit created", "mesa_id", event.MesaID, "event_type", event.EventType)

	return nil
}

func (s *AuditService) GetMesaAudit(ctx context.Context, mesaID string, limit int) ([]domain.MesaAudit, error) {
	audits, err := s.auditRepo.GetByMesaID(ctx, mesaID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get mesa audit: %w", err)
	}

	return audits, nil
}
