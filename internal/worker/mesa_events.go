package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Lu1zH3nriq/portalAdmin/internal/domain"
	"github.com/Lu1zH3nriq/portalAdmin/internal/queue"
	"github.com/Lu1zH3nriq/portalAdmin/internal/service"
	"go.uber.org/zap"
)

type MesaEventsWorker struct {
	auditService *service.AuditService
	broker       queue.Broker
	logger       *zap.SugaredLogger
	ctx          context.Context
	cancel       context.CancelFunc
}

func NewMesaEventsWorker(
	auditService *service.AuditService,
	broker queue.Broker,
	logger *zap.SugaredLogger,
) *MesaEventsWorker {
	ctx, cancel := context.WithCancel(context.Background())

	return &MesaEventsWorker{
		auditService: auditService,
		broker:       broker,
		logger:       logger,
		ctx:          ctx,
		cancel:       cancel,
	}
}

func (w *MesaEventsWorker) Start() error {
	w.logger.Info("starting mesa events worker")

	return w.broker.Subscribe(w.ctx, queue.QueueMesaEvents, w.handleMessage)
}

func (w *MesaEventsWorker) Stop() {
	w.logger.Info("stopping mesa events worker")
	w.cancel()
}

func (w *MesaEventsWorker) handleMessage(ctx context.Context, message []byte) error {
	var event domain.MesaEvent
	if err := json.Unmarshal(message, &event); err != nil {
		w.logger.Errorw("failed to unmarshal mesa event", "error", err)
		return fmt.Errorf("failed to unmarshal mesa event: %w", err)
	}

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	w.logger.Infow("processing mesa event", "mesa_id", event.MesaID, "event_type", event.EventType)

	if err := w.auditService.ProcessMesaEvent(ctx, event); err != nil {
		w.logger.Errorw("failed to process mesa event", "mesa_id", event.MesaID, "error", err)
		return err
	}

	return nil
}
