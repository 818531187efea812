package service

import (
	"context"
	"testing"
	"time"

	"github.com/Lu1zH3nriq/portalAdmin/internal/domain"
	"github.com/Lu1zH3nriq/portalAdmin/internal/store/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestProcessMesaEventCreatesAuditRecord(t *testing.T) {
	svc := NewAuditService(memory.NewMesaAuditRepository(), zap.NewNop().Sugar())
	ctx := context.Background()

	event := domain.MesaEvent{
		EventType: domain.EventMesaOccupied,
		MesaID:    "65f0a1b2c3d4e5f6a7b8c9d0",
		Numero:    4,
		Status:    domain.StatusOcupada,
		Timestamp: time.Date(2025, 3, 1, 20, 0, 0, 0, time.UTC),
	}
	require.NoError(t, svc.ProcessMesaEvent(ctx, event))

	records, err := svc.GetMesaAudit(ctx, event.MesaID, 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, domain.EventMesaOccupied, records[0].EventType)
	assert.Equal(t, domain.StatusOcupada, records[0].Status)
	assert.Equal(t, event.Timestamp, records[0].Timestamp)
}

func TestGetMesaAuditNewestFirstWithLimit(t *testing.T) {
	svc := NewAuditService(memory.NewMesaAuditRepository(), zap.NewNop().Sugar())
	ctx := context.Background()

	mesaID := "65f0a1b2c3d4e5f6a7b8c9d0"
	for i, eventType := range []string{domain.EventMesaCreated, domain.EventMesaReserved, domain.EventMesaOccupied} {
		require.NoError(t, svc.ProcessMesaEvent(ctx, domain.MesaEvent{
			EventType: eventType,
			MesaID:    mesaID,
			Numero:    4,
			Status:    domain.StatusDisponivel,
			Timestamp: time.Date(2025, 3, 1, 18+i, 0, 0, 0, time.UTC),
		}))
	}
	// a record for another mesa must not leak into the history
	require.NoError(t, svc.ProcessMesaEvent(ctx, domain.MesaEvent{
		EventType: domain.EventMesaCreated,
		MesaID:    "65f0a1b2c3d4e5f6a7b8c9d1",
		Numero:    5,
		Status:    domain.StatusDisponivel,
		Timestamp: time.Date(2025, 3, 1, 22, 0, 0, 0, time.UTC),
	}))

	records, err := svc.GetMesaAudit(ctx, mesaID, 2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, domain.EventMesaOccupied, records[0].EventType)
	assert.Equal(t, domain.EventMesaReserved, records[1].EventType)
}
