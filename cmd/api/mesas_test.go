package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Lu1zH3nriq/portalAdmin/internal/domain"
	"github.com/Lu1zH3nriq/portalAdmin/internal/ratelimiter"
	"github.com/Lu1zH3nriq/portalAdmin/internal/service"
	"github.com/Lu1zH3nriq/portalAdmin/internal/store/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newTestApplication(t *testing.T) (*application, *service.MesaService) {
	t.Helper()

	logger := zap.NewNop().Sugar()
	mesaService := service.NewMesaService(memory.NewMesaRepository(), nil, nil, logger)
	auditService := service.NewAuditService(memory.NewMesaAuditRepository(), logger)

	app := &application{
		config: config{
			rateLimiter: ratelimiter.Config{Enabled: false},
		},
		logger:       logger,
		mesaService:  mesaService,
		auditService: auditService,
	}

	return app, mesaService
}

func executeRequest(t *testing.T, mux http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	return rr
}

func decodeMessage(t *testing.T, rr *httptest.ResponseRecorder) messageResponse {
	t.Helper()

	var resp messageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func decodeMesa(t *testing.T, resp messageResponse) domain.Mesa {
	t.Helper()

	payload, err := json.Marshal(resp.Data)
	require.NoError(t, err)

	var mesa domain.Mesa
	require.NoError(t, json.Unmarshal(payload, &mesa))
	return mesa
}

func TestCreateMesaEndpoint(t *testing.T) {
	app, _ := newTestApplication(t)
	mux := app.mount()

	rr := executeRequest(t, mux, http.MethodPost, "/api/criarMesa", map[string]any{
		"numero":  10,
		"lugares": 4,
		"praca":   "Principal",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	resp := decodeMessage(t, rr)
	assert.Equal(t, "Mesa cadastrada com sucesso!", resp.Message)

	mesa := decodeMesa(t, resp)
	assert.Equal(t, 10, mesa.Numero)
	assert.Equal(t, domain.StatusDisponivel, mesa.Status)
	assert.Empty(t, mesa.Reservas)

	// same numero again
	rr = executeRequest(t, mux, http.MethodPost, "/api/criarMesa", map[string]any{
		"numero":  10,
		"lugares": 2,
		"praca":   "Jardin",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "error")
}

func TestCreateMesaValidation(t *testing.T) {
	app, _ := newTestApplication(t)
	mux := app.mount()

	// praca outside the known set
	rr := executeRequest(t, mux, http.MethodPost, "/api/criarMesa", map[string]any{
		"numero":  1,
		"lugares": 4,
		"praca":   "Varanda",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	// unknown field rejected by the decoder
	rr = executeRequest(t, mux, http.MethodPost, "/api/criarMesa", map[string]any{
		"numero":  1,
		"lugares": 4,
		"praca":   "Principal",
		"extra":   true,
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestListMesasReturnsBareArray(t *testing.T) {
	app, _ := newTestApplication(t)
	mux := app.mount()

	rr := executeRequest(t, mux, http.MethodGet, "/api/items", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", string(bytes.TrimSpace(rr.Body.Bytes())))

	executeRequest(t, mux, http.MethodPost, "/api/criarMesa", map[string]any{
		"numero":  1,
		"lugares": 4,
		"praca":   "Principal",
	})

	rr = executeRequest(t, mux, http.MethodGet, "/api/items", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var mesas []domain.Mesa
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &mesas))
	require.Len(t, mesas, 1)
	assert.Equal(t, 1, mesas[0].Numero)
}

func TestReservarMesaEndpoint(t *testing.T) {
	app, _ := newTestApplication(t)
	mux := app.mount()

	rr := executeRequest(t, mux, http.MethodPost, "/api/criarMesa", map[string]any{
		"numero":  5,
		"lugares": 4,
		"praca":   "Principal",
	})
	require.Equal(t, http.StatusCreated, rr.Code)
	mesa := decodeMesa(t, decodeMessage(t, rr))

	reserva := map[string]any{
		"nomeCliente":     "Ana",
		"telefoneCliente": "(11) 99888-7766",
		"dataReserva":     "2025-03-01",
		"horarioReserva":  "19:00",
	}
	rr = executeRequest(t, mux, http.MethodPut, "/api/reservarMesa/"+mesa.ID.Hex(), reserva)
	require.Equal(t, http.StatusOK, rr.Code)

	reserved := decodeMesa(t, decodeMessage(t, rr))
	require.Len(t, reserved.Reservas, 1)
	assert.Equal(t, "11998887766", reserved.Reservas[0].TelefoneCliente)

	// second reservation on the same date
	reserva["nomeCliente"] = "Bruno"
	rr = executeRequest(t, mux, http.MethodPut, "/api/reservarMesa/"+mesa.ID.Hex(), reserva)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	// malformed date
	rr = executeRequest(t, mux, http.MethodPut, "/api/reservarMesa/"+mesa.ID.Hex(), map[string]any{
		"nomeCliente":     "Caio",
		"telefoneCliente": "11911112222",
		"dataReserva":     "01/03/2025",
		"horarioReserva":  "19:00",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestReservarMesaInvalidID(t *testing.T) {
	app, _ := newTestApplication(t)
	mux := app.mount()

	rr := executeRequest(t, mux, http.MethodPut, "/api/reservarMesa/not-a-hex-id", map[string]any{
		"nomeCliente":     "Ana",
		"telefoneCliente": "11911112222",
		"dataReserva":     "2025-03-01",
		"horarioReserva":  "19:00",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "id inválido")
}

func TestDeleteMesaEndpoint(t *testing.T) {
	app, _ := newTestApplication(t)
	mux := app.mount()

	executeRequest(t, mux, http.MethodPost, "/api/criarMesa", map[string]any{
		"numero":  8,
		"lugares": 2,
		"praca":   "Recepção",
	})

	rr := executeRequest(t, mux, http.MethodDelete, "/api/deleteMesa/8", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Mesa excluída com sucesso!", decodeMessage(t, rr).Message)

	rr = executeRequest(t, mux, http.MethodDelete, "/api/deleteMesa/8", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "mesa não encontrada")
}

func TestCancelarReservaHojeEndpoint(t *testing.T) {
	app, svc := newTestApplication(t)
	mux := app.mount()

	rr := executeRequest(t, mux, http.MethodPost, "/api/criarMesa", map[string]any{
		"numero":  3,
		"lugares": 2,
		"praca":   "Principal",
	})
	require.Equal(t, http.StatusCreated, rr.Code)
	mesa := decodeMesa(t, decodeMessage(t, rr))

	today := time.Now().UTC().Format("2006-01-02")
	_, err := svc.Reserve(context.Background(), mesa.ID, service.ReservaInput{
		NomeCliente:     "Ana",
		TelefoneCliente: "11911112222",
		DataReserva:     today,
		HorarioReserva:  "19:00",
	})
	require.NoError(t, err)

	rr = executeRequest(t, mux, http.MethodPut, "/api/cancelarReserva", map[string]any{
		"id": mesa.ID.Hex(),
	})
	require.Equal(t, http.StatusOK, rr.Code)

	cancelled := decodeMesa(t, decodeMessage(t, rr))
	assert.Empty(t, cancelled.Reservas)
	assert.Equal(t, domain.StatusDisponivel, cancelled.Status)
}

func TestMoverMesaEndpoint(t *testing.T) {
	app, svc := newTestApplication(t)
	mux := app.mount()

	rr := executeRequest(t, mux, http.MethodPost, "/api/criarMesa", map[string]any{
		"numero":  1,
		"lugares": 4,
		"praca":   "Principal",
	})
	require.Equal(t, http.StatusCreated, rr.Code)
	origem := decodeMesa(t, decodeMessage(t, rr))

	rr = executeRequest(t, mux, http.MethodPost, "/api/criarMesa", map[string]any{
		"numero":  2,
		"lugares": 4,
		"praca":   "Principal",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	today := time.Now().UTC().Format("2006-01-02")
	_, err := svc.Reserve(context.Background(), origem.ID, service.ReservaInput{
		NomeCliente:     "Ana",
		TelefoneCliente: "11911112222",
		DataReserva:     today,
		HorarioReserva:  "19:00",
	})
	require.NoError(t, err)

	rr = executeRequest(t, mux, http.MethodPut, "/api/moverMesa", map[string]any{
		"id":                origem.ID.Hex(),
		"numeroMesaDestino": 2,
	})
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decodeMessage(t, rr)
	assert.Equal(t, "Mesa movida com sucesso!", resp.Message)

	payload, err := json.Marshal(resp.Data)
	require.NoError(t, err)

	var result service.MoveResult
	require.NoError(t, json.Unmarshal(payload, &result))
	assert.Empty(t, result.Origem.Reservas)
	require.Len(t, result.Destino.Reservas, 1)
	assert.Equal(t, "Ana", result.Destino.Reservas[0].NomeCliente)

	// moving a mesa onto itself
	rr = executeRequest(t, mux, http.MethodPut, "/api/moverMesa", map[string]any{
		"id":                origem.ID.Hex(),
		"numeroMesaDestino": 1,
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestOcuparLiberarEndpoints(t *testing.T) {
	app, _ := newTestApplication(t)
	mux := app.mount()

	rr := executeRequest(t, mux, http.MethodPost, "/api/criarMesa", map[string]any{
		"numero":  7,
		"lugares": 2,
		"praca":   "Mesanino",
	})
	require.Equal(t, http.StatusCreated, rr.Code)
	mesa := decodeMesa(t, decodeMessage(t, rr))

	path := fmt.Sprintf("/api/ocuparMesa/%s", mesa.ID.Hex())
	rr = executeRequest(t, mux, http.MethodPut, path, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, domain.StatusOcupada, decodeMesa(t, decodeMessage(t, rr)).Status)

	path = fmt.Sprintf("/api/liberarMesa/%s", mesa.ID.Hex())
	rr = executeRequest(t, mux, http.MethodPut, path, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, domain.StatusDisponivel, decodeMesa(t, decodeMessage(t, rr)).Status)
}

func TestHealthCheckEndpoint(t *testing.T) {
	app, _ := newTestApplication(t)
	mux := app.mount()

	rr := executeRequest(t, mux, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "healthy")
}

func TestHistoricoMesaEndpoint(t *testing.T) {
	logger := zap.NewNop().Sugar()
	auditRepo := memory.NewMesaAuditRepository()
	app := &application{
		config: config{
			rateLimiter: ratelimiter.Config{Enabled: false},
		},
		logger:       logger,
		mesaService:  service.NewMesaService(memory.NewMesaRepository(), nil, nil, logger),
		auditService: service.NewAuditService(auditRepo, logger),
	}
	mux := app.mount()

	mesaID := primitive.NewObjectID()
	for i, eventType := range []string{domain.EventMesaCreated, domain.EventMesaReserved} {
		require.NoError(t, auditRepo.Create(context.Background(), &domain.MesaAudit{
			MesaID:    mesaID.Hex(),
			EventType: eventType,
			Numero:    2,
			Status:    domain.StatusDisponivel,
			Timestamp: time.Date(2025, 3, 1, 18+i, 0, 0, 0, time.UTC),
		}))
	}

	rr := executeRequest(t, mux, http.MethodGet, "/api/historicoMesa/"+mesaID.Hex(), nil)
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decodeMessage(t, rr)
	assert.Equal(t, "Histórico da mesa", resp.Message)

	payload, err := json.Marshal(resp.Data)
	require.NoError(t, err)

	var audits []domain.MesaAudit
	require.NoError(t, json.Unmarshal(payload, &audits))
	require.Len(t, audits, 2)
	// newest first
	assert.Equal(t, domain.EventMesaReserved, audits[0].EventType)
	assert.Equal(t, domain.EventMesaCreated, audits[1].EventType)

	// limit caps the history
	rr = executeRequest(t, mux, http.MethodGet, "/api/historicoMesa/"+mesaID.Hex()+"?limit=1", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	payload, err = json.Marshal(decodeMessage(t, rr).Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(payload, &audits))
	assert.Len(t, audits, 1)

	// malformed limit and id
	rr = executeRequest(t, mux, http.MethodGet, "/api/historicoMesa/"+mesaID.Hex()+"?limit=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = executeRequest(t, mux, http.MethodGet, "/api/historicoMesa/not-a-hex-id", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "id inválido")
}
