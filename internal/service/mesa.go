package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Lu1zH3nriq/portalAdmin/internal/cache"
	"github.com/Lu1zH3nriq/portalAdmin/internal/domain"
	"github.com/Lu1zH3nriq/portalAdmin/internal/queue"
	"github.com/Lu1zH3nriq/portalAdmin/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// MesaService owns the read-modify-write cycle for every table operation:
// load the affected document(s), apply the transition rule, persist the
// full document back. There is no locking between concurrent cycles on the
// same mesa; the last write wins.
type MesaService struct {
	mesaRepo repo.MesaRepository
	broker   queue.Broker
	cache    *cache.MesaCache
	logger   *zap.SugaredLogger
	now      func() time.Time
}

func NewMesaService(
	mesaRepo repo.MesaRepository,
	broker queue.Broker,
	mesaCache *cache.MesaCache,
	logger *zap.SugaredLogger,
) *MesaService {
	return &MesaService{
		mesaRepo: mesaRepo,
		broker:   broker,
		cache:    mesaCache,
		logger:   logger,
		now:      time.Now,
	}
}

// ReservaInput carries reservation fields as they arrive on the wire:
// a YYYY-MM-DD date and an HH:mm time, combined into a UTC instant here.
type ReservaInput struct {
	NomeCliente     string
	TelefoneCliente string
	DataReserva     string
	HorarioReserva  string
}

type CreateMesaParams struct {
	Numero   int
	Lugares  int
	Praca    string
	Reservas []ReservaInput
}

type UpdateMesaParams struct {
	Numero   int
	Lugares  int
	Praca    string
	Status   domain.MesaStatus
	Reservas []domain.Reserva
}

// MoveResult holds both documents touched by a move.
type MoveResult struct {
	Origem  *domain.Mesa `json:"origem"`
	Destino *domain.Mesa `json:"destino"`
}

func (s *MesaService) List(ctx context.Context) ([]domain.Mesa, error) {
	if s.cache != nil {
		mesas, hit, err := s.cache.GetMesas(ctx)
		if err != nil {
			s.logger.Warnw("mesas cache read failed", "error", err)
		} else if hit {
			return mesas, nil
		}
	}

	mesas, err := s.mesaRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list mesas: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetMesas(ctx, mesas); err != nil {
			s.logger.Warnw("mesas cache write failed", "error", err)
		}
	}

	return mesas, nil
}

func (s *MesaService) Create(ctx context.Context, params CreateMesaParams) (*domain.Mesa, error) {
	mesas, err := s.mesaRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check numero: %w", err)
	}

	if domain.NumeroConflict(mesas, params.Numero, primitive.NilObjectID) {
		return nil, domain.ErrDuplicateNumero
	}

	mesa := &domain.Mesa{
		Numero:   params.Numero,
		Lugares:  params.Lugares,
		Praca:    params.Praca,
		Status:   domain.StatusDisponivel,
		Reservas: []domain.Reserva{},
	}

	for _, input := range params.Reservas {
		reserva, err := buildReserva(input)
		if err != nil {
			return nil, err
		}
		if err := domain.Reserve(mesa, reserva); err != nil {
			return nil, err
		}
	}

	if err := s.mesaRepo.Create(ctx, mesa); err != nil {
		return nil, err
	}

	s.afterMutation(ctx, domain.EventMesaCreated, mesa, "")

	return mesa, nil
}

func (s *MesaService) Update(ctx context.Context, id primitive.ObjectID, params UpdateMesaParams) (*domain.Mesa, error) {
	mesas, err := s.mesaRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check numero: %w", err)
	}

	if domain.NumeroConflict(mesas, params.Numero, id) {
		return nil, domain.ErrDuplicateNumero
	}

	mesa, err := s.mesaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	mesa.Numero = params.Numero
	mesa.Lugares = params.Lugares
	mesa.Praca = params.Praca
	mesa.Status = params.Status
	if params.Reservas != nil {
		mesa.Reservas = params.Reservas
	}

	if err := s.mesaRepo.Replace(ctx, mesa); err != nil {
		return nil, err
	}

	s.afterMutation(ctx, domain.EventMesaUpdated, mesa, "")

	return mesa, nil
}

func (s *MesaService) DeleteByNumero(ctx context.Context, numero int) (*domain.Mesa, error) {
	mesa, err := s.mesaRepo.GetByNumero(ctx, numero)
	if err != nil {
		return nil, err
	}

	if err := s.mesaRepo.Delete(ctx, mesa.ID); err != nil {
		return nil, err
	}

	s.afterMutation(ctx, domain.EventMesaDeleted, mesa, "")

	return mesa, nil
}

func (s *MesaService) Reserve(ctx context.Context, id primitive.ObjectID, input ReservaInput) (*domain.Mesa, error) {
	reserva, err := buildReserva(input)
	if err != nil {
		return nil, err
	}

	mesa, err := s.mesaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := domain.Reserve(mesa, reserva); err != nil {
		return nil, err
	}

	if err := s.mesaRepo.Replace(ctx, mesa); err != nil {
		return nil, err
	}

	s.afterMutation(ctx, domain.EventMesaReserved, mesa, reserva.DataReserva)

	return mesa, nil
}

// CancelReserva removes the reservations matching an exact date and time.
func (s *MesaService) CancelReserva(ctx context.Context, id primitive.ObjectID, data, horario string) (*domain.Mesa, error) {
	instant, err := domain.CombineDateTime(data, horario)
	if err != nil {
		return nil, err
	}

	mesa, err := s.mesaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	domain.CancelExact(mesa, data, instant)

	if err := s.mesaRepo.Replace(ctx, mesa); err != nil {
		return nil, err
	}

	s.afterMutation(ctx, domain.EventReservaCancelled, mesa, data)

	return mesa, nil
}

// CancelReservaHoje removes every reservation for the current UTC date.
func (s *MesaService) CancelReservaHoje(ctx context.Context, id primitive.ObjectID) (*domain.Mesa, error) {
	mesa, err := s.mesaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	domain.CancelToday(mesa, s.now())

	if err := s.mesaRepo.Replace(ctx, mesa); err != nil {
		return nil, err
	}

	s.afterMutation(ctx, domain.EventReservaCancelled, mesa, domain.DateKey(s.now()))

	return mesa, nil
}

func (s *MesaService) ConfirmReserva(ctx context.Context, id primitive.ObjectID) (*domain.Mesa, error) {
	mesa, err := s.mesaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	domain.Confirm(mesa, s.now())

	if err := s.mesaRepo.Replace(ctx, mesa); err != nil {
		return nil, err
	}

	s.afterMutation(ctx, domain.EventReservaConfirmed, mesa, domain.DateKey(s.now()))

	return mesa, nil
}

func (s *MesaService) Occupy(ctx context.Context, id primitive.ObjectID) (*domain.Mesa, error) {
	mesa, err := s.mesaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	domain.Occupy(mesa)

	if err := s.mesaRepo.Replace(ctx, mesa); err != nil {
		return nil, err
	}

	s.afterMutation(ctx, domain.EventMesaOccupied, mesa, "")

	return mesa, nil
}

func (s *MesaService) Release(ctx context.Context, id primitive.ObjectID) (*domain.Mesa, error) {
	mesa, err := s.mesaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	domain.Release(mesa)

	if err := s.mesaRepo.Replace(ctx, mesa); err != nil {
		return nil, err
	}

	s.afterMutation(ctx, domain.EventMesaReleased, mesa, "")

	return mesa, nil
}

// Move transfers today's reservations from the mesa with the given id to
// the mesa with the destination numero. The two writes are sequential and
// not atomic: a crash in between leaves the source already cleared.
func (s *MesaService) Move(ctx context.Context, id primitive.ObjectID, numeroDestino int) (*MoveResult, error) {
	origem, err := s.mesaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	destino, err := s.mesaRepo.GetByNumero(ctx, numeroDestino)
	if err != nil {
		return nil, err
	}

	if err := domain.Move(origem, destino, s.now()); err != nil {
		return nil, err
	}

	if err := s.mesaRepo.Replace(ctx, origem); err != nil {
		return nil, err
	}

	if err := s.mesaRepo.Replace(ctx, destino); err != nil {
		return nil, err
	}

	detail := fmt.Sprintf("numero %d -> %d", origem.Numero, destino.Numero)
	s.afterMutation(ctx, domain.EventMesaMoved, destino, detail)

	return &MoveResult{Origem: origem, Destino: destino}, nil
}

// afterMutation publishes the audit event and drops the cached list. Both
// are side channels: failures are logged, never surfaced to the caller.
func (s *MesaService) afterMutation(ctx context.Context, eventType string, mesa *domain.Mesa, detail string) {
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Warnw("mesas cache invalidation failed", "error", err)
		}
	}

	if s.broker == nil {
		return
	}

	event := domain.MesaEvent{
		EventType: eventType,
		MesaID:    mesa.ID.Hex(),
		Numero:    mesa.Numero,
		Status:    mesa.Status,
		Detail:    detail,
		Timestamp: s.now(),
	}

	eventBytes, err := json.Marshal(event)
	if err != nil {
		s.logger.Errorw("failed to marshal mesa event", "mesa_id", event.MesaID, "error", err)
		return
	}

	if err := s.broker.Publish(ctx, queue.QueueMesaEvents, eventBytes); err != nil {
		s.logger.Errorw("failed to publish mesa event", "mesa_id", event.MesaID, "event_type", eventType, "error", err)
		return
	}

	s.logger.Infow("mesa event published", "mesa_id", event.MesaID, "event_type", eventType)
}

func buildReserva(input ReservaInput) (domain.Reserva, error) {
	instant, err := domain.CombineDateTime(input.DataReserva, input.HorarioReserva)
	if err != nil {
		return domain.Reserva{}, err
	}

	return domain.Reserva{
		NomeCliente:     input.NomeCliente,
		TelefoneCliente: digitsOnly(input.TelefoneCliente),
		DataReserva:     input.DataReserva,
		HorarioReserva:  instant,
	}, nil
}

// digitsOnly strips input masking; formatting is presentation-only.
func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
