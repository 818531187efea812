package domain

import "time"

// MesaEvent is published after every successful state transition and
// consumed by the audit worker.
type MesaEvent struct {
	EventType string     `json:"event_type"`
	MesaID    string     `json:"mesa_id"`
	Numero    int        `json:"numero"`
	Status    MesaStatus `json:"status"`
	Detail    string     `json:"detail,omitempty"`
	Timestamp time.Time  `json:"timestamp"`
}

const (
	EventMesaCreated      = "mesa.created"
	EventMesaUpdated      = "mesa.updated"
	EventMesaDeleted      = "mesa.deleted"
	EventMesaReserved     = "mesa.reserved"
	EventReservaCancelled = "mesa.reserva_cancelled"
	EventReservaConfirmed = "mesa.reserva_confirmed"
	EventMesaOccupied     = "mesa.occupied"
	EventMesaReleased     = "mesa.released"
	EventMesaMoved        = "mesa.moved"
)
