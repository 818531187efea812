package domain

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MesaStatus string

const (
	StatusDisponivel MesaStatus = "Disponivel"
	StatusOcupada    MesaStatus = "Ocupada"
)

// Praça zones a table can belong to.
const (
	PracaRecepcao  = "Recepção"
	PracaPrincipal = "Principal"
	PracaMesanino  = "Mesanino"
	PracaJardin    = "Jardin"
)

var (
	ErrMesaNotFound     = errors.New("mesa não encontrada")
	ErrDuplicateNumero  = errors.New("mesa com esse número já cadastrada")
	ErrDuplicateReserva = errors.New("mesa já possui reserva para essa data")
	ErrInvalidDate      = errors.New("data da reserva inválida, use YYYY-MM-DD")
	ErrInvalidTime      = errors.New("horário da reserva inválido, use HH:mm")
	ErrSameMesa         = errors.New("mesa de origem e destino são a mesma")
)

type Mesa struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Numero    int                `bson:"numero" json:"numero"`
	Lugares   int                `bson:"lugares" json:"lugares"`
	Praca     string             `bson:"praca" json:"praca"`
	Status    MesaStatus         `bson:"status" json:"status"`
	Reservas  []Reserva          `bson:"reservas" json:"reservas"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// Reserva is embedded in a Mesa document and scoped to a single calendar
// date. HorarioReserva is the absolute instant of the booking in UTC.
type Reserva struct {
	NomeCliente     string    `bson:"nomeCliente" json:"nomeCliente"`
	TelefoneCliente string    `bson:"telefoneCliente" json:"telefoneCliente"`
	DataReserva     string    `bson:"dataReserva" json:"dataReserva"`
	HorarioReserva  time.Time `bson:"horarioReserva" json:"horarioReserva"`
}
