package domain

import (
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	dataReservaRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	horarioRe     = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

const dateKeyLayout = "2006-01-02"

// NumeroConflict reports whether numero is already taken by another mesa.
// excludeID skips the mesa being edited so it does not conflict with itself.
func NumeroConflict(mesas []Mesa, numero int, excludeID primitive.ObjectID) bool {
	for _, m := range mesas {
		if m.Numero == numero && m.ID != excludeID {
			return true
		}
	}
	return false
}

// CombineDateTime validates the wire formats and builds the stored UTC
// instant from a YYYY-MM-DD date and an HH:mm time.
func CombineDateTime(date, horario string) (time.Time, error) {
	if !dataReservaRe.MatchString(date) {
		return time.Time{}, ErrInvalidDate
	}
	if !horarioRe.MatchString(horario) {
		return time.Time{}, ErrInvalidTime
	}

	// the regexes admit out-of-range values like month 13 or hour 25;
	// parsing each component on its own keeps the error on the right field
	day, err := time.Parse(dateKeyLayout, date)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}

	clock, err := time.Parse("15:04", horario)
	if err != nil {
		return time.Time{}, ErrInvalidTime
	}

	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, time.UTC), nil
}

// DateKey truncates an instant to its UTC calendar date.
func DateKey(t time.Time) string {
	return t.UTC().Format(dateKeyLayout)
}

// Reserve appends a reservation, rejecting a second reservation for the
// same date on the same mesa.
func Reserve(m *Mesa, r Reserva) error {
	for _, existing := range m.Reservas {
		if existing.DataReserva == r.DataReserva {
			return ErrDuplicateReserva
		}
	}
	m.Reservas = append(m.Reservas, r)
	return nil
}

// CancelExact removes the reservations matching the given date and instant.
func CancelExact(m *Mesa, date string, horario time.Time) {
	kept := m.Reservas[:0]
	for _, r := range m.Reservas {
		if r.DataReserva == date && r.HorarioReserva.Equal(horario) {
			continue
		}
		kept = append(kept, r)
	}
	m.Reservas = kept
	releaseIfEmpty(m)
}

// CancelToday removes every reservation whose date equals now's UTC date.
func CancelToday(m *Mesa, now time.Time) {
	removeDate(m, DateKey(now))
	releaseIfEmpty(m)
}

// Confirm seats today's reservation: the reservation is consumed and the
// mesa becomes occupied.
func Confirm(m *Mesa, now time.Time) {
	removeDate(m, DateKey(now))
	m.Status = StatusOcupada
}

func Occupy(m *Mesa) {
	m.Status = StatusOcupada
}

// Release frees the mesa and drops all reservations.
func Release(m *Mesa) {
	m.Status = StatusDisponivel
	m.Reservas = []Reserva{}
}

// Move transfers today's reservations from src to dst. Future reservations
// stay on src. dst takes over src's occupancy state and src is released for
// the day. Fails when dst already holds a reservation for today, so the
// one-reservation-per-date invariant survives the transfer.
func Move(src, dst *Mesa, now time.Time) error {
	if src.ID == dst.ID {
		return ErrSameMesa
	}

	today := DateKey(now)
	for _, r := range dst.Reservas {
		if r.DataReserva == today {
			return ErrDuplicateReserva
		}
	}

	dst.Status = src.Status
	for _, r := range src.Reservas {
		if r.DataReserva == today {
			dst.Reservas = append(dst.Reservas, r)
		}
	}

	removeDate(src, today)
	src.Status = StatusDisponivel

	return nil
}

func removeDate(m *Mesa, date string) {
	kept := m.Reservas[:0]
	for _, r := range m.Reservas {
		if r.DataReserva != date {
			kept = append(kept, r)
		}
	}
	m.Reservas = kept
}

func releaseIfEmpty(m *Mesa) {
	if len(m.Reservas) == 0 {
		m.Status = StatusDisponivel
	}
}
