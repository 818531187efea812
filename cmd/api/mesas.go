package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Lu1zH3nriq/portalAdmin/internal/domain"
	"github.com/Lu1zH3nriq/portalAdmin/internal/service"
	"github.com/go-chi/chi"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrInvalidID     = errors.New("id inválido")
	ErrInvalidNumero = errors.New("número inválido")
)

type messageResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

type ReservaRequest struct {
	NomeCliente     string `json:"nomeCliente" validate:"required"`
	TelefoneCliente string `json:"telefoneCliente" validate:"required"`
	DataReserva     string `json:"dataReserva" validate:"required"`
	HorarioReserva  string `json:"horarioReserva" validate:"required"`
}

type CreateMesaRequest struct {
	Numero   int              `json:"numero" validate:"required,gt=0"`
	Lugares  int              `json:"lugares" validate:"required,gt=0"`
	Praca    string           `json:"praca" validate:"required,oneof=Recepção Principal Mesanino Jardin"`
	Status   string           `json:"status" validate:"omitempty,oneof=Disponivel Ocupada"`
	Reservas []ReservaRequest `json:"reservas" validate:"omitempty,dive"`
}

type UpdateMesaRequest struct {
	Numero   int              `json:"numero" validate:"required,gt=0"`
	Lugares  int              `json:"lugares" validate:"required,gt=0"`
	Praca    string           `json:"praca" validate:"required,oneof=Recepção Principal Mesanino Jardin"`
	Status   string           `json:"status" validate:"required,oneof=Disponivel Ocupada"`
	Reservas []domain.Reserva `json:"reservas"`
}

type CancelarReservaRequest struct {
	DataReserva    string `json:"dataReserva" validate:"required"`
	HorarioReserva string `json:"horarioReserva" validate:"required"`
}

type CancelarReservaHojeRequest struct {
	ID string `json:"id" validate:"required"`
}

type MoverMesaRequest struct {
	ID                string `json:"id" validate:"required"`
	NumeroMesaDestino int    `json:"numeroMesaDestino" validate:"required,gt=0"`
}

// listMesasHandler godoc
//
//	@Summary		List mesas
//	@Description	Returns every mesa document as a bare array
//	@Tags			mesas
//	@Produce		json
//	@Success		200	{array}		domain.Mesa
//	@Failure		500	{object}	map[string]string
//	@Router			/api/items [get]
func (app *application) listMesasHandler(w http.ResponseWriter, r *http.Request) {
	mesas, err := app.mesaService.List(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, mesas); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createMesaHandler godoc
//
//	@Summary		Register a mesa
//	@Description	Creates a mesa; numero must be unique across the collection
//	@Tags			mesas
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateMesaRequest	true	"Mesa"
//	@Success		201		{object}	messageResponse
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/api/criarMesa [post]
func (app *application) createMesaHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateMesaRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	params := service.CreateMesaParams{
		Numero:  req.Numero,
		Lugares: req.Lugares,
		Praca:   req.Praca,
	}
	for _, reserva := range req.Reservas {
		params.Reservas = append(params.Reservas, service.ReservaInput(reserva))
	}

	mesa, err := app.mesaService.Create(r.Context(), params)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	response := messageResponse{Message: "Mesa cadastrada com sucesso!", Data: mesa}
	if err := app.jsonResponse(w, http.StatusCreated, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateMesaHandler godoc
//
//	@Summary		Edit a mesa
//	@Description	Full replace of the mesa document
//	@Tags			mesas
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Mesa ID"
//	@Param			request	body		UpdateMesaRequest	true	"Mesa fields"
//	@Success		200		{object}	messageResponse
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/api/editarMesa/{id} [put]
func (app *application) updateMesaHandler(w http.ResponseWriter, r *http.Request) {
	id, err := mesaIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var req UpdateMesaRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	mesa, err := app.mesaService.Update(r.Context(), id, service.UpdateMesaParams{
		Numero:   req.Numero,
		Lugares:  req.Lugares,
		Praca:    req.Praca,
		Status:   domain.MesaStatus(req.Status),
		Reservas: req.Reservas,
	})
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	response := messageResponse{Message: "Mesa atualizada com sucesso!", Data: mesa}
	if err := app.jsonResponse(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteMesaHandler godoc
//
//	@Summary		Delete a mesa by numero
//	@Tags			mesas
//	@Produce		json
//	@Param			numero	path		int	true	"Mesa numero"
//	@Success		200		{object}	messageResponse
//	@Failure		404		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/api/deleteMesa/{numero} [delete]
func (app *application) deleteMesaHandler(w http.ResponseWriter, r *http.Request) {
	numero, err := strconv.Atoi(chi.URLParam(r, "numero"))
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidNumero)
		return
	}

	mesa, err := app.mesaService.DeleteByNumero(r.Context(), numero)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	response := messageResponse{Message: "Mesa excluída com sucesso!", Data: mesa}
	if err := app.jsonResponse(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// reservarMesaHandler godoc
//
//	@Summary		Reserve a mesa
//	@Description	Appends a reservation; one reservation per date per mesa
//	@Tags			reservas
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"Mesa ID"
//	@Param			request	body		ReservaRequest	true	"Reservation"
//	@Success		200		{object}	messageResponse
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/api/reservarMesa/{id} [put]
func (app *application) reservarMesaHandler(w http.ResponseWriter, r *http.Request) {
	id, err := mesaIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var req ReservaRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	mesa, err := app.mesaService.Reserve(r.Context(), id, service.ReservaInput(req))
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	response := messageResponse{Message: "Mesa reservada com sucesso!", Data: mesa}
	if err := app.jsonResponse(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// cancelarReservaHandler godoc
//
//	@Summary		Cancel a reservation by date and time
//	@Tags			reservas
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Mesa ID"
//	@Param			request	body		CancelarReservaRequest	true	"Reservation slot"
//	@Success		200		{object}	messageResponse
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/api/cancelarReserva/{id} [put]
func (app *application) cancelarReservaHandler(w http.ResponseWriter, r *http.Request) {
	id, err := mesaIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var req CancelarReservaRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	mesa, err := app.mesaService.CancelReserva(r.Context(), id, req.DataReserva, req.HorarioReserva)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	response := messageResponse{Message: "Reserva cancelada com sucesso!", Data: mesa}
	if err := app.jsonResponse(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// cancelarReservaHojeHandler godoc
//
//	@Summary		Cancel today's reservation
//	@Description	Removes every reservation dated today; mesa becomes Disponivel when no reservations remain
//	@Tags			reservas
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CancelarReservaHojeRequest	true	"Mesa id"
//	@Success		200		{object}	messageResponse
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/api/cancelarReserva [put]
func (app *application) cancelarReservaHojeHandler(w http.ResponseWriter, r *http.Request) {
	var req CancelarReservaHojeRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	id, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	mesa, err := app.mesaService.CancelReservaHoje(r.Context(), id)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	response := messageResponse{Message: "Reserva cancelada com sucesso!", Data: mesa}
	if err := app.jsonResponse(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// confirmarReservaHandler godoc
//
//	@Summary		Confirm today's reservation
//	@Description	Seats the customer: today's reservation is consumed and the mesa becomes Ocupada
//	@Tags			reservas
//	@Produce		json
//	@Param			id	path		string	true	"Mesa ID"
//	@Success		200	{object}	messageResponse
//	@Failure		400	{object}	map[string]string
//	@Failure		404	{object}	map[string]string
//	@Failure		500	{object}	map[string]string
//	@Router			/api/confirmarReserva/{id} [put]
func (app *application) confirmarReservaHandler(w http.ResponseWriter, r *http.Request) {
	id, err := mesaIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	mesa, err := app.mesaService.ConfirmReserva(r.Context(), id)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	response := messageResponse{Message: "Reserva confirmada com sucesso!", Data: mesa}
	if err := app.jsonResponse(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// ocuparMesaHandler godoc
//
//	@Summary		Occupy a mesa
//	@Tags			mesas
//	@Produce		json
//	@Param			id	path		string	true	"Mesa ID"
//	@Success		200	{object}	messageResponse
//	@Failure		404	{object}	map[string]string
//	@Failure		500	{object}	map[string]string
//	@Router			/api/ocuparMesa/{id} [put]
func (app *application) ocuparMesaHandler(w http.ResponseWriter, r *http.Request) {
	id, err := mesaIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	mesa, err := app.mesaService.Occupy(r.Context(), id)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	response := messageResponse{Message: "Mesa ocupada com sucesso!", Data: mesa}
	if err := app.jsonResponse(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// liberarMesaHandler godoc
//
//	@Summary		Release a mesa
//	@Description	Sets the mesa Disponivel and clears all reservations; idempotent
//	@Tags			mesas
//	@Produce		json
//	@Param			id	path		string	true	"Mesa ID"
//	@Success		200	{object}	messageResponse
//	@Failure		404	{object}	map[string]string
//	@Failure		500	{object}	map[string]string
//	@Router			/api/liberarMesa/{id} [put]
func (app *application) liberarMesaHandler(w http.ResponseWriter, r *http.Request) {
	id, err := mesaIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	mesa, err := app.mesaService.Release(r.Context(), id)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	response := messageResponse{Message: "Mesa liberada com sucesso!", Data: mesa}
	if err := app.jsonResponse(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// moverMesaHandler godoc
//
//	@Summary		Move today's reservations to another mesa
//	@Description	Date-scoped transfer: only today's reservations move; future ones stay on the source
//	@Tags			reservas
//	@Accept			json
//	@Produce		json
//	@Param			request	body		MoverMesaRequest	true	"Source id and destination numero"
//	@Success		200		{object}	messageResponse
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/api/moverMesa [put]
func (app *application) moverMesaHandler(w http.ResponseWriter, r *http.Request) {
	var req MoverMesaRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	id, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	result, err := app.mesaService.Move(r.Context(), id, req.NumeroMesaDestino)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	response := messageResponse{Message: "Mesa movida com sucesso!", Data: result}
	if err := app.jsonResponse(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

func mesaIDParam(r *http.Request) (primitive.ObjectID, error) {
	idStr := chi.URLParam(r, "id")
	if idStr == "" {
		return primitive.NilObjectID, ErrInvalidID
	}

	id, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}

	return id, nil
}
