package main

import (
	"net/http"
	"strconv"
)

// historicoMesaHandler godoc
//
//	@Summary		Mesa history
//	@Description	Returns the most recent state transitions recorded for a mesa
//	@Tags			mesas
//	@Produce		json
//	@Param			id		path		string	true	"Mesa ID"
//	@Param			limit	query		int		false	"Max records (default 50)"
//	@Success		200		{object}	messageResponse
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/api/historicoMesa/{id} [get]
func (app *application) historicoMesaHandler(w http.ResponseWriter, r *http.Request) {
	id, err := mesaIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			app.badRequestResponse(w, r, ErrInvalidNumero)
			return
		}
		limit = parsed
	}

	audits, err := app.auditService.GetMesaAudit(r.Context(), id.Hex(), limit)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	response := messageResponse{Message: "Histórico da mesa", Data: audits}
	if err := app.jsonResponse(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}
