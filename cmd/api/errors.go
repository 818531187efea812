package main

import (
	"errors"
	"net/http"

	"github.com/Lu1zH3nriq/portalAdmin/internal/domain"
)

func (app *application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("internal error", "method", r.Method, "path", r.URL.Path, "error", err)

	writeJsonError(w, http.StatusInternalServerError, "o servidor encontrou um problema")
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("bad request", "method", r.Method, "path", r.URL.Path, "error", err)

	writeJsonError(w, http.StatusBadRequest, err.Error())
}

func (app *application) notFoundError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("not found", "method", r.Method, "path", r.URL.Path, "error", err)

	writeJsonError(w, http.StatusNotFound, err.Error())
}

func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request, retryAfter string) {
	app.logger.Warnw("rate limit exceeded", "method", r.Method, "path", r.URL.Path)

	w.Header().Set("Retry-After", retryAfter)
	writeJsonError(w, http.StatusTooManyRequests, "limite de requisições excedido, tente novamente em "+retryAfter)
}

// domainErrorResponse translates the typed domain errors into the HTTP
// taxonomy: conflicts and malformed input are 400, missing documents 404,
// anything else is a dependency failure.
func (app *application) domainErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrMesaNotFound):
		app.notFoundError(w, r, domain.ErrMesaNotFound)
	case errors.Is(err, domain.ErrDuplicateNumero),
		errors.Is(err, domain.ErrDuplicateReserva),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrInvalidTime),
		errors.Is(err, domain.ErrSameMesa):
		app.badRequestResponse(w, r, err)
	default:
		app.internalServerError(w, r, err)
	}
}
