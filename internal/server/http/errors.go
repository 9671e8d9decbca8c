package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/gophsocial/internal/common"
)

// postNotFoundMessage is the body of a comment request on a missing post.
const postNotFoundMessage = "Publicación no encontrada"

// resourceNotFoundMessage is the body of any other 404.
const resourceNotFoundMessage = "El recurso solicitado no existe"

// StatusError is an error that declares the HTTP status it should produce.
type StatusError struct {
	Status int
	Err    error
}

func (e *StatusError) Error() string {
	return e.Err.Error()
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

func statusError(status int, msg string) *StatusError {
	return &StatusError{Status: status, Err: errors.New(msg)}
}

// apiHandler is a handler that reports failure by returning an error; the
// adapter in handle turns it into the generic error envelope.
type apiHandler func(w http.ResponseWriter, r *http.Request) error

func (s *HTTPServer) handle(h apiHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			s.writeError(w, r, err)
		}
	}
}

// writeError writes {"message": ...} with the status declared by err, 400 for
// undecodable input, or 500 for anything else. The message is passed through
// verbatim.
func (s *HTTPServer) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errorStatus(err)

	if status >= http.StatusInternalServerError {
		s.logger.Error(r.Context(), "request failed", "req_id", RequestIDFromContext(r.Context()), "error", err)
	}

	writeJSON(w, status, errorEnvelope{Message: err.Error()})
}

func errorStatus(err error) int {
	var se *StatusError
	var mbe *http.MaxBytesError

	switch {
	case errors.As(err, &se):
		return se.Status
	case errors.As(err, &mbe), strings.Contains(err.Error(), "request body too large"):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, common.ErrorInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

type errorEnvelope struct {
	Message string `json:"message"`
}

type notFoundEnvelope struct {
	Error string `json:"error"`
}
