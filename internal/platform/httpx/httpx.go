// Package httpx centraliza la escritura de respuestas JSON del backend.
// Antes cada módulo tenía su propio writeJSON; con ocho módulos ya conviene compartirlo.
package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"pet-wellness/internal/domain/validate"
	"pet-wellness/internal/ports/auth"
	"pet-wellness/internal/ports/storage"
)

const maxRequestBytes = 1 << 20

// Responder decide la forma del body: con Envelope => {"data": v}, sin => v.
type Responder struct {
	Envelope bool
}

type envelope struct {
	Data any `json:"data"`
}

type errorBody struct {
	Message string `json:"message"`
}

func (rs Responder) JSON(w http.ResponseWriter, status int, v any) {
	if rs.Envelope {
		v = envelope{Data: v}
	}
	write(w, status, v)
}

func (rs Responder) NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error escribe {"message": msg}. Los errores nunca van envueltos.
func Error(w http.ResponseWriter, status int, msg string) {
	write(w, status, errorBody{Message: msg})
}

// Fail mapea errores de dominio a status HTTP.
func Fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, validate.ErrInvalid):
		Error(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, auth.ErrUnauthorized):
		Error(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, auth.ErrForbidden):
		Error(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, storage.ErrNotFound):
		Error(w, http.StatusNotFound, "not found")
	case errors.Is(err, storage.ErrConflict):
		Error(w, http.StatusConflict, err.Error())
	default:
		Error(w, http.StatusInternalServerError, "internal error")
	}
}

// Decode lee un body JSON acotado. Body vacío => ErrInvalid.
func Decode(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxRequestBytes))
	if err := dec.Decode(v); err != nil {
		return validate.Invalid("invalid json")
	}
	return nil
}

func write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
