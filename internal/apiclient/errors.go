package apiclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"pet-wellness/internal/domain/validate"
	"pet-wellness/internal/platform/httpclient"
)

var (
	// ErrAuthentication: credenciales inválidas o sesión vencida/ausente.
	ErrAuthentication = errors.New("authentication failed")
	// ErrValidation: input rechazado antes de tocar la red.
	ErrValidation = validate.ErrInvalid
	// ErrNetworkOrServer: status no-2xx o falla de transporte.
	ErrNetworkOrServer = errors.New("network or server error")
)

// Error lleva la clase (Kind) y, si hubo respuesta, el status y el mensaje del servidor.
type Error struct {
	Kind       error
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.StatusCode > 0:
		return fmt.Sprintf("API error %d", e.StatusCode)
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Kind.Error()
	}
}

// Unwrap permite errors.Is contra la clase y contra la causa.
func (e *Error) Unwrap() []error {
	out := make([]error, 0, 2)
	if e.Kind != nil {
		out = append(out, e.Kind)
	}
	if e.Err != nil {
		out = append(out, e.Err)
	}
	return out
}

// StatusCode devuelve el status HTTP de err, o 0 si no vino de una respuesta.
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}

// scope decide cómo se clasifica un no-2xx.
type scope int

const (
	// login, signup, getUser: cualquier no-2xx es de autenticación.
	scopeAuth scope = iota
	// resto: solo 401 es de autenticación.
	scopeData
)

func classify(err error, s scope) error {
	if err == nil {
		return nil
	}

	var he *httpclient.HTTPError
	if errors.As(err, &he) {
		kind := ErrNetworkOrServer
		if s == scopeAuth || he.StatusCode == http.StatusUnauthorized {
			kind = ErrAuthentication
		}
		return &Error{Kind: kind, StatusCode: he.StatusCode, Message: he.Error(), Err: he}
	}

	msg := err.Error()
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		msg = "request cancelled: " + strings.TrimPrefix(msg, "httpclient: ")
	}
	return &Error{Kind: ErrNetworkOrServer, Message: msg, Err: err}
}

func serverError(status int, msg string) error {
	kind := ErrNetworkOrServer
	if status == http.StatusUnauthorized {
		kind = ErrAuthentication
	}
	return &Error{Kind: kind, StatusCode: status, Message: msg}
}

func authError(msg string) error {
	return &Error{Kind: ErrAuthentication, Message: msg}
}
