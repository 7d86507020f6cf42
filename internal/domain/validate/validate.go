// Package validate agrupa las reglas comunes de validación de entidades.
// Todo error devuelto aquí envuelve ErrInvalid.
package validate

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var ErrInvalid = errors.New("invalid input")

func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return Invalid("%s required", field)
	}
	return nil
}

// Date exige YYYY-MM-DD.
func Date(field, value string) error {
	if _, err := time.Parse(DateLayout, strings.TrimSpace(value)); err != nil {
		return Invalid("%s must be YYYY-MM-DD", field)
	}
	return nil
}

// Clock exige HH:MM (24h).
func Clock(field, value string) error {
	if _, err := time.Parse(TimeLayout, strings.TrimSpace(value)); err != nil {
		return Invalid("%s must be HH:MM", field)
	}
	return nil
}

// Rating exige un entero 1..5.
func Rating(field string, value int) error {
	if value < 1 || value > 5 {
		return Invalid("%s must be between 1 and 5", field)
	}
	return nil
}

// OneOf valida enums cerrados.
func OneOf[T ~string](field string, value T, allowed ...T) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return Invalid("%s %q not allowed", field, string(value))
}

// First devuelve el primer error no-nil.
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
