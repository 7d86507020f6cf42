package storage

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")
)

// Record es cualquier entidad persistible por id.
// RecordScope agrupa registros para listados: petID para registros
// dependientes, ownerUserID para mascotas, email para cuentas.
type Record interface {
	RecordID() string
	RecordScope() string
}

// Repository es el contrato que comparten los adapters memory y postgres.
// ListByScope devuelve en orden de inserción.
type Repository[T Record] interface {
	Create(ctx context.Context, v T) error
	Update(ctx context.Context, v T) error
	GetByID(ctx context.Context, id string) (T, error)
	ListByScope(ctx context.Context, scope string) ([]T, error)
	Delete(ctx context.Context, id string) error
}
