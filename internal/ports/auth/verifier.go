package auth

import (
	"context"
	"errors"
)

var (
	ErrUnauthorized = errors.New("unauthenticated")
	ErrForbidden    = errors.New("forbidden")
)

// AuthVerifier verifica un token y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// TokenIssuer emite el token bearer opaco que recibe el cliente en login/register.
type TokenIssuer interface {
	Issue(ctx context.Context, claims Claims) (string, error)
}

// PetAuthorizer resuelve si userID puede operar sobre petID.
// Lo implementa pets.Service; los módulos dependientes lo reciben sin importar pets.
type PetAuthorizer interface {
	Authorize(ctx context.Context, petID, userID string) error
}

// TokenRevoker invalida un token antes de su expiración (logout).
type TokenRevoker interface {
	Revoke(ctx context.Context, token string) error
}
