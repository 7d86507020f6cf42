package session

import (
	"context"
	"errors"
	"strings"

	"pet-wellness/internal/platform/kvstore"
)

// TokenKey es la clave fija del token en el almacenamiento local.
const TokenKey = "session_token"

// TokenStore persiste el token opaco. Implementa apiclient.TokenSource.
type TokenStore struct {
	kv kvstore.Store
}

func NewTokenStore(kv kvstore.Store) *TokenStore {
	return &TokenStore{kv: kv}
}

// Token devuelve "" si no hay sesión guardada.
func (t *TokenStore) Token(ctx context.Context) (string, error) {
	v, err := t.kv.Get(ctx, TokenKey)
	if errors.Is(err, kvstore.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(v), nil
}

func (t *TokenStore) Save(ctx context.Context, token string) error {
	return t.kv.Set(ctx, TokenKey, token)
}

func (t *TokenStore) Clear(ctx context.Context) error {
	return t.kv.Delete(ctx, TokenKey)
}
