// Package session mantiene la identidad autenticada y el token persistido.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pet-wellness/internal/apiclient"
	"pet-wellness/internal/domain/users"
	"pet-wellness/internal/platform/logger"
)

type State int

const (
	Unknown State = iota // todavía no se revisó la sesión
	Checking
	Authenticated
	Anonymous
)

func (s State) String() string {
	switch s {
	case Checking:
		return "checking"
	case Authenticated:
		return "authenticated"
	case Anonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

var ErrEmptyToken = errors.New("server returned an empty session token")

// Store es la máquina de estados de sesión:
// Unknown -> Checking -> Authenticated | Anonymous.
// No reintenta nada; un login fallido deja el estado como estaba.
type Store struct {
	api    apiclient.API
	tokens *TokenStore
	log    logger.Logger

	mu    sync.RWMutex
	state State
	user  users.User
}

func NewStore(api apiclient.API, tokens *TokenStore, log logger.Logger) *Store {
	if log == nil {
		log = logger.Discard()
	}
	return &Store{
		api:    api,
		tokens: tokens,
		log:    log.With(map[string]any{"component": "session"}),
		state:  Unknown,
	}
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// User devuelve el usuario y true sólo en Authenticated.
func (s *Store) User() (users.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user, s.state == Authenticated
}

func (s *Store) set(state State, u users.User) {
	s.mu.Lock()
	s.state = state
	s.user = u
	s.mu.Unlock()
}

// Restore revisa el token guardado al arrancar. Un token rechazado se borra.
func (s *Store) Restore(ctx context.Context) State {
	tok, err := s.tokens.Token(ctx)
	if err != nil {
		s.log.Warn("read session token failed", map[string]any{"op": "restore", "error": err})
	}
	if tok == "" {
		s.set(Anonymous, users.User{})
		return Anonymous
	}

	s.set(Checking, users.User{})

	u, err := s.api.GetUser(ctx)
	if err != nil {
		s.log.Info("stored session rejected", map[string]any{"op": "restore", "error": err})
		if cerr := s.tokens.Clear(ctx); cerr != nil {
			s.log.Warn("clear session token failed", map[string]any{"op": "restore", "error": cerr})
		}
		s.set(Anonymous, users.User{})
		return Anonymous
	}

	s.set(Authenticated, u)
	return Authenticated
}

func (s *Store) Login(ctx context.Context, email, password string) (users.User, error) {
	res, err := s.api.Login(ctx, strings.TrimSpace(email), password)
	if err != nil {
		return users.User{}, err
	}
	return s.establish(ctx, res)
}

func (s *Store) Signup(ctx context.Context, name, email, password string) (users.User, error) {
	res, err := s.api.Signup(ctx, strings.TrimSpace(name), strings.TrimSpace(email), password)
	if err != nil {
		return users.User{}, err
	}
	return s.establish(ctx, res)
}

func (s *Store) establish(ctx context.Context, res apiclient.AuthResult) (users.User, error) {
	if strings.TrimSpace(res.Token) == "" {
		return users.User{}, ErrEmptyToken
	}
	if err := s.tokens.Save(ctx, res.Token); err != nil {
		return users.User{}, err
	}
	s.set(Authenticated, res.User)
	return res.User, nil
}

// Logout siempre termina en Anonymous, falle o no el servidor.
func (s *Store) Logout(ctx context.Context) {
	// antes de borrar el token, para que el request lleve el bearer
	s.api.Logout(ctx)

	if err := s.tokens.Clear(ctx); err != nil {
		s.log.Warn("clear session token failed", map[string]any{"op": "logout", "error": err})
	}
	s.set(Anonymous, users.User{})
}
