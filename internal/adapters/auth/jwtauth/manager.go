package jwtauth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"pet-wellness/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrNotConfigured = errors.New("jwt secret not configured")
	ErrInvalidToken  = errors.New("invalid bearer token")
	ErrRevoked       = errors.New("token revoked")
)

// Config del emisor/verificador HS256.
type Config struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

// Manager implementa auth.TokenIssuer, auth.AuthVerifier y auth.TokenRevoker.
// La lista de revocados vive en memoria hasta que el token expira.
type Manager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time

	mu      sync.Mutex
	revoked map[string]time.Time // jti -> exp
}

func NewManager(cfg Config) *Manager {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	issuer := strings.TrimSpace(cfg.Issuer)
	if issuer == "" {
		issuer = "pet-wellness"
	}
	return &Manager{
		secret:  []byte(cfg.Secret),
		issuer:  issuer,
		ttl:     ttl,
		now:     time.Now,
		revoked: make(map[string]time.Time),
	}
}

func (m *Manager) Issue(ctx context.Context, c auth.Claims) (string, error) {
	if len(m.secret) == 0 {
		return "", ErrNotConfigured
	}
	if strings.TrimSpace(c.UserID) == "" {
		return "", errors.New("claims missing user id")
	}

	now := m.now()
	claims := jwt.MapClaims{
		"iss":   m.issuer,
		"sub":   c.UserID,
		"email": c.Email,
		"jti":   uuid.NewString(),
		"iat":   now.Unix(),
		"exp":   now.Add(m.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

func (m *Manager) Verify(ctx context.Context, token string) (auth.Claims, error) {
	claims, jti, err := m.parse(token)
	if err != nil {
		return auth.Claims{}, err
	}

	m.mu.Lock()
	_, revoked := m.revoked[jti]
	m.mu.Unlock()
	if revoked {
		return auth.Claims{}, ErrRevoked
	}
	return claims, nil
}

// Revoke invalida el token hasta su expiración. Tokens inválidos se ignoran.
func (m *Manager) Revoke(ctx context.Context, token string) error {
	claims, jti, err := m.parse(token)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for id, exp := range m.revoked {
		if exp.Before(now) {
			delete(m.revoked, id)
		}
	}
	m.revoked[jti] = claims.ExpiresAt
	return nil
}

func (m *Manager) parse(token string) (auth.Claims, string, error) {
	if len(m.secret) == 0 {
		return auth.Claims{}, "", ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, "", ErrInvalidToken
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithIssuer(m.issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return auth.Claims{}, "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	mc, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return auth.Claims{}, "", ErrInvalidToken
	}

	sub, _ := mc["sub"].(string)
	jti, _ := mc["jti"].(string)
	email, _ := mc["email"].(string)
	if sub == "" || jti == "" {
		return auth.Claims{}, "", ErrInvalidToken
	}
	exp, err := mc.GetExpirationTime()
	if err != nil || exp == nil {
		return auth.Claims{}, "", ErrInvalidToken
	}

	return auth.Claims{UserID: sub, Email: email, ExpiresAt: exp.Time}, jti, nil
}
