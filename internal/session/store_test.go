package session

import (
	"context"
	"errors"
	"testing"

	"pet-wellness/internal/apiclient"
	"pet-wellness/internal/domain/users"
	"pet-wellness/internal/platform/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rejectingAPI simula un backend que rechaza el token guardado.
type rejectingAPI struct {
	*apiclient.Fake
}

func (rejectingAPI) GetUser(ctx context.Context) (users.User, error) {
	return users.User{}, &apiclient.Error{Kind: apiclient.ErrAuthentication, StatusCode: 401, Message: "unauthenticated"}
}

// logoutSpy registra si Logout vio el token todavía guardado.
type logoutSpy struct {
	*apiclient.Fake
	tokens      *TokenStore
	tokenAtCall string
}

func (l *logoutSpy) Logout(ctx context.Context) {
	l.tokenAtCall, _ = l.tokens.Token(ctx)
}

func newStore(api apiclient.API, kv kvstore.Store) (*Store, *TokenStore) {
	tokens := NewTokenStore(kv)
	return NewStore(api, tokens, nil), tokens
}

func TestRestore_NoToken(t *testing.T) {
	s, _ := newStore(apiclient.NewFake(apiclient.FakeOptions{}), kvstore.NewMemory())
	require.Equal(t, Unknown, s.State())

	assert.Equal(t, Anonymous, s.Restore(context.Background()))
	_, ok := s.User()
	assert.False(t, ok)
}

func TestRestore_ValidToken(t *testing.T) {
	kv := kvstore.NewMemory()
	require.NoError(t, kv.Set(context.Background(), TokenKey, apiclient.MockToken))

	tokens := NewTokenStore(kv)
	api := apiclient.NewFake(apiclient.FakeOptions{Tokens: tokens})
	s := NewStore(api, tokens, nil)

	assert.Equal(t, Authenticated, s.Restore(context.Background()))
	u, ok := s.User()
	require.True(t, ok)
	assert.Equal(t, "Mary Showcase", u.Name)
}

func TestRestore_RejectedTokenIsCleared(t *testing.T) {
	kv := kvstore.NewMemory()
	require.NoError(t, kv.Set(context.Background(), TokenKey, "expired"))

	s, tokens := newStore(rejectingAPI{apiclient.NewFake(apiclient.FakeOptions{})}, kv)

	assert.Equal(t, Anonymous, s.Restore(context.Background()))
	tok, err := tokens.Token(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tok)
}

func TestLogin_PersistsToken(t *testing.T) {
	s, tokens := newStore(apiclient.NewFake(apiclient.FakeOptions{}), kvstore.NewMemory())
	ctx := context.Background()
	s.Restore(ctx)

	u, err := s.Login(ctx, "mary@example.com", "anything")
	require.NoError(t, err)
	assert.Equal(t, "Mary Showcase", u.Name)
	assert.Equal(t, Authenticated, s.State())

	tok, err := tokens.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, apiclient.MockToken, tok)
}

func TestLogin_FailureLeavesStateUnchanged(t *testing.T) {
	s, tokens := newStore(apiclient.NewFake(apiclient.FakeOptions{}), kvstore.NewMemory())
	ctx := context.Background()
	s.Restore(ctx)

	_, err := s.Login(ctx, "", "")
	assert.ErrorIs(t, err, apiclient.ErrValidation)
	assert.Equal(t, Anonymous, s.State())

	tok, _ := tokens.Token(ctx)
	assert.Empty(t, tok)
}

func TestSignup_EchoesUser(t *testing.T) {
	s, _ := newStore(apiclient.NewFake(apiclient.FakeOptions{}), kvstore.NewMemory())

	u, err := s.Signup(context.Background(), "Ana", "ana@example.com", "pw123456")
	require.NoError(t, err)
	assert.Equal(t, "Ana", u.Name)
	assert.Equal(t, "ana@example.com", u.Email)
	assert.Equal(t, Authenticated, s.State())
}

func TestLogout_AlwaysAnonymousAndTokenSentFirst(t *testing.T) {
	kv := kvstore.NewMemory()
	tokens := NewTokenStore(kv)
	spy := &logoutSpy{Fake: apiclient.NewFake(apiclient.FakeOptions{}), tokens: tokens}
	s := NewStore(spy, tokens, nil)
	ctx := context.Background()

	_, err := s.Login(ctx, "mary@example.com", "x")
	require.NoError(t, err)

	s.Logout(ctx)
	assert.Equal(t, apiclient.MockToken, spy.tokenAtCall)
	assert.Equal(t, Anonymous, s.State())

	tok, _ := tokens.Token(ctx)
	assert.Empty(t, tok)
}

type brokenKV struct{ kvstore.Store }

func (brokenKV) Delete(ctx context.Context, key string) error { return errors.New("disk full") }

func TestLogout_StorageErrorStillAnonymous(t *testing.T) {
	s, _ := newStore(apiclient.NewFake(apiclient.FakeOptions{}), brokenKV{kvstore.NewMemory()})
	ctx := context.Background()

	_, err := s.Login(ctx, "mary@example.com", "x")
	require.NoError(t, err)

	s.Logout(ctx)
	assert.Equal(t, Anonymous, s.State())
}
