package app

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"pet-wellness/internal/apiclient"
	"pet-wellness/internal/notify"
	"pet-wellness/internal/platform/config"
	"pet-wellness/internal/platform/kvstore"
	"pet-wellness/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func mockConfig(path string) config.ClientConfig {
	cfg := config.Default().Client
	cfg.APIMode = config.APIModeMock
	cfg.StoragePath = path
	return cfg
}

func TestApp_LoginOpensPetStore(t *testing.T) {
	a, err := New(mockConfig(""), nil, nil)
	require.NoError(t, err)
	defer func() { assert.NoError(t, a.Close()) }()

	state, err := a.Start(context.Background())
	require.NoError(t, err)
	assert.Equal(t, session.Anonymous, state)

	_, err = a.Pets()
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	u, err := a.Login(context.Background(), "mary@example.com", "anything")
	require.NoError(t, err)
	assert.Equal(t, "Mary Showcase", u.Name)

	st, err := a.Pets()
	require.NoError(t, err)
	require.Len(t, st.Pets(), 2)
	assert.Equal(t, "1", st.ActivePetID())

	a.Logout(context.Background())
	_, err = a.Pets()
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Empty(t, st.Pets())
}

func TestApp_LoginValidationKeepsAnonymous(t *testing.T) {
	a, err := New(mockConfig(""), nil, nil)
	require.NoError(t, err)
	defer a.Close()

	_, err = a.Login(context.Background(), "mary@example.com", "")
	assert.ErrorIs(t, err, apiclient.ErrValidation)

	_, err = a.Pets()
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestApp_RestoresPersistedSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.db")

	first, err := New(mockConfig(path), nil, nil)
	require.NoError(t, err)
	_, err = first.Login(context.Background(), "mary@example.com", "anything")
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := New(mockConfig(path), nil, nil)
	require.NoError(t, err)
	defer second.Close()

	state, err := second.Start(context.Background())
	require.NoError(t, err)
	assert.Equal(t, session.Authenticated, state)

	st, err := second.Pets()
	require.NoError(t, err)
	assert.Len(t, st.Pets(), 2)

	second.Logout(context.Background())

	third, err := New(mockConfig(path), nil, nil)
	require.NoError(t, err)
	defer third.Close()
	state, err = third.Start(context.Background())
	require.NoError(t, err)
	assert.Equal(t, session.Anonymous, state)
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func TestApp_CloseCombinesErrors(t *testing.T) {
	var order []string
	closers := []io.Closer{
		closerFunc(func() error { order = append(order, "kv"); return errors.New("kv") }),
		closerFunc(func() error { order = append(order, "platform"); return errors.New("platform") }),
	}
	a := Compose(Deps{
		API:      apiclient.NewFake(apiclient.FakeOptions{}),
		Tokens:   session.NewTokenStore(kvstore.NewMemory()),
		Platform: notify.NewLocalPlatform(notify.SinkFunc(func(notify.Notification) error { return nil }), false),
		Closers:  closers,
	})

	err := a.Close()
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 2)
	assert.Equal(t, []string{"platform", "kv"}, order)
}
