// Package app arma el cliente: sesión, store de mascotas y notificaciones.
// La sesión controla la vida del store; al salir se descarta.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"pet-wellness/internal/apiclient"
	"pet-wellness/internal/domain/users"
	"pet-wellness/internal/notify"
	"pet-wellness/internal/petstore"
	"pet-wellness/internal/platform/config"
	"pet-wellness/internal/platform/kvstore"
	"pet-wellness/internal/platform/logger"
	"pet-wellness/internal/session"

	"go.uber.org/multierr"
)

var ErrNotAuthenticated = errors.New("not authenticated")

// Deps permite armar la App con piezas propias (tests, otra plataforma).
type Deps struct {
	API      apiclient.API
	Tokens   *session.TokenStore
	Platform notify.Platform
	Log      logger.Logger
	// Closers se cierran en orden inverso en Close.
	Closers []io.Closer
}

type App struct {
	api     apiclient.API
	session *session.Store
	bridge  *notify.Bridge
	log     logger.Logger
	closers []io.Closer

	mu   sync.Mutex
	pets *petstore.Store
}

func Compose(d Deps) *App {
	if d.Log == nil {
		d.Log = logger.Discard()
	}
	return &App{
		api:     d.API,
		session: session.NewStore(d.API, d.Tokens, d.Log),
		bridge:  notify.NewBridge(d.Platform, notify.WithLogger(d.Log)),
		log:     d.Log.With(map[string]any{"component": "app"}),
		closers: d.Closers,
	}
}

// New arma la App según la configuración del cliente. sink recibe las
// notificaciones vencidas; nil => se registran en el log.
func New(cfg config.ClientConfig, sink notify.Sink, log logger.Logger) (*App, error) {
	if log == nil {
		log = logger.Discard()
	}
	if sink == nil {
		sink = logSink(log)
	}

	var (
		kv      kvstore.Store
		closers []io.Closer
	)
	if path := strings.TrimSpace(cfg.StoragePath); path == "" {
		kv = kvstore.NewMemory()
	} else {
		db, err := kvstore.OpenSQLite(path)
		if err != nil {
			return nil, fmt.Errorf("open token storage: %w", err)
		}
		kv = db
		closers = append(closers, db)
	}
	tokens := session.NewTokenStore(kv)

	var api apiclient.API
	switch cfg.APIMode {
	case config.APIModeRemote:
		c, err := apiclient.NewHTTPClient(cfg.BaseURL, cfg.Timeout.Duration, tokens, log)
		if err != nil {
			return nil, multierr.Append(err, closeAll(closers))
		}
		api = c
	default:
		api = apiclient.NewFake(apiclient.FakeOptions{
			Latency: cfg.MockLatency.Duration,
			Tokens:  tokens,
		})
	}

	platform := notify.NewLocalPlatform(sink, true)
	closers = append(closers, platform)

	return Compose(Deps{
		API:      api,
		Tokens:   tokens,
		Platform: platform,
		Log:      log,
		Closers:  closers,
	}), nil
}

func logSink(log logger.Logger) notify.Sink {
	return notify.SinkFunc(func(n notify.Notification) error {
		log.Info(n.Title, map[string]any{"body": n.Body, "type": n.Data[notify.DataType]})
		return nil
	})
}

func (a *App) Session() *session.Store { return a.session }

// Start pide permiso de notificaciones, restaura la sesión guardada y, si
// quedó autenticada, carga las mascotas.
func (a *App) Start(ctx context.Context) (session.State, error) {
	if !a.bridge.RequestPermission(ctx) {
		a.log.Info("notifications not permitted; reminders will not alert", nil)
	}

	state := a.session.Restore(ctx)
	if state != session.Authenticated {
		return state, nil
	}
	return state, a.openPets(ctx)
}

func (a *App) Login(ctx context.Context, email, password string) (users.User, error) {
	u, err := a.session.Login(ctx, email, password)
	if err != nil {
		return users.User{}, err
	}
	return u, a.openPets(ctx)
}

func (a *App) Signup(ctx context.Context, name, email, password string) (users.User, error) {
	u, err := a.session.Signup(ctx, name, email, password)
	if err != nil {
		return users.User{}, err
	}
	return u, a.openPets(ctx)
}

// openPets crea un store nuevo por sesión y lo carga.
func (a *App) openPets(ctx context.Context) error {
	st := petstore.NewStore(a.api, a.bridge, a.log)

	a.mu.Lock()
	prev := a.pets
	a.pets = st
	a.mu.Unlock()

	if prev != nil {
		prev.Reset()
	}
	return st.Load(ctx)
}

// Logout descarta el store de mascotas y cierra la sesión; nunca falla.
func (a *App) Logout(ctx context.Context) {
	a.mu.Lock()
	st := a.pets
	a.pets = nil
	a.mu.Unlock()

	if st != nil {
		st.Reset()
	}
	a.session.Logout(ctx)
}

// Pets devuelve el store de la sesión actual.
func (a *App) Pets() (*petstore.Store, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.pets == nil || a.session.State() != session.Authenticated {
		return nil, ErrNotAuthenticated
	}
	return a.pets, nil
}

// Close espera los refresh pendientes y libera storage y timers.
func (a *App) Close() error {
	a.mu.Lock()
	st := a.pets
	a.mu.Unlock()
	if st != nil {
		st.Wait()
	}
	return closeAll(a.closers)
}

func closeAll(closers []io.Closer) error {
	var err error
	for i := len(closers) - 1; i >= 0; i-- {
		err = multierr.Append(err, closers[i].Close())
	}
	return err
}
