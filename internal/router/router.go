package router

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"pet-wellness/docs"
	"pet-wellness/internal/adapters/auth/jwtauth"
	mem "pet-wellness/internal/adapters/storage/memory"
	pg "pet-wellness/internal/adapters/storage/postgres"
	"pet-wellness/internal/domain/health"
	"pet-wellness/internal/domain/insights"
	"pet-wellness/internal/domain/pets"
	"pet-wellness/internal/domain/reminders"
	"pet-wellness/internal/domain/sharing"
	"pet-wellness/internal/domain/training"
	"pet-wellness/internal/domain/users"
	"pet-wellness/internal/domain/wellness"
	"pet-wellness/internal/middleware"
	"pet-wellness/internal/platform/httpx"
	"pet-wellness/internal/platform/logger"
	"pet-wellness/internal/ports/storage"
	"pet-wellness/internal/seed"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Tokens emite, verifica y revoca los bearer tokens. Obligatorio.
	Tokens *jwtauth.Manager

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Envelope     bool
	ShareBaseURL string
	// DemoMode deja entrar a la cuenta demo con cualquier password.
	DemoMode bool
	// Seed carga el dataset demo (Luna y Mochi) al arrancar.
	Seed bool
	// BcryptCost 0 => default; los tests usan bcrypt.MinCost.
	BcryptCost int

	Log      logger.Logger
	Registry *prometheus.Registry
	Now      func() time.Time
}

var ErrNoTokens = errors.New("router: token manager is required")

// repo elige el adapter según haya DB o no.
func repo[T storage.Record](db *sql.DB, kind string) storage.Repository[T] {
	if db == nil {
		return mem.NewRepo[T]()
	}
	return pg.NewRepo[T](db, kind)
}

func NewRouter(ctx context.Context, opts Options) (http.Handler, error) {
	if opts.Tokens == nil {
		return nil, ErrNoTokens
	}
	if opts.Log == nil {
		opts.Log = logger.Discard()
	}
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.ShareBaseURL == "" {
		opts.ShareBaseURL = sharing.DefaultBaseURL
	}
	log := opts.Log.With(map[string]any{"component": "router"})

	// Repos por entidad
	var (
		accountRepo  = repo[users.Account](opts.DB, "account")
		petRepo      = repo[pets.Pet](opts.DB, "pet")
		healthRepo   = repo[health.Record](opts.DB, "health_record")
		reminderRepo = repo[reminders.Reminder](opts.DB, "reminder")
		wellnessRepo = repo[wellness.Entry](opts.DB, "wellness_entry")
		goalRepo     = repo[training.Goal](opts.DB, "training_goal")
		insightRepo  = repo[insights.Insight](opts.DB, "insight")
		linkRepo     = repo[sharing.Link](opts.DB, "share_link")
	)

	usersOpts := users.Options{Cost: opts.BcryptCost}
	if opts.DemoMode {
		usersOpts.DemoEmail = seed.DemoEmail
	}

	// Services por módulo
	usersSvc := users.NewService(accountRepo, usersOpts)
	petsSvc := pets.NewService(petRepo)
	healthSvc := health.NewService(healthRepo)
	remindersSvc := reminders.NewService(reminderRepo)
	wellnessSvc := wellness.NewService(wellnessRepo)
	trainingSvc := training.NewService(goalRepo)
	insightsSvc := insights.NewService(insightRepo)
	sharingSvc := sharing.NewService(linkRepo, petsSvc, opts.ShareBaseURL)

	if opts.Seed {
		ds := seed.New(opts.Now(), 1)
		account, err := ds.Account(usersOpts.Cost)
		if err != nil {
			return nil, fmt.Errorf("seed account: %w", err)
		}
		for _, step := range []func() error{
			func() error { return seed.Into(ctx, accountRepo, []users.Account{account}) },
			func() error { return seed.Into(ctx, petRepo, ds.Pets) },
			func() error { return seed.Into(ctx, healthRepo, ds.Health) },
			func() error { return seed.Into(ctx, reminderRepo, ds.Reminders) },
			func() error { return seed.Into(ctx, wellnessRepo, ds.Wellness) },
			func() error { return seed.Into(ctx, goalRepo, ds.Goals) },
			func() error { return seed.Into(ctx, insightRepo, ds.Insights) },
		} {
			if err := step(); err != nil {
				return nil, fmt.Errorf("seed: %w", err)
			}
		}
		log.Info("demo dataset loaded", map[string]any{"pets": len(ds.Pets)})
	}

	rsp := httpx.Responder{Envelope: opts.Envelope}
	metrics := middleware.NewMetrics(opts.Registry)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.LogRequest(opts.Log))
	r.Use(middleware.RequestMetrics(metrics))

	r.Use(middleware.AuthContext(opts.Tokens))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{}))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.InstanceName(docs.SwaggerInfo.InstanceName())))

	// Públicas
	users.RegisterRoutes(r, usersSvc, opts.Tokens, rsp)
	sharing.RegisterPublicRoutes(r, sharingSvc, rsp)

	// Rutas por módulo, todas con usuario
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireUser)

		pets.RegisterRoutes(r, petsSvc, rsp)
		health.RegisterRoutes(r, healthSvc, petsSvc, rsp)
		reminders.RegisterRoutes(r, remindersSvc, petsSvc, rsp)
		wellness.RegisterRoutes(r, wellnessSvc, petsSvc, rsp)
		training.RegisterRoutes(r, trainingSvc, petsSvc, rsp)
		insights.RegisterRoutes(r, insightsSvc, petsSvc, rsp)
		sharing.RegisterRoutes(r, sharingSvc, petsSvc, rsp)
	})

	return r, nil
}
