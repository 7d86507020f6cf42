package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-wellness/internal/adapters/auth/jwtauth"
	pg "pet-wellness/internal/adapters/storage/postgres"
	"pet-wellness/internal/platform/config"
	"pet-wellness/internal/platform/logger"
	"pet-wellness/internal/router"

	"github.com/google/uuid"
)

// @title Pet Wellness API
// @version 1.0
// @description Backend de referencia del cliente de bienestar de mascotas.
// @BasePath /
func main() {
	cfgPath := flag.String("config", os.Getenv("PETW_CONFIG"), "path to the TOML config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		logger.NewFromEnv().Error("load config failed", map[string]any{"error": err})
		os.Exit(1)
	}
	log := logger.New(cfg.LoggerOptions())

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", map[string]any{"error": err})
		os.Exit(1)
	}
}

func run(cfg config.Config, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	secret := cfg.Server.JWTSecret
	if secret == "" {
		// sin secreto fijo los tokens no sobreviven un reinicio
		secret = uuid.NewString()
		log.Warn("jwt secret not configured, using an ephemeral one", nil)
	}

	opts := router.Options{
		Tokens: jwtauth.NewManager(jwtauth.Config{
			Secret: secret,
			Issuer: cfg.Server.JWTIssuer,
			TTL:    cfg.Server.TokenTTL.Duration,
		}),
		Envelope:     cfg.Server.Envelope,
		ShareBaseURL: cfg.Server.ShareBaseURL,
		DemoMode:     cfg.Server.DemoMode,
		Seed:         cfg.Server.Seed,
		Log:          log,
	}

	if cfg.Server.Storage == config.StoragePostgres {
		db, err := pg.Open(cfg.Server.DSN)
		if err != nil {
			return err
		}
		defer db.Close()
		opts.DB = db
	}

	h, err := router.NewRouter(ctx, opts)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      h,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": cfg.Server.Addr, "storage": cfg.Server.Storage})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
