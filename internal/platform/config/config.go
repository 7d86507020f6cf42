// Package config carga la configuración desde un TOML con secciones
// [client], [server] y [log]; cada campo se puede pisar por env.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"pet-wellness/internal/platform/logger"

	"github.com/BurntSushi/toml"
)

const (
	APIModeMock   = "mock"
	APIModeRemote = "remote"

	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Duration acepta "10s", "1m30s", etc. en el TOML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

type Config struct {
	Client ClientConfig `toml:"client"`
	Server ServerConfig `toml:"server"`
	Log    LogConfig    `toml:"log"`
}

type ClientConfig struct {
	APIMode     string   `toml:"api_mode"` // mock | remote
	BaseURL     string   `toml:"base_url"`
	Timeout     Duration `toml:"timeout"`
	StoragePath string   `toml:"storage_path"` // sqlite del token; vacío => memoria
	MockLatency Duration `toml:"mock_latency"`
}

type ServerConfig struct {
	Addr         string   `toml:"addr"`
	Envelope     bool     `toml:"envelope"`
	Storage      string   `toml:"storage"` // memory | postgres
	DSN          string   `toml:"dsn"`
	JWTSecret    string   `toml:"jwt_secret"`
	JWTIssuer    string   `toml:"jwt_issuer"`
	TokenTTL     Duration `toml:"token_ttl"`
	ShareBaseURL string   `toml:"share_base_url"`
	DemoMode     bool     `toml:"demo_mode"`
	Seed         bool     `toml:"seed"`
}

type LogConfig struct {
	Level    string `toml:"level"`
	Format   string `toml:"format"`
	File     string `toml:"file"`
	ToStdout bool   `toml:"to_stdout"`
	App      string `toml:"app"`
}

func Default() Config {
	return Config{
		Client: ClientConfig{
			APIMode:     APIModeMock,
			Timeout:     Duration{10 * time.Second},
			StoragePath: "./pet-wellness.db",
		},
		Server: ServerConfig{
			Addr:      ":8080",
			Envelope:  true,
			Storage:   StorageMemory,
			JWTIssuer: "pet-wellness",
			TokenTTL:  Duration{30 * 24 * time.Hour},
			DemoMode:  true,
			Seed:      true,
		},
		Log: LogConfig{
			Level:    "info",
			Format:   "text",
			ToStdout: true,
			App:      "pet-wellness",
		},
	}
}

// Load = LoadWithEnv(path, os.LookupEnv).
func Load(path string) (Config, error) {
	return LoadWithEnv(path, os.LookupEnv)
}

// LoadWithEnv parte de Default, aplica el archivo (si existe) y luego env.
func LoadWithEnv(path string, lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if path = strings.TrimSpace(path); path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg, lookup); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Client.APIMode {
	case APIModeMock:
	case APIModeRemote:
		if strings.TrimSpace(c.Client.BaseURL) == "" {
			return errors.New("config: client.base_url required in remote mode")
		}
	default:
		return fmt.Errorf("config: unknown client.api_mode %q", c.Client.APIMode)
	}

	switch c.Server.Storage {
	case StorageMemory:
	case StoragePostgres:
		if strings.TrimSpace(c.Server.DSN) == "" {
			return errors.New("config: server.dsn required for postgres storage")
		}
	default:
		return fmt.Errorf("config: unknown server.storage %q", c.Server.Storage)
	}
	return nil
}

// LoggerOptions traduce [log] a logger.Options.
func (c Config) LoggerOptions() logger.Options {
	return logger.Options{
		Level:    logger.ParseLevel(c.Log.Level),
		Format:   logger.ParseFormat(c.Log.Format),
		App:      c.Log.App,
		File:     c.Log.File,
		ToStdout: c.Log.ToStdout,
	}
}

func applyEnv(c *Config, lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	boolean := func(key string, dst *bool) error {
		v, ok := lookup(key)
		if !ok || strings.TrimSpace(v) == "" {
			return nil
		}
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: %s: %w", key, err)
		}
		*dst = b
		return nil
	}
	duration := func(key string, dst *Duration) error {
		v, ok := lookup(key)
		if !ok || strings.TrimSpace(v) == "" {
			return nil
		}
		return dst.UnmarshalText([]byte(v))
	}

	str("PETW_API_MODE", &c.Client.APIMode)
	str("PETW_API_BASE_URL", &c.Client.BaseURL)
	str("PETW_STORAGE_PATH", &c.Client.StoragePath)

	str("PETW_SERVER_ADDR", &c.Server.Addr)
	if v, ok := lookup("PORT"); ok && strings.TrimSpace(v) != "" {
		c.Server.Addr = ":" + strings.TrimSpace(v)
	}
	str("PETW_STORAGE", &c.Server.Storage)
	str("PETW_DB_DSN", &c.Server.DSN)
	str("PETW_JWT_SECRET", &c.Server.JWTSecret)
	str("PETW_JWT_ISSUER", &c.Server.JWTIssuer)
	str("PETW_SHARE_BASE_URL", &c.Server.ShareBaseURL)

	str("LOG_LEVEL", &c.Log.Level)
	str("LOG_FORMAT", &c.Log.Format)
	str("LOG_FILE", &c.Log.File)
	str("APP_NAME", &c.Log.App)

	for key, dst := range map[string]*bool{
		"PETW_ENVELOPE":  &c.Server.Envelope,
		"PETW_DEMO_MODE": &c.Server.DemoMode,
		"PETW_SEED":      &c.Server.Seed,
	} {
		if err := boolean(key, dst); err != nil {
			return err
		}
	}
	for key, dst := range map[string]*Duration{
		"PETW_API_TIMEOUT":  &c.Client.Timeout,
		"PETW_MOCK_LATENCY": &c.Client.MockLatency,
		"PETW_TOKEN_TTL":    &c.Server.TokenTTL,
	} {
		if err := duration(key, dst); err != nil {
			return fmt.Errorf("config: %s: %w", key, err)
		}
	}
	return nil
}
