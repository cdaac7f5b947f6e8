package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env  string
	Port string

	PostgresURL string

	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	CORSOrigins []string

	EmbeddingProvider string
	EmbeddingAPIKey   string
	EmbeddingModel    string

	ImportBatchSize int
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over .env.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function.
func FromEnv(getenv func(string) string) (Config, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	cfg := Config{
		Env:         get("APP_ENV", "production"),
		Port:        get("PORT", "8000"),
		PostgresURL: getenv("POSTGRES_URL"),
		JWTSecret:   getenv("JWT_SECRET"),
	}

	var err error
	if cfg.AccessTokenTTL, err = time.ParseDuration(get("ACCESS_TOKEN_TTL", "60m")); err != nil {
		return Config{}, fmt.Errorf("ACCESS_TOKEN_TTL: %w", err)
	}
	if cfg.RefreshTokenTTL, err = time.ParseDuration(get("REFRESH_TOKEN_TTL", "168h")); err != nil {
		return Config{}, fmt.Errorf("REFRESH_TOKEN_TTL: %w", err)
	}
	if cfg.ImportBatchSize, err = strconv.Atoi(get("IMPORT_BATCH_SIZE", "500")); err != nil || cfg.ImportBatchSize < 1 {
		return Config{}, fmt.Errorf("IMPORT_BATCH_SIZE must be a positive integer")
	}

	for _, o := range strings.Split(get("CORS_ORIGINS", "*"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}

	cfg.EmbeddingProvider = strings.ToLower(get("EMBEDDING_PROVIDER", "none"))
	switch cfg.EmbeddingProvider {
	case "openai":
		cfg.EmbeddingAPIKey = getenv("OPENAI_API_KEY")
		cfg.EmbeddingModel = get("EMBEDDING_MODEL", "text-embedding-3-small")
	case "gemini":
		cfg.EmbeddingAPIKey = getenv("GEMINI_API_KEY")
		cfg.EmbeddingModel = get("EMBEDDING_MODEL", "text-embedding-004")
	case "none":
	default:
		return Config{}, fmt.Errorf("unsupported EMBEDDING_PROVIDER %q, use openai, gemini or none", cfg.EmbeddingProvider)
	}

	return cfg, nil
}

// Validate checks what the HTTP server needs to start.
func (c Config) Validate() error {
	var errs []error
	if c.PostgresURL == "" {
		errs = append(errs, errors.New("POSTGRES_URL is required"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	return errors.Join(errs...)
}
