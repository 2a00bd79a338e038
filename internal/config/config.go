package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"

	"github.com/davidbz/cinematch/internal/cache/redis"
	"github.com/davidbz/cinematch/internal/domain"
	"github.com/davidbz/cinematch/internal/provider/static"
	"github.com/davidbz/cinematch/internal/provider/tmdb"
)

// Catalog sources.
const (
	SourceTMDb   = "tmdb"
	SourceStatic = "static"
)

// Cache backends.
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

var (
	// ErrMissingAPIKey is returned by Load when the TMDb source is selected without TMDB_API_KEY.
	ErrMissingAPIKey = errors.New("TMDB_API_KEY is required when CATALOG_SOURCE=tmdb")

	ErrUnknownSource  = errors.New("unknown CATALOG_SOURCE")
	ErrUnknownBackend = errors.New("unknown CACHE_BACKEND")
)

// Config represents the service configuration.
type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	Log       LogConfig
	Catalog   CatalogConfig
	Cache     CacheConfig
	TMDB      tmdb.Config
	Static    static.Config
	Redis     redis.Config
	Recommend domain.RecommendConfig
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int `env:"SERVER_PORT"             envDefault:"8080"`
	ReadTimeout     int `env:"SERVER_READ_TIMEOUT"     envDefault:"30"`
	WriteTimeout    int `env:"SERVER_WRITE_TIMEOUT"    envDefault:"30"`
	ShutdownTimeout int `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"15"`
}

// CORSConfig contains CORS policy settings.
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"   envSeparator:"," envDefault:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"   envSeparator:"," envDefault:"GET,POST,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"   envSeparator:"," envDefault:"Content-Type,Authorization"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS"                  envDefault:"false"`
	MaxAge           int      `env:"CORS_MAX_AGE"                            envDefault:"86400"`
}

// LogConfig contains logger settings. Level is a zap level name.
type LogConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

// CatalogConfig selects where movie metadata comes from.
type CatalogConfig struct {
	Source string `env:"CATALOG_SOURCE" envDefault:"tmdb"`
}

// CacheConfig selects the CacheStore backend.
type CacheConfig struct {
	Backend string `env:"CACHE_BACKEND" envDefault:"memory"`
}

// DepConfig is used for dependency injection with dig.
type DepConfig struct {
	dig.Out
	*ServerConfig
	*CORSConfig
	*LogConfig
	*domain.RecommendConfig

	TMDB   *tmdb.Config
	Static *static.Config
	Redis  *redis.Config
}

// Load loads environment files, parses configuration and validates it.
func Load() (*Config, error) {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cross-field constraints the env tags cannot express.
func (c *Config) Validate() error {
	switch c.Catalog.Source {
	case SourceTMDb:
		if c.TMDB.APIKey == "" {
			return ErrMissingAPIKey
		}
	case SourceStatic:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSource, c.Catalog.Source)
	}

	switch c.Cache.Backend {
	case CacheMemory, CacheRedis:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Cache.Backend)
	}

	return nil
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		dig.Out{},
		&cfg.Server,
		&cfg.CORS,
		&cfg.Log,
		&cfg.Recommend,
		&cfg.TMDB,
		&cfg.Static,
		&cfg.Redis,
	}
}
