// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	URL             string        `mapstructure:"url"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
	// RequestTimeout cancels the request context, and with it any query.
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// AppConfig holds the values the student pages compute with.
type AppConfig struct {
	// TotalFlashcards is the denominator of the progress percentage.
	TotalFlashcards  int `mapstructure:"total_flashcards"`
	LeaderboardLimit int `mapstructure:"leaderboard_limit"`
}

// LegacyConfig switches on behavior kept for compatibility with the first
// version of the site. Each switch is logged when it changes a response.
type LegacyConfig struct {
	// DeckFallback shows the first card of FallbackDeckID when the requested
	// deck does not exist.
	DeckFallback   bool `mapstructure:"deck_fallback"`
	FallbackDeckID uint `mapstructure:"fallback_deck_id"`
	// SchoolLookupByUsername resolves the profile school by looking up a
	// student whose username equals the school value.
	SchoolLookupByUsername bool `mapstructure:"school_lookup_by_username"`
}

type AuthConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// EnforcePathIdentity rejects /student/{username}/... when {username}
	// is not the signed-in student.
	EnforcePathIdentity bool `mapstructure:"enforce_path_identity"`
}

type JWTConfig struct {
	SecretKey      string        `mapstructure:"secret_key"`
	AccessTokenTTL time.Duration `mapstructure:"access_token_ttl"`
	CookieName     string        `mapstructure:"cookie_name"`
	Issuer         string        `mapstructure:"issuer"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	App      AppConfig      `mapstructure:"app"`
	Legacy   LegacyConfig   `mapstructure:"legacy"`
	Auth     AuthConfig     `mapstructure:"auth"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	CORS     CORSConfig     `mapstructure:"cors"`
}

var Cfg Config

// LoadConfig reads config.yaml from path (or the working directory) into Cfg.
// Environment variables override file values, e.g. APP_DATABASE_URL.
func LoadConfig(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	Cfg = *cfg
	return nil
}

// Load reads the configuration without touching Cfg.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath(".")

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Explicit names replace the prefixed lookup, so both are listed.
	if err := v.BindEnv("auth.enabled", "APP_AUTH_ENABLED", "AUTH_ENABLED"); err != nil {
		return nil, fmt.Errorf("config.Load: binding auth.enabled env: %w", err)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config.Load: reading config file: %w", err)
		}
		slog.Warn("Config file not found, using defaults and environment variables", slog.String("path", path))
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config.Load: unmarshalling config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	slog.Info("Config loaded",
		slog.String("port", cfg.Server.Port),
		slog.String("db_driver", cfg.Database.Driver),
		slog.Int("total_flashcards", cfg.App.TotalFlashcards),
		slog.Bool("auth_enabled", cfg.Auth.Enabled),
		slog.Bool("legacy_deck_fallback", cfg.Legacy.DeckFallback),
	)
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.driver", DefaultDatabaseDriver)
	v.SetDefault("database.max_idle_conns", DefaultMaxIdleConns)
	v.SetDefault("database.max_open_conns", DefaultMaxOpenConns)
	v.SetDefault("database.conn_max_lifetime", DefaultConnMaxLifetime)

	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("server.read_timeout", DefaultReadTimeout)
	v.SetDefault("server.write_timeout", DefaultWriteTimeout)
	v.SetDefault("server.idle_timeout", DefaultIdleTimeout)
	v.SetDefault("server.request_timeout", DefaultRequestTimeout)

	v.SetDefault("log.level", DefaultLogLevel)

	v.SetDefault("app.total_flashcards", DefaultTotalFlashcards)
	v.SetDefault("app.leaderboard_limit", DefaultLeaderboardLimit)

	v.SetDefault("legacy.deck_fallback", true)
	v.SetDefault("legacy.fallback_deck_id", DefaultFallbackDeckID)
	v.SetDefault("legacy.school_lookup_by_username", false)

	v.SetDefault("auth.enabled", true)
	v.SetDefault("auth.enforce_path_identity", true)

	v.SetDefault("jwt.access_token_ttl", DefaultAccessTokenTTL)
	v.SetDefault("jwt.cookie_name", DefaultJWTCookieName)
	v.SetDefault("jwt.issuer", DefaultJWTIssuer)

	v.SetDefault("cors.allowed_methods", []string{"GET", "HEAD", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Accept", "Authorization", "Content-Type"})
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("config: unsupported database.driver %q", c.Database.Driver)
	}
	if c.Database.URL == "" {
		slog.Warn("Database URL is not set in config")
	}
	if c.Auth.Enabled && c.JWT.SecretKey == "" {
		return errors.New("config: jwt.secret_key is required when auth is enabled")
	}
	if c.App.LeaderboardLimit <= 0 {
		slog.Warn("Invalid leaderboard limit, using default", slog.Int("leaderboard_limit", c.App.LeaderboardLimit))
		c.App.LeaderboardLimit = DefaultLeaderboardLimit
	}
	return nil
}
