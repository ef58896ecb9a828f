// internal/config/constants.go
package config

import "time"

// Application info
const (
	AppName    = "flash_learning"
	AppVersion = "0.3.0"
)

// Default settings
const (
	DefaultDatabaseDriver   = "postgres"
	DefaultServerPort       = ":8080"
	DefaultLogLevel         = "info"
	DefaultTotalFlashcards  = 1000
	DefaultLeaderboardLimit = 10
	DefaultFallbackDeckID   = 1
	DefaultJWTCookieName    = "access_token"
	DefaultJWTIssuer        = AppName
	DefaultAccessTokenTTL   = 60 * time.Minute
	DefaultReadTimeout      = 5 * time.Second
	DefaultWriteTimeout     = 10 * time.Second
	DefaultIdleTimeout      = 120 * time.Second
	DefaultRequestTimeout   = 8 * time.Second
	DefaultMaxIdleConns     = 10
	DefaultMaxOpenConns     = 100
	DefaultConnMaxLifetime  = time.Hour
)

// Supported database drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)
