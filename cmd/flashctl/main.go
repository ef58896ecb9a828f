// Command flashctl prepares a flash_learning database: it migrates the
// schema, loads sample content and issues access tokens for students.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"flash_learning/internal/config"
	"flash_learning/internal/logging"
	"flash_learning/internal/repository"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	configDir string
	logLevel  string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "flashctl",
	Short: "Operate a flash_learning database",
	Long: `flashctl reads the same configuration as the web server
(configs/config.yaml plus APP_* environment variables).

Available subcommands:
  migrate - Create or update the tables
  seed    - Load the sample K-8 catalog and students
  token   - Print an access token for a student`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configDir, "config", "c", "configs", "Directory containing config.yaml")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override log.level from the config")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(tokenCmd)
}

// loadConfig reads the configuration and installs the default logger.
func loadConfig(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(configDir)
	if err != nil {
		return nil, nil, err
	}
	level := cfg.Log.Level
	if logLevel != "" {
		level = logLevel
	}
	logger := logging.New(cmd.ErrOrStderr(), level, os.Getenv("APP_ENV"))
	slog.SetDefault(logger)
	return cfg, logger, nil
}

// openDB connects with cfg and returns a func that closes the pool.
func openDB(cfg *config.Config, logger *slog.Logger) (*gorm.DB, func(), error) {
	db, err := repository.NewDB(cfg.Database, logger)
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("getting sql.DB: %w", err)
	}
	return db, func() {
		if err := sqlDB.Close(); err != nil {
			logger.Error("Error closing database connection", slog.Any("error", err))
		}
	}, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
