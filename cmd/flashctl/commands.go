package main

import (
	"fmt"
	"time"

	"flash_learning/internal/repository"
	"flash_learning/internal/service"

	"github.com/spf13/cobra"
)

var (
	tokenUsername string
	tokenTTL      time.Duration
	seedStudents  bool
)

// migrateCmd creates or updates the schema
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the tables",
	RunE:  runMigrate,
}

// seedCmd loads the sample catalog
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the sample K-8 catalog and students",
	Long: `Load the sample catalog into the database.

Grades, subjects and decks are matched by name, so seed can be run again
after content was added. Cards are only written to empty decks and students
whose username already exists are skipped. The schema is migrated first.`,
	RunE: runSeed,
}

// tokenCmd prints an access token
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Print an access token for a student",
	Long: `Print a signed access token for an existing student.

Send it as "Authorization: Bearer <token>" or store it in the cookie named by
jwt.cookie_name.`,
	RunE: runToken,
}

func init() {
	seedCmd.Flags().BoolVar(&seedStudents, "students", true, "Also create the sample students")

	tokenCmd.Flags().StringVarP(&tokenUsername, "username", "u", "", "Username of the student")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 0, "Override jwt.access_token_ttl")
	_ = tokenCmd.MarkFlagRequired("username")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	db, closeDB, err := openDB(cfg, logger)
	if err != nil {
		return err
	}
	defer closeDB()

	if err := repository.Migrate(cmd.Context(), db); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
	return nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	db, closeDB, err := openDB(cfg, logger)
	if err != nil {
		return err
	}
	defer closeDB()

	if err := repository.Migrate(cmd.Context(), db); err != nil {
		return err
	}

	catalog := sampleCatalog()
	if !seedStudents {
		catalog.Students = nil
	}
	report, err := repository.Seed(cmd.Context(), db, catalog)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "flashcards added: %d\nstudents added:   %d\nstudents skipped: %d\n",
		report.Flashcards, report.Students, report.SkippedStudents)
	return nil
}

func runToken(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if tokenTTL > 0 {
		cfg.JWT.AccessTokenTTL = tokenTTL
	}
	db, closeDB, err := openDB(cfg, logger)
	if err != nil {
		return err
	}
	defer closeDB()

	students := service.NewStudentService(db, repository.NewGormStudentRepository(), cfg)
	student, err := students.GetStudent(cmd.Context(), tokenUsername)
	if err != nil {
		return fmt.Errorf("student %q: %w", tokenUsername, err)
	}

	token, err := service.NewTokenService(cfg).IssueAccessToken(student)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
