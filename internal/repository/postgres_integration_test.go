//go:build integration

// Run with: go test -tags integration ./internal/repository/...
// Needs a reachable Docker daemon.
package repository_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"flash_learning/internal/config"
	"flash_learning/internal/model"
	"flash_learning/internal/repository"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type PostgresTestSuite struct {
	suite.Suite

	pool     *dockertest.Pool
	resource *dockertest.Resource
	db       *gorm.DB
}

func TestPostgres(t *testing.T) {
	suite.Run(t, new(PostgresTestSuite))
}

func (s *PostgresTestSuite) SetupSuite() {
	pool, err := dockertest.NewPool("")
	if err != nil {
		s.T().Skipf("Could not construct docker pool: %s", err)
	}
	if err := pool.Client.Ping(); err != nil {
		s.T().Skipf("Docker is not reachable: %s", err)
	}
	pool.MaxWait = 120 * time.Second
	s.pool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=flash",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=flash_learning",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	s.Require().NoError(err, "could not start postgres")
	s.resource = resource
	_ = resource.Expire(300)

	dbURL := fmt.Sprintf("postgres://flash:secret@%s/flash_learning?sslmode=disable", resource.GetHostPort("5432/tcp"))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	err = pool.Retry(func() error {
		db, err := repository.NewDB(config.DatabaseConfig{
			Driver:          config.DriverPostgres,
			URL:             dbURL,
			MaxIdleConns:    2,
			MaxOpenConns:    5,
			ConnMaxLifetime: time.Minute,
		}, logger)
		if err != nil {
			return err
		}
		s.db = db
		return nil
	})
	s.Require().NoError(err, "postgres did not become ready")
	s.Require().NoError(repository.Migrate(context.Background(), s.db))
}

func (s *PostgresTestSuite) TearDownSuite() {
	if s.db != nil {
		if sqlDB, err := s.db.DB(); err == nil {
			sqlDB.Close()
		}
	}
	if s.pool != nil && s.resource != nil {
		if err := s.pool.Purge(s.resource); err != nil {
			s.T().Logf("Could not purge postgres container: %s", err)
		}
	}
}

func (s *PostgresTestSuite) TestSeedAndRead() {
	ctx := context.Background()
	catalog := repository.SeedCatalog{
		Grades: []repository.SeedGrade{{
			Code: "4",
			Subjects: []repository.SeedSubject{
				{Name: "Math", Decks: []repository.SeedDeck{
					{Name: "Long Division", Cards: []repository.SeedCard{
						{Question: "84 / 4", Answer: "21"},
						{Question: "96 / 8", Answer: "12"},
					}},
				}},
				{Name: "Art"},
			},
		}},
		Students: []model.Student{
			{Username: "pia", Grade: "4", Points: 30},
			{Username: "raj", Grade: "4", Points: 55},
		},
	}

	report, err := repository.Seed(ctx, s.db, catalog)
	s.Require().NoError(err)
	s.Equal(repository.SeedReport{Flashcards: 2, Students: 2}, report)

	// Duplicates are detected through the postgres error code and skipped
	// without aborting the surrounding transaction.
	report, err = repository.Seed(ctx, s.db, catalog)
	s.Require().NoError(err)
	s.Equal(repository.SeedReport{SkippedStudents: 2}, report)

	catalogRepo := repository.NewGormCatalogRepository()
	grade, err := catalogRepo.FindGradeByCode(ctx, s.db, "4")
	s.Require().NoError(err)

	subjects, err := catalogRepo.FindSubjectsByGrade(ctx, s.db, grade.ID)
	s.Require().NoError(err)
	s.Require().Len(subjects, 2)
	s.Equal("Math", subjects[0].Name)

	decks, err := catalogRepo.FindFirstDeckPerSubject(ctx, s.db, []uint{subjects[0].ID, subjects[1].ID})
	s.Require().NoError(err)
	s.Require().Len(decks, 1)

	ids, err := catalogRepo.FindFlashcardIDsByDeck(ctx, s.db, decks[0].ID)
	s.Require().NoError(err)
	s.Len(ids, 2)
	s.Less(ids[0], ids[1])

	top, err := repository.NewGormStudentRepository().FindTopByPoints(ctx, s.db, 10)
	s.Require().NoError(err)
	s.Require().Len(top, 2)
	s.Equal("raj", top[0].Username)
}
