package repository

import (
	"context"
	"errors"
	"fmt"

	"flash_learning/internal/middleware"
	"flash_learning/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SeedCatalog is the content loaded by Seed.
type SeedCatalog struct {
	Grades   []SeedGrade
	Students []model.Student
}

type SeedGrade struct {
	Code     string
	Subjects []SeedSubject
}

type SeedSubject struct {
	Name  string
	Decks []SeedDeck
}

type SeedDeck struct {
	Name  string
	Cards []SeedCard
}

type SeedCard struct {
	Question string
	Answer   string
}

// SeedReport counts what Seed wrote.
type SeedReport struct {
	Flashcards      int
	Students        int
	SkippedStudents int
}

// Seed loads catalog in one transaction. Grades, subjects and decks are
// matched by name so Seed can run repeatedly; cards are only added to empty
// decks and existing usernames are skipped.
func Seed(ctx context.Context, db *gorm.DB, catalog SeedCatalog) (SeedReport, error) {
	logger := middleware.GetLogger(ctx)
	var report SeedReport

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, g := range catalog.Grades {
			grade := model.Grade{}
			if err := tx.Where(model.Grade{Grade: g.Code}).FirstOrCreate(&grade).Error; err != nil {
				return fmt.Errorf("grade %s: %w", g.Code, err)
			}

			for _, s := range g.Subjects {
				subject := model.Subject{}
				if err := tx.Where(model.Subject{GradeID: grade.ID, Name: s.Name}).FirstOrCreate(&subject).Error; err != nil {
					return fmt.Errorf("subject %s/%s: %w", g.Code, s.Name, err)
				}

				for _, d := range s.Decks {
					deck := model.Deck{}
					if err := tx.Where(model.Deck{SubjectID: subject.ID, Name: d.Name}).FirstOrCreate(&deck).Error; err != nil {
						return fmt.Errorf("deck %s/%s/%s: %w", g.Code, s.Name, d.Name, err)
					}

					n, err := seedCards(tx, deck.ID, d.Cards)
					if err != nil {
						return fmt.Errorf("cards of deck %s/%s/%s: %w", g.Code, s.Name, d.Name, err)
					}
					report.Flashcards += n
				}
			}
		}

		for i := range catalog.Students {
			student := catalog.Students[i]
			// SAVEPOINT so a duplicate does not abort the postgres transaction.
			err := tx.Transaction(func(stx *gorm.DB) error {
				return stx.Create(&student).Error
			})
			if err != nil {
				if isDuplicateKey(err) {
					logger.Info("Student already exists, skipping", "username", student.Username)
					report.SkippedStudents++
					continue
				}
				return fmt.Errorf("student %s: %w", student.Username, err)
			}
			report.Students++
		}
		return nil
	})
	if err != nil {
		logger.Error("Seeding failed", "error", err)
		return SeedReport{}, fmt.Errorf("repository.Seed: %w", err)
	}

	logger.Info("Seeding finished",
		"flashcards", report.Flashcards,
		"students", report.Students,
		"skipped_students", report.SkippedStudents,
	)
	return report, nil
}

func seedCards(tx *gorm.DB, deckID uint, cards []SeedCard) (int, error) {
	if len(cards) == 0 {
		return 0, nil
	}
	var existing int64
	if err := tx.Model(&model.Flashcard{}).Where("deck_id = ?", deckID).Count(&existing).Error; err != nil {
		return 0, err
	}
	if existing > 0 {
		return 0, nil
	}

	rows := make([]model.Flashcard, 0, len(cards))
	for _, c := range cards {
		rows = append(rows, model.Flashcard{DeckID: deckID, Question: c.Question, Answer: c.Answer})
	}
	if err := tx.Create(&rows).Error; err != nil {
		return 0, err
	}
	return len(rows), nil
}

// isDuplicateKey reports a unique constraint violation from either driver.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
