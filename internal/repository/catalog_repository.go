//go:generate mockery --name CatalogRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"flash_learning/internal/middleware"
	"flash_learning/internal/model"

	"gorm.io/gorm"
)

// CatalogRepository reads the Grade -> Subject -> Deck -> Flashcard tree.
// Single-row lookups return model.ErrNotFound when nothing matches; list
// lookups return an empty slice. Lists are in id order.
type CatalogRepository interface {
	FindGradeByCode(ctx context.Context, db *gorm.DB, code string) (*model.Grade, error)
	FindSubjectsByGrade(ctx context.Context, db *gorm.DB, gradeID uint) ([]*model.Subject, error)
	FindSubjectByName(ctx context.Context, db *gorm.DB, gradeID uint, name string) (*model.Subject, error)
	// FindFirstDeckPerSubject returns the lowest-id deck of every subject that has one.
	FindFirstDeckPerSubject(ctx context.Context, db *gorm.DB, subjectIDs []uint) ([]*model.Deck, error)
	FindDecksBySubject(ctx context.Context, db *gorm.DB, subjectID uint) ([]*model.Deck, error)
	FindFirstFlashcardByDeck(ctx context.Context, db *gorm.DB, deckID uint) (*model.Flashcard, error)
	FindFlashcardInDeck(ctx context.Context, db *gorm.DB, deckID, flashcardID uint) (*model.Flashcard, error)
	FindFlashcardIDsByDeck(ctx context.Context, db *gorm.DB, deckID uint) ([]uint, error)
}

type gormCatalogRepository struct{}

func NewGormCatalogRepository() CatalogRepository {
	return &gormCatalogRepository{}
}

func (r *gormCatalogRepository) FindGradeByCode(ctx context.Context, db *gorm.DB, code string) (*model.Grade, error) {
	logger := middleware.GetLogger(ctx)
	var grade model.Grade

	result := db.WithContext(ctx).Where("grade = ?", code).First(&grade)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding grade by code in DB",
			"error", result.Error,
			"grade", code,
		)
		return nil, fmt.Errorf("gormCatalogRepository.FindGradeByCode: %w", result.Error)
	}
	return &grade, nil
}

func (r *gormCatalogRepository) FindSubjectsByGrade(ctx context.Context, db *gorm.DB, gradeID uint) ([]*model.Subject, error) {
	logger := middleware.GetLogger(ctx)
	subjects := []*model.Subject{}

	result := db.WithContext(ctx).Distinct().Where("grade_id = ?", gradeID).Order("id ASC").Find(&subjects)
	if result.Error != nil {
		logger.Error("Error finding subjects by grade in DB",
			"error", result.Error,
			"grade_id", gradeID,
		)
		return nil, fmt.Errorf("gormCatalogRepository.FindSubjectsByGrade: %w", result.Error)
	}
	return subjects, nil
}

func (r *gormCatalogRepository) FindSubjectByName(ctx context.Context, db *gorm.DB, gradeID uint, name string) (*model.Subject, error) {
	logger := middleware.GetLogger(ctx)
	var subject model.Subject

	result := db.WithContext(ctx).Where("grade_id = ? AND name = ?", gradeID, name).First(&subject)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			logger.Debug("Subject not found by name", "grade_id", gradeID, "subject", name)
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding subject by name in DB",
			"error", result.Error,
			"grade_id", gradeID,
			"subject", name,
		)
		return nil, fmt.Errorf("gormCatalogRepository.FindSubjectByName: %w", result.Error)
	}
	return &subject, nil
}

func (r *gormCatalogRepository) FindFirstDeckPerSubject(ctx context.Context, db *gorm.DB, subjectIDs []uint) ([]*model.Deck, error) {
	logger := middleware.GetLogger(ctx)
	decks := []*model.Deck{}
	if len(subjectIDs) == 0 {
		return decks, nil
	}

	firstIDs := db.WithContext(ctx).Model(&model.Deck{}).
		Select("MIN(id)").
		Where("subject_id IN ?", subjectIDs).
		Group("subject_id")

	result := db.WithContext(ctx).Where("id IN (?)", firstIDs).Order("id ASC").Find(&decks)
	if result.Error != nil {
		logger.Error("Error finding first deck per subject in DB",
			"error", result.Error,
			"subject_count", len(subjectIDs),
		)
		return nil, fmt.Errorf("gormCatalogRepository.FindFirstDeckPerSubject: %w", result.Error)
	}
	return decks, nil
}

func (r *gormCatalogRepository) FindDecksBySubject(ctx context.Context, db *gorm.DB, subjectID uint) ([]*model.Deck, error) {
	logger := middleware.GetLogger(ctx)
	decks := []*model.Deck{}

	result := db.WithContext(ctx).Where("subject_id = ?", subjectID).Order("id ASC").Find(&decks)
	if result.Error != nil {
		logger.Error("Error finding decks by subject in DB",
			"error", result.Error,
			"subject_id", subjectID,
		)
		return nil, fmt.Errorf("gormCatalogRepository.FindDecksBySubject: %w", result.Error)
	}
	return decks, nil
}

func (r *gormCatalogRepository) FindFirstFlashcardByDeck(ctx context.Context, db *gorm.DB, deckID uint) (*model.Flashcard, error) {
	logger := middleware.GetLogger(ctx)
	var flashcard model.Flashcard

	// First orders by primary key.
	result := db.WithContext(ctx).Where("deck_id = ?", deckID).First(&flashcard)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding first flashcard of deck in DB",
			"error", result.Error,
			"deck_id", deckID,
		)
		return nil, fmt.Errorf("gormCatalogRepository.FindFirstFlashcardByDeck: %w", result.Error)
	}
	return &flashcard, nil
}

func (r *gormCatalogRepository) FindFlashcardInDeck(ctx context.Context, db *gorm.DB, deckID, flashcardID uint) (*model.Flashcard, error) {
	logger := middleware.GetLogger(ctx)
	var flashcard model.Flashcard

	result := db.WithContext(ctx).Where("deck_id = ? AND id = ?", deckID, flashcardID).First(&flashcard)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding flashcard in deck in DB",
			"error", result.Error,
			"deck_id", deckID,
			"flashcard_id", flashcardID,
		)
		return nil, fmt.Errorf("gormCatalogRepository.FindFlashcardInDeck: %w", result.Error)
	}
	return &flashcard, nil
}

func (r *gormCatalogRepository) FindFlashcardIDsByDeck(ctx context.Context, db *gorm.DB, deckID uint) ([]uint, error) {
	logger := middleware.GetLogger(ctx)
	ids := []uint{}

	result := db.WithContext(ctx).Model(&model.Flashcard{}).Where("deck_id = ?", deckID).Order("id ASC").Pluck("id", &ids)
	if result.Error != nil {
		logger.Error("Error listing flashcard ids of deck in DB",
			"error", result.Error,
			"deck_id", deckID,
		)
		return nil, fmt.Errorf("gormCatalogRepository.FindFlashcardIDsByDeck: %w", result.Error)
	}
	return ids, nil
}
