//go:generate mockery --name StudentRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"flash_learning/internal/middleware"
	"flash_learning/internal/model"

	"gorm.io/gorm"
)

type StudentRepository interface {
	FindByUsername(ctx context.Context, db *gorm.DB, username string) (*model.Student, error)
	// FindTopByPoints orders by points descending, then id.
	FindTopByPoints(ctx context.Context, db *gorm.DB, limit int) ([]*model.Student, error)
}

type gormStudentRepository struct{}

func NewGormStudentRepository() StudentRepository {
	return &gormStudentRepository{}
}

func (r *gormStudentRepository) FindByUsername(ctx context.Context, db *gorm.DB, username string) (*model.Student, error) {
	logger := middleware.GetLogger(ctx)
	var student model.Student

	result := db.WithContext(ctx).Where("username = ?", username).First(&student)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			logger.Debug("Student not found by username", "username", username)
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding student by username in DB",
			"error", result.Error,
			"username", username,
		)
		return nil, fmt.Errorf("gormStudentRepository.FindByUsername: %w", result.Error)
	}
	return &student, nil
}

func (r *gormStudentRepository) FindTopByPoints(ctx context.Context, db *gorm.DB, limit int) ([]*model.Student, error) {
	logger := middleware.GetLogger(ctx)
	var students []*model.Student

	result := db.WithContext(ctx).Order("points DESC").Order("id ASC").Limit(limit).Find(&students)
	if result.Error != nil {
		logger.Error("Error finding top students in DB",
			"error", result.Error,
			"limit", limit,
		)
		return nil, fmt.Errorf("gormStudentRepository.FindTopByPoints: %w", result.Error)
	}
	return students, nil
}
