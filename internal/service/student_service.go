//go:generate mockery --name StudentService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"strconv"

	"flash_learning/internal/config"
	"flash_learning/internal/middleware"
	"flash_learning/internal/model"
	"flash_learning/internal/repository"

	"gorm.io/gorm"
)

// NoSchool is displayed when a student's school is unknown.
const NoSchool = "None"

var gradeLabels = map[string]string{
	"K": "Kindergarten",
	"1": "1st",
	"2": "2nd",
	"3": "3rd",
	"4": "4th",
	"5": "5th",
	"6": "6th",
	"7": "7th",
	"8": "8th",
}

// GradeLabel returns the display label of a grade code. Unknown codes are
// returned unchanged.
func GradeLabel(code string) string {
	if label, ok := gradeLabels[code]; ok {
		return label
	}
	return code
}

// Percent formats part/whole as a whole-number percentage the way Python's
// "{:.0%}" does: the float64 ratio times 100, correctly rounded with ties to
// even. A non-positive whole gives "0%".
func Percent(part, whole int) string {
	if whole <= 0 {
		return "0%"
	}
	ratio := float64(part) / float64(whole)
	return strconv.FormatFloat(ratio*100, 'f', 0, 64) + "%"
}

type StudentService interface {
	// GetStudent loads a student by username. Unknown usernames are model.ErrNotFound.
	GetStudent(ctx context.Context, username string) (*model.Student, error)
	Profile(ctx context.Context, student *model.Student) (*model.ProfileView, error)
	Stats(ctx context.Context, student *model.Student) *model.StatsView
	// Leaderboard returns the top students by points, ties broken by id.
	Leaderboard(ctx context.Context) ([]*model.Student, error)
}

type studentService struct {
	db          *gorm.DB
	studentRepo repository.StudentRepository
	cfg         *config.Config
}

func NewStudentService(db *gorm.DB, studentRepo repository.StudentRepository, cfg *config.Config) StudentService {
	return &studentService{
		db:          db,
		studentRepo: studentRepo,
		cfg:         cfg,
	}
}

func (s *studentService) GetStudent(ctx context.Context, username string) (*model.Student, error) {
	logger := middleware.GetLogger(ctx).With("username", username)

	student, err := s.studentRepo.FindByUsername(ctx, s.db, username)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "Student not found.", "username", model.ErrNotFound)
		}
		logger.Error("Failed to find student", "error", err)
		return nil, internalError("Could not load the student.", err)
	}
	return student, nil
}

func (s *studentService) Profile(ctx context.Context, student *model.Student) (*model.ProfileView, error) {
	logger := middleware.GetLogger(ctx).With("username", student.Username)

	view := &model.ProfileView{
		SchoolName: NoSchool,
		Grade:      GradeLabel(student.Grade),
	}

	if !s.cfg.Legacy.SchoolLookupByUsername {
		if student.School != "" {
			view.SchoolName = student.School
		}
		return view, nil
	}

	logger.Warn("Resolving school through the legacy username lookup", "school", student.School)
	if student.School == "" {
		return view, nil
	}
	school, err := s.studentRepo.FindByUsername(ctx, s.db, student.School)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return view, nil
		}
		logger.Error("Failed legacy school lookup", "error", err)
		return nil, internalError("Could not load your profile.", err)
	}
	view.SchoolName = school.Username
	return view, nil
}

func (s *studentService) Stats(ctx context.Context, student *model.Student) *model.StatsView {
	view := &model.StatsView{
		Score:    student.Points,
		Accuracy: Percent(student.FlashcardsCorrect, student.FlashcardsAttempted),
		Progress: Percent(student.FlashcardsAttempted, s.cfg.App.TotalFlashcards),
	}
	middleware.GetLogger(ctx).Debug("Computed stats",
		"username", student.Username,
		"accuracy", view.Accuracy,
		"progress", view.Progress,
	)
	return view
}

func (s *studentService) Leaderboard(ctx context.Context) ([]*model.Student, error) {
	logger := middleware.GetLogger(ctx)

	students, err := s.studentRepo.FindTopByPoints(ctx, s.db, s.cfg.App.LeaderboardLimit)
	if err != nil {
		logger.Error("Failed to load leaderboard", "error", err)
		return nil, internalError("Could not load the leaderboard.", err)
	}
	if students == nil {
		students = []*model.Student{}
	}
	return students, nil
}
