//go:generate mockery --name NavigationService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"log/slog"

	"flash_learning/internal/config"
	"flash_learning/internal/middleware"
	"flash_learning/internal/model"
	"flash_learning/internal/repository"

	"gorm.io/gorm"
)

// NavigationService resolves the Grade -> Subject -> Deck -> Flashcard
// path of the student pages. Everything is scoped to the student's grade.
type NavigationService interface {
	// Home lists the grade's subjects and the first deck of each subject.
	Home(ctx context.Context, student *model.Student) (*model.NavigationView, error)
	// Subject lists the grade's subjects and every deck of subjectName.
	// An unknown subject yields no decks.
	Subject(ctx context.Context, student *model.Student, subjectName string) (*model.NavigationView, error)
	// Deck additionally selects the first card of deckName.
	Deck(ctx context.Context, student *model.Student, subjectName, deckName string) (*model.NavigationView, error)
	// Flashcard returns one card of deckName. Any missing link is model.ErrNotFound.
	Flashcard(ctx context.Context, student *model.Student, subjectName, deckName string, flashcardID uint) (*model.FlashcardView, error)
}

type navigationService struct {
	db          *gorm.DB
	catalogRepo repository.CatalogRepository
	cfg         *config.Config
}

func NewNavigationService(db *gorm.DB, catalogRepo repository.CatalogRepository, cfg *config.Config) NavigationService {
	return &navigationService{
		db:          db,
		catalogRepo: catalogRepo,
		cfg:         cfg,
	}
}

func (s *navigationService) Home(ctx context.Context, student *model.Student) (*model.NavigationView, error) {
	logger := middleware.GetLogger(ctx).With("username", student.Username, "grade", student.Grade)

	_, subjects, err := s.gradeSubjects(ctx, logger, student)
	if err != nil {
		return nil, err
	}

	subjectIDs := make([]uint, 0, len(subjects))
	for _, subj := range subjects {
		subjectIDs = append(subjectIDs, subj.ID)
	}
	firstDecks, err := s.catalogRepo.FindFirstDeckPerSubject(ctx, s.db, subjectIDs)
	if err != nil {
		logger.Error("Failed to find first deck per subject", "error", err)
		return nil, internalError("Could not load your decks.", err)
	}

	// One deck per subject, in subject order.
	bySubject := make(map[uint]*model.Deck, len(firstDecks))
	for _, d := range firstDecks {
		bySubject[d.SubjectID] = d
	}
	decks := make([]*model.Deck, 0, len(firstDecks))
	for _, subj := range subjects {
		if d, ok := bySubject[subj.ID]; ok {
			decks = append(decks, d)
		}
	}

	logger.Debug("Resolved home", "subjects", len(subjects), "decks", len(decks))
	return &model.NavigationView{Subjects: subjects, Decks: decks}, nil
}

func (s *navigationService) Subject(ctx context.Context, student *model.Student, subjectName string) (*model.NavigationView, error) {
	logger := middleware.GetLogger(ctx).With("username", student.Username, "grade", student.Grade, "subject", subjectName)

	grade, subjects, err := s.gradeSubjects(ctx, logger, student)
	if err != nil {
		return nil, err
	}
	view := &model.NavigationView{Subjects: subjects, Decks: []*model.Deck{}, CurrSubject: subjectName}

	subject, err := s.findSubject(ctx, logger, grade, subjectName)
	if err != nil || subject == nil {
		return view, err
	}

	decks, err := s.catalogRepo.FindDecksBySubject(ctx, s.db, subject.ID)
	if err != nil {
		logger.Error("Failed to find decks of subject", "error", err)
		return nil, internalError("Could not load the decks of this subject.", err)
	}
	view.Decks = decks
	return view, nil
}

func (s *navigationService) Deck(ctx context.Context, student *model.Student, subjectName, deckName string) (*model.NavigationView, error) {
	logger := middleware.GetLogger(ctx).With("username", student.Username, "grade", student.Grade, "subject", subjectName, "deck", deckName)

	view, err := s.Subject(ctx, student, subjectName)
	if err != nil {
		return nil, err
	}
	view.CurrDeck = deckName

	var deck *model.Deck
	for _, d := range view.Decks {
		if d.Name == deckName {
			deck = d
			break
		}
	}

	deckID := uint(0)
	switch {
	case deck != nil:
		deckID = deck.ID
	case s.cfg.Legacy.DeckFallback:
		logger.Warn("Deck not found, showing the legacy fallback deck", "fallback_deck_id", s.cfg.Legacy.FallbackDeckID)
		deckID = s.cfg.Legacy.FallbackDeckID
	default:
		return view, nil
	}

	flashcard, err := s.catalogRepo.FindFirstFlashcardByDeck(ctx, s.db, deckID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return view, nil
		}
		logger.Error("Failed to find first flashcard of deck", "error", err, "deck_id", deckID)
		return nil, internalError("Could not load the flashcard.", err)
	}
	view.Flashcard = flashcard
	view.FromFallback = deck == nil
	return view, nil
}

func (s *navigationService) Flashcard(ctx context.Context, student *model.Student, subjectName, deckName string, flashcardID uint) (*model.FlashcardView, error) {
	logger := middleware.GetLogger(ctx).With("username", student.Username, "grade", student.Grade, "subject", subjectName, "deck", deckName, "flashcard_id", flashcardID)

	nav, err := s.Subject(ctx, student, subjectName)
	if err != nil {
		return nil, err
	}

	var deck *model.Deck
	for _, d := range nav.Decks {
		if d.Name == deckName {
			deck = d
			break
		}
	}
	if deck == nil {
		logger.Info("Flashcard requested for unknown subject or deck")
		return nil, notFoundError("That deck does not exist.")
	}

	flashcard, err := s.catalogRepo.FindFlashcardInDeck(ctx, s.db, deck.ID, flashcardID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Flashcard not found in deck", "deck_id", deck.ID)
			return nil, notFoundError("That flashcard does not exist in this deck.")
		}
		logger.Error("Failed to find flashcard", "error", err)
		return nil, internalError("Could not load the flashcard.", err)
	}

	ids, err := s.catalogRepo.FindFlashcardIDsByDeck(ctx, s.db, deck.ID)
	if err != nil {
		logger.Error("Failed to list flashcards of deck", "error", err)
		return nil, internalError("Could not load the flashcard.", err)
	}

	view := &model.FlashcardView{
		Subjects:    nav.Subjects,
		Decks:       nav.Decks,
		Deck:        deck,
		Flashcard:   flashcard,
		CurrSubject: subjectName,
		Total:       len(ids),
	}
	for i, id := range ids {
		if id != flashcard.ID {
			continue
		}
		view.Position = i + 1
		if i > 0 {
			view.PreviousID = ids[i-1]
		}
		if i+1 < len(ids) {
			view.NextID = ids[i+1]
		}
		break
	}
	return view, nil
}

// gradeSubjects returns the student's grade row and its subjects. A grade
// code without a row gives a nil grade and no subjects.
func (s *navigationService) gradeSubjects(ctx context.Context, logger *slog.Logger, student *model.Student) (*model.Grade, []*model.Subject, error) {
	grade, err := s.catalogRepo.FindGradeByCode(ctx, s.db, student.Grade)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("No grade row for student's grade")
			return nil, []*model.Subject{}, nil
		}
		logger.Error("Failed to find grade", "error", err)
		return nil, nil, internalError("Could not load your grade.", err)
	}

	subjects, err := s.catalogRepo.FindSubjectsByGrade(ctx, s.db, grade.ID)
	if err != nil {
		logger.Error("Failed to find subjects of grade", "error", err, "grade_id", grade.ID)
		return nil, nil, internalError("Could not load your subjects.", err)
	}
	return grade, subjects, nil
}

// findSubject returns nil without error when the subject does not exist.
func (s *navigationService) findSubject(ctx context.Context, logger *slog.Logger, grade *model.Grade, name string) (*model.Subject, error) {
	if grade == nil {
		return nil, nil
	}
	subject, err := s.catalogRepo.FindSubjectByName(ctx, s.db, grade.ID, name)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Subject not found in grade")
			return nil, nil
		}
		logger.Error("Failed to find subject", "error", err)
		return nil, internalError("Could not load this subject.", err)
	}
	return subject, nil
}

func internalError(message string, err error) error {
	return model.NewAppError("INTERNAL_SERVER_ERROR", message, "", err)
}

func notFoundError(message string) error {
	return model.NewAppError("NOT_FOUND", message, "", model.ErrNotFound)
}
