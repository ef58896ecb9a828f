package service

import (
	"context"
	"errors"
	"testing"

	"flash_learning/internal/config"
	"flash_learning/internal/model"
	"flash_learning/internal/repository/mocks"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB returns a handle for services whose repositories are mocked.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			TotalFlashcards:  1000,
			LeaderboardLimit: 10,
		},
		Legacy: config.LegacyConfig{
			DeckFallback:   true,
			FallbackDeckID: 1,
		},
	}
}

var (
	grade3   = &model.Grade{ID: 3, Grade: "3"}
	math     = &model.Subject{ID: 10, GradeID: 3, Name: "Math"}
	science  = &model.Subject{ID: 11, GradeID: 3, Name: "Science"}
	fraction = &model.Deck{ID: 20, SubjectID: 10, Name: "Fractions"}
	geometry = &model.Deck{ID: 21, SubjectID: 10, Name: "Geometry"}
	planets  = &model.Deck{ID: 22, SubjectID: 11, Name: "Planets"}
	card1    = &model.Flashcard{ID: 1, DeckID: 20, Question: "1/2 + 1/4", Answer: "3/4"}
	card5    = &model.Flashcard{ID: 5, DeckID: 20, Question: "1/3 of 9", Answer: "3"}
	student  = &model.Student{ID: 1, Username: "ana", Grade: "3"}
)

func Test_navigationService_Home(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	tests := []struct {
		name      string
		setupMock func(m *mocks.CatalogRepository)
		want      *model.NavigationView
		wantErr   bool
	}{
		{
			name: "first deck of each subject in subject order",
			setupMock: func(m *mocks.CatalogRepository) {
				m.On("FindGradeByCode", ctx, db, "3").Return(grade3, nil).Once()
				m.On("FindSubjectsByGrade", ctx, db, grade3.ID).Return([]*model.Subject{science, math}, nil).Once()
				m.On("FindFirstDeckPerSubject", ctx, db, []uint{science.ID, math.ID}).
					Return([]*model.Deck{fraction, planets}, nil).Once()
			},
			want: &model.NavigationView{
				Subjects: []*model.Subject{science, math},
				Decks:    []*model.Deck{planets, fraction},
			},
		},
		{
			name: "grade without a row renders empty",
			setupMock: func(m *mocks.CatalogRepository) {
				m.On("FindGradeByCode", ctx, db, "3").Return(nil, model.ErrNotFound).Once()
				m.On("FindFirstDeckPerSubject", ctx, db, []uint{}).Return([]*model.Deck{}, nil).Once()
			},
			want: &model.NavigationView{Subjects: []*model.Subject{}, Decks: []*model.Deck{}},
		},
		{
			name: "repository failure",
			setupMock: func(m *mocks.CatalogRepository) {
				m.On("FindGradeByCode", ctx, db, "3").Return(nil, errors.New("connection reset")).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewCatalogRepository(t)
			tt.setupMock(repo)
			svc := NewNavigationService(db, repo, testConfig())

			got, err := svc.Home(ctx, student)
			if tt.wantErr {
				require.Error(t, err)
				var appErr *model.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, "INTERNAL_SERVER_ERROR", appErr.Detail.Code)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Home() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func Test_navigationService_Subject(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	t.Run("lists every deck of the subject", func(t *testing.T) {
		repo := mocks.NewCatalogRepository(t)
		repo.On("FindGradeByCode", ctx, db, "3").Return(grade3, nil).Once()
		repo.On("FindSubjectsByGrade", ctx, db, grade3.ID).Return([]*model.Subject{math, science}, nil).Once()
		repo.On("FindSubjectByName", ctx, db, grade3.ID, "Math").Return(math, nil).Once()
		repo.On("FindDecksBySubject", ctx, db, math.ID).Return([]*model.Deck{fraction, geometry}, nil).Once()

		got, err := NewNavigationService(db, repo, testConfig()).Subject(ctx, student, "Math")
		require.NoError(t, err)
		want := &model.NavigationView{
			Subjects:    []*model.Subject{math, science},
			Decks:       []*model.Deck{fraction, geometry},
			CurrSubject: "Math",
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Subject() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unknown subject gives no decks", func(t *testing.T) {
		repo := mocks.NewCatalogRepository(t)
		repo.On("FindGradeByCode", ctx, db, "3").Return(grade3, nil).Once()
		repo.On("FindSubjectsByGrade", ctx, db, grade3.ID).Return([]*model.Subject{math}, nil).Once()
		repo.On("FindSubjectByName", ctx, db, grade3.ID, "History").Return(nil, model.ErrNotFound).Once()

		got, err := NewNavigationService(db, repo, testConfig()).Subject(ctx, student, "History")
		require.NoError(t, err)
		assert.NotNil(t, got.Decks)
		assert.Empty(t, got.Decks)
		assert.Equal(t, "History", got.CurrSubject)
		repo.AssertNotCalled(t, "FindDecksBySubject", mock.Anything, mock.Anything, mock.Anything)
	})
}

func Test_navigationService_Deck(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	subjectMocks := func(m *mocks.CatalogRepository) {
		m.On("FindGradeByCode", ctx, db, "3").Return(grade3, nil).Once()
		m.On("FindSubjectsByGrade", ctx, db, grade3.ID).Return([]*model.Subject{math, science}, nil).Once()
		m.On("FindSubjectByName", ctx, db, grade3.ID, "Math").Return(math, nil).Once()
		m.On("FindDecksBySubject", ctx, db, math.ID).Return([]*model.Deck{fraction, geometry}, nil).Once()
	}

	tests := []struct {
		name          string
		deck          string
		deckFallback  bool
		setupMock     func(m *mocks.CatalogRepository)
		wantFlashcard *model.Flashcard
		wantFallback  bool
	}{
		{
			name:         "selects the first card of the deck",
			deck:         "Fractions",
			deckFallback: true,
			setupMock: func(m *mocks.CatalogRepository) {
				subjectMocks(m)
				m.On("FindFirstFlashcardByDeck", ctx, db, fraction.ID).Return(card1, nil).Once()
			},
			wantFlashcard: card1,
		},
		{
			name:         "empty deck has no card",
			deck:         "Geometry",
			deckFallback: true,
			setupMock: func(m *mocks.CatalogRepository) {
				subjectMocks(m)
				m.On("FindFirstFlashcardByDeck", ctx, db, geometry.ID).Return(nil, model.ErrNotFound).Once()
			},
		},
		{
			name:         "unknown deck falls back to deck 1",
			deck:         "Decimals",
			deckFallback: true,
			setupMock: func(m *mocks.CatalogRepository) {
				subjectMocks(m)
				m.On("FindFirstFlashcardByDeck", ctx, db, uint(1)).Return(card5, nil).Once()
			},
			wantFlashcard: card5,
			wantFallback:  true,
		},
		{
			name:         "unknown deck without fallback",
			deck:         "Decimals",
			deckFallback: false,
			setupMock:    subjectMocks,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewCatalogRepository(t)
			tt.setupMock(repo)
			cfg := testConfig()
			cfg.Legacy.DeckFallback = tt.deckFallback

			got, err := NewNavigationService(db, repo, cfg).Deck(ctx, student, "Math", tt.deck)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFlashcard, got.Flashcard)
			assert.Equal(t, tt.wantFallback, got.FromFallback)
			assert.Equal(t, "Math", got.CurrSubject)
			assert.Equal(t, tt.deck, got.CurrDeck)
			assert.Len(t, got.Decks, 2)
		})
	}
}

func Test_navigationService_Flashcard(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	subjectMocks := func(m *mocks.CatalogRepository) {
		m.On("FindGradeByCode", ctx, db, "3").Return(grade3, nil).Once()
		m.On("FindSubjectsByGrade", ctx, db, grade3.ID).Return([]*model.Subject{math, science}, nil).Once()
		m.On("FindSubjectByName", ctx, db, grade3.ID, "Math").Return(math, nil).Once()
		m.On("FindDecksBySubject", ctx, db, math.ID).Return([]*model.Deck{fraction, geometry}, nil).Once()
	}

	t.Run("position and neighbours", func(t *testing.T) {
		repo := mocks.NewCatalogRepository(t)
		subjectMocks(repo)
		repo.On("FindFlashcardInDeck", ctx, db, fraction.ID, card5.ID).Return(card5, nil).Once()
		repo.On("FindFlashcardIDsByDeck", ctx, db, fraction.ID).Return([]uint{1, 5, 9}, nil).Once()

		got, err := NewNavigationService(db, repo, testConfig()).Flashcard(ctx, student, "Math", "Fractions", card5.ID)
		require.NoError(t, err)
		want := &model.FlashcardView{
			Subjects:    []*model.Subject{math, science},
			Decks:       []*model.Deck{fraction, geometry},
			Deck:        fraction,
			Flashcard:   card5,
			CurrSubject: "Math",
			Position:    2,
			Total:       3,
			PreviousID:  1,
			NextID:      9,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Flashcard() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("first card has no previous", func(t *testing.T) {
		repo := mocks.NewCatalogRepository(t)
		subjectMocks(repo)
		repo.On("FindFlashcardInDeck", ctx, db, fraction.ID, card1.ID).Return(card1, nil).Once()
		repo.On("FindFlashcardIDsByDeck", ctx, db, fraction.ID).Return([]uint{1}, nil).Once()

		got, err := NewNavigationService(db, repo, testConfig()).Flashcard(ctx, student, "Math", "Fractions", card1.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, got.Position)
		assert.Zero(t, got.PreviousID)
		assert.Zero(t, got.NextID)
	})

	t.Run("unknown deck is not found even with fallback on", func(t *testing.T) {
		repo := mocks.NewCatalogRepository(t)
		subjectMocks(repo)

		_, err := NewNavigationService(db, repo, testConfig()).Flashcard(ctx, student, "Math", "Decimals", 1)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("card of another deck is not found", func(t *testing.T) {
		repo := mocks.NewCatalogRepository(t)
		subjectMocks(repo)
		repo.On("FindFlashcardInDeck", ctx, db, geometry.ID, card1.ID).Return(nil, model.ErrNotFound).Once()

		_, err := NewNavigationService(db, repo, testConfig()).Flashcard(ctx, student, "Math", "Geometry", card1.ID)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("unknown subject is not found", func(t *testing.T) {
		repo := mocks.NewCatalogRepository(t)
		repo.On("FindGradeByCode", ctx, db, "3").Return(grade3, nil).Once()
		repo.On("FindSubjectsByGrade", ctx, db, grade3.ID).Return([]*model.Subject{math}, nil).Once()
		repo.On("FindSubjectByName", ctx, db, grade3.ID, "History").Return(nil, model.ErrNotFound).Once()

		_, err := NewNavigationService(db, repo, testConfig()).Flashcard(ctx, student, "History", "Dates", 1)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
