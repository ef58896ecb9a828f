package service

import (
	"context"
	"errors"
	"testing"

	"flash_learning/internal/model"
	"flash_learning/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGradeLabel(t *testing.T) {
	tests := map[string]string{
		"K":  "Kindergarten",
		"1":  "1st",
		"2":  "2nd",
		"3":  "3rd",
		"4":  "4th",
		"8":  "8th",
		"9":  "9",
		"12": "12",
	}
	for code, want := range tests {
		assert.Equal(t, want, GradeLabel(code), "grade %q", code)
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		part, whole int
		want        string
	}{
		{7, 10, "70%"},
		{10, 1000, "1%"},
		{0, 10, "0%"},
		{3, 0, "0%"},
		{3, -5, "0%"},
		{10, 10, "100%"},
		{1, 3, "33%"},
		{2, 3, "67%"},
		// ties round to even
		{1, 200, "0%"},
		{3, 200, "2%"},
		{5, 200, "2%"},
		{7, 200, "4%"},
		{1, 8, "12%"},
		{3, 8, "38%"},
		// the float ratio decides, not the exact fraction
		{23, 40, "57%"},
		{545, 1000, "55%"},
		{29, 200, "14%"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Percent(tt.part, tt.whole), "%d/%d", tt.part, tt.whole)
	}
}

func Test_studentService_GetStudent(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	t.Run("found", func(t *testing.T) {
		repo := mocks.NewStudentRepository(t)
		repo.On("FindByUsername", ctx, db, "ana").Return(student, nil).Once()

		got, err := NewStudentService(db, repo, testConfig()).GetStudent(ctx, "ana")
		require.NoError(t, err)
		assert.Equal(t, student, got)
	})

	t.Run("not found", func(t *testing.T) {
		repo := mocks.NewStudentRepository(t)
		repo.On("FindByUsername", ctx, db, "zed").Return(nil, model.ErrNotFound).Once()

		_, err := NewStudentService(db, repo, testConfig()).GetStudent(ctx, "zed")
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("db error", func(t *testing.T) {
		repo := mocks.NewStudentRepository(t)
		repo.On("FindByUsername", ctx, db, "ana").Return(nil, errors.New("timeout")).Once()

		_, err := NewStudentService(db, repo, testConfig()).GetStudent(ctx, "ana")
		require.Error(t, err)
		assert.NotErrorIs(t, err, model.ErrNotFound)
	})
}

func Test_studentService_Profile(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	tests := []struct {
		name       string
		student    *model.Student
		legacy     bool
		setupMock  func(m *mocks.StudentRepository)
		wantSchool string
		wantGrade  string
		wantErr    bool
	}{
		{
			name:       "no school",
			student:    &model.Student{Username: "ana", Grade: "3"},
			wantSchool: "None",
			wantGrade:  "3rd",
		},
		{
			name:       "own school field",
			student:    &model.Student{Username: "kay", Grade: "K", School: "Oak Hill"},
			wantSchool: "Oak Hill",
			wantGrade:  "Kindergarten",
		},
		{
			name:       "unknown grade code passes through",
			student:    &model.Student{Username: "old", Grade: "12"},
			wantSchool: "None",
			wantGrade:  "12",
		},
		{
			name:    "legacy lookup finds a matching username",
			student: &model.Student{Username: "ana", Grade: "3", School: "oakhill"},
			legacy:  true,
			setupMock: func(m *mocks.StudentRepository) {
				m.On("FindByUsername", ctx, db, "oakhill").Return(&model.Student{ID: 7, Username: "oakhill"}, nil).Once()
			},
			wantSchool: "oakhill",
			wantGrade:  "3rd",
		},
		{
			name:    "legacy lookup without a match",
			student: &model.Student{Username: "ana", Grade: "3", School: "Oak Hill"},
			legacy:  true,
			setupMock: func(m *mocks.StudentRepository) {
				m.On("FindByUsername", ctx, db, "Oak Hill").Return(nil, model.ErrNotFound).Once()
			},
			wantSchool: "None",
			wantGrade:  "3rd",
		},
		{
			name:    "legacy lookup db error",
			student: &model.Student{Username: "ana", Grade: "3", School: "Oak Hill"},
			legacy:  true,
			setupMock: func(m *mocks.StudentRepository) {
				m.On("FindByUsername", ctx, db, "Oak Hill").Return(nil, errors.New("boom")).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewStudentRepository(t)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}
			cfg := testConfig()
			cfg.Legacy.SchoolLookupByUsername = tt.legacy

			got, err := NewStudentService(db, repo, cfg).Profile(ctx, tt.student)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSchool, got.SchoolName)
			assert.Equal(t, tt.wantGrade, got.Grade)
			if !tt.legacy {
				repo.AssertNotCalled(t, "FindByUsername", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func Test_studentService_Stats(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := NewStudentService(db, mocks.NewStudentRepository(t), testConfig())

	got := svc.Stats(ctx, &model.Student{Username: "ana", Points: 42, FlashcardsCorrect: 7, FlashcardsAttempted: 10})
	assert.Equal(t, &model.StatsView{Score: 42, Accuracy: "70%", Progress: "1%"}, got)

	got = svc.Stats(ctx, &model.Student{Username: "new"})
	assert.Equal(t, &model.StatsView{Score: 0, Accuracy: "0%", Progress: "0%"}, got)
}

func Test_studentService_Leaderboard(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	t.Run("uses the configured limit", func(t *testing.T) {
		top := []*model.Student{{Username: "ben", Points: 90}, {Username: "ana", Points: 40}}
		repo := mocks.NewStudentRepository(t)
		repo.On("FindTopByPoints", ctx, db, 10).Return(top, nil).Once()

		got, err := NewStudentService(db, repo, testConfig()).Leaderboard(ctx)
		require.NoError(t, err)
		assert.Equal(t, top, got)
	})

	t.Run("no students", func(t *testing.T) {
		repo := mocks.NewStudentRepository(t)
		repo.On("FindTopByPoints", ctx, db, 10).Return(nil, nil).Once()

		got, err := NewStudentService(db, repo, testConfig()).Leaderboard(ctx)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("db error", func(t *testing.T) {
		repo := mocks.NewStudentRepository(t)
		repo.On("FindTopByPoints", ctx, db, 10).Return(nil, errors.New("boom")).Once()

		_, err := NewStudentService(db, repo, testConfig()).Leaderboard(ctx)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "INTERNAL_SERVER_ERROR", appErr.Detail.Code)
	})
}
