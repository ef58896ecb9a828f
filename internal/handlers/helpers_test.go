// helpers_test.go
package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"flash_learning/internal/handlers"
	"flash_learning/internal/middleware"
	"flash_learning/internal/model"
	"flash_learning/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testStudent is signed in for every request sent through newTestRouter.
var testStudent = &model.Student{
	ID:                  1,
	Username:            "ana",
	Grade:               "3",
	Points:              42,
	FlashcardsCorrect:   7,
	FlashcardsAttempted: 10,
}

// newTestRouter mounts the student routes with the given services and a
// fake sign-in that always yields testStudent.
func newTestRouter(nav service.NavigationService, students service.StudentService) *chi.Mux {
	navHandler := handlers.NewNavigationHandler(nav, testViews, nil)
	studentHandler := handlers.NewStudentHandler(students, testViews, nil)

	r := chi.NewRouter()
	r.Route("/student/{username}", func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				next.ServeHTTP(w, req.WithContext(middleware.WithStudent(req.Context(), testStudent)))
			})
		})
		r.Use(middleware.PathIdentityMiddleware(true, testViews))

		r.Get("/home", navHandler.GetHome)
		r.Get("/profile", studentHandler.GetProfile)
		r.Get("/stats", studentHandler.GetStats)
		r.Get("/leaderboard", studentHandler.GetLeaderboard)
		r.Get("/{subject}", navHandler.GetSubject)
		r.Get("/{subject}/{deck}", navHandler.GetDeck)
		r.Get("/{subject}/{deck}/{flashcard}", navHandler.GetFlashcard)
	})
	return r
}

// executeRequest sends a GET for path through router.
func executeRequest(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// assertPage checks the status, content type and that every fragment appears
// in the body.
func assertPage(t *testing.T, rr *httptest.ResponseRecorder, wantCode int, fragments ...string) {
	t.Helper()
	require.Equal(t, wantCode, rr.Code, "body: %s", rr.Body.String())
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	body := rr.Body.String()
	for _, f := range fragments {
		assert.True(t, strings.Contains(body, f), "expected %q in body:\n%s", f, body)
	}
}
