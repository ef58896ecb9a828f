// internal/middleware/dev_auth.go
package middleware

import (
	"errors"
	"net/http"

	"flash_learning/internal/model"
)

// DevStudentHeader names the header read by DevStudentContextMiddleware.
const DevStudentHeader = "X-Student-Username"

// DevStudentContextMiddleware is for local development only. It signs the
// request in as the student named by the X-Student-Username header without
// checking any token.
func DevStudentContextMiddleware(students StudentFinder, errs ErrorWriter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			username := r.Header.Get(DevStudentHeader)
			if username == "" {
				logger.Warn("[DEV AUTH] Failed: header missing", "header", DevStudentHeader)
				errs.WriteError(w, r, model.NewAppError("UNAUTHORIZED", "[DEV] Missing "+DevStudentHeader+" header.", "", model.ErrUnauthorized))
				return
			}

			student, err := students.GetStudent(r.Context(), username)
			if err != nil {
				if errors.Is(err, model.ErrNotFound) {
					logger.Warn("[DEV AUTH] Failed: unknown student", "username", username)
					errs.WriteError(w, r, model.NewAppError("UNAUTHORIZED", "[DEV] Unknown student "+username+".", "", model.ErrUnauthorized))
					return
				}
				errs.WriteError(w, r, err)
				return
			}

			logger.Debug("[DEV AUTH] Student set to context", "username", student.Username)
			next.ServeHTTP(w, r.WithContext(WithStudent(r.Context(), student)))
		})
	}
}
