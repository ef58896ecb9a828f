package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"flash_learning/internal/config"
	"flash_learning/internal/model"

	"github.com/go-chi/chi/v5"
)

// TokenVerifier validates an access token and returns the username it was
// issued for.
type TokenVerifier interface {
	VerifyAccessToken(tokenString string) (string, error)
}

// StudentFinder loads the student behind an authenticated username.
type StudentFinder interface {
	GetStudent(ctx context.Context, username string) (*model.Student, error)
}

// ErrorWriter writes an error response for err.
type ErrorWriter interface {
	WriteError(w http.ResponseWriter, r *http.Request, err error)
}

// JWTAuthMiddleware authenticates the request with the access token from the
// configured cookie, or from an "Authorization: Bearer" header, and puts the
// student into the context.
func JWTAuthMiddleware(cfg *config.Config, verifier TokenVerifier, students StudentFinder, errs ErrorWriter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			tokenString, err := tokenFromRequest(r, cfg.JWT.CookieName)
			if err != nil {
				logger.Warn("JWT auth failed", "error", err)
				errs.WriteError(w, r, model.NewAppError("UNAUTHORIZED", "Please sign in to continue.", "", model.ErrUnauthorized))
				return
			}

			username, err := verifier.VerifyAccessToken(tokenString)
			if err != nil {
				logger.Warn("JWT auth failed: invalid token", "error", err)
				errs.WriteError(w, r, model.NewAppError("INVALID_TOKEN", "Your session is invalid or has expired.", "", model.ErrUnauthorized))
				return
			}

			student, err := students.GetStudent(r.Context(), username)
			if err != nil {
				if errors.Is(err, model.ErrNotFound) {
					logger.Warn("JWT auth failed: student not found", "username", username)
					errs.WriteError(w, r, model.NewAppError("INVALID_TOKEN", "Your account could not be found.", "", model.ErrUnauthorized))
					return
				}
				errs.WriteError(w, r, err)
				return
			}

			ctx := WithStudent(r.Context(), student)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// PathIdentityMiddleware compares the {username} route parameter with the
// signed-in student. When enforce is false the path value is ignored.
func PathIdentityMiddleware(enforce bool, errs ErrorWriter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !enforce {
				next.ServeHTTP(w, r)
				return
			}
			student, err := GetStudentFromContext(r.Context())
			if err != nil {
				errs.WriteError(w, r, err)
				return
			}
			pathUsername := URLParam(r, "username")
			if pathUsername != student.Username {
				GetLogger(r.Context()).Warn("Path username does not match session",
					"path_username", pathUsername,
					"session_username", student.Username,
				)
				errs.WriteError(w, r, model.NewAppError("FORBIDDEN", "You can only view your own pages.", "username", model.ErrForbidden))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// URLParam returns the decoded chi route parameter. chi matches on RawPath
// when the URL carries escapes that Path cannot represent, such as %2F.
func URLParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return raw
	}
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

func tokenFromRequest(r *http.Request, cookieName string) (string, error) {
	if cookieName != "" {
		if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
			return c.Value, nil
		}
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("no access token cookie or Authorization header")
	}
	headerParts := strings.Split(authHeader, " ")
	if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" || headerParts[1] == "" {
		return "", errors.New("invalid Authorization header format")
	}
	return headerParts[1], nil
}

// WithStudent returns a copy of ctx carrying the signed-in student.
func WithStudent(ctx context.Context, student *model.Student) context.Context {
	return context.WithValue(ctx, model.StudentKey, student)
}

func GetStudentFromContext(ctx context.Context) (*model.Student, error) {
	student, ok := ctx.Value(model.StudentKey).(*model.Student)
	if !ok || student == nil {
		return nil, model.NewAppError("UNAUTHORIZED", "Please sign in to continue.", "", model.ErrUnauthorized)
	}
	return student, nil
}
