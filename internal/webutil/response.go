// internal/webutil/response.go
package webutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"flash_learning/internal/middleware"
	"flash_learning/internal/model"

	"github.com/go-playground/validator/v10"
)

const genericErrorMessage = "Something went wrong on our side. Please try again."

// WriteError renders err as the error page, or as a JSON error body when the
// client asked for JSON. Unexpected errors are logged and shown generically.
func (rd *Renderer) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	logger := middleware.GetLogger(r.Context())
	statusCode := MapErrorToStatusCode(err)
	detail := errorDetail(logger, statusCode, err)

	if wantsJSON(r) {
		RespondWithJSON(w, statusCode, model.APIErrorResponse{Error: detail})
		return
	}

	data := map[string]any{
		"title":   http.StatusText(statusCode),
		"status":  statusCode,
		"code":    detail.Code,
		"message": detail.Message,
	}
	if student, sErr := middleware.GetStudentFromContext(r.Context()); sErr == nil {
		data["user"] = student
	}
	if renderErr := rd.Render(w, statusCode, "error", data); renderErr != nil {
		logger.Error("Failed to render error page", "error", renderErr, "status", statusCode)
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}

func errorDetail(logger *slog.Logger, statusCode int, err error) model.ErrorDetail {
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		if statusCode >= http.StatusInternalServerError {
			logger.Error("Request failed", "error", err, "status", statusCode)
		}
		return appErr.Detail
	}

	logger.Error("Unhandled error", "error", err, "status", statusCode)
	return model.ErrorDetail{
		Code:    "INTERNAL_SERVER_ERROR",
		Message: genericErrorMessage,
	}
}

func wantsJSON(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "application/json") && !strings.Contains(accept, "text/html")
}

// MapErrorToStatusCode maps application errors to HTTP status codes.
func MapErrorToStatusCode(err error) int {
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		err = appErr.Unwrap()
	}

	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// RespondWithJSON writes payload as a JSON response.
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Default().Error("Error marshaling JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"code":"INTERNAL_SERVER_ERROR","message":"Could not build the response."}}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// NewValidationErrorResponse turns validator errors into one INVALID_INPUT
// AppError, using the English translations.
func NewValidationErrorResponse(errs validator.ValidationErrors) *model.AppError {
	fields := make([]string, 0, len(errs))
	messages := make([]string, 0, len(errs))

	for _, fe := range errs {
		fields = append(fields, fe.Field())
		msg := fe.Translate(Trans)
		if msg == "" {
			msg = fmt.Sprintf("%s failed on the '%s' rule", fe.Field(), fe.Tag())
		}
		messages = append(messages, msg)
	}

	return model.NewAppError(
		"VALIDATION_ERROR",
		strings.Join(messages, "; "),
		strings.Join(fields, ","),
		model.ErrInvalidInput,
	)
}
