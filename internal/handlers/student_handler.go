// internal/handlers/student_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"flash_learning/internal/middleware"
	"flash_learning/internal/model"
	"flash_learning/internal/service"
	"flash_learning/internal/webutil"
)

// StudentHandler serves the profile, stats and leaderboard pages.
type StudentHandler struct {
	service service.StudentService
	views   Views
	logger  *slog.Logger
}

func NewStudentHandler(s service.StudentService, views Views, logger *slog.Logger) *StudentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StudentHandler{
		service: s,
		views:   views,
		logger:  logger,
	}
}

func (h *StudentHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetProfile"))

	student, ok := h.student(w, r, logger)
	if !ok {
		return
	}

	view, err := h.service.Profile(r.Context(), student)
	if err != nil {
		logger.Error("Error resolving profile in service", slog.Any("error", err))
		h.views.WriteError(w, r, err)
		return
	}

	renderPage(w, r, h.views, logger, "profile", map[string]any{
		"title":       "Profile",
		"user":        student,
		"school_name": view.SchoolName,
		"grade":       view.Grade,
	})
}

func (h *StudentHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetStats"))

	student, ok := h.student(w, r, logger)
	if !ok {
		return
	}

	view := h.service.Stats(r.Context(), student)
	renderPage(w, r, h.views, logger, "stats", map[string]any{
		"title":    "Stats",
		"user":     student,
		"score":    view.Score,
		"accuracy": view.Accuracy,
		"progress": view.Progress,
	})
}

func (h *StudentHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetLeaderboard"))

	student, ok := h.student(w, r, logger)
	if !ok {
		return
	}

	scores, err := h.service.Leaderboard(r.Context())
	if err != nil {
		logger.Error("Error loading leaderboard in service", slog.Any("error", err))
		h.views.WriteError(w, r, err)
		return
	}

	renderPage(w, r, h.views, logger, "leaderboard", map[string]any{
		"title":  "Leaderboard",
		"scores": scores,
		"user":   student,
	})
}

// student validates the {username} segment and returns the signed-in
// student. On failure the error page has already been written.
func (h *StudentHandler) student(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (*model.Student, bool) {
	var path webutil.StudentPath
	if err := webutil.BindPath(r, &path); err != nil {
		logger.Warn("Invalid path parameters", slog.Any("error", err))
		h.views.WriteError(w, r, err)
		return nil, false
	}

	student, err := middleware.GetStudentFromContext(r.Context())
	if err != nil {
		logger.Warn("No student in context", slog.Any("error", err))
		h.views.WriteError(w, r, err)
		return nil, false
	}
	return student, true
}
