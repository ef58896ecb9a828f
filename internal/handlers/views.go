package handlers

import (
	"log/slog"
	"net/http"

	"flash_learning/internal/model"
)

// Views renders pages and error pages. *webutil.Renderer implements it.
type Views interface {
	Render(w http.ResponseWriter, status int, name string, data map[string]any) error
	WriteError(w http.ResponseWriter, r *http.Request, err error)
}

func renderPage(w http.ResponseWriter, r *http.Request, views Views, logger *slog.Logger, name string, data map[string]any) {
	if err := views.Render(w, http.StatusOK, name, data); err != nil {
		logger.Error("Failed to render page", slog.String("template", name), slog.Any("error", err))
		views.WriteError(w, r, model.NewAppError("INTERNAL_SERVER_ERROR", "The page could not be displayed.", "", err))
		return
	}
	logger.Debug("Page rendered", slog.String("template", name))
}
