// internal/handlers/navigation_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"flash_learning/internal/middleware"
	"flash_learning/internal/service"
	"flash_learning/internal/webutil"
)

// NavigationHandler serves the home, subject, deck and flashcard pages.
type NavigationHandler struct {
	service service.NavigationService
	views   Views
	logger  *slog.Logger
}

func NewNavigationHandler(s service.NavigationService, views Views, logger *slog.Logger) *NavigationHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &NavigationHandler{
		service: s,
		views:   views,
		logger:  logger,
	}
}

// GetHome lists the student's subjects with the first deck of each.
func (h *NavigationHandler) GetHome(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetHome"))

	var path webutil.StudentPath
	if err := webutil.BindPath(r, &path); err != nil {
		logger.Warn("Invalid path parameters", slog.Any("error", err))
		h.views.WriteError(w, r, err)
		return
	}

	student, err := middleware.GetStudentFromContext(r.Context())
	if err != nil {
		h.views.WriteError(w, r, err)
		return
	}

	view, err := h.service.Home(r.Context(), student)
	if err != nil {
		logger.Error("Error resolving home in service", slog.Any("error", err))
		h.views.WriteError(w, r, err)
		return
	}

	renderPage(w, r, h.views, logger, "home", map[string]any{
		"title":        "Home",
		"user":         student,
		"subjects":     view.Subjects,
		"decks":        view.Decks,
		"flashcard":    nil,
		"curr_subject": "",
		"curr_deck":    "",
	})
}

// GetSubject lists every deck of one subject.
func (h *NavigationHandler) GetSubject(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetSubject"))

	var path webutil.SubjectPath
	if err := webutil.BindPath(r, &path); err != nil {
		logger.Warn("Invalid path parameters", slog.Any("error", err))
		h.views.WriteError(w, r, err)
		return
	}

	student, err := middleware.GetStudentFromContext(r.Context())
	if err != nil {
		h.views.WriteError(w, r, err)
		return
	}
	logger = logger.With(slog.String("subject", path.Subject))

	view, err := h.service.Subject(r.Context(), student, path.Subject)
	if err != nil {
		logger.Error("Error resolving subject in service", slog.Any("error", err))
		h.views.WriteError(w, r, err)
		return
	}

	renderPage(w, r, h.views, logger, "home", map[string]any{
		"title":        "Home",
		"user":         student,
		"subjects":     view.Subjects,
		"decks":        view.Decks,
		"flashcard":    nil,
		"curr_subject": view.CurrSubject,
		"curr_deck":    "",
	})
}

// GetDeck shows the first card of a deck next to the subject's decks.
func (h *NavigationHandler) GetDeck(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetDeck"))

	var path webutil.DeckPath
	if err := webutil.BindPath(r, &path); err != nil {
		logger.Warn("Invalid path parameters", slog.Any("error", err))
		h.views.WriteError(w, r, err)
		return
	}

	student, err := middleware.GetStudentFromContext(r.Context())
	if err != nil {
		h.views.WriteError(w, r, err)
		return
	}
	logger = logger.With(slog.String("subject", path.Subject), slog.String("deck", path.Deck))

	view, err := h.service.Deck(r.Context(), student, path.Subject, path.Deck)
	if err != nil {
		logger.Error("Error resolving deck in service", slog.Any("error", err))
		h.views.WriteError(w, r, err)
		return
	}

	data := map[string]any{
		"title":        "Home",
		"user":         student,
		"subjects":     view.Subjects,
		"decks":        view.Decks,
		"flashcard":    nil,
		"curr_subject": view.CurrSubject,
		"curr_deck":    view.CurrDeck,
		"fallback":     view.FromFallback,
	}
	if view.Flashcard != nil {
		data["flashcard"] = view.Flashcard
	}
	renderPage(w, r, h.views, logger, "home", data)
}

// GetFlashcard shows one card with links to its neighbours in the deck.
func (h *NavigationHandler) GetFlashcard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetFlashcard"))

	var path webutil.FlashcardPath
	if err := webutil.BindPath(r, &path); err != nil {
		logger.Warn("Invalid path parameters", slog.Any("error", err))
		h.views.WriteError(w, r, err)
		return
	}

	student, err := middleware.GetStudentFromContext(r.Context())
	if err != nil {
		h.views.WriteError(w, r, err)
		return
	}
	logger = logger.With(
		slog.String("subject", path.Subject),
		slog.String("deck", path.Deck),
		slog.Uint64("flashcard_id", uint64(path.FlashcardID)),
	)

	view, err := h.service.Flashcard(r.Context(), student, path.Subject, path.Deck, path.FlashcardID)
	if err != nil {
		logger.Info("Error resolving flashcard in service", slog.Any("error", err))
		h.views.WriteError(w, r, err)
		return
	}

	renderPage(w, r, h.views, logger, "flashcard", map[string]any{
		"title":        view.Deck.Name,
		"user":         student,
		"subjects":     view.Subjects,
		"decks":        view.Decks,
		"deck":         view.Deck,
		"flashcard":    view.Flashcard,
		"curr_subject": view.CurrSubject,
		"position":     view.Position,
		"total":        view.Total,
		"previous_id":  view.PreviousID,
		"next_id":      view.NextID,
	})
}
