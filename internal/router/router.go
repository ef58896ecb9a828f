// Package router assembles the chi router of the student site.
package router

import (
	"log/slog"
	"net/http"

	"flash_learning/internal/config"
	"flash_learning/internal/handlers"
	"flash_learning/internal/middleware"
	"flash_learning/internal/model"
	"flash_learning/internal/service"
	"flash_learning/internal/webutil"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

var notFound = model.NewAppError("NOT_FOUND", "That page does not exist.", "", model.ErrNotFound)

// Dependencies are the services and collaborators the routes are built from.
type Dependencies struct {
	Navigation service.NavigationService
	Students   service.StudentService
	Tokens     middleware.TokenVerifier
	Views      *webutil.Renderer
	DB         handlers.Pinger
	Logger     *slog.Logger
}

// New returns the application router. With cfg.Auth.Enabled the student
// routes require an access token; otherwise the development header
// middleware signs requests in.
func New(cfg *config.Config, deps Dependencies) *chi.Mux {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	navHandler := handlers.NewNavigationHandler(deps.Navigation, deps.Views, logger)
	studentHandler := handlers.NewStudentHandler(deps.Students, deps.Views, logger)
	healthHandler := handlers.NewHealthHandler(deps.DB)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	if cfg.Server.RequestTimeout > 0 {
		r.Use(chimiddleware.Timeout(cfg.Server.RequestTimeout))
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		deps.Views.WriteError(w, req, notFound)
	})

	r.Get("/health", healthHandler.GetHealth)

	r.Route("/student/{username}", func(r chi.Router) {
		if cfg.Auth.Enabled {
			logger.Info("Applying JWT authentication middleware")
			r.Use(middleware.JWTAuthMiddleware(cfg, deps.Tokens, deps.Students, deps.Views))
		} else {
			logger.Warn("Authentication is disabled, using the development header middleware")
			r.Use(middleware.DevStudentContextMiddleware(deps.Students, deps.Views))
		}
		r.Use(middleware.PathIdentityMiddleware(cfg.Auth.EnforcePathIdentity, deps.Views))

		// Static segments take precedence over {subject} in chi.
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
