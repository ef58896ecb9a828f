package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"flash_learning/internal/middleware"
	"flash_learning/internal/webutil"
)

// Pinger checks the database connection. *sql.DB implements it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// GetHealth answers {"status":"ok"} once the database responds to a ping.
func (h *HealthHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	if err := h.db.PingContext(r.Context()); err != nil {
		middleware.GetLogger(r.Context()).Error("Health check failed: could not ping DB", slog.Any("error", err))
		webutil.RespondWithJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
