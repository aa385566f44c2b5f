package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Pinger checks a backing store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// CatalogStatus reports the loaded catalogue snapshot.
type CatalogStatus interface {
	Len() int
	LoadedAt() time.Time
}

// HealthHandler reports service health.
type HealthHandler struct {
	db      Pinger
	catalog CatalogStatus
	logger  zerolog.Logger
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(db Pinger, catalog CatalogStatus, logger zerolog.Logger) *HealthHandler {
	return &HealthHandler{
		db:      db,
		catalog: catalog,
		logger:  logger.With().Str("handler", "health").Logger(),
	}
}

type healthView struct {
	Status          string     `json:"status"`
	Database        string     `json:"database"`
	Products        int        `json:"products"`
	CatalogLoadedAt *time.Time `json:"catalogLoadedAt,omitempty"`
}

// Check handles GET /health.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	view := healthView{Status: "healthy", Database: "up", Products: h.catalog.Len()}
	if t := h.catalog.LoadedAt(); !t.IsZero() {
		view.CatalogLoadedAt = &t
	}

	status := http.StatusOK
	if err := h.db.Ping(ctx); err != nil {
		h.logger.Error().Err(err).Msg("database ping failed")
		view.Status = "degraded"
		view.Database = "down"
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, view)
}
