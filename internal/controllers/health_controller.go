package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/seba-moreno/real-estate-tracker/internal/dtos"
	"github.com/seba-moreno/real-estate-tracker/internal/utils"
)

const dbPingTimeout = 2 * time.Second

// Pinger is implemented by the storage backend.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	db      Pinger
	version string
}

func NewHealthController(db Pinger, version string) *HealthController {
	return &HealthController{db: db, version: version}
}

// GET /
func (c *HealthController) RootHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Hello world"})
}

// GET /health
func (c *HealthController) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, dtos.HealthCheckResponse{Status: "ok"})
}

// GET /health/db
func (c *HealthController) DBHealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), dbPingTimeout)
	defer cancel()

	if err := c.db.Ping(ctx); err != nil {
		utils.LoggerFromContext(r.Context()).WithError(err).Error("Database ping failed")
		utils.RespondErrorWithCode(
			w,
			http.StatusServiceUnavailable,
			utils.ErrCodeInternal,
			"Database unavailable",
			nil,
			err,
		)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.HealthCheckResponse{Status: "ok"})
}

// GET /version
func (c *HealthController) VersionHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, dtos.VersionResponse{Version: c.version})
}
