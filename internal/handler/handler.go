package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/citymed/frontdesk-api/pkg/httputil"
)

// Handler serves the health endpoints.
type Handler struct {
	db *sqlx.DB
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{db: db}
}

func (h *Handler) LivenessCheck(c *gin.Context) {
	httputil.RespondWithSuccess(c, gin.H{
		"status": "alive",
		"time":   time.Now(),
	})
}

func (h *Handler) ReadinessCheck(c *gin.Context) {
	if err := h.db.PingContext(c.Request.Context()); err != nil {
		httputil.RespondWithError(c, http.StatusServiceUnavailable, "database unreachable")
		return
	}
	httputil.RespondWithSuccess(c, gin.H{
		"status": "ready",
		"time":   time.Now(),
	})
}
