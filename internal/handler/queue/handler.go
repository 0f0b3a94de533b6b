package queue

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/citymed/frontdesk-api/internal/model"
	queueService "github.com/citymed/frontdesk-api/internal/service/queue"
)

type Handler struct {
	service *queueService.Service
}

func NewHandler(service *queueService.Service) *Handler {
	return &Handler{service: service}
}

// Register issues a walk-in token. Registration has no required fields, so
// an empty body is accepted; only a malformed one is rejected.
func (h *Handler) Register(c *gin.Context) {
	var req model.RegisterQueueRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ticket, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Token generated",
		"token":    ticket.Token,
		"position": ticket.Position,
		"eta":      ticket.ETA,
	})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	queue := r.Group("/queue")
	{
		queue.POST("/register", h.Register)
	}
}
