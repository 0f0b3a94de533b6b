package appointment

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/citymed/frontdesk-api/internal/model"
	appointmentService "github.com/citymed/frontdesk-api/internal/service/appointment"
	apperrors "github.com/citymed/frontdesk-api/pkg/errors"
)

type Handler struct {
	service *appointmentService.Service
}

func NewHandler(service *appointmentService.Service) *Handler {
	return &Handler{service: service}
}

// CreateAppointment books an appointment from the public booking page.
// Validation failures answer 400 with the page's expected error shape;
// store faults go through the error middleware.
func (h *Handler) CreateAppointment(c *gin.Context) {
	var req model.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	confirmation, err := h.service.CreateAppointment(c.Request.Context(), &req)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Code == apperrors.ErrBadRequest {
			c.JSON(http.StatusBadRequest, gin.H{"error": appErr.Message})
			return
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Appointment booked successfully",
		"appointment_id": confirmation.AppointmentID,
		"doctor":         confirmation.Doctor,
	})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	appointments := r.Group("/appointment")
	{
		appointments.POST("/create", h.CreateAppointment)
	}
}
