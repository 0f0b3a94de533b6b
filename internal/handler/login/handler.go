package login

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	lookupService "github.com/citymed/frontdesk-api/internal/service/lookup"
)

// Handler serves the name-based login flows. None of them authenticate;
// they are lookups against the appointments table presented as logins.
type Handler struct {
	service *lookupService.Service
}

func NewHandler(service *lookupService.Service) *Handler {
	return &Handler{service: service}
}

type identifierRequest struct {
	Identifier string `json:"identifier"`
}

type nameRequest struct {
	Name string `json:"name"`
}

// PatientLogin matches the stored patient name exactly. A second endpoint,
// Login, matches case-insensitively and answers zero matches differently;
// both are live on purpose and pending product-level unification.
func (h *Handler) PatientLogin(c *gin.Context) {
	var req identifierRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	appointments, err := h.service.FindByPatient(c.Request.Context(), req.Identifier)
	if err != nil {
		c.Error(err)
		return
	}

	if len(appointments) == 0 {
		// Plain text, not JSON; the login page renders this verbatim.
		c.String(http.StatusOK, "No appointments found for this patient.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Login successful!",
		"patient":      req.Identifier,
		"appointments": appointments,
	})
}

// Login matches the patient name ignoring case.
func (h *Handler) Login(c *gin.Context) {
	var req nameRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	appointments, err := h.service.FindByPatientFold(c.Request.Context(), req.Name)
	if err != nil {
		c.Error(err)
		return
	}

	if len(appointments) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No patient found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Login successful!",
		"patient":      req.Name,
		"appointments": appointments,
	})
}

// DoctorLogin returns the projected appointment list for whatever doctor
// name is submitted; a name with no appointments gets an empty list.
func (h *Handler) DoctorLogin(c *gin.Context) {
	var req identifierRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	appointments, err := h.service.FindByDoctor(c.Request.Context(), req.Identifier)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"doctor":       req.Identifier,
		"appointments": appointments,
	})
}

// AdminLogin is deliberately passwordless: any identifier, including an
// empty one, sees every appointment.
func (h *Handler) AdminLogin(c *gin.Context) {
	var req identifierRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	appointments, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"admin":        req.Identifier,
		"appointments": appointments,
	})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/login", h.Login)

	login := r.Group("/login")
	{
		login.POST("/patient", h.PatientLogin)
		login.POST("/doctor", h.DoctorLogin)
		login.POST("/admin", h.AdminLogin)
	}
}
