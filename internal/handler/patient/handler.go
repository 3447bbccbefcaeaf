package patient

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/bloodbank-api/internal/model"
	"github.com/jwalitptl/bloodbank-api/internal/service/patient"
	apperrors "github.com/jwalitptl/bloodbank-api/pkg/errors"
)

type Handler struct {
	service *patient.Service
}

func NewHandler(service *patient.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	patients := r.Group("/patients")
	{
		patients.POST("", h.CreatePatient)
		patients.GET("", h.ListPatients)
		patients.GET("/:id", h.GetPatient)
		patients.PUT("/:id", h.UpdatePatient)
	}
}

func (h *Handler) CreatePatient(c *gin.Context) {
	var patient model.Patient
	if err := c.ShouldBindJSON(&patient); err != nil {
		c.Error(apperrors.Validation("body", "invalid request body"))
		return
	}

	created, err := h.service.CreatePatient(c.Request.Context(), &patient)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h *Handler) GetPatient(c *gin.Context) {
	patient, err := h.service.GetPatient(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, patient)
}

func (h *Handler) UpdatePatient(c *gin.Context) {
	var patient model.Patient
	if err := c.ShouldBindJSON(&patient); err != nil {
		c.Error(apperrors.Validation("body", "invalid request body"))
		return
	}
	patient.ID = c.Param("id")

	updated, err := h.service.UpdatePatient(c.Request.Context(), &patient)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) ListPatients(c *gin.Context) {
	patients, err := h.service.ListPatients(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, patients)
}
