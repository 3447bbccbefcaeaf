package donor

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/bloodbank-api/internal/model"
	"github.com/jwalitptl/bloodbank-api/internal/service/donor"
	apperrors "github.com/jwalitptl/bloodbank-api/pkg/errors"
)

type Handler struct {
	service *donor.Service
}

func NewHandler(service *donor.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the donor endpoints. The collection path is singular
// for compatibility with existing clients.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	donors := r.Group("/donor")
	{
		donors.POST("", h.CreateDonor)
		donors.GET("", h.ListDonors)
		donors.GET("/:id", h.GetDonor)
		donors.PUT("/:id", h.UpdateDonor)
	}
}

func (h *Handler) CreateDonor(c *gin.Context) {
	var donor model.Donor
	if err := c.ShouldBindJSON(&donor); err != nil {
		c.Error(apperrors.Validation("body", "invalid request body"))
		return
	}

	created, err := h.service.CreateDonor(c.Request.Context(), &donor)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h *Handler) GetDonor(c *gin.Context) {
	donor, err := h.service.GetDonor(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, donor)
}

func (h *Handler) UpdateDonor(c *gin.Context) {
	var donor model.Donor
	if err := c.ShouldBindJSON(&donor); err != nil {
		c.Error(apperrors.Validation("body", "invalid request body"))
		return
	}
	donor.ID = c.Param("id")

	updated, err := h.service.UpdateDonor(c.Request.Context(), &donor)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) ListDonors(c *gin.Context) {
	donors, err := h.service.ListDonors(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, donors)
}
