package donation

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/bloodbank-api/internal/model"
	"github.com/jwalitptl/bloodbank-api/internal/service/donation"
	apperrors "github.com/jwalitptl/bloodbank-api/pkg/errors"
)

type Handler struct {
	service *donation.Service
}

func NewHandler(service *donation.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	donations := r.Group("/donations")
	{
		donations.GET("", h.ListDonations)
		donations.GET("/:id", h.GetDonation)
		donations.PUT("/:id", h.UpdateDonation)
	}
	r.POST("/donate", h.Donate)
}

// Donate creates a donation together with its pending screening test and
// returns both.
func (h *Handler) Donate(c *gin.Context) {
	var req model.DonateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.Validation("body", "invalid request body"))
		return
	}

	result, err := h.service.Donate(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetDonation(c *gin.Context) {
	donation, err := h.service.GetDonation(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, donation)
}

func (h *Handler) UpdateDonation(c *gin.Context) {
	var donation model.Donation
	if err := c.ShouldBindJSON(&donation); err != nil {
		c.Error(apperrors.Validation("body", "invalid request body"))
		return
	}
	donation.ID = c.Param("id")

	updated, err := h.service.UpdateDonation(c.Request.Context(), &donation)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) ListDonations(c *gin.Context) {
	donations, err := h.service.ListDonations(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, donations)
}
