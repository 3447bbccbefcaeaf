package bank

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/bloodbank-api/internal/model"
	"github.com/jwalitptl/bloodbank-api/internal/service/bank"
	apperrors "github.com/jwalitptl/bloodbank-api/pkg/errors"
)

type Handler struct {
	service *bank.Service
}

func NewHandler(service *bank.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	banks := r.Group("/banks")
	{
		banks.POST("", h.CreateBank)
		banks.GET("", h.ListBanks)
		banks.GET("/:id", h.GetBank)
		banks.PUT("/:id", h.UpdateBank)
	}
}

func (h *Handler) CreateBank(c *gin.Context) {
	var bank model.Bank
	if err := c.ShouldBindJSON(&bank); err != nil {
		c.Error(apperrors.Validation("body", "invalid request body"))
		return
	}

	created, err := h.service.CreateBank(c.Request.Context(), &bank)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h *Handler) GetBank(c *gin.Context) {
	bank, err := h.service.GetBank(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, bank)
}

func (h *Handler) UpdateBank(c *gin.Context) {
	var bank model.Bank
	if err := c.ShouldBindJSON(&bank); err != nil {
		c.Error(apperrors.Validation("body", "invalid request body"))
		return
	}
	bank.ID = c.Param("id")

	updated, err := h.service.UpdateBank(c.Request.Context(), &bank)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) ListBanks(c *gin.Context) {
	banks, err := h.service.ListBanks(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, banks)
}
