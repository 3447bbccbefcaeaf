package staff

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/bloodbank-api/internal/model"
	"github.com/jwalitptl/bloodbank-api/internal/service/staff"
	apperrors "github.com/jwalitptl/bloodbank-api/pkg/errors"
)

type Handler struct {
	service *staff.Service
}

func NewHandler(service *staff.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	staffs := r.Group("/staffs")
	{
		staffs.POST("", h.CreateStaff)
		staffs.GET("", h.ListStaffs)
		staffs.GET("/:id", h.GetStaff)
		staffs.PUT("/:id", h.UpdateStaff)
	}
}

func (h *Handler) CreateStaff(c *gin.Context) {
	var staff model.Staff
	if err := c.ShouldBindJSON(&staff); err != nil {
		c.Error(apperrors.Validation("body", "invalid request body"))
		return
	}

	created, err := h.service.CreateStaff(c.Request.Context(), &staff)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h *Handler) GetStaff(c *gin.Context) {
	staff, err := h.service.GetStaff(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, staff)
}

func (h *Handler) UpdateStaff(c *gin.Context) {
	var staff model.Staff
	if err := c.ShouldBindJSON(&staff); err != nil {
		c.Error(apperrors.Validation("body", "invalid request body"))
		return
	}
	staff.ID = c.Param("id")

	updated, err := h.service.UpdateStaff(c.Request.Context(), &staff)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) ListStaffs(c *gin.Context) {
	staffs, err := h.service.ListStaffs(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, staffs)
}
