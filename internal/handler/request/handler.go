package request

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/bloodbank-api/internal/model"
	"github.com/jwalitptl/bloodbank-api/internal/service/request"
	apperrors "github.com/jwalitptl/bloodbank-api/pkg/errors"
)

type Handler struct {
	service *request.Service
}

func NewHandler(service *request.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	requests := r.Group("/requests")
	{
		requests.POST("", h.CreateRequest)
		requests.GET("", h.ListRequests)
		requests.GET("/:id", h.GetRequest)
		requests.PUT("/:id", h.UpdateRequest)
		requests.POST("/:id/fulfill", h.FulfillRequest)
	}
}

func (h *Handler) CreateRequest(c *gin.Context) {
	var req model.EmergencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.Validation("body", "invalid request body"))
		return
	}

	created, err := h.service.CreateRequest(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h *Handler) GetRequest(c *gin.Context) {
	req, err := h.service.GetRequest(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, req)
}

func (h *Handler) UpdateRequest(c *gin.Context) {
	var req model.EmergencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.Validation("body", "invalid request body"))
		return
	}
	req.ID = c.Param("id")

	updated, err := h.service.UpdateRequest(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) ListRequests(c *gin.Context) {
	requests, err := h.service.ListRequests(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

// FulfillRequest marks a request fulfilled. The body optionally names the
// staff member handling it, echoed back as handled_by.
func (h *Handler) FulfillRequest(c *gin.Context) {
	var body struct {
		StaffID *string `json:"staff_id"`
	}
	// An empty or absent body is fine; staff attribution is optional.
	_ = c.ShouldBindJSON(&body)

	result, err := h.service.Fulfill(c.Request.Context(), c.Param("id"), body.StaffID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result)
}
