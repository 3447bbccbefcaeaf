package bloodtest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/bloodbank-api/internal/model"
	"github.com/jwalitptl/bloodbank-api/internal/service/bloodtest"
	apperrors "github.com/jwalitptl/bloodbank-api/pkg/errors"
)

type Handler struct {
	service *bloodtest.Service
}

func NewHandler(service *bloodtest.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the test endpoints. Results are posted to the id
// path, there is no separate create; tests come into existence with their
// donation.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	tests := r.Group("/tests")
	{
		tests.GET("", h.ListTests)
		tests.GET("/:id", h.GetTest)
		tests.POST("/:id", h.UpdateTest)
	}
}

func (h *Handler) GetTest(c *gin.Context) {
	test, err := h.service.GetTest(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, test)
}

func (h *Handler) UpdateTest(c *gin.Context) {
	var req model.UpdateTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.Validation("body", "invalid request body"))
		return
	}

	updated, err := h.service.UpdateTest(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) ListTests(c *gin.Context) {
	tests, err := h.service.ListTests(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, tests)
}
