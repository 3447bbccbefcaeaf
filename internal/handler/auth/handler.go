package auth

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/bloodbank-api/internal/model"
	"github.com/jwalitptl/bloodbank-api/internal/service/auth"
	apperrors "github.com/jwalitptl/bloodbank-api/pkg/errors"
)

type Handler struct {
	service *auth.Service
}

func NewHandler(service *auth.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/login", h.Login)
}

// Login flattens the matched entity's fields next to the role tag, so a donor
// login answers {"role": "donor", "donor_id": ..., "name": ..., ...}.
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.Validation("body", "invalid request body"))
		return
	}

	result, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response, err := flatten(result)
	if err != nil {
		c.Error(apperrors.Storage(err))
		return
	}
	c.JSON(http.StatusOK, response)
}

func flatten(result *model.LoginResult) (map[string]interface{}, error) {
	data, err := json.Marshal(result.Entity)
	if err != nil {
		return nil, err
	}
	out := map[string]interface{}{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	out["role"] = result.Role
	return out, nil
}
