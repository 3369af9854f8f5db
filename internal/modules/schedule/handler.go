package schedule

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AgileExecutives/ae-scheduler/internal/domain"
	"github.com/AgileExecutives/ae-scheduler/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/schedule", h.GetSchedule)
	rg.PUT("/schedule", h.UpdateSchedule)
}

func (h *Handler) GetSchedule(c *gin.Context) {
	cfg, err := h.service.Get(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Operation failed")
		return
	}
	response.Success(c, http.StatusOK, cfg)
}

func (h *Handler) UpdateSchedule(c *gin.Context) {
	var cfg domain.BookingConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.Update(c.Request.Context(), cfg); err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Operation failed")
		return
	}
	response.Success(c, http.StatusOK, cfg)
}
