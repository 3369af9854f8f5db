package booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AgileExecutives/ae-scheduler/internal/pkg/response"
	"github.com/AgileExecutives/ae-scheduler/internal/scheduling"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/availability/day", h.DayAvailability)
	rg.GET("/availability/month", h.MonthData)
	rg.GET("/availability/series", h.SeriesAvailability)
	rg.GET("/bookings", h.ListBookings)
	rg.POST("/bookings", h.CreateBooking)
	rg.DELETE("/bookings/:id", h.CancelBooking)
}

func (h *Handler) DayAvailability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Query parameter 'date' is required")
		return
	}

	day, err := h.service.GetDayAvailability(c.Request.Context(), date)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, day)
}

func (h *Handler) MonthData(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Query parameter 'year' must be a number")
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Query parameter 'month' must be a number")
		return
	}

	data, err := h.service.GetMonthData(c.Request.Context(), year, month)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, data)
}

func (h *Handler) SeriesAvailability(c *gin.Context) {
	date := c.Query("date")
	start := c.Query("start_time")
	end := c.Query("end_time")
	recurrence := c.DefaultQuery("recurrence", "once")
	if date == "" || start == "" || end == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Parameters 'date', 'start_time' and 'end_time' are required")
		return
	}

	n, err := h.service.GetSeriesAvailability(c.Request.Context(), date, start, end, recurrence)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, SeriesAvailabilityResponse{
		Date:           date,
		StartTime:      start,
		EndTime:        end,
		Recurrence:     recurrence,
		AvailableCount: n,
	})
}

func (h *Handler) ListBookings(c *gin.Context) {
	appts, err := h.service.ListBookings(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"appointments": appts})
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	created, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"appointments": created})
}

func (h *Handler) CancelBooking(c *gin.Context) {
	if err := h.service.CancelBooking(c.Request.Context(), c.Param("id")); err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"cancelled": true})
}

func (h *Handler) renderError(c *gin.Context, err error) {
	var conflict *scheduling.ConflictError
	switch {
	case errors.As(err, &conflict):
		response.ErrorWithDetails(c, http.StatusConflict, "BOOKING_CONFLICT",
			"Requested slot is no longer available", gin.H{"date": conflict.Date})
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Operation failed")
	}
}
