package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"innkeep/internal/apperrors"
	"innkeep/internal/cache"
	"innkeep/internal/models"
	"innkeep/internal/service"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	services    *service.Services
	cacheClient *cache.Client
}

func NewHandlers(services *service.Services, cacheClient *cache.Client) *Handlers {
	return &Handlers{
		services:    services,
		cacheClient: cacheClient,
	}
}

// respondError maps service errors onto HTTP status codes. Validation
// breaks are the client's fault, lifecycle conflicts are 409, everything
// unexpected stays a generic 500 without leaking internals.
func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Not found"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrInvalidTransition), errors.Is(err, apperrors.ErrDeleteForbidden):
		c.JSON(http.StatusConflict, models.ErrorResponse{Error: err.Error()})
	default:
		slog.Error(fallback, "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: fallback})
	}
}

// idParam parses the :id path segment
func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid id"})
		return 0, false
	}
	return id, true
}

// listParams reads the shared list/calendar query filters. The `_t`
// cache-bust parameter sent by clients is accepted and ignored.
func listParams(c *gin.Context) models.ListBookingsParams {
	month, _ := strconv.Atoi(c.Query("month"))
	year, _ := strconv.Atoi(c.Query("year"))

	return models.ListBookingsParams{
		Search: c.Query("search"),
		Status: c.DefaultQuery("status", "all"),
		Month:  month,
		Year:   year,
	}
}

// calendarParams is listParams with month/year required
func calendarParams(c *gin.Context) (models.ListBookingsParams, bool) {
	params := listParams(c)
	if params.Month < 1 || params.Month > 12 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "month must be between 1 and 12"})
		return params, false
	}
	if params.Year < 1 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "year is required"})
		return params, false
	}
	return params, true
}
