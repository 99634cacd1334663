package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"innkeep/internal/apperrors"
	"innkeep/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext(target string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", target, nil)
	return c, w
}

func TestRespondErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", apperrors.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", errors.Join(errors.New("booking 7"), apperrors.ErrNotFound), http.StatusNotFound},
		{"validation", apperrors.ErrValidation, http.StatusBadRequest},
		{"invalid transition", apperrors.ErrInvalidTransition, http.StatusConflict},
		{"delete forbidden", apperrors.ErrDeleteForbidden, http.StatusConflict},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := testContext("/api/bookings")
			respondError(c, tt.err, "Failed to process request")
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRespondErrorHidesInternalDetails(t *testing.T) {
	c, w := testContext("/api/bookings")
	respondError(c, errors.New("pq: connection refused"), "Failed to list bookings")

	var resp models.ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Failed to list bookings", resp.Error)
	assert.NotContains(t, resp.Error, "pq:")
}

func TestIDParam(t *testing.T) {
	c, _ := testContext("/api/bookings/42")
	c.Params = gin.Params{{Key: "id", Value: "42"}}

	id, ok := idParam(c)
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)
}

func TestIDParamRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"abc", "0", "-5", ""} {
		c, w := testContext("/api/bookings/" + raw)
		c.Params = gin.Params{{Key: "id", Value: raw}}

		_, ok := idParam(c)
		assert.False(t, ok, "id %q should be rejected", raw)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestListParamsDefaults(t *testing.T) {
	c, _ := testContext("/api/bookings")
	params := listParams(c)

	assert.Equal(t, "", params.Search)
	assert.Equal(t, "all", params.Status)
	assert.Zero(t, params.Month)
	assert.Zero(t, params.Year)
}

func TestListParamsIgnoresCacheBust(t *testing.T) {
	c, _ := testContext("/api/bookings?search=smith&status=pending&month=3&year=2025&_t=1742400000000")
	params := listParams(c)

	assert.Equal(t, "smith", params.Search)
	assert.Equal(t, "pending", params.Status)
	assert.Equal(t, 3, params.Month)
	assert.Equal(t, 2025, params.Year)
}

func TestCalendarParamsRequiresMonthAndYear(t *testing.T) {
	tests := []struct {
		name   string
		target string
		ok     bool
	}{
		{"valid", "/api/calendar-bookings?month=3&year=2025", true},
		{"missing month", "/api/calendar-bookings?year=2025", false},
		{"month out of range", "/api/calendar-bookings?month=13&year=2025", false},
		{"missing year", "/api/calendar-bookings?month=3", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := testContext(tt.target)
			_, ok := calendarParams(c)
			assert.Equal(t, tt.ok, ok)
			if !tt.ok {
				assert.Equal(t, http.StatusBadRequest, w.Code)
			}
		})
	}
}
