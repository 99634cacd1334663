package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCORSPreflightShortCircuits(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS())

	handlerRan := false
	r.OPTIONS("/api/bookings", func(c *gin.Context) { handlerRan = true })

	req, _ := http.NewRequest("OPTIONS", "/api/bookings", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, handlerRan)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestIDGeneratedWhenMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req, _ := http.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRequestIDPreserved(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req, _ := http.NewRequest("GET", "/", nil)
	req.Header.Set("X-Request-ID", "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
}

func methodOverrideRouter(t *testing.T) (http.Handler, *string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var matched string
	r := gin.New()
	r.POST("/api/rooms/:id", func(c *gin.Context) {
		matched = "POST"
		c.Status(http.StatusOK)
	})
	r.PUT("/api/rooms/:id", func(c *gin.Context) {
		matched = "PUT"
		c.Status(http.StatusOK)
	})

	return MethodOverride(r), &matched
}

func TestMethodOverrideQueryParam(t *testing.T) {
	h, matched := methodOverrideRouter(t)

	req, _ := http.NewRequest("POST", "/api/rooms/1?_method=PUT", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, "PUT", *matched)
}

func TestMethodOverrideHeader(t *testing.T) {
	h, matched := methodOverrideRouter(t)

	req, _ := http.NewRequest("POST", "/api/rooms/1", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-HTTP-Method-Override", "PUT")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, "PUT", *matched)
}

func TestMethodOverrideFormField(t *testing.T) {
	h, matched := methodOverrideRouter(t)

	form := url.Values{}
	form.Set("_method", "PUT")
	form.Set("number", "101")

	req, _ := http.NewRequest("POST", "/api/rooms/1", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, "PUT", *matched)
}

func TestMethodOverrideIgnoresPlainPost(t *testing.T) {
	h, matched := methodOverrideRouter(t)

	req, _ := http.NewRequest("POST", "/api/rooms/1", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, "POST", *matched)
}

func TestMethodOverrideOnlyUpgradesToPut(t *testing.T) {
	h, matched := methodOverrideRouter(t)

	req, _ := http.NewRequest("POST", "/api/rooms/1?_method=DELETE", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, "POST", *matched)
}
