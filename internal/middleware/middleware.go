package middleware

import (
	"crypto/sha256"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"innkeep/internal/cache"
	"innkeep/internal/logger"
	"innkeep/internal/repository"

	"github.com/gin-gonic/gin"
)

// CORS handles cross-origin requests from the back-office UI
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}

		c.Next()
	}
}

// RequestID attaches a request id to the context and response headers
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = logger.NewRequestID()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// Logger emits one structured log line per request
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)

		logFields := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status_code", c.Writer.Status(),
			"latency_ms", latency.Milliseconds(),
			"client_ip", c.ClientIP(),
		}

		if requestID, exists := c.Get("request_id"); exists {
			logFields = append(logFields, "request_id", requestID)
		}

		if c.Writer.Status() >= 400 {
			if len(c.Errors) > 0 {
				logFields = append(logFields, "error", c.Errors.String())
			}
			slog.Error("Request completed with error", logFields...)
		} else {
			slog.Info("Request completed", logFields...)
		}
	}
}

// Recovery turns panics into 500 responses with detailed logging
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		slog.Error("PANIC recovered",
			"panic", recovered,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"query", c.Request.URL.RawQuery,
			"client_ip", c.ClientIP(),
		)

		if !c.Writer.Written() {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
	})
}

// MethodOverride rewrites POST /{entity}/{id} requests carrying a
// `_method=PUT` query parameter, form field or X-HTTP-Method-Override
// header into PUT, the method-spoofing convention used by the back-office
// forms. It wraps the router rather than running inside it because the
// method must change before route matching.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			override := r.Header.Get("X-HTTP-Method-Override")
			if override == "" {
				override = r.URL.Query().Get("_method")
			}
			if override == "" && strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
				override = r.PostFormValue("_method")
			}
			if strings.EqualFold(override, http.MethodPut) {
				r.Method = http.MethodPut
			}
		}
		next.ServeHTTP(w, r)
	})
}

// BasicAuth authenticates an operator against the admins table, trying the
// cache auth hash first, then the database.
func BasicAuth(adminRepo *repository.AdminRepository, cacheClient *cache.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, password, ok := c.Request.BasicAuth()
		if !ok {
			c.Header("WWW-Authenticate", "Basic realm=\"Restricted\"")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		ctx := c.Request.Context()

		hash := sha256.Sum256([]byte(password))
		passwordHash := fmt.Sprintf("%x", hash)

		if cacheClient != nil {
			if adminID, err := cacheClient.GetAdminIDByAuth(ctx, email, passwordHash); err == nil {
				c.Set("admin_id", adminID)
				c.Next()
				return
			}
		}

		admin, err := adminRepo.GetByEmail(ctx, email)
		if err != nil || admin == nil || !admin.IsActive {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}

		if passwordHash != admin.PasswordHash {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}

		if cacheClient != nil {
			if err := cacheClient.SetAdminAuth(ctx, email, passwordHash, admin.ID); err != nil {
				slog.Warn("Failed to cache admin auth entry", "error", err)
			}
		}

		c.Set("admin_id", admin.ID)
		c.Next()
	}
}
