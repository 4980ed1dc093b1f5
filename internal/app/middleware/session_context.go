package middleware

import (
	"net/http"

	"currencyconversion/internal/pkg/logger"
	"currencyconversion/internal/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderTenantID  = "X-Tenant-ID"
	HeaderUserID    = "X-User-ID"
	HeaderUserEmail = "X-User-Email"
	HeaderUserRole  = "X-User-Role"

	// CallerContextKey is the gin context key the session middleware stores
	// the resolved caller under.
	CallerContextKey = "callerContext"
)

// SessionContext resolves the caller identity from the request headers and
// rejects requests that carry no tenant or user identity.
func SessionContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := uuid.New().String()
		ctx := logger.WithTraceID(c.Request.Context(), traceID)
		c.Request = c.Request.WithContext(ctx)
		c.Header("X-Trace-ID", traceID)

		caller := models.CallerContext{
			TenantID:  c.GetHeader(HeaderTenantID),
			UserID:    c.GetHeader(HeaderUserID),
			UserEmail: c.GetHeader(HeaderUserEmail),
			Role:      c.GetHeader(HeaderUserRole),
			IPAddress: c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		}

		if caller.TenantID == "" || caller.UserID == "" {
			logger.CtxWarn(ctx, "rejected request with missing tenant or user identity")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Unauthorized",
			})
			return
		}

		c.Set(CallerContextKey, caller)
		c.Next()
	}
}

// CallerFromContext returns the caller stored by SessionContext.
func CallerFromContext(c *gin.Context) (models.CallerContext, bool) {
	value, exists := c.Get(CallerContextKey)
	if !exists {
		return models.CallerContext{}, false
	}
	caller, ok := value.(models.CallerContext)
	return caller, ok
}
