package middleware

import (
	"net/http"
	"strings"

	domainerr "github.com/stakeway/backoffice/internal/domain/error"
	coreport "github.com/stakeway/backoffice/internal/domain/port/core"
	"github.com/stakeway/backoffice/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// adminContextKey is the gin context key carrying the verified admin username
const adminContextKey = "admin"

// Auth middleware verifies the bearer token on every admin-gated route
func Auth(authorizer coreport.Authorizer, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidToken),
				Message: "Missing bearer token",
			})
			return
		}

		username, err := authorizer.Verify(token)
		if err != nil {
			logger.Warn("Token verification failed", map[string]any{
				"error": err.Error(),
				"ip":    c.ClientIP(),
				"path":  c.Request.URL.Path,
			})
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidToken),
				Message: "Invalid or expired token",
			})
			return
		}

		c.Set(adminContextKey, username)
		c.Next()
	}
}

// AdminUsername returns the verified admin username from the request context
func AdminUsername(c *gin.Context) string {
	return c.GetString(adminContextKey)
}
