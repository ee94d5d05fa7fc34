package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"library-catalog/internal/shared/response"
	"library-catalog/pkg/jwt"
)

const StaffUsernameKey = "staff_username"

// TokenValidator is satisfied by *jwt.Manager.
type TokenValidator interface {
	ValidateAccessToken(token string) (*jwt.Claims, error)
}

// StaffAuth - Middleware xác thực JWT token của staff cho các write routes
func StaffAuth(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Lấy token từ Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		// 2. Extract token từ "Bearer <token>"
		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		// 3. Verify và parse JWT
		claims, err := validator.ValidateAccessToken(strings.TrimSpace(token))
		if err != nil {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		// 4. Chỉ staff mới được ghi dữ liệu
		if claims.Role != jwt.RoleStaff {
			response.ErrorResponse(c, http.StatusForbidden, "FORBIDDEN", "staff role required")
			c.Abort()
			return
		}

		c.Set(StaffUsernameKey, claims.Username)
		c.Next()
	}
}

// NoAuth is installed on write routes when AUTH_ENABLED is false.
func NoAuth() gin.HandlerFunc {
	return func(c *gin.Context) { c.Next() }
}
