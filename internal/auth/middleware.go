package auth

import (
	"casino-backend/internal/model"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ContextUserID = "user_id"
	ContextRole   = "user_role"
	ContextEmail  = "user_email"
)

func abort(c *gin.Context, status int, msg, code string) {
	c.AbortWithStatusJSON(status, model.ErrorResponse{Error: msg, Code: code})
}

func Middleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(c, http.StatusUnauthorized, "Vui lòng đăng nhập", "UNAUTHORIZED")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(strings.TrimSpace(parts[0]), "Bearer") {
			abort(c, http.StatusUnauthorized, "Định dạng xác thực không hợp lệ", "UNAUTHORIZED")
			return
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			abort(c, http.StatusUnauthorized, "Vui lòng đăng nhập", "UNAUTHORIZED")
			return
		}

		identity, err := verifier.Verify(c.Request.Context(), tokenString)
		if err != nil {
			if errors.Is(err, ErrTokenExpired) {
				abort(c, http.StatusUnauthorized, "Phiên đăng nhập đã hết hạn", "TOKEN_EXPIRED")
				return
			}
			abort(c, http.StatusUnauthorized, "Phiên đăng nhập không hợp lệ", "UNAUTHORIZED")
			return
		}

		c.Set(ContextUserID, identity.UserID)
		c.Set(ContextEmail, identity.Email)
		c.Set(ContextRole, identity.Role)

		c.Next()
	}
}

func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextRole)
		if !exists {
			abort(c, http.StatusUnauthorized, "Vui lòng đăng nhập", "UNAUTHORIZED")
			return
		}

		roleStr, ok := role.(string)
		if !ok || roleStr != requiredRole {
			abort(c, http.StatusForbidden, "Bạn không có quyền thực hiện thao tác này", "FORBIDDEN")
			return
		}

		c.Next()
	}
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ContextUserID)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	if !ok {
		return uuid.Nil, false
	}

	return id, true
}
