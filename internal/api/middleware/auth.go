package middleware

import (
	"context"
	"strings"

	"vidtube-go/internal/api/response"
	"vidtube-go/internal/model"
	"vidtube-go/pkg/logger"
	"vidtube-go/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	ContextKeyUserID = "currentUserID"
	ContextKeyUser   = "currentUser"

	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

// UserLoader 按 ID 加载用户
type UserLoader interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

// AuthRequired JWT 认证中间件：校验 access token 并加载当前用户
func AuthRequired(tokens *utils.TokenManager, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Unauthorized(c, "Unauthorized request")
			return
		}

		claims, err := tokens.ParseAccessToken(token)
		if err != nil {
			response.Unauthorized(c, "Invalid or expired access token")
			return
		}

		user, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			logger.Debug("Auth user lookup failed", zap.Int64("user_id", claims.UserID), zap.Error(err))
			response.Unauthorized(c, "Invalid access token")
			return
		}

		c.Set(ContextKeyUserID, user.ID)
		c.Set(ContextKeyUser, user)
		c.Next()
	}
}

// GetCurrentUserID 从 Gin Context 中获取当前登录用户 ID
func GetCurrentUserID(c *gin.Context) (int64, bool) {
	val, exists := c.Get(ContextKeyUserID)
	if !exists {
		return 0, false
	}
	userID, ok := val.(int64)
	return userID, ok
}

// GetCurrentUser 从 Gin Context 中获取当前登录用户
func GetCurrentUser(c *gin.Context) (*model.User, bool) {
	val, exists := c.Get(ContextKeyUser)
	if !exists {
		return nil, false
	}
	user, ok := val.(*model.User)
	return user, ok
}

// extractToken 优先读取 Cookie，其次 Authorization: Bearer
func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil && strings.TrimSpace(cookie) != "" {
		return strings.TrimSpace(cookie)
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
