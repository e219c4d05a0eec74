package handler

import (
	"net/http"
	"strconv"
	"time"

	"vidtube-go/internal/api/middleware"
	"vidtube-go/internal/api/response"
	"vidtube-go/internal/model"
	"vidtube-go/internal/service"
	"vidtube-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 50
	maxPage      = 10000
)

// parseIDParam 解析路径中的正整数 ID，失败时写出 400
func parseIDParam(c *gin.Context, name, message string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, message)
		return 0, false
	}
	return id, true
}

func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = defaultPage
	}
	if page > maxPage {
		page = maxPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

// currentUser 取认证中间件放入的用户，缺失时写出 401
func currentUser(c *gin.Context) (*model.User, bool) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok || user == nil {
		response.Unauthorized(c, "Unauthorized request")
		return nil, false
	}
	return user, true
}

// CookieConfig 登录态 Cookie 的属性
type CookieConfig struct {
	Secure     bool
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

func setAuthCookies(c *gin.Context, cfg CookieConfig, accessToken, refreshToken string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AccessTokenCookie, accessToken, int(cfg.AccessTTL.Seconds()), "/", "", cfg.Secure, true)
	c.SetCookie(middleware.RefreshTokenCookie, refreshToken, int(cfg.RefreshTTL.Seconds()), "/", "", cfg.Secure, true)
}

func clearAuthCookies(c *gin.Context, cfg CookieConfig) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", cfg.Secure, true)
	c.SetCookie(middleware.RefreshTokenCookie, "", -1, "/", "", cfg.Secure, true)
}

// mediaFailure 媒体服务失败：记录原始错误，对外只返回通用信息
func mediaFailure(c *gin.Context, err error) {
	logger.Error("Media operation failed", zap.String("path", c.FullPath()), zap.Error(err))
	response.InternalError(c, service.ErrMediaUploadFailed.Error())
}
