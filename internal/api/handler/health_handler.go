package handler

import (
	"context"
	"net/http"
	"time"

	"vidtube-go/internal/api/response"
	"vidtube-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Pinger 依赖的连通性检查
type Pinger func(ctx context.Context) error

type HealthHandler struct {
	name    string
	version string
	checks  map[string]Pinger
}

func NewHealthHandler(name, version string, checks map[string]Pinger) *HealthHandler {
	return &HealthHandler{name: name, version: version, checks: checks}
}

// Healthcheck 健康检查
// @Summary 健康检查
// @Description 检查数据库等依赖的连通性
// @Tags 系统
// @Produce json
// @Success 200 {object} response.Response "服务正常"
// @Failure 503 {object} response.ErrorResponse "依赖不可用"
// @Router /healthcheck [get]
func (h *HealthHandler) Healthcheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := make(map[string]string, len(h.checks))
	var failed []response.ErrorDetail
	for name, ping := range h.checks {
		if err := ping(ctx); err != nil {
			logger.Warn("Health check failed", zap.String("dependency", name), zap.Error(err))
			status[name] = "down"
			failed = append(failed, response.ErrorDetail{Field: name, Message: err.Error()})
			continue
		}
		status[name] = "up"
	}

	if len(failed) > 0 {
		response.Fail(c, http.StatusServiceUnavailable, "Service unavailable", failed...)
		return
	}

	response.OK(c, "OK", gin.H{
		"service":      h.name,
		"version":      h.version,
		"dependencies": status,
		"timestamp":    time.Now().Format(time.RFC3339),
	})
}

// Liveness 进程存活探针，不检查依赖
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
