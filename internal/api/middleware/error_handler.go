package middleware

import (
	"errors"
	"net/http"

	"vidtube-go/internal/api/response"
	"vidtube-go/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ErrorHandler 统一将 c.Errors 中最后一个错误渲染为失败响应
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		var apiErr *response.APIError
		var verrs validator.ValidationErrors
		switch {
		case errors.As(err, &apiErr):
			if apiErr.StatusCode >= http.StatusInternalServerError {
				logger.Error("Request failed",
					zap.String("path", c.Request.URL.Path),
					zap.String("message", apiErr.Message),
				)
			}
			response.Fail(c, apiErr.StatusCode, apiErr.Message, apiErr.Errors...)
		case errors.As(err, &verrs):
			bindErr := response.FromBindError(err)
			response.Fail(c, bindErr.StatusCode, bindErr.Message, bindErr.Errors...)
		default:
			logger.Error("Unhandled request error",
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
			response.Fail(c, http.StatusInternalServerError, "Internal server error")
		}
	}
}
