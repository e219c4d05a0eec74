package response

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Response 统一成功响应
type Response struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

// ErrorDetail 字段级错误详情
type ErrorDetail struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ErrorResponse 统一错误响应，errors 始终为数组
type ErrorResponse struct {
	StatusCode int           `json:"statusCode"`
	Message    string        `json:"message"`
	Errors     []ErrorDetail `json:"errors"`
	Success    bool          `json:"success"`
}

// APIError 携带 HTTP 状态码的业务错误，由 ErrorHandler 渲染
type APIError struct {
	StatusCode int
	Message    string
	Errors     []ErrorDetail
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// NewError 创建 APIError
func NewError(statusCode int, message string, details ...ErrorDetail) *APIError {
	return &APIError{StatusCode: statusCode, Message: message, Errors: details}
}

func OK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		StatusCode: http.StatusOK,
		Data:       data,
		Message:    message,
		Success:    true,
	})
}

func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		StatusCode: http.StatusCreated,
		Data:       data,
		Message:    message,
		Success:    true,
	})
}

// Fail 直接写出失败响应
func Fail(c *gin.Context, statusCode int, message string, details ...ErrorDetail) {
	if details == nil {
		details = []ErrorDetail{}
	}
	c.AbortWithStatusJSON(statusCode, ErrorResponse{
		StatusCode: statusCode,
		Message:    message,
		Errors:     details,
		Success:    false,
	})
}

// Abort 记录错误并终止后续处理，响应由 ErrorHandler 统一写出
func Abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

func BadRequest(c *gin.Context, message string) {
	Abort(c, NewError(http.StatusBadRequest, message))
}

func Unauthorized(c *gin.Context, message string) {
	Abort(c, NewError(http.StatusUnauthorized, message))
}

func NotFound(c *gin.Context, message string) {
	Abort(c, NewError(http.StatusNotFound, message))
}

func Conflict(c *gin.Context, message string) {
	Abort(c, NewError(http.StatusConflict, message))
}

func TooManyRequests(c *gin.Context, message string) {
	Abort(c, NewError(http.StatusTooManyRequests, message))
}

func InternalError(c *gin.Context, message string) {
	Abort(c, NewError(http.StatusInternalServerError, message))
}

// BindError 参数绑定失败：校验错误转为字段详情，其余为请求体无效
func BindError(c *gin.Context, err error) {
	Abort(c, FromBindError(err))
}

// FromBindError 将 gin 绑定错误转换为 400 APIError
func FromBindError(err error) *APIError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return NewError(http.StatusBadRequest, "Invalid request body", ErrorDetail{Message: err.Error()})
	}

	details := make([]ErrorDetail, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, ErrorDetail{
			Field:   lowerFirst(fe.Field()),
			Message: describe(fe),
		})
	}
	return NewError(http.StatusBadRequest, "Validation failed", details...)
}

func describe(fe validator.FieldError) string {
	field := lowerFirst(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "gt", "gte":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "strongpassword":
		return field + " must be 6-12 characters with an uppercase letter, three digits and a symbol"
	case "username":
		return field + " may only contain letters, digits, dots and underscores"
	default:
		return fmt.Sprintf("%s failed on %s", field, fe.Tag())
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
