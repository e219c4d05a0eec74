package handler

import (
	"errors"
	"strings"

	"vidtube-go/internal/api/dto"
	"vidtube-go/internal/api/middleware"
	"vidtube-go/internal/api/response"
	"vidtube-go/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *service.AuthService
	cookies     CookieConfig
}

func NewAuthHandler(authService *service.AuthService, cookies CookieConfig) *AuthHandler {
	return &AuthHandler{authService: authService, cookies: cookies}
}

// Register 用户注册
// @Summary 用户注册
// @Description 注册新用户，avatar 必填，coverImage 可选
// @Tags 认证
// @Accept multipart/form-data
// @Produce json
// @Param username formData string true "用户名"
// @Param email formData string true "邮箱"
// @Param fullname formData string true "全名"
// @Param password formData string true "密码"
// @Param avatar formData file true "头像"
// @Param coverImage formData file false "封面"
// @Success 201 {object} response.Response{data=dto.UserInfo} "注册成功"
// @Failure 400 {object} response.ErrorResponse "请求参数无效"
// @Failure 409 {object} response.ErrorResponse "用户名或邮箱已存在"
// @Router /users/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BindError(c, err)
		return
	}

	avatar, _ := middleware.UploadedFile(c, "avatar")
	cover, _ := middleware.UploadedFile(c, "coverImage")

	user, err := h.authService.Register(c.Request.Context(), &req, avatar, cover)
	if err != nil {
		handleAuthError(c, err)
		return
	}

	response.Created(c, "User registered successfully", user)
}

// Login 用户登录
// @Summary 用户登录
// @Description 用户名或邮箱登录，签发 access/refresh token 并写入 Cookie
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "登录信息"
// @Success 200 {object} response.Response{data=dto.LoginData} "登录成功"
// @Failure 401 {object} response.ErrorResponse "密码错误"
// @Failure 404 {object} response.ErrorResponse "用户不存在"
// @Router /users/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	data, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		handleAuthError(c, err)
		return
	}

	setAuthCookies(c, h.cookies, data.AccessToken, data.RefreshToken)
	response.OK(c, "User logged in successfully", data)
}

// RefreshToken 刷新令牌
// @Summary 刷新令牌
// @Description 使用 Cookie 或请求体中的 refreshToken 换取新令牌，旧 refresh token 立即失效
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest false "refresh token"
// @Success 200 {object} response.Response{data=dto.LoginData} "刷新成功"
// @Failure 401 {object} response.ErrorResponse "令牌无效或已使用"
// @Router /users/refresh-token [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	token, _ := c.Cookie(middleware.RefreshTokenCookie)
	if strings.TrimSpace(token) == "" {
		var req dto.RefreshTokenRequest
		_ = c.ShouldBindJSON(&req)
		token = req.RefreshToken
	}

	data, err := h.authService.Refresh(c.Request.Context(), token)
	if err != nil {
		handleAuthError(c, err)
		return
	}

	setAuthCookies(c, h.cookies, data.AccessToken, data.RefreshToken)
	response.OK(c, "Access token refreshed", data)
}

// Logout 用户登出
// @Summary 用户登出
// @Description 清除保存的 refresh token 和 Cookie
// @Tags 认证
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response "登出成功"
// @Failure 401 {object} response.ErrorResponse "未授权"
// @Router /users/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.authService.Logout(c.Request.Context(), user.ID); err != nil {
		response.Abort(c, err)
		return
	}

	clearAuthCookies(c, h.cookies)
	response.OK(c, "User logged out", gin.H{})
}

// ChangePassword 修改密码
// @Summary 修改密码
// @Tags 认证
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ChangePasswordRequest true "新旧密码"
// @Success 200 {object} response.Response "修改成功"
// @Failure 400 {object} response.ErrorResponse "新密码与旧密码相同"
// @Failure 401 {object} response.ErrorResponse "旧密码错误"
// @Router /users/change-password [post]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), user.ID, &req); err != nil {
		handleAuthError(c, err)
		return
	}

	response.OK(c, "Password changed successfully", gin.H{})
}

func handleAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserExists):
		response.Conflict(c, err.Error())
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidOldPassword),
		errors.Is(err, service.ErrRefreshTokenMissing),
		errors.Is(err, service.ErrInvalidRefreshToken),
		errors.Is(err, service.ErrRefreshTokenUsed):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, service.ErrAvatarRequired),
		errors.Is(err, service.ErrCredentialsRequired),
		errors.Is(err, service.ErrPasswordUnchanged):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrMediaUploadFailed):
		mediaFailure(c, err)
	default:
		response.Abort(c, err)
	}
}
