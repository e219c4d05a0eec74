package handler

import (
	"errors"

	"vidtube-go/internal/api/dto"
	"vidtube-go/internal/api/middleware"
	"vidtube-go/internal/api/response"
	"vidtube-go/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetCurrentUser 获取当前用户信息
// @Summary 获取当前用户信息
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=dto.UserInfo} "获取成功"
// @Failure 401 {object} response.ErrorResponse "未授权"
// @Router /users/current-user [get]
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	info, err := h.userService.GetCurrentUser(c.Request.Context(), user.ID)
	if err != nil {
		handleUserError(c, err)
		return
	}

	response.OK(c, "Current user fetched successfully", info)
}

// GetChannelProfile 频道主页
// @Summary 频道主页
// @Description 用户公开信息及订阅统计
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Param username path string true "用户名"
// @Success 200 {object} response.Response{data=dto.ChannelProfile} "获取成功"
// @Failure 404 {object} response.ErrorResponse "频道不存在"
// @Router /users/c/{username} [get]
func (h *UserHandler) GetChannelProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	profile, err := h.userService.GetChannelProfile(c.Request.Context(), c.Param("username"), user.ID)
	if err != nil {
		handleUserError(c, err)
		return
	}

	response.OK(c, "User channel fetched successfully", profile)
}

// GetWatchHistory 观看历史
// @Summary 观看历史
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=[]dto.VideoInfo} "获取成功"
// @Router /users/history [get]
func (h *UserHandler) GetWatchHistory(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	videos, err := h.userService.GetWatchHistory(c.Request.Context(), user.ID)
	if err != nil {
		handleUserError(c, err)
		return
	}

	response.OK(c, "Watch history fetched successfully", videos)
}

// UpdateAccount 更新账户信息
// @Summary 更新全名和邮箱
// @Tags 用户
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateAccountRequest true "账户信息"
// @Success 200 {object} response.Response{data=dto.UserInfo} "更新成功"
// @Failure 409 {object} response.ErrorResponse "邮箱已被占用"
// @Router /users/update-account [patch]
func (h *UserHandler) UpdateAccount(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	info, err := h.userService.UpdateAccount(c.Request.Context(), user.ID, &req)
	if err != nil {
		handleUserError(c, err)
		return
	}

	response.OK(c, "Account details updated successfully", info)
}

// UpdateAvatar 更换头像
// @Summary 更换头像
// @Tags 用户
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param avatar formData file true "头像"
// @Success 200 {object} response.Response{data=dto.UserInfo} "更新成功"
// @Router /users/avatar [patch]
func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	file, _ := middleware.UploadedFile(c, "avatar")
	info, err := h.userService.UpdateAvatar(c.Request.Context(), user.ID, file)
	if err != nil {
		handleUserError(c, err)
		return
	}

	response.OK(c, "Avatar updated successfully", info)
}

// UpdateCoverImage 更换封面
// @Summary 更换封面
// @Tags 用户
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param coverImage formData file true "封面"
// @Success 200 {object} response.Response{data=dto.UserInfo} "更新成功"
// @Router /users/cover-image [patch]
func (h *UserHandler) UpdateCoverImage(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	file, _ := middleware.UploadedFile(c, "coverImage")
	info, err := h.userService.UpdateCoverImage(c.Request.Context(), user.ID, file)
	if err != nil {
		handleUserError(c, err)
		return
	}

	response.OK(c, "Cover image updated successfully", info)
}

// ListUsers 用户列表
// @Summary 用户列表
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(10)
// @Success 200 {object} response.Response{data=dto.UserListData} "获取成功"
// @Router /users/all-users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	page, limit := parsePagination(c)

	data, err := h.userService.ListUsers(c.Request.Context(), page, limit)
	if err != nil {
		handleUserError(c, err)
		return
	}

	response.OK(c, "Users fetched successfully", data)
}

func handleUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrEmailTaken):
		response.Conflict(c, err.Error())
	case errors.Is(err, service.ErrUsernameRequired),
		errors.Is(err, service.ErrEmailUnchanged),
		errors.Is(err, service.ErrFileRequired):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrMediaUploadFailed):
		mediaFailure(c, err)
	default:
		response.Abort(c, err)
	}
}
