package handler

import (
	"errors"

	"vidtube-go/internal/api/dto"
	"vidtube-go/internal/api/middleware"
	"vidtube-go/internal/api/response"
	"vidtube-go/internal/service"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	videoService *service.VideoService
}

func NewVideoHandler(videoService *service.VideoService) *VideoHandler {
	return &VideoHandler{videoService: videoService}
}

// GetFeed 视频列表
// @Summary 视频列表
// @Description 已公开视频分页，userId 为本人时包含未公开视频
// @Tags 视频
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(10)
// @Param userId query int false "作者ID"
// @Param sortBy query string false "排序字段: createdAt, views, duration, title"
// @Param sortType query string false "排序方向: asc, desc"
// @Success 200 {object} response.Response{data=dto.VideoListData} "获取成功"
// @Router /videos/feed [get]
func (h *VideoHandler) GetFeed(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var q dto.VideoFeedQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BindError(c, err)
		return
	}
	page, limit := parsePagination(c)

	data, err := h.videoService.ListFeed(c.Request.Context(), user.ID, page, limit, &q)
	if err != nil {
		handleVideoError(c, err)
		return
	}

	response.OK(c, "Videos fetched successfully", data)
}

// GetVideo 视频详情
// @Summary 视频详情
// @Description 非作者观看时播放量 +1 并写入观看历史
// @Tags 视频
// @Produce json
// @Security BearerAuth
// @Param videoId path int true "视频ID"
// @Success 200 {object} response.Response{data=dto.VideoDetail} "获取成功"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /videos/{videoId} [get]
func (h *VideoHandler) GetVideo(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	videoID, ok := parseIDParam(c, "videoId", "Invalid video id")
	if !ok {
		return
	}

	detail, err := h.videoService.GetVideo(c.Request.Context(), videoID, user.ID)
	if err != nil {
		handleVideoError(c, err)
		return
	}

	response.OK(c, "Video fetched successfully", detail)
}

// Upload 上传视频
// @Summary 上传视频
// @Tags 视频
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "标题"
// @Param description formData string false "描述"
// @Param duration formData number false "时长（秒）"
// @Param isPublished formData bool false "是否公开"
// @Param video formData file true "视频文件"
// @Param thumbnail formData file true "封面"
// @Success 201 {object} response.Response{data=dto.VideoInfo} "上传成功"
// @Failure 400 {object} response.ErrorResponse "缺少文件或参数"
// @Router /videos/upload [post]
func (h *VideoHandler) Upload(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.VideoUploadRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BindError(c, err)
		return
	}

	videoFile, _ := middleware.UploadedFile(c, "video")
	thumbnail, _ := middleware.UploadedFile(c, "thumbnail")

	info, err := h.videoService.Upload(c.Request.Context(), user, &req, videoFile, thumbnail)
	if err != nil {
		handleVideoError(c, err)
		return
	}

	response.Created(c, "Video uploaded successfully", info)
}

// Update 更新视频
// @Summary 更新视频
// @Description 修改标题、描述，可一并上传新封面；仅作者可操作
// @Tags 视频
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param videoId path int true "视频ID"
// @Param title formData string false "标题"
// @Param description formData string false "描述"
// @Param thumbnail formData file false "封面"
// @Success 200 {object} response.Response{data=dto.VideoInfo} "更新成功"
// @Failure 401 {object} response.ErrorResponse "不是作者"
// @Router /videos/update-video/{videoId} [patch]
func (h *VideoHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	videoID, ok := parseIDParam(c, "videoId", "Invalid video id")
	if !ok {
		return
	}

	var req dto.VideoUpdateRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBind(&req); err != nil {
			response.BindError(c, err)
			return
		}
	}
	thumbnail, _ := middleware.UploadedFile(c, "thumbnail")

	info, err := h.videoService.Update(c.Request.Context(), videoID, user.ID, &req, thumbnail)
	if err != nil {
		handleVideoError(c, err)
		return
	}

	response.OK(c, "Video updated successfully", info)
}

// TogglePublish 切换公开状态
// @Summary 切换公开状态
// @Tags 视频
// @Produce json
// @Security BearerAuth
// @Param videoId path int true "视频ID"
// @Success 200 {object} response.Response{data=dto.VideoInfo} "切换成功"
// @Router /videos/toggle/publish/{videoId} [patch]
func (h *VideoHandler) TogglePublish(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	videoID, ok := parseIDParam(c, "videoId", "Invalid video id")
	if !ok {
		return
	}

	info, err := h.videoService.TogglePublish(c.Request.Context(), videoID, user.ID)
	if err != nil {
		handleVideoError(c, err)
		return
	}

	response.OK(c, "Publish status toggled", info)
}

// Delete 删除视频
// @Summary 删除视频
// @Tags 视频
// @Produce json
// @Security BearerAuth
// @Param videoId path int true "视频ID"
// @Success 200 {object} response.Response "删除成功"
// @Failure 401 {object} response.ErrorResponse "不是作者"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /videos/{videoId} [delete]
func (h *VideoHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	videoID, ok := parseIDParam(c, "videoId", "Invalid video id")
	if !ok {
		return
	}

	if err := h.videoService.Delete(c.Request.Context(), videoID, user.ID); err != nil {
		handleVideoError(c, err)
		return
	}

	response.OK(c, "Video deleted successfully", gin.H{})
}

func handleVideoError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrVideoNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrVideoNotOwner):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, service.ErrVideoFilesRequired),
		errors.Is(err, service.ErrNoFieldsToUpdate),
		errors.Is(err, service.ErrInvalidUserID):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrMediaUploadFailed):
		mediaFailure(c, err)
	default:
		response.Abort(c, err)
	}
}
