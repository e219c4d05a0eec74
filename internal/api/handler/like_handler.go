package handler

import (
	"errors"

	"vidtube-go/internal/api/response"
	"vidtube-go/internal/service"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	likeService *service.LikeService
}

func NewLikeHandler(likeService *service.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// ToggleVideoLike 视频点赞/取消点赞
// @Summary 视频点赞切换
// @Tags 点赞
// @Produce json
// @Security BearerAuth
// @Param videoId path int true "视频ID"
// @Success 200 {object} response.Response{data=dto.ToggleLikeData} "操作成功"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /likes/video/{videoId} [post]
func (h *LikeHandler) ToggleVideoLike(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	videoID, ok := parseIDParam(c, "videoId", "Invalid video id")
	if !ok {
		return
	}

	data, err := h.likeService.ToggleVideoLike(c.Request.Context(), videoID, user.ID)
	if err != nil {
		handleLikeError(c, err)
		return
	}

	response.OK(c, likeMessage(data.Liked), data)
}

// ToggleCommentLike 评论点赞/取消点赞
// @Summary 评论点赞切换
// @Tags 点赞
// @Produce json
// @Security BearerAuth
// @Param id path int true "评论ID"
// @Success 200 {object} response.Response{data=dto.ToggleLikeData} "操作成功"
// @Failure 404 {object} response.ErrorResponse "评论不存在"
// @Router /likes/like/{id} [post]
func (h *LikeHandler) ToggleCommentLike(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	commentID, ok := parseIDParam(c, "id", "Invalid comment id")
	if !ok {
		return
	}

	data, err := h.likeService.ToggleCommentLike(c.Request.Context(), commentID, user.ID)
	if err != nil {
		handleLikeError(c, err)
		return
	}

	response.OK(c, likeMessage(data.Liked), data)
}

// ListLikedVideos 我点赞的视频
// @Summary 我点赞的视频
// @Tags 点赞
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(10)
// @Success 200 {object} response.Response{data=dto.VideoListData} "获取成功"
// @Router /likes/liked-videos [get]
func (h *LikeHandler) ListLikedVideos(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	page, limit := parsePagination(c)

	data, err := h.likeService.ListLikedVideos(c.Request.Context(), user.ID, page, limit)
	if err != nil {
		handleLikeError(c, err)
		return
	}

	response.OK(c, "Liked videos fetched successfully", data)
}

func likeMessage(liked bool) string {
	if liked {
		return "Liked successfully"
	}
	return "Unliked successfully"
}

func handleLikeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrVideoNotFound),
		errors.Is(err, service.ErrCommentNotFound):
		response.NotFound(c, err.Error())
	default:
		response.Abort(c, err)
	}
}
