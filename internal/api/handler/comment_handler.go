package handler

import (
	"errors"

	"vidtube-go/internal/api/dto"
	"vidtube-go/internal/api/response"
	"vidtube-go/internal/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// ListByVideo 视频评论列表
// @Summary 视频评论列表
// @Description 最新在前，超出最后一页返回空列表
// @Tags 评论
// @Produce json
// @Security BearerAuth
// @Param videoId path int true "视频ID"
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(10)
// @Success 200 {object} response.Response{data=dto.CommentListData} "获取成功"
// @Failure 404 {object} response.ErrorResponse "视频不存在"
// @Router /comments/comments/{videoId} [get]
func (h *CommentHandler) ListByVideo(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	videoID, ok := parseIDParam(c, "videoId", "Invalid video id")
	if !ok {
		return
	}
	page, limit := parsePagination(c)

	data, err := h.commentService.ListComments(c.Request.Context(), videoID, user.ID, page, limit)
	if err != nil {
		handleCommentError(c, err)
		return
	}

	response.OK(c, "Comments fetched successfully", data)
}

// Add 发表评论
// @Summary 发表评论
// @Tags 评论
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param videoId path int true "视频ID"
// @Param request body dto.CommentRequest true "评论内容"
// @Success 201 {object} response.Response{data=dto.CommentInfo} "发表成功"
// @Router /comments/add/{videoId} [post]
func (h *CommentHandler) Add(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	videoID, ok := parseIDParam(c, "videoId", "Invalid video id")
	if !ok {
		return
	}

	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	info, err := h.commentService.AddComment(c.Request.Context(), videoID, user, req.Content)
	if err != nil {
		handleCommentError(c, err)
		return
	}

	response.Created(c, "Comment added successfully", info)
}

// Update 修改评论
// @Summary 修改评论
// @Tags 评论
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "评论ID"
// @Param request body dto.CommentRequest true "评论内容"
// @Success 200 {object} response.Response{data=dto.CommentInfo} "修改成功"
// @Failure 401 {object} response.ErrorResponse "不是作者"
// @Router /comments/update/{id} [patch]
func (h *CommentHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	commentID, ok := parseIDParam(c, "id", "Invalid comment id")
	if !ok {
		return
	}

	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	info, err := h.commentService.UpdateComment(c.Request.Context(), commentID, user, req.Content)
	if err != nil {
		handleCommentError(c, err)
		return
	}

	response.OK(c, "Comment updated successfully", info)
}

// Delete 删除评论
// @Summary 删除评论
// @Tags 评论
// @Produce json
// @Security BearerAuth
// @Param id path int true "评论ID"
// @Success 200 {object} response.Response "删除成功"
// @Failure 404 {object} response.ErrorResponse "评论不存在"
// @Router /comments/delete/{id} [delete]
func (h *CommentHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	commentID, ok := parseIDParam(c, "id", "Invalid comment id")
	if !ok {
		return
	}

	if err := h.commentService.DeleteComment(c.Request.Context(), commentID, user.ID); err != nil {
		handleCommentError(c, err)
		return
	}

	response.OK(c, "Comment deleted successfully", gin.H{})
}

func handleCommentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCommentNotFound),
		errors.Is(err, service.ErrVideoNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrCommentNotOwner):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, service.ErrCommentEmpty),
		errors.Is(err, service.ErrCommentTooLong):
		response.BadRequest(c, err.Error())
	default:
		response.Abort(c, err)
	}
}
