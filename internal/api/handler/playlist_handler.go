package handler

import (
	"errors"

	"vidtube-go/internal/api/dto"
	"vidtube-go/internal/api/response"
	"vidtube-go/internal/service"

	"github.com/gin-gonic/gin"
)

type PlaylistHandler struct {
	playlistService *service.PlaylistService
}

func NewPlaylistHandler(playlistService *service.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{playlistService: playlistService}
}

// Create 创建播放列表
// @Summary 创建播放列表
// @Tags 播放列表
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePlaylistRequest true "播放列表"
// @Success 201 {object} response.Response{data=dto.PlaylistInfo} "创建成功"
// @Failure 409 {object} response.ErrorResponse "名称重复"
// @Router /playlists/create [post]
func (h *PlaylistHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.CreatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	info, err := h.playlistService.Create(c.Request.Context(), user.ID, &req)
	if err != nil {
		handlePlaylistError(c, err)
		return
	}

	response.Created(c, "Playlist created successfully", info)
}

// ListMine 我的播放列表
// @Summary 我的播放列表
// @Tags 播放列表
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=[]dto.PlaylistInfo} "获取成功"
// @Router /playlists/playlists [get]
func (h *PlaylistHandler) ListMine(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	items, err := h.playlistService.ListMine(c.Request.Context(), user.ID)
	if err != nil {
		handlePlaylistError(c, err)
		return
	}

	response.OK(c, "Playlists fetched successfully", items)
}

// Get 播放列表详情
// @Summary 播放列表详情
// @Tags 播放列表
// @Produce json
// @Security BearerAuth
// @Param id path int true "播放列表ID"
// @Success 200 {object} response.Response{data=dto.PlaylistInfo} "获取成功"
// @Failure 404 {object} response.ErrorResponse "播放列表不存在"
// @Router /playlists/p/{id} [get]
func (h *PlaylistHandler) Get(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	playlistID, ok := parseIDParam(c, "id", "Invalid playlist id")
	if !ok {
		return
	}

	info, err := h.playlistService.Get(c.Request.Context(), playlistID, user.ID)
	if err != nil {
		handlePlaylistError(c, err)
		return
	}

	response.OK(c, "Playlist fetched successfully", info)
}

// AddVideo 加入视频
// @Summary 加入视频
// @Description 按 playlistId 或 playlistName 定位播放列表，重复加入忽略
// @Tags 播放列表
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AddToPlaylistRequest true "播放列表与视频"
// @Success 200 {object} response.Response{data=dto.PlaylistInfo} "加入成功"
// @Router /playlists/playlist [post]
func (h *PlaylistHandler) AddVideo(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.AddToPlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	info, err := h.playlistService.AddVideo(c.Request.Context(), user.ID, &req)
	if err != nil {
		handlePlaylistError(c, err)
		return
	}

	response.OK(c, "Video added to playlist", info)
}

// RemoveVideo 移除视频
// @Summary 移除视频
// @Tags 播放列表
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param playlistId path int true "播放列表ID"
// @Param request body dto.RemoveFromPlaylistRequest true "视频"
// @Success 200 {object} response.Response{data=dto.PlaylistInfo} "移除成功"
// @Router /playlists/remove-video/{playlistId} [delete]
func (h *PlaylistHandler) RemoveVideo(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	playlistID, ok := parseIDParam(c, "playlistId", "Invalid playlist id")
	if !ok {
		return
	}

	var req dto.RemoveFromPlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	info, err := h.playlistService.RemoveVideo(c.Request.Context(), user.ID, playlistID, req.VideoID)
	if err != nil {
		handlePlaylistError(c, err)
		return
	}

	response.OK(c, "Video removed from playlist", info)
}

// Update 修改播放列表
// @Summary 修改播放列表
// @Tags 播放列表
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param playlistId path int true "播放列表ID"
// @Param request body dto.UpdatePlaylistRequest true "名称与描述"
// @Success 200 {object} response.Response{data=dto.PlaylistInfo} "修改成功"
// @Router /playlists/update/{playlistId} [patch]
func (h *PlaylistHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	playlistID, ok := parseIDParam(c, "playlistId", "Invalid playlist id")
	if !ok {
		return
	}

	var req dto.UpdatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	info, err := h.playlistService.Update(c.Request.Context(), user.ID, playlistID, &req)
	if err != nil {
		handlePlaylistError(c, err)
		return
	}

	response.OK(c, "Playlist updated successfully", info)
}

// Delete 删除播放列表
// @Summary 删除播放列表
// @Tags 播放列表
// @Produce json
// @Security BearerAuth
// @Param playlistId path int true "播放列表ID"
// @Success 200 {object} response.Response "删除成功"
// @Failure 404 {object} response.ErrorResponse "播放列表不存在"
// @Router /playlists/delete/{playlistId} [delete]
func (h *PlaylistHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	playlistID, ok := parseIDParam(c, "playlistId", "Invalid playlist id")
	if !ok {
		return
	}

	if err := h.playlistService.Delete(c.Request.Context(), user.ID, playlistID); err != nil {
		handlePlaylistError(c, err)
		return
	}

	response.OK(c, "Playlist deleted successfully", gin.H{})
}

func handlePlaylistError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPlaylistNotFound),
		errors.Is(err, service.ErrVideoNotFound),
		errors.Is(err, service.ErrVideoNotInPlaylist):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrPlaylistNotOwner):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, service.ErrPlaylistExists):
		response.Conflict(c, err.Error())
	case errors.Is(err, service.ErrPlaylistNameRequired),
		errors.Is(err, service.ErrPlaylistRefRequired),
		errors.Is(err, service.ErrNoFieldsToUpdate):
		response.BadRequest(c, err.Error())
	default:
		response.Abort(c, err)
	}
}
