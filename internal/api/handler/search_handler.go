package handler

import (
	"errors"

	"vidtube-go/internal/api/response"
	"vidtube-go/internal/service"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	searchService *service.SearchService
}

func NewSearchHandler(searchService *service.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// SearchVideos 搜索视频
// @Summary 搜索视频
// @Description 标题子串匹配（不区分大小写，通配符按字面处理）
// @Tags 搜索
// @Produce json
// @Security BearerAuth
// @Param query query string true "搜索关键词"
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(10)
// @Success 200 {object} response.Response{data=dto.VideoListData} "搜索成功"
// @Failure 400 {object} response.ErrorResponse "关键词为空"
// @Router /videos/search [get]
func (h *SearchHandler) SearchVideos(c *gin.Context) {
	page, limit := parsePagination(c)

	data, err := h.searchService.SearchVideos(c.Request.Context(), c.Query("query"), page, limit)
	if err != nil {
		if errors.Is(err, service.ErrEmptySearchQuery) {
			response.BadRequest(c, err.Error())
			return
		}
		response.Abort(c, err)
		return
	}

	response.OK(c, "Videos fetched successfully", data)
}
