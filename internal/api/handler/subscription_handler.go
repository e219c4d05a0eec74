package handler

import (
	"errors"

	"vidtube-go/internal/api/dto"
	"vidtube-go/internal/api/response"
	"vidtube-go/internal/service"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	subscriptionService *service.SubscriptionService
}

func NewSubscriptionHandler(subscriptionService *service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

// Toggle 订阅/取消订阅
// @Summary 订阅切换
// @Tags 订阅
// @Produce json
// @Security BearerAuth
// @Param channelId path int true "频道用户ID"
// @Success 200 {object} response.Response{data=dto.SubscriptionData} "操作成功"
// @Failure 400 {object} response.ErrorResponse "不能订阅自己"
// @Failure 404 {object} response.ErrorResponse "频道不存在"
// @Router /subscriptions/c/{channelId} [post]
func (h *SubscriptionHandler) Toggle(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	channelID, ok := parseIDParam(c, "channelId", "Invalid channel id")
	if !ok {
		return
	}

	data, err := h.subscriptionService.Toggle(c.Request.Context(), user.ID, channelID)
	if err != nil {
		handleSubscriptionError(c, err)
		return
	}

	message := "Unsubscribed successfully"
	if data.Subscribed {
		message = "Subscribed successfully"
	}
	response.OK(c, message, data)
}

// Subscribe 订阅频道
// @Summary 订阅频道
// @Tags 订阅
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ChannelRequest true "频道"
// @Success 201 {object} response.Response{data=dto.SubscriptionData} "订阅成功"
// @Failure 409 {object} response.ErrorResponse "已订阅"
// @Router /subscriptions/c [post]
func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.ChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	data, err := h.subscriptionService.Subscribe(c.Request.Context(), user.ID, req.ChannelID)
	if err != nil {
		handleSubscriptionError(c, err)
		return
	}

	response.Created(c, "Subscribed successfully", data)
}

// Unsubscribe 取消订阅
// @Summary 取消订阅
// @Tags 订阅
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ChannelRequest true "频道"
// @Success 200 {object} response.Response{data=dto.SubscriptionData} "取消成功"
// @Failure 404 {object} response.ErrorResponse "未订阅"
// @Router /subscriptions/c [delete]
func (h *SubscriptionHandler) Unsubscribe(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.ChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	data, err := h.subscriptionService.Unsubscribe(c.Request.Context(), user.ID, req.ChannelID)
	if err != nil {
		handleSubscriptionError(c, err)
		return
	}

	response.OK(c, "Unsubscribed successfully", data)
}

// ListSubscribedChannels 我订阅的频道
// @Summary 我订阅的频道
// @Tags 订阅
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(10)
// @Success 200 {object} response.Response{data=dto.UserListData} "获取成功"
// @Router /subscriptions/c [get]
func (h *SubscriptionHandler) ListSubscribedChannels(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	page, limit := parsePagination(c)

	data, err := h.subscriptionService.ListSubscribedChannels(c.Request.Context(), user.ID, page, limit)
	if err != nil {
		handleSubscriptionError(c, err)
		return
	}

	response.OK(c, "Subscribed channels fetched successfully", data)
}

// ListSubscribers 频道订阅者
// @Summary 频道订阅者
// @Tags 订阅
// @Produce json
// @Security BearerAuth
// @Param channelId path int true "频道用户ID"
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(10)
// @Success 200 {object} response.Response{data=dto.UserListData} "获取成功"
// @Router /subscriptions/u/{channelId} [get]
func (h *SubscriptionHandler) ListSubscribers(c *gin.Context) {
	channelID, ok := parseIDParam(c, "channelId", "Invalid channel id")
	if !ok {
		return
	}
	page, limit := parsePagination(c)

	data, err := h.subscriptionService.ListSubscribers(c.Request.Context(), channelID, page, limit)
	if err != nil {
		handleSubscriptionError(c, err)
		return
	}

	response.OK(c, "Subscribers fetched successfully", data)
}

func handleSubscriptionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSelfSubscription):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrChannelNotFound),
		errors.Is(err, service.ErrNotSubscribed):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrAlreadySubscribed):
		response.Conflict(c, err.Error())
	default:
		response.Abort(c, err)
	}
}
