package dto

// ChannelRequest 订阅/取消订阅请求体
type ChannelRequest struct {
	ChannelID int64 `json:"channelId" binding:"required,gt=0"`
}

// SubscriptionData 订阅状态
type SubscriptionData struct {
	Subscribed       bool  `json:"subscribed"`
	SubscribersCount int64 `json:"subscribersCount"`
}
