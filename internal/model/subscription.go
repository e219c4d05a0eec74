package model

import "time"

// Subscription 订阅关系：subscriber 订阅 channel
type Subscription struct {
	ID           int64     `gorm:"primaryKey;autoIncrement;comment:订阅关系ID" json:"id"`
	SubscriberID int64     `gorm:"not null;uniqueIndex:uq_subscriptions_pair,priority:1;index:idx_subscriber_id;comment:订阅者ID" json:"subscriber"`
	ChannelID    int64     `gorm:"not null;uniqueIndex:uq_subscriptions_pair,priority:2;index:idx_channel_id;comment:频道用户ID" json:"channel"`
	CreatedAt    time.Time `gorm:"autoCreateTime;index:idx_subscriptions_created_at;comment:订阅时间" json:"createdAt"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
