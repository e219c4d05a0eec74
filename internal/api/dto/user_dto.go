package dto

import "time"

// UpdateAccountRequest 更新账户信息
type UpdateAccountRequest struct {
	Fullname string `json:"fullname" binding:"required,min=1,max=255"`
	Email    string `json:"email" binding:"required,email,max=255"`
}

// UserInfo 用户信息（不含密码和 refresh token）
type UserInfo struct {
	ID         int64     `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Fullname   string    `json:"fullname"`
	Avatar     string    `json:"avatar"`
	CoverImage string    `json:"coverImage"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// OwnerBrief 嵌套在视频、评论中的作者信息
type OwnerBrief struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
	Avatar   string `json:"avatar"`
}

// ChannelProfile 频道主页
type ChannelProfile struct {
	ID                        int64  `json:"id"`
	Username                  string `json:"username"`
	Fullname                  string `json:"fullname"`
	Email                     string `json:"email"`
	Avatar                    string `json:"avatar"`
	CoverImage                string `json:"coverImage"`
	SubscribersCount          int64  `json:"subscribersCount"`
	ChannelsSubscribedToCount int64  `json:"channelsSubscribedToCount"`
	IsSubscribed              bool   `json:"isSubscribed"`
}

// UserListData 用户列表
type UserListData struct {
	Users      []OwnerBrief `json:"users"`
	Total      int64        `json:"total"`
	Page       int          `json:"page"`
	Limit      int          `json:"limit"`
	TotalPages int64        `json:"totalPages"`
}
