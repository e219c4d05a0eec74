package dto

import "time"

// VideoFeedQuery 视频列表查询参数
type VideoFeedQuery struct {
	UserID   string `form:"userId"`
	SortBy   string `form:"sortBy" binding:"omitempty,oneof=createdAt views duration title"`
	SortType string `form:"sortType" binding:"omitempty,oneof=asc desc"`
}

// VideoUploadRequest 视频上传请求（multipart/form-data）
type VideoUploadRequest struct {
	Title       string  `form:"title" binding:"required,min=1,max=200"`
	Description string  `form:"description" binding:"max=5000"`
	Duration    float64 `form:"duration" binding:"gte=0"`
	IsPublished *bool   `form:"isPublished"`
}

// VideoUpdateRequest 视频更新请求，thumbnail 可通过 multipart 一并上传
type VideoUpdateRequest struct {
	Title       *string `form:"title" json:"title" binding:"omitempty,min=1,max=200"`
	Description *string `form:"description" json:"description" binding:"omitempty,max=5000"`
}

// VideoInfo 视频信息
type VideoInfo struct {
	ID          int64       `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	VideoFile   string      `json:"videoFile"`
	Thumbnail   string      `json:"thumbnail"`
	Duration    float64     `json:"duration"`
	Views       int64       `json:"views"`
	IsPublished bool        `json:"isPublished"`
	LikesCount  int64       `json:"likesCount"`
	Owner       *OwnerBrief `json:"owner,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// VideoDetail 视频详情，附带当前用户视角的状态
type VideoDetail struct {
	VideoInfo
	IsLiked bool `json:"isLiked"`
	IsOwner bool `json:"isOwner"`
}

// VideoListData 视频列表响应数据
type VideoListData struct {
	Videos     []VideoInfo `json:"videos"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	TotalPages int64       `json:"totalPages"`
}
