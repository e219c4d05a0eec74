package dto

import "time"

// CreatePlaylistRequest 创建播放列表
type CreatePlaylistRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"max=1000"`
}

// UpdatePlaylistRequest 更新播放列表
type UpdatePlaylistRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
}

// AddToPlaylistRequest 按 ID 或名称定位播放列表
type AddToPlaylistRequest struct {
	PlaylistID   int64  `json:"playlistId" binding:"omitempty,gt=0"`
	PlaylistName string `json:"playlistName" binding:"omitempty,max=100"`
	VideoID      int64  `json:"videoId" binding:"required,gt=0"`
}

// RemoveFromPlaylistRequest 从播放列表移除视频
type RemoveFromPlaylistRequest struct {
	VideoID int64 `json:"videoId" binding:"required,gt=0"`
}

// PlaylistInfo 播放列表信息
type PlaylistInfo struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	OwnerID     int64       `json:"owner"`
	Videos      []VideoInfo `json:"videos"`
	TotalVideos int         `json:"totalVideos"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}
