package model

import "time"

// Playlist 播放列表，同一用户下名称唯一
type Playlist struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;comment:播放列表ID" json:"id"`
	OwnerID     int64     `gorm:"not null;uniqueIndex:uq_playlists_owner_name,priority:1;comment:创建者ID" json:"owner"`
	Name        string    `gorm:"size:100;not null;uniqueIndex:uq_playlists_owner_name,priority:2;comment:名称" json:"name"`
	Description string    `gorm:"type:text;comment:描述" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Playlist) TableName() string {
	return "playlists"
}

// PlaylistVideo 播放列表与视频的关联
type PlaylistVideo struct {
	PlaylistID int64     `gorm:"primaryKey;comment:播放列表ID" json:"playlistId"`
	VideoID    int64     `gorm:"primaryKey;index;comment:视频ID" json:"videoId"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (PlaylistVideo) TableName() string {
	return "playlist_videos"
}
