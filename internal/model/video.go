package model

import "time"

// Video 视频模型
type Video struct {
	ID           int64     `gorm:"primaryKey;autoIncrement;comment:视频标识" json:"id"`
	OwnerID      int64     `gorm:"not null;index:idx_videos_owner_id;comment:上传者ID" json:"owner"`
	Title        string    `gorm:"size:200;not null;comment:视频标题" json:"title"`
	Description  string    `gorm:"type:text;comment:视频描述" json:"description"`
	VideoFileURL string    `gorm:"size:500;not null;comment:视频文件地址" json:"videoFile"`
	VideoFileID  string    `gorm:"size:255;comment:视频文件对象ID" json:"-"`
	ThumbnailURL string    `gorm:"size:500;not null;comment:封面地址" json:"thumbnail"`
	ThumbnailID  string    `gorm:"size:255;comment:封面对象ID" json:"-"`
	Duration     float64   `gorm:"not null;default:0;comment:视频时长（秒）" json:"duration"`
	Views        int64     `gorm:"not null;default:0;comment:播放量" json:"views"`
	IsPublished  bool      `gorm:"not null;index:idx_videos_published;comment:是否公开" json:"isPublished"`
	CreatedAt    time.Time `gorm:"autoCreateTime;index:idx_videos_created_at" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// 关联关系
	Owner User `gorm:"foreignKey:OwnerID" json:"-"`
}

func (Video) TableName() string {
	return "videos"
}
