package model

import "time"

// User 用户模型
type User struct {
	ID            int64     `gorm:"primaryKey;autoIncrement;comment:用户标识" json:"id"`
	Username      string    `gorm:"size:64;not null;uniqueIndex;comment:用户名（小写）" json:"username"`
	Email         string    `gorm:"size:255;not null;uniqueIndex;comment:邮箱（小写）" json:"email"`
	Fullname      string    `gorm:"size:255;not null;comment:全名" json:"fullname"`
	AvatarURL     string    `gorm:"size:500;not null;comment:头像地址" json:"avatar"`
	AvatarID      string    `gorm:"size:255;comment:头像对象ID" json:"-"`
	CoverImageURL string    `gorm:"size:500;comment:封面地址" json:"coverImage"`
	CoverImageID  string    `gorm:"size:255;comment:封面对象ID" json:"-"`
	Password      string    `gorm:"size:255;not null;comment:密码哈希" json:"-"`
	RefreshToken  string    `gorm:"type:text;comment:当前有效的 refresh token" json:"-"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// 关联关系
	Videos []Video `gorm:"foreignKey:OwnerID" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// WatchHistory 观看历史，同一用户同一视频只记录一次，按写入顺序排列
type WatchHistory struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:uq_watch_histories_user_video,priority:1;comment:观看者ID" json:"userId"`
	VideoID   int64     `gorm:"not null;uniqueIndex:uq_watch_histories_user_video,priority:2;index;comment:视频ID" json:"videoId"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (WatchHistory) TableName() string {
	return "watch_histories"
}
