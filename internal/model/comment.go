package model

import "time"

// Comment 评论模型
type Comment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:评论ID" json:"id"`
	OwnerID   int64     `gorm:"not null;index:idx_comments_owner_id;comment:评论用户ID" json:"owner"`
	VideoID   int64     `gorm:"not null;index:idx_composite_video_created,priority:1;comment:被评论视频ID" json:"video"`
	Content   string    `gorm:"type:text;not null;comment:评论内容" json:"content"`
	LikeCount int64     `gorm:"not null;default:0;comment:评论点赞数" json:"likeCount"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_composite_video_created,priority:2;comment:评论时间" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;comment:更新时间" json:"updatedAt"`

	// 关联关系
	Owner User `gorm:"foreignKey:OwnerID" json:"-"`
}

func (Comment) TableName() string {
	return "comments"
}
