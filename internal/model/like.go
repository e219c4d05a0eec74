package model

import "time"

// Like 点赞记录，目标为视频、评论或 tweet 之一
type Like struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;comment:点赞记录ID" json:"id"`
	VideoID   *int64    `gorm:"uniqueIndex:uq_likes_video_user,priority:1;check:chk_likes_single_target,num_nonnulls(video_id, comment_id, tweet_id) = 1;comment:被点赞视频ID" json:"video,omitempty"`
	CommentID *int64    `gorm:"uniqueIndex:uq_likes_comment_user,priority:1;comment:被点赞评论ID" json:"comment,omitempty"`
	TweetID   *int64    `gorm:"uniqueIndex:uq_likes_tweet_user,priority:1;comment:被点赞tweet ID" json:"tweet,omitempty"`
	LikedBy   int64     `gorm:"not null;uniqueIndex:uq_likes_video_user,priority:2;uniqueIndex:uq_likes_comment_user,priority:2;uniqueIndex:uq_likes_tweet_user,priority:2;index:idx_likes_liked_by;comment:点赞用户ID" json:"likedBy"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_likes_created_at;comment:点赞时间" json:"createdAt"`
}

func (Like) TableName() string {
	return "likes"
}
