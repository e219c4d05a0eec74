package dto

import "time"

// CommentRequest 发表/修改评论
type CommentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=1000"`
}

// CommentInfo 评论信息
type CommentInfo struct {
	ID         int64       `json:"id"`
	Content    string      `json:"content"`
	VideoID    int64       `json:"video"`
	Owner      *OwnerBrief `json:"owner"`
	LikesCount int64       `json:"likesCount"`
	IsLiked    bool        `json:"isLiked"`
	IsOwner    bool        `json:"isOwner"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

// CommentListData 评论列表
type CommentListData struct {
	Comments   []CommentInfo `json:"comments"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	TotalPages int64         `json:"totalPages"`
}
