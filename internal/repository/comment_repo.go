package repository

import (
	"context"
	"time"

	"vidtube-go/internal/model"

	"gorm.io/gorm"
)

// CommentRow 评论列表聚合结果（含作者、点赞数和当前用户的点赞状态）
type CommentRow struct {
	ID            int64
	Content       string
	VideoID       int64
	OwnerID       int64
	OwnerUsername string
	OwnerFullname string
	OwnerAvatar   string
	LikesCount    int64
	IsLiked       bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// GetByID 根据 ID 查询评论
func (r *CommentRepository) GetByID(ctx context.Context, id int64) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetByIDWithOwner 根据 ID 查询评论（含作者）
func (r *CommentRepository) GetByIDWithOwner(ctx context.Context, id int64) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.WithContext(ctx).Preload("Owner").Where("id = ?", id).First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// Create 创建评论
func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// UpdateContent 更新评论内容
func (r *CommentRepository) UpdateContent(ctx context.Context, id int64, content string) (*model.Comment, error) {
	result := r.db.WithContext(ctx).Model(&model.Comment{}).Where("id = ?", id).Update("content", content)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByIDWithOwner(ctx, id)
}

// Delete 删除评论及其点赞
func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("comment_id = ?", id).Delete(&model.Like{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&model.Comment{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// ListByVideo 分页获取视频评论，最新的在前
func (r *CommentRepository) ListByVideo(ctx context.Context, videoID, viewerID int64, skip, limit int) ([]CommentRow, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Comment{}).
		Where("video_id = ?", videoID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []CommentRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT c.id, c.content, c.video_id, c.owner_id, c.created_at, c.updated_at,
		       u.username AS owner_username, u.fullname AS owner_fullname, u.avatar_url AS owner_avatar,
		       (SELECT COUNT(*) FROM likes l WHERE l.comment_id = c.id) AS likes_count,
		       EXISTS (SELECT 1 FROM likes l WHERE l.comment_id = c.id AND l.liked_by = ?) AS is_liked
		FROM comments c
		JOIN users u ON u.id = c.owner_id
		WHERE c.video_id = ?
		ORDER BY c.created_at DESC, c.id DESC
		OFFSET ? LIMIT ?`, viewerID, videoID, skip, limit).Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
