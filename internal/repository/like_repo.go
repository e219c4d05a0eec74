package repository

import (
	"context"

	"vidtube-go/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

// ToggleVideoLike 切换视频点赞状态，返回切换后的状态和最新点赞数
func (r *LikeRepository) ToggleVideoLike(ctx context.Context, videoID, userID int64) (bool, int64, error) {
	return r.toggle(ctx, "video_id", videoID, userID, func(l *model.Like) { l.VideoID = &videoID }, nil)
}

// ToggleCommentLike 切换评论点赞状态，并把最新点赞数写回 comments.like_count
func (r *LikeRepository) ToggleCommentLike(ctx context.Context, commentID, userID int64) (bool, int64, error) {
	syncCount := func(tx *gorm.DB, count int64) error {
		return tx.Model(&model.Comment{}).Where("id = ?", commentID).
			UpdateColumn("like_count", count).Error
	}
	return r.toggle(ctx, "comment_id", commentID, userID, func(l *model.Like) { l.CommentID = &commentID }, syncCount)
}

// toggle 先删后插：删除成功即为取消点赞，否则插入（唯一索引冲突时忽略）
func (r *LikeRepository) toggle(
	ctx context.Context,
	column string,
	targetID, userID int64,
	setTarget func(*model.Like),
	afterCount func(tx *gorm.DB, count int64) error,
) (bool, int64, error) {
	var (
		liked bool
		count int64
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where(column+" = ? AND liked_by = ?", targetID, userID).Delete(&model.Like{})
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			like := &model.Like{LikedBy: userID}
			setTarget(like)
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(like).Error; err != nil {
				return err
			}
			liked = true
		}

		if err := tx.Model(&model.Like{}).Where(column+" = ?", targetID).Count(&count).Error; err != nil {
			return err
		}
		if afterCount != nil {
			return afterCount(tx, count)
		}
		return nil
	})
	if err != nil {
		return false, 0, err
	}
	return liked, count, nil
}

// CountByVideo 统计视频的点赞数
func (r *LikeRepository) CountByVideo(ctx context.Context, videoID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Like{}).Where("video_id = ?", videoID).Count(&count).Error
	return count, err
}

// IsVideoLiked 当前用户是否已点赞该视频
func (r *LikeRepository) IsVideoLiked(ctx context.Context, videoID, userID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Like{}).
		Where("video_id = ? AND liked_by = ?", videoID, userID).Count(&count).Error
	return count > 0, err
}

// CountByVideos 批量统计视频点赞数
func (r *LikeRepository) CountByVideos(ctx context.Context, videoIDs []int64) (map[int64]int64, error) {
	result := make(map[int64]int64, len(videoIDs))
	if len(videoIDs) == 0 {
		return result, nil
	}

	var rows []struct {
		VideoID int64
		Total   int64
	}
	err := r.db.WithContext(ctx).Model(&model.Like{}).
		Select("video_id, COUNT(*) AS total").
		Where("video_id IN ?", videoIDs).
		Group("video_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.VideoID] = row.Total
	}
	return result, nil
}

// ListLikedVideos 用户点赞过的视频，最近点赞的在前；他人未发布的视频不返回
func (r *LikeRepository) ListLikedVideos(ctx context.Context, userID int64, skip, limit int) ([]model.Video, int64, error) {
	visible := "(videos.is_published = ? OR videos.owner_id = ?)"

	var total int64
	err := r.db.WithContext(ctx).Model(&model.Like{}).
		Joins("JOIN videos ON videos.id = likes.video_id").
		Where("likes.liked_by = ?", userID).
		Where(visible, true, userID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var videos []model.Video
	err = r.db.WithContext(ctx).
		Joins("JOIN likes l ON l.video_id = videos.id").
		Where("l.liked_by = ?", userID).
		Where(visible, true, userID).
		Order("l.created_at DESC").Order("l.id DESC").
		Offset(skip).Limit(limit).
		Preload("Owner").
		Find(&videos).Error
	if err != nil {
		return nil, 0, err
	}
	return videos, total, nil
}
