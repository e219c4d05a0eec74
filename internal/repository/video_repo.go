package repository

import (
	"context"

	"vidtube-go/internal/model"
	"vidtube-go/pkg/utils"

	"gorm.io/gorm"
)

// VideoQuery 视频列表查询条件
type VideoQuery struct {
	Skip     int
	Limit    int
	OwnerID  *int64
	ViewerID int64 // 作者本人可以看到自己未公开的视频
	Title    string
	SortBy   string // created_at / views / duration / title
	SortDesc bool
}

var videoSortColumns = map[string]string{
	"createdAt": "created_at",
	"views":     "views",
	"duration":  "duration",
	"title":     "title",
}

type VideoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

// GetByID 根据 ID 获取视频
func (r *VideoRepository) GetByID(ctx context.Context, id int64) (*model.Video, error) {
	var video model.Video
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&video).Error; err != nil {
		return nil, err
	}
	return &video, nil
}

// GetByIDWithOwner 根据 ID 获取视频（含作者信息）
func (r *VideoRepository) GetByIDWithOwner(ctx context.Context, id int64) (*model.Video, error) {
	var video model.Video
	if err := r.db.WithContext(ctx).Preload("Owner").Where("id = ?", id).First(&video).Error; err != nil {
		return nil, err
	}
	return &video, nil
}

// GetByIDsWithOwner 批量查询视频（含作者信息），顺序不保证
func (r *VideoRepository) GetByIDsWithOwner(ctx context.Context, ids []int64) ([]model.Video, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var videos []model.Video
	err := r.db.WithContext(ctx).Preload("Owner").Where("id IN ?", ids).Find(&videos).Error
	return videos, err
}

// Create 创建视频记录
func (r *VideoRepository) Create(ctx context.Context, video *model.Video) error {
	return r.db.WithContext(ctx).Create(video).Error
}

// Update 更新视频字段
func (r *VideoRepository) Update(ctx context.Context, id int64, updates map[string]interface{}) (*model.Video, error) {
	result := r.db.WithContext(ctx).Model(&model.Video{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByIDWithOwner(ctx, id)
}

// List 视频列表查询（分页、筛选、排序）
func (r *VideoRepository) List(ctx context.Context, q VideoQuery) ([]model.Video, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Video{})

	if q.ViewerID != 0 {
		query = query.Where("(is_published = ? OR owner_id = ?)", true, q.ViewerID)
	} else {
		query = query.Where("is_published = ?", true)
	}
	if q.OwnerID != nil {
		query = query.Where("owner_id = ?", *q.OwnerID)
	}
	if q.Title != "" {
		query = query.Where(`LOWER(title) LIKE LOWER(?) ESCAPE '\'`, utils.ContainsPattern(q.Title))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := videoSortColumns[q.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := " ASC"
	if q.SortDesc {
		direction = " DESC"
	}

	var videos []model.Video
	err := query.Preload("Owner").
		Order(column + direction).Order("id" + direction).
		Offset(q.Skip).Limit(q.Limit).
		Find(&videos).Error
	if err != nil {
		return nil, 0, err
	}
	return videos, total, nil
}

// RecordView 非作者观看：播放量 +1，并在观看历史中追加（已存在则忽略）
func (r *VideoRepository) RecordView(ctx context.Context, videoID, viewerID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Video{}).Where("id = ?", videoID).
			UpdateColumn("views", gorm.Expr("views + 1"))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return appendWatchHistory(tx, viewerID, videoID)
	})
}

// DeleteCascade 删除视频及其点赞、评论、评论点赞、观看历史和播放列表关联
func (r *VideoRepository) DeleteCascade(ctx context.Context, videoID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		commentIDs := tx.Model(&model.Comment{}).Select("id").Where("video_id = ?", videoID)
		if err := tx.Where("comment_id IN (?)", commentIDs).Delete(&model.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", videoID).Delete(&model.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", videoID).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", videoID).Delete(&model.WatchHistory{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", videoID).Delete(&model.PlaylistVideo{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", videoID).Delete(&model.Video{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// ListPublishedForIndex 分批读取已公开视频，用于重建搜索索引
func (r *VideoRepository) ListPublishedForIndex(ctx context.Context, afterID int64, limit int) ([]model.Video, error) {
	var videos []model.Video
	err := r.db.WithContext(ctx).Preload("Owner").
		Where("is_published = ? AND id > ?", true, afterID).
		Order("id ASC").Limit(limit).
		Find(&videos).Error
	return videos, err
}
