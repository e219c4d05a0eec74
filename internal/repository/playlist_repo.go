package repository

import (
	"context"

	"vidtube-go/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PlaylistRepository struct {
	db *gorm.DB
}

func NewPlaylistRepository(db *gorm.DB) *PlaylistRepository {
	return &PlaylistRepository{db: db}
}

// GetByID 根据 ID 查询播放列表
func (r *PlaylistRepository) GetByID(ctx context.Context, id int64) (*model.Playlist, error) {
	var playlist model.Playlist
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&playlist).Error; err != nil {
		return nil, err
	}
	return &playlist, nil
}

// GetByOwnerAndName 按名称查找当前用户的播放列表
func (r *PlaylistRepository) GetByOwnerAndName(ctx context.Context, ownerID int64, name string) (*model.Playlist, error) {
	var playlist model.Playlist
	err := r.db.WithContext(ctx).Where("owner_id = ? AND name = ?", ownerID, name).First(&playlist).Error
	if err != nil {
		return nil, err
	}
	return &playlist, nil
}

// ExistsByName 检查同一用户下是否已有同名播放列表（可排除自身）
func (r *PlaylistRepository) ExistsByName(ctx context.Context, ownerID int64, name string, excludeID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Playlist{}).
		Where("owner_id = ? AND name = ? AND id <> ?", ownerID, name, excludeID).
		Count(&count).Error
	return count > 0, err
}

// Create 创建播放列表
func (r *PlaylistRepository) Create(ctx context.Context, playlist *model.Playlist) error {
	return r.db.WithContext(ctx).Create(playlist).Error
}

// Update 更新播放列表字段
func (r *PlaylistRepository) Update(ctx context.Context, id int64, updates map[string]interface{}) (*model.Playlist, error) {
	result := r.db.WithContext(ctx).Model(&model.Playlist{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete 删除播放列表及其视频关联
func (r *PlaylistRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", id).Delete(&model.PlaylistVideo{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&model.Playlist{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// ListByOwner 用户的全部播放列表
func (r *PlaylistRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Playlist, error) {
	var playlists []model.Playlist
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).
		Order("created_at DESC").Order("id DESC").Find(&playlists).Error
	return playlists, err
}

// AddVideo 向播放列表添加视频（重复添加忽略）
func (r *PlaylistRepository) AddVideo(ctx context.Context, playlistID, videoID int64) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.PlaylistVideo{PlaylistID: playlistID, VideoID: videoID}).Error
}

// RemoveVideo 从播放列表移除视频，不存在时返回 false
func (r *PlaylistRepository) RemoveVideo(ctx context.Context, playlistID, videoID int64) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Delete(&model.PlaylistVideo{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ListVideos 批量获取播放列表中的视频（按加入顺序）
func (r *PlaylistRepository) ListVideos(ctx context.Context, playlistIDs []int64) (map[int64][]model.Video, error) {
	result := make(map[int64][]model.Video, len(playlistIDs))
	if len(playlistIDs) == 0 {
		return result, nil
	}

	var links []model.PlaylistVideo
	err := r.db.WithContext(ctx).Where("playlist_id IN ?", playlistIDs).
		Order("created_at ASC").Find(&links).Error
	if err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return result, nil
	}

	videoIDs := make([]int64, 0, len(links))
	for _, l := range links {
		videoIDs = append(videoIDs, l.VideoID)
	}

	var videos []model.Video
	if err := r.db.WithContext(ctx).Preload("Owner").Where("id IN ?", videoIDs).Find(&videos).Error; err != nil {
		return nil, err
	}
	videoMap := make(map[int64]model.Video, len(videos))
	for _, v := range videos {
		videoMap[v.ID] = v
	}

	for _, l := range links {
		if v, ok := videoMap[l.VideoID]; ok {
			result[l.PlaylistID] = append(result[l.PlaylistID], v)
		}
	}
	return result, nil
}
