package repository

import (
	"context"

	"vidtube-go/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ChannelProfile 频道主页聚合结果
type ChannelProfile struct {
	ID                        int64  `json:"id"`
	Username                  string `json:"username"`
	Fullname                  string `json:"fullname"`
	Email                     string `json:"email"`
	AvatarURL                 string `json:"avatar"`
	CoverImageURL             string `json:"coverImage"`
	SubscribersCount          int64  `json:"subscribersCount"`
	ChannelsSubscribedToCount int64  `json:"channelsSubscribedToCount"`
	IsSubscribed              bool   `json:"isSubscribed"`
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByID 根据 ID 查询用户
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername 根据用户名查询用户
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsernameOrEmail 登录时按用户名或邮箱查找
func (r *UserRepository) GetByUsernameOrEmail(ctx context.Context, username, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("(username = ? AND ? <> '') OR (email = ? AND ? <> '')", username, username, email, email).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ExistsByUsernameOrEmail 检查用户名或邮箱是否已被占用
func (r *UserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("username = ? OR email = ?", username, email).Count(&count).Error
	return count > 0, err
}

// EmailTaken 检查邮箱是否被其他用户占用
func (r *UserRepository) EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("email = ? AND id <> ?", email, excludeID).Count(&count).Error
	return count > 0, err
}

// Create 创建用户
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// Update 更新用户字段（传入 map）
func (r *UserRepository) Update(ctx context.Context, id int64, updates map[string]interface{}) (*model.User, error) {
	result := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

// SetRefreshToken 覆盖保存的 refresh token，空字符串表示注销
func (r *UserRepository) SetRefreshToken(ctx context.Context, id int64, token string) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).
		UpdateColumn("refresh_token", token)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// RotateRefreshToken 仅当保存的 token 仍为 current 时替换为 next
func (r *UserRepository) RotateRefreshToken(ctx context.Context, id int64, current, next string) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ? AND refresh_token = ?", id, current).
		UpdateColumn("refresh_token", next)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// List 分页查询用户
func (r *UserRepository) List(ctx context.Context, skip, limit int) ([]model.User, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.User{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []model.User
	if err := query.Order("id ASC").Offset(skip).Limit(limit).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// GetChannelProfile 频道主页：订阅数、订阅了多少频道、当前用户是否已订阅
func (r *UserRepository) GetChannelProfile(ctx context.Context, username string, viewerID int64) (*ChannelProfile, error) {
	var profiles []ChannelProfile
	err := r.db.WithContext(ctx).Raw(`
		SELECT u.id, u.username, u.fullname, u.email,
		       u.avatar_url, u.cover_image_url,
		       (SELECT COUNT(*) FROM subscriptions s WHERE s.channel_id = u.id) AS subscribers_count,
		       (SELECT COUNT(*) FROM subscriptions s WHERE s.subscriber_id = u.id) AS channels_subscribed_to_count,
		       EXISTS (SELECT 1 FROM subscriptions s WHERE s.channel_id = u.id AND s.subscriber_id = ?) AS is_subscribed
		FROM users u
		WHERE u.username = ?
		LIMIT 1`, viewerID, username).Scan(&profiles).Error
	if err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &profiles[0], nil
}

// AppendWatchHistory 记录观看历史（已存在则忽略）
func (r *UserRepository) AppendWatchHistory(ctx context.Context, userID, videoID int64) error {
	return appendWatchHistory(r.db.WithContext(ctx), userID, videoID)
}

// ListWatchHistory 按观看顺序返回历史视频（含作者信息）
func (r *UserRepository) ListWatchHistory(ctx context.Context, userID int64) ([]model.Video, error) {
	var videos []model.Video
	err := r.db.WithContext(ctx).
		Joins("JOIN watch_histories wh ON wh.video_id = videos.id").
		Where("wh.user_id = ?", userID).
		Order("wh.id ASC").
		Preload("Owner").
		Find(&videos).Error
	return videos, err
}

func appendWatchHistory(tx *gorm.DB, userID, videoID int64) error {
	return tx.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.WatchHistory{UserID: userID, VideoID: videoID}).Error
}
