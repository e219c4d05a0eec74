package repository

import (
	"context"

	"vidtube-go/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// Create 订阅频道，已订阅时返回 false
func (r *SubscriptionRepository) Create(ctx context.Context, subscriberID, channelID int64) (bool, error) {
	sub := &model.Subscription{SubscriberID: subscriberID, ChannelID: channelID}
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(sub)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Delete 取消订阅，未订阅时返回 false
func (r *SubscriptionRepository) Delete(ctx context.Context, subscriberID, channelID int64) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Delete(&model.Subscription{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Toggle 切换订阅状态，返回切换后是否处于订阅状态
func (r *SubscriptionRepository) Toggle(ctx context.Context, subscriberID, channelID int64) (bool, error) {
	var subscribed bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
			Delete(&model.Subscription{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			return nil
		}
		sub := &model.Subscription{SubscriberID: subscriberID, ChannelID: channelID}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(sub).Error; err != nil {
			return err
		}
		subscribed = true
		return nil
	})
	return subscribed, err
}

// CountSubscribers 频道订阅数
func (r *SubscriptionRepository) CountSubscribers(ctx context.Context, channelID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("channel_id = ?", channelID).Count(&count).Error
	return count, err
}

// ListChannels 用户订阅的频道（分页，最新订阅在前）
func (r *SubscriptionRepository) ListChannels(ctx context.Context, subscriberID int64, skip, limit int) ([]model.User, int64, error) {
	return r.listUsers(ctx, "s.channel_id", "s.subscriber_id", subscriberID, skip, limit)
}

// ListSubscribers 频道的订阅者（分页，最新订阅在前）
func (r *SubscriptionRepository) ListSubscribers(ctx context.Context, channelID int64, skip, limit int) ([]model.User, int64, error) {
	return r.listUsers(ctx, "s.subscriber_id", "s.channel_id", channelID, skip, limit)
}

func (r *SubscriptionRepository) listUsers(ctx context.Context, joinColumn, filterColumn string, id int64, skip, limit int) ([]model.User, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.User{}).
		Joins("JOIN subscriptions s ON "+joinColumn+" = users.id").
		Where(filterColumn+" = ?", id)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []model.User
	err := query.Order("s.created_at DESC").Order("s.id DESC").
		Offset(skip).Limit(limit).Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}
