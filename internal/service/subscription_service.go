package service

import (
	"context"
	"errors"

	"vidtube-go/internal/api/dto"

	"gorm.io/gorm"
)

var (
	ErrSelfSubscription  = errors.New("You cannot subscribe to your own channel")
	ErrChannelNotFound   = errors.New("Channel not found")
	ErrAlreadySubscribed = errors.New("Already subscribed to this channel")
	ErrNotSubscribed     = errors.New("Not subscribed to this channel")
)

type SubscriptionService struct {
	subscriptions SubscriptionStore
	users         UserStore
}

func NewSubscriptionService(subscriptions SubscriptionStore, users UserStore) *SubscriptionService {
	return &SubscriptionService{subscriptions: subscriptions, users: users}
}

// Toggle 切换订阅状态
func (s *SubscriptionService) Toggle(ctx context.Context, subscriberID, channelID int64) (*dto.SubscriptionData, error) {
	if err := s.checkChannel(ctx, subscriberID, channelID); err != nil {
		return nil, err
	}
	subscribed, err := s.subscriptions.Toggle(ctx, subscriberID, channelID)
	if err != nil {
		return nil, err
	}
	return s.state(ctx, channelID, subscribed)
}

// Subscribe 订阅频道，已订阅时返回冲突
func (s *SubscriptionService) Subscribe(ctx context.Context, subscriberID, channelID int64) (*dto.SubscriptionData, error) {
	if err := s.checkChannel(ctx, subscriberID, channelID); err != nil {
		return nil, err
	}
	created, err := s.subscriptions.Create(ctx, subscriberID, channelID)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, ErrAlreadySubscribed
	}
	return s.state(ctx, channelID, true)
}

// Unsubscribe 取消订阅，未订阅时返回不存在
func (s *SubscriptionService) Unsubscribe(ctx context.Context, subscriberID, channelID int64) (*dto.SubscriptionData, error) {
	if subscriberID == channelID {
		return nil, ErrSelfSubscription
	}
	deleted, err := s.subscriptions.Delete(ctx, subscriberID, channelID)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, ErrNotSubscribed
	}
	return s.state(ctx, channelID, false)
}

// ListSubscribedChannels 当前用户订阅的频道
func (s *SubscriptionService) ListSubscribedChannels(ctx context.Context, subscriberID int64, page, limit int) (*dto.UserListData, error) {
	users, total, err := s.subscriptions.ListChannels(ctx, subscriberID, offset(page, limit), limit)
	if err != nil {
		return nil, err
	}
	return buildUserListData(users, total, page, limit), nil
}

// ListSubscribers 频道的订阅者
func (s *SubscriptionService) ListSubscribers(ctx context.Context, channelID int64, page, limit int) (*dto.UserListData, error) {
	if _, err := s.users.GetByID(ctx, channelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChannelNotFound
		}
		return nil, err
	}
	users, total, err := s.subscriptions.ListSubscribers(ctx, channelID, offset(page, limit), limit)
	if err != nil {
		return nil, err
	}
	return buildUserListData(users, total, page, limit), nil
}

func (s *SubscriptionService) checkChannel(ctx context.Context, subscriberID, channelID int64) error {
	if subscriberID == channelID {
		return ErrSelfSubscription
	}
	if _, err := s.users.GetByID(ctx, channelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrChannelNotFound
		}
		return err
	}
	return nil
}

func (s *SubscriptionService) state(ctx context.Context, channelID int64, subscribed bool) (*dto.SubscriptionData, error) {
	count, err := s.subscriptions.CountSubscribers(ctx, channelID)
	if err != nil {
		return nil, err
	}
	return &dto.SubscriptionData{Subscribed: subscribed, SubscribersCount: count}, nil
}
