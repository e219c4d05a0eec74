package service

import (
	"context"
	"errors"
	"path"
	"strings"

	"vidtube-go/internal/api/dto"
	"vidtube-go/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrUsernameRequired = errors.New("Username is missing")
	ErrEmailTaken       = errors.New("Email is already in use")
	ErrEmailUnchanged   = errors.New("New email must differ from the current one")
	ErrFileRequired     = errors.New("File is required")
)

type UserService struct {
	users  UserStore
	likes  LikeStore
	media  MediaStore
	folder string
}

func NewUserService(users UserStore, likes LikeStore, mediaStore MediaStore, folder string) *UserService {
	return &UserService{users: users, likes: likes, media: mediaStore, folder: folder}
}

// GetCurrentUser 根据用户 ID 获取用户信息
func (s *UserService) GetCurrentUser(ctx context.Context, userID int64) (*dto.UserInfo, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return toUserInfo(user), nil
}

// GetChannelProfile 频道主页，附带订阅统计和当前用户的订阅状态
func (s *UserService) GetChannelProfile(ctx context.Context, username string, viewerID int64) (*dto.ChannelProfile, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, ErrUsernameRequired
	}

	p, err := s.users.GetChannelProfile(ctx, username, viewerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &dto.ChannelProfile{
		ID:                        p.ID,
		Username:                  p.Username,
		Fullname:                  p.Fullname,
		Email:                     p.Email,
		Avatar:                    p.AvatarURL,
		CoverImage:                p.CoverImageURL,
		SubscribersCount:          p.SubscribersCount,
		ChannelsSubscribedToCount: p.ChannelsSubscribedToCount,
		IsSubscribed:              p.IsSubscribed,
	}, nil
}

// GetWatchHistory 按观看顺序返回历史视频
func (s *UserService) GetWatchHistory(ctx context.Context, userID int64) ([]dto.VideoInfo, error) {
	videos, err := s.users.ListWatchHistory(ctx, userID)
	if err != nil {
		return nil, err
	}
	likes, err := s.likes.CountByVideos(ctx, videoIDs(videos))
	if err != nil {
		return nil, err
	}
	return toVideoInfos(videos, likes), nil
}

// UpdateAccount 更新全名和邮箱
func (s *UserService) UpdateAccount(ctx context.Context, userID int64, req *dto.UpdateAccountRequest) (*dto.UserInfo, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	fullname := strings.TrimSpace(req.Fullname)

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if email == user.Email {
		return nil, ErrEmailUnchanged
	}

	taken, err := s.users.EmailTaken(ctx, email, userID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	updated, err := s.users.Update(ctx, userID, map[string]interface{}{
		"fullname": fullname,
		"email":    email,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return toUserInfo(updated), nil
}

// UpdateAvatar 替换头像，成功后删除旧文件
func (s *UserService) UpdateAvatar(ctx context.Context, userID int64, localPath string) (*dto.UserInfo, error) {
	return s.replaceImage(ctx, userID, localPath, "avatar_url", "avatar_id")
}

// UpdateCoverImage 替换封面，成功后删除旧文件
func (s *UserService) UpdateCoverImage(ctx context.Context, userID int64, localPath string) (*dto.UserInfo, error) {
	return s.replaceImage(ctx, userID, localPath, "cover_image_url", "cover_image_id")
}

func (s *UserService) replaceImage(ctx context.Context, userID int64, localPath, urlColumn, idColumn string) (*dto.UserInfo, error) {
	if localPath == "" {
		return nil, ErrFileRequired
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	oldID := user.AvatarID
	if idColumn == "cover_image_id" {
		oldID = user.CoverImageID
	}

	asset, err := s.media.Upload(ctx, localPath, path.Join(s.folder, user.Username))
	if err != nil {
		return nil, errors.Join(ErrMediaUploadFailed, err)
	}

	updated, err := s.users.Update(ctx, userID, map[string]interface{}{
		urlColumn: asset.URL,
		idColumn:  asset.PublicID,
	})
	if err != nil {
		_ = s.media.Delete(ctx, asset.PublicID)
		return nil, err
	}

	if oldID != "" {
		if err := s.media.Delete(ctx, oldID); err != nil {
			logger.Warn("Old image left in storage", zap.Int64("user_id", userID), zap.String("public_id", oldID))
		}
	}
	return toUserInfo(updated), nil
}

// ListUsers 分页列出用户公开信息
func (s *UserService) ListUsers(ctx context.Context, page, limit int) (*dto.UserListData, error) {
	users, total, err := s.users.List(ctx, offset(page, limit), limit)
	if err != nil {
		return nil, err
	}
	return buildUserListData(users, total, page, limit), nil
}
