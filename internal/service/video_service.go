package service

import (
	"context"
	"errors"
	"path"
	"strconv"
	"strings"
	"time"

	"vidtube-go/internal/api/dto"
	"vidtube-go/internal/infra/kafka"
	"vidtube-go/internal/model"
	"vidtube-go/internal/repository"
	"vidtube-go/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrVideoNotFound      = errors.New("Video not found")
	ErrVideoNotOwner      = errors.New("You are not the owner of this video")
	ErrVideoFilesRequired = errors.New("Video or thumbnail is missing")
	ErrNoFieldsToUpdate   = errors.New("Nothing to update")
	ErrInvalidUserID      = errors.New("Invalid user id")
)

type VideoService struct {
	videos VideoStore
	likes  LikeStore
	media  MediaStore
	events VideoEventPublisher
	folder string
}

func NewVideoService(videos VideoStore, likes LikeStore, mediaStore MediaStore, events VideoEventPublisher, folder string) *VideoService {
	return &VideoService{videos: videos, likes: likes, media: mediaStore, events: events, folder: folder}
}

// ListFeed 已公开视频分页列表；查看自己的频道时包含未公开视频
func (s *VideoService) ListFeed(ctx context.Context, viewerID int64, page, limit int, q *dto.VideoFeedQuery) (*dto.VideoListData, error) {
	query := repository.VideoQuery{
		Skip:     offset(page, limit),
		Limit:    limit,
		SortBy:   q.SortBy,
		SortDesc: q.SortType != "asc",
	}
	if raw := strings.TrimSpace(q.UserID); raw != "" {
		ownerID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || ownerID <= 0 {
			return nil, ErrInvalidUserID
		}
		query.OwnerID = &ownerID
		if ownerID == viewerID {
			query.ViewerID = viewerID
		}
	}

	videos, total, err := s.videos.List(ctx, query)
	if err != nil {
		return nil, err
	}
	likes, err := s.likes.CountByVideos(ctx, videoIDs(videos))
	if err != nil {
		return nil, err
	}
	return buildVideoListData(videos, likes, total, page, limit), nil
}

// GetVideo 视频详情；非作者观看时播放量 +1 并写入观看历史
func (s *VideoService) GetVideo(ctx context.Context, videoID, viewerID int64) (*dto.VideoDetail, error) {
	video, err := s.videos.GetByIDWithOwner(ctx, videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	isOwner := video.OwnerID == viewerID
	if !isOwner {
		if !video.IsPublished {
			return nil, ErrVideoNotFound
		}
		if err := s.videos.RecordView(ctx, videoID, viewerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrVideoNotFound
			}
			return nil, err
		}
		video.Views++
	}

	likes, err := s.likes.CountByVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}
	liked, err := s.likes.IsVideoLiked(ctx, videoID, viewerID)
	if err != nil {
		return nil, err
	}

	return &dto.VideoDetail{
		VideoInfo: toVideoInfo(video, likes),
		IsLiked:   liked,
		IsOwner:   isOwner,
	}, nil
}

// Upload 上传视频与封面并创建记录，任一步失败都会删除已上传的文件
func (s *VideoService) Upload(ctx context.Context, owner *model.User, req *dto.VideoUploadRequest, videoPath, thumbnailPath string) (*dto.VideoInfo, error) {
	if videoPath == "" || thumbnailPath == "" {
		return nil, ErrVideoFilesRequired
	}

	folder := path.Join(s.folder, strconv.FormatInt(owner.ID, 10))
	videoAsset, err := s.media.Upload(ctx, videoPath, folder)
	if err != nil {
		return nil, errors.Join(ErrMediaUploadFailed, err)
	}
	thumbAsset, err := s.media.Upload(ctx, thumbnailPath, folder)
	if err != nil {
		_ = s.media.Delete(ctx, videoAsset.PublicID)
		return nil, errors.Join(ErrMediaUploadFailed, err)
	}

	published := true
	if req.IsPublished != nil {
		published = *req.IsPublished
	}

	video := &model.Video{
		OwnerID:      owner.ID,
		Title:        strings.TrimSpace(req.Title),
		Description:  strings.TrimSpace(req.Description),
		VideoFileURL: videoAsset.URL,
		VideoFileID:  videoAsset.PublicID,
		ThumbnailURL: thumbAsset.URL,
		ThumbnailID:  thumbAsset.PublicID,
		Duration:     req.Duration,
		IsPublished:  published,
	}
	if err := s.videos.Create(ctx, video); err != nil {
		_ = s.media.Delete(ctx, videoAsset.PublicID)
		_ = s.media.Delete(ctx, thumbAsset.PublicID)
		return nil, err
	}
	video.Owner = *owner

	if video.IsPublished {
		s.publish(ctx, kafka.VideoPublished, video)
	}

	logger.Info("Video uploaded", zap.Int64("video_id", video.ID), zap.Int64("owner_id", owner.ID))
	info := toVideoInfo(video, 0)
	return &info, nil
}

// Update 更新标题、描述和封面，仅作者可操作
func (s *VideoService) Update(ctx context.Context, videoID, userID int64, req *dto.VideoUpdateRequest, thumbnailPath string) (*dto.VideoInfo, error) {
	video, err := s.ownedVideo(ctx, videoID, userID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		if title := strings.TrimSpace(*req.Title); title != "" {
			updates["title"] = title
		}
	}
	if req.Description != nil {
		updates["description"] = strings.TrimSpace(*req.Description)
	}

	var newThumbID string
	if thumbnailPath != "" {
		asset, err := s.media.Upload(ctx, thumbnailPath, path.Join(s.folder, strconv.FormatInt(userID, 10)))
		if err != nil {
			return nil, errors.Join(ErrMediaUploadFailed, err)
		}
		newThumbID = asset.PublicID
		updates["thumbnail_url"] = asset.URL
		updates["thumbnail_id"] = asset.PublicID
	}

	if len(updates) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	updated, err := s.videos.Update(ctx, videoID, updates)
	if err != nil {
		if newThumbID != "" {
			_ = s.media.Delete(ctx, newThumbID)
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	if newThumbID != "" && video.ThumbnailID != "" {
		_ = s.media.Delete(ctx, video.ThumbnailID)
	}
	s.publish(ctx, kafka.VideoUpdated, updated)

	likes, err := s.likes.CountByVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}
	info := toVideoInfo(updated, likes)
	return &info, nil
}

// TogglePublish 切换公开状态，仅作者可操作
func (s *VideoService) TogglePublish(ctx context.Context, videoID, userID int64) (*dto.VideoInfo, error) {
	video, err := s.ownedVideo(ctx, videoID, userID)
	if err != nil {
		return nil, err
	}

	updated, err := s.videos.Update(ctx, videoID, map[string]interface{}{"is_published": !video.IsPublished})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	eventType := kafka.VideoUpdated
	if updated.IsPublished {
		eventType = kafka.VideoPublished
	}
	s.publish(ctx, eventType, updated)

	likes, err := s.likes.CountByVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}
	info := toVideoInfo(updated, likes)
	return &info, nil
}

// Delete 删除视频及其关联数据，再尽力删除媒体文件
func (s *VideoService) Delete(ctx context.Context, videoID, userID int64) error {
	video, err := s.ownedVideo(ctx, videoID, userID)
	if err != nil {
		return err
	}

	if err := s.videos.DeleteCascade(ctx, videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVideoNotFound
		}
		return err
	}

	_ = s.media.Delete(ctx, video.VideoFileID)
	_ = s.media.Delete(ctx, video.ThumbnailID)
	s.publish(ctx, kafka.VideoDeleted, video)

	logger.Info("Video deleted", zap.Int64("video_id", videoID), zap.Int64("owner_id", userID))
	return nil
}

func (s *VideoService) ownedVideo(ctx context.Context, videoID, userID int64) (*model.Video, error) {
	video, err := s.videos.GetByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	if video.OwnerID != userID {
		return nil, ErrVideoNotOwner
	}
	return video, nil
}

// publishTimeout 事件发送不跟随请求取消，单独限时
const publishTimeout = 5 * time.Second

// publish 事件发送失败只记录日志
func (s *VideoService) publish(ctx context.Context, eventType string, video *model.Video) {
	if s.events == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	event := &kafka.VideoEvent{
		Type:       eventType,
		VideoID:    video.ID,
		OwnerID:    video.OwnerID,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.events.PublishVideoEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish video event",
			zap.String("type", eventType),
			zap.Int64("video_id", video.ID),
			zap.Error(err),
		)
	}
}
