package service

import (
	"context"
	"errors"

	"vidtube-go/internal/api/dto"

	"gorm.io/gorm"
)

type LikeService struct {
	likes    LikeStore
	videos   VideoStore
	comments CommentStore
}

func NewLikeService(likes LikeStore, videos VideoStore, comments CommentStore) *LikeService {
	return &LikeService{likes: likes, videos: videos, comments: comments}
}

// ToggleVideoLike 切换视频点赞状态，返回切换后的状态和点赞数
func (s *LikeService) ToggleVideoLike(ctx context.Context, videoID, userID int64) (*dto.ToggleLikeData, error) {
	video, err := s.videos.GetByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	if !video.IsPublished && video.OwnerID != userID {
		return nil, ErrVideoNotFound
	}

	liked, count, err := s.likes.ToggleVideoLike(ctx, videoID, userID)
	if err != nil {
		return nil, err
	}
	return &dto.ToggleLikeData{Liked: liked, LikesCount: count}, nil
}

// ToggleCommentLike 切换评论点赞状态
func (s *LikeService) ToggleCommentLike(ctx context.Context, commentID, userID int64) (*dto.ToggleLikeData, error) {
	if _, err := s.comments.GetByID(ctx, commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}

	liked, count, err := s.likes.ToggleCommentLike(ctx, commentID, userID)
	if err != nil {
		return nil, err
	}
	return &dto.ToggleLikeData{Liked: liked, LikesCount: count}, nil
}

// ListLikedVideos 当前用户点赞过的视频，最近点赞的在前
func (s *LikeService) ListLikedVideos(ctx context.Context, userID int64, page, limit int) (*dto.VideoListData, error) {
	videos, total, err := s.likes.ListLikedVideos(ctx, userID, offset(page, limit), limit)
	if err != nil {
		return nil, err
	}
	likes, err := s.likes.CountByVideos(ctx, videoIDs(videos))
	if err != nil {
		return nil, err
	}
	return buildVideoListData(videos, likes, total, page, limit), nil
}
