package service

import (
	"context"

	"vidtube-go/internal/infra/kafka"
	"vidtube-go/internal/media"
	"vidtube-go/internal/model"
	"vidtube-go/internal/repository"
)

// UserStore 用户持久化
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByUsernameOrEmail(ctx context.Context, username, email string) (*model.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error)
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, id int64, updates map[string]interface{}) (*model.User, error)
	SetRefreshToken(ctx context.Context, id int64, token string) error
	RotateRefreshToken(ctx context.Context, id int64, current, next string) (bool, error)
	List(ctx context.Context, skip, limit int) ([]model.User, int64, error)
	GetChannelProfile(ctx context.Context, username string, viewerID int64) (*repository.ChannelProfile, error)
	ListWatchHistory(ctx context.Context, userID int64) ([]model.Video, error)
}

// VideoStore 视频持久化
type VideoStore interface {
	GetByID(ctx context.Context, id int64) (*model.Video, error)
	GetByIDWithOwner(ctx context.Context, id int64) (*model.Video, error)
	GetByIDsWithOwner(ctx context.Context, ids []int64) ([]model.Video, error)
	Create(ctx context.Context, video *model.Video) error
	Update(ctx context.Context, id int64, updates map[string]interface{}) (*model.Video, error)
	List(ctx context.Context, q repository.VideoQuery) ([]model.Video, int64, error)
	RecordView(ctx context.Context, videoID, viewerID int64) error
	DeleteCascade(ctx context.Context, videoID int64) error
}

// LikeStore 点赞持久化
type LikeStore interface {
	ToggleVideoLike(ctx context.Context, videoID, userID int64) (bool, int64, error)
	ToggleCommentLike(ctx context.Context, commentID, userID int64) (bool, int64, error)
	CountByVideo(ctx context.Context, videoID int64) (int64, error)
	IsVideoLiked(ctx context.Context, videoID, userID int64) (bool, error)
	CountByVideos(ctx context.Context, videoIDs []int64) (map[int64]int64, error)
	ListLikedVideos(ctx context.Context, userID int64, skip, limit int) ([]model.Video, int64, error)
}

// CommentStore 评论持久化
type CommentStore interface {
	GetByID(ctx context.Context, id int64) (*model.Comment, error)
	GetByIDWithOwner(ctx context.Context, id int64) (*model.Comment, error)
	Create(ctx context.Context, comment *model.Comment) error
	UpdateContent(ctx context.Context, id int64, content string) (*model.Comment, error)
	Delete(ctx context.Context, id int64) error
	ListByVideo(ctx context.Context, videoID, viewerID int64, skip, limit int) ([]repository.CommentRow, int64, error)
}

// SubscriptionStore 订阅关系持久化
type SubscriptionStore interface {
	Create(ctx context.Context, subscriberID, channelID int64) (bool, error)
	Delete(ctx context.Context, subscriberID, channelID int64) (bool, error)
	Toggle(ctx context.Context, subscriberID, channelID int64) (bool, error)
	CountSubscribers(ctx context.Context, channelID int64) (int64, error)
	ListChannels(ctx context.Context, subscriberID int64, skip, limit int) ([]model.User, int64, error)
	ListSubscribers(ctx context.Context, channelID int64, skip, limit int) ([]model.User, int64, error)
}

// PlaylistStore 播放列表持久化
type PlaylistStore interface {
	GetByID(ctx context.Context, id int64) (*model.Playlist, error)
	GetByOwnerAndName(ctx context.Context, ownerID int64, name string) (*model.Playlist, error)
	ExistsByName(ctx context.Context, ownerID int64, name string, excludeID int64) (bool, error)
	Create(ctx context.Context, playlist *model.Playlist) error
	Update(ctx context.Context, id int64, updates map[string]interface{}) (*model.Playlist, error)
	Delete(ctx context.Context, id int64) error
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Playlist, error)
	AddVideo(ctx context.Context, playlistID, videoID int64) error
	RemoveVideo(ctx context.Context, playlistID, videoID int64) (bool, error)
	ListVideos(ctx context.Context, playlistIDs []int64) (map[int64][]model.Video, error)
}

// MediaStore 媒体上传与删除
type MediaStore interface {
	Upload(ctx context.Context, localPath, folder string) (*media.Asset, error)
	Delete(ctx context.Context, publicID string) error
}

// VideoEventPublisher 视频变更事件发布，可为 nil
type VideoEventPublisher interface {
	PublishVideoEvent(ctx context.Context, event *kafka.VideoEvent) error
}
