package indexer

import (
	"context"
	"errors"
	"fmt"

	"vidtube-go/internal/infra/kafka"
	"vidtube-go/internal/model"
	"vidtube-go/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultBatchSize = 200

// VideoSource 读取需要写入索引的视频
type VideoSource interface {
	GetByIDWithOwner(ctx context.Context, id int64) (*model.Video, error)
	ListPublishedForIndex(ctx context.Context, afterID int64, limit int) ([]model.Video, error)
}

// VideoIndex 搜索索引写入
type VideoIndex interface {
	SyncVideo(ctx context.Context, v *model.Video) error
	DeleteVideo(ctx context.Context, videoID int64) error
	BulkSyncVideos(ctx context.Context, videos []model.Video) (success, failed int, err error)
}

// Indexer 根据视频事件维护搜索索引，只保留已公开的视频
type Indexer struct {
	videos    VideoSource
	index     VideoIndex
	batchSize int
}

func New(videos VideoSource, index VideoIndex) *Indexer {
	return &Indexer{videos: videos, index: index, batchSize: defaultBatchSize}
}

// WithBatchSize 设置重建索引时的分批大小
func (ix *Indexer) WithBatchSize(n int) *Indexer {
	if n > 0 {
		ix.batchSize = n
	}
	return ix
}

// HandleEvent 处理一条视频事件，可直接作为 kafka.VideoEventHandler
func (ix *Indexer) HandleEvent(ctx context.Context, event *kafka.VideoEvent) error {
	if event == nil || event.VideoID <= 0 {
		return fmt.Errorf("invalid video event")
	}

	switch event.Type {
	case kafka.VideoDeleted:
		return ix.index.DeleteVideo(ctx, event.VideoID)
	case kafka.VideoPublished, kafka.VideoUpdated:
		// 以数据库当前状态为准
		video, err := ix.videos.GetByIDWithOwner(ctx, event.VideoID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ix.index.DeleteVideo(ctx, event.VideoID)
			}
			return err
		}
		if !video.IsPublished {
			return ix.index.DeleteVideo(ctx, video.ID)
		}
		return ix.index.SyncVideo(ctx, video)
	default:
		logger.Warn("Unknown video event type", zap.String("type", event.Type), zap.Int64("video_id", event.VideoID))
		return nil
	}
}

// Reindex 分批将全部已公开视频写入索引，返回成功与失败数量
func (ix *Indexer) Reindex(ctx context.Context) (success, failed int, err error) {
	var afterID int64
	for {
		if err := ctx.Err(); err != nil {
			return success, failed, err
		}

		batch, err := ix.videos.ListPublishedForIndex(ctx, afterID, ix.batchSize)
		if err != nil {
			return success, failed, err
		}
		if len(batch) == 0 {
			break
		}

		ok, bad, err := ix.index.BulkSyncVideos(ctx, batch)
		if err != nil {
			return success, failed, err
		}
		success += ok
		failed += bad
		afterID = batch[len(batch)-1].ID

		if len(batch) < ix.batchSize {
			break
		}
	}

	logger.Info("Reindex completed", zap.Int("success", success), zap.Int("failed", failed))
	return success, failed, nil
}
