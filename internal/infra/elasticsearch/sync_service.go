package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"vidtube-go/internal/model"
	"vidtube-go/pkg/logger"

	"go.uber.org/zap"
)

// VideoDoc ES 视频文档结构
type VideoDoc struct {
	ID            int64   `json:"id"`
	OwnerID       int64   `json:"owner_id"`
	OwnerUsername string  `json:"owner_username"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Thumbnail     string  `json:"thumbnail"`
	Duration      float64 `json:"duration"`
	Views         int64   `json:"views"`
	IsPublished   bool    `json:"is_published"`
	CreatedAt     string  `json:"created_at"`
}

// NewVideoDoc 由视频（需预加载 Owner）构建文档
func NewVideoDoc(v *model.Video) *VideoDoc {
	return &VideoDoc{
		ID:            v.ID,
		OwnerID:       v.OwnerID,
		OwnerUsername: v.Owner.Username,
		Title:         v.Title,
		Description:   v.Description,
		Thumbnail:     v.ThumbnailURL,
		Duration:      v.Duration,
		Views:         v.Views,
		IsPublished:   v.IsPublished,
		CreatedAt:     v.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// SyncVideo 同步单个视频到 ES
func SyncVideo(ctx context.Context, v *model.Video) error {
	body, err := json.Marshal(NewVideoDoc(v))
	if err != nil {
		return err
	}

	resp, err := indexDoc(ctx, videosIndex, strconv.FormatInt(v.ID, 10), bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.IsError() {
		return fmt.Errorf("index document failed: %s", resp.String())
	}

	logger.Debug("Video synced to ES", zap.Int64("video_id", v.ID))
	return nil
}

// DeleteVideo 从 ES 删除视频，文档不存在视为成功
func DeleteVideo(ctx context.Context, videoID int64) error {
	resp, err := deleteDoc(ctx, videosIndex, strconv.FormatInt(videoID, 10))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.IsError() && resp.StatusCode != 404 {
		return fmt.Errorf("delete document failed: %s", resp.String())
	}
	return nil
}

// BulkSyncVideos 批量同步视频到 ES
func BulkSyncVideos(ctx context.Context, videos []model.Video) (success, failed int, err error) {
	if len(videos) == 0 {
		return 0, 0, nil
	}

	var buf bytes.Buffer
	for i := range videos {
		v := &videos[i]
		docBody, err := json.Marshal(NewVideoDoc(v))
		if err != nil {
			failed++
			continue
		}
		fmt.Fprintf(&buf, `{"index":{"_index":%q,"_id":"%d"}}`+"\n", videosIndex, v.ID)
		buf.Write(docBody)
		buf.WriteByte('\n')
	}

	resp, err := bulk(ctx, &buf)
	if err != nil {
		return 0, len(videos), err
	}
	defer resp.Body.Close()
	if resp.IsError() {
		return 0, len(videos), fmt.Errorf("bulk failed: %s", resp.String())
	}

	var bulkResp struct {
		Errors bool `json:"errors"`
		Items  []struct {
			Index struct {
				Status int `json:"status"`
			} `json:"index"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&bulkResp); err != nil {
		return 0, len(videos), fmt.Errorf("decode bulk response: %w", err)
	}

	for _, item := range bulkResp.Items {
		if item.Index.Status >= 200 && item.Index.Status < 300 {
			success++
		} else {
			failed++
		}
	}

	logger.Info("Bulk sync to ES completed", zap.Int("success", success), zap.Int("failed", failed))
	return success, failed, nil
}

// VideoIndex 供索引 worker 注入的写入实现
type VideoIndex struct{}

func NewVideoIndex() *VideoIndex {
	return &VideoIndex{}
}

func (*VideoIndex) SyncVideo(ctx context.Context, v *model.Video) error {
	return SyncVideo(ctx, v)
}

func (*VideoIndex) DeleteVideo(ctx context.Context, videoID int64) error {
	return DeleteVideo(ctx, videoID)
}

func (*VideoIndex) BulkSyncVideos(ctx context.Context, videos []model.Video) (int, int, error) {
	return BulkSyncVideos(ctx, videos)
}
