package elasticsearch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"vidtube-go/pkg/logger"

	"go.uber.org/zap"
)

// videosMapping title.keyword 用于大小写不敏感的子串匹配
const videosMapping = `{
	"settings": {
		"number_of_shards": 1,
		"number_of_replicas": 0
	},
	"mappings": {
		"properties": {
			"id": {"type": "long"},
			"owner_id": {"type": "long"},
			"owner_username": {"type": "keyword"},
			"title": {
				"type": "text",
				"analyzer": "standard",
				"fields": {"keyword": {"type": "keyword", "ignore_above": 256}}
			},
			"description": {"type": "text", "analyzer": "standard"},
			"thumbnail": {"type": "keyword", "index": false},
			"duration": {"type": "float"},
			"views": {"type": "long"},
			"is_published": {"type": "boolean"},
			"created_at": {"type": "date", "format": "strict_date_optional_time||epoch_millis"}
		}
	}
}`

// EnsureVideosIndex 确保视频索引存在，不存在则创建
func EnsureVideosIndex(ctx context.Context) error {
	if client == nil {
		return errNotInitialized
	}

	resp, err := client.Indices.Exists([]string{videosIndex}, client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("check index exists: %w", err)
	}
	resp.Body.Close()
	if resp.StatusCode == 200 {
		logger.Info("Elasticsearch videos index already exists", zap.String("index", videosIndex))
		return nil
	}

	resp, err = client.Indices.Create(
		videosIndex,
		client.Indices.Create.WithContext(ctx),
		client.Indices.Create.WithBody(strings.NewReader(videosMapping)),
	)
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	defer resp.Body.Close()
	if resp.IsError() {
		return fmt.Errorf("create index failed: %s", resp.String())
	}

	logger.Info("Elasticsearch videos index created", zap.String("index", videosIndex))
	return nil
}

// InitIndexes 初始化所有索引（启动时调用）
func InitIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return EnsureVideosIndex(ctx)
}
