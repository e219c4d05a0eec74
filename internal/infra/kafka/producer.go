package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"vidtube-go/internal/config"
	"vidtube-go/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var producer *kafka.Writer

// 视频事件类型
const (
	VideoPublished = "published"
	VideoUpdated   = "updated"
	VideoDeleted   = "deleted"
)

// VideoEvent 视频变更事件，供搜索索引 worker 消费
type VideoEvent struct {
	Type       string    `json:"type"`
	VideoID    int64     `json:"videoId"`
	OwnerID    int64     `json:"ownerId"`
	OccurredAt time.Time `json:"occurredAt"`
}

// InitProducer 初始化 Kafka 生产者
func InitProducer(cfg *config.KafkaConfig) error {
	if len(cfg.Brokers) == 0 {
		return fmt.Errorf("kafka brokers are not configured")
	}
	producer = &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.Hash{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	logger.Info("Kafka producer initialized",
		zap.Strings("brokers", cfg.Brokers),
	)
	return nil
}

// VideoEventPublisher 将视频事件写入固定 topic
type VideoEventPublisher struct {
	topic string
}

// NewVideoEventPublisher 需先调用 InitProducer
func NewVideoEventPublisher(topic string) *VideoEventPublisher {
	return &VideoEventPublisher{topic: topic}
}

// PublishVideoEvent 按视频 ID 分区，保证同一视频的事件有序
func (p *VideoEventPublisher) PublishVideoEvent(ctx context.Context, event *VideoEvent) error {
	if producer == nil {
		return fmt.Errorf("kafka producer is not initialized")
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal video event: %w", err)
	}

	msg := kafka.Message{
		Topic: p.topic,
		Key:   []byte(strconv.FormatInt(event.VideoID, 10)),
		Value: payload,
	}
	if err := producer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to send video event: %w", err)
	}

	logger.Debug("Video event sent",
		zap.String("type", event.Type),
		zap.Int64("video_id", event.VideoID),
		zap.String("topic", p.topic),
	)
	return nil
}

// CloseProducer 关闭生产者
func CloseProducer() error {
	if producer == nil {
		return nil
	}
	logger.Info("Kafka producer closed")
	return producer.Close()
}
