package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"vidtube-go/internal/config"
	"vidtube-go/internal/indexer"
	"vidtube-go/internal/infra/database"
	infraES "vidtube-go/internal/infra/elasticsearch"
	infraKafka "vidtube-go/internal/infra/kafka"
	"vidtube-go/internal/repository"
	"vidtube-go/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "配置文件路径")
	reindex := flag.Bool("reindex", false, "重建视频搜索索引后退出")
	flag.Parse()

	if err := config.LoadDotEnv(); err != nil {
		panic(err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(logger.Options{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		FilePath:   cfg.Log.FilePath,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
	}); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	if !cfg.Elasticsearch.Enabled {
		logger.Fatal("Elasticsearch is disabled, nothing to index")
	}

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close()

	if err := infraES.Init(&cfg.Elasticsearch); err != nil {
		logger.Fatal("Failed to init elasticsearch", zap.Error(err))
	}
	defer infraES.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 监听系统信号，优雅退出
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))
		cancel()
	}()

	if err := infraES.EnsureVideosIndex(ctx); err != nil {
		logger.Fatal("Failed to ensure videos index", zap.Error(err))
	}

	ix := indexer.New(repository.NewVideoRepository(database.Get()), infraES.NewVideoIndex())

	if *reindex {
		success, failed, err := ix.Reindex(ctx)
		if err != nil {
			logger.Fatal("Reindex failed", zap.Error(err), zap.Int("success", success), zap.Int("failed", failed))
		}
		return
	}

	if !cfg.Kafka.Enabled {
		logger.Fatal("Kafka is disabled, use -reindex for a one-off rebuild")
	}

	topic := cfg.Kafka.Topic("video_events", "vidtube.video-events")
	groupID := "vidtube-search-indexer"

	logger.Info("Search index worker started",
		zap.String("topic", topic),
		zap.String("group", groupID),
		zap.Strings("brokers", cfg.Kafka.Brokers),
		zap.String("index", cfg.Elasticsearch.VideosIndex()),
	)

	infraKafka.StartVideoEventConsumer(ctx, cfg.Kafka.Brokers, topic, groupID, ix.HandleEvent)
	logger.Info("Search index worker stopped")
}
