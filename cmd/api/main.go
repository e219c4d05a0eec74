package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vidtube-go/internal/api/dto"
	"vidtube-go/internal/api/handler"
	"vidtube-go/internal/api/middleware"
	"vidtube-go/internal/api/router"
	"vidtube-go/internal/config"
	"vidtube-go/internal/infra/database"
	infraES "vidtube-go/internal/infra/elasticsearch"
	infraKafka "vidtube-go/internal/infra/kafka"
	infraMinio "vidtube-go/internal/infra/minio"
	infraRedis "vidtube-go/internal/infra/redis"
	infraS3 "vidtube-go/internal/infra/s3"
	"vidtube-go/internal/media"
	"vidtube-go/internal/model"
	"vidtube-go/internal/repository"
	"vidtube-go/internal/service"
	"vidtube-go/pkg/logger"
	"vidtube-go/pkg/utils"

	_ "vidtube-go/api/openapi"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title VidTube API
// @version 1.0
// @description 视频分享平台 API 服务

// @host 127.0.0.1:8000
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description 输入格式: Bearer {token}

func main() {
	if err := config.LoadDotEnv(); err != nil {
		panic(err)
	}

	// 加载配置文件
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 初始化日志系统
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

	if err := dto.RegisterValidators(); err != nil {
		logger.Fatal("Failed to register validators", zap.Error(err))
	}

	// 初始化数据库
	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close()

	if err := database.AutoMigrate(
		&model.User{},
		&model.Video{},
		&model.WatchHistory{},
		&model.Comment{},
		&model.Like{},
		&model.Subscription{},
		&model.Playlist{},
		&model.PlaylistVideo{},
	); err != nil {
		logger.Fatal("Failed to auto migrate", zap.Error(err))
	}

	healthChecks := map[string]handler.Pinger{"database": database.Ping}

	// 认证接口限流：启用 Redis 时多实例共享计数
	var limiter middleware.RateLimiter = middleware.NewMemoryRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window, cfg.RateLimit.Burst)
	if cfg.Redis.Enabled {
		if err := infraRedis.Init(&cfg.Redis); err != nil {
			logger.Fatal("Failed to init redis", zap.Error(err))
		}
		defer infraRedis.Close()
		healthChecks["redis"] = infraRedis.Ping
		if cfg.RateLimit.Backend == "redis" {
			limiter = middleware.NewRedisRateLimiter(infraRedis.Get(), cfg.RateLimit.Requests, cfg.RateLimit.Window)
		}
	}

	// 媒体存储
	store, err := newMediaStore(cfg)
	if err != nil {
		logger.Fatal("Failed to init media storage", zap.Error(err), zap.String("driver", cfg.Media.Driver))
	}
	delegate := media.NewDelegate(store)

	// 视频事件：未启用 Kafka 时不发送
	var events service.VideoEventPublisher
	if cfg.Kafka.Enabled {
		if err := infraKafka.InitProducer(&cfg.Kafka); err != nil {
			logger.Fatal("Failed to init kafka producer", zap.Error(err))
		}
		defer infraKafka.CloseProducer()
		events = infraKafka.NewVideoEventPublisher(cfg.Kafka.Topic("video_events", "vidtube.video-events"))
	}

	// Elasticsearch 可选，失败则搜索降级到 DB
	var searcher service.VideoSearcher
	if cfg.Elasticsearch.Enabled {
		if err := infraES.Init(&cfg.Elasticsearch); err != nil {
			logger.Warn("Elasticsearch init failed, search will fallback to DB", zap.Error(err))
		} else {
			defer infraES.Close()
			if err := infraES.InitIndexes(); err != nil {
				logger.Warn("Elasticsearch index init failed", zap.Error(err))
			}
			searcher = infraES.NewVideoSearcher()
		}
	}

	gin.SetMode(cfg.App.Mode)

	// 初始化依赖（Repository -> Service -> Handler）
	db := database.Get()
	userRepo := repository.NewUserRepository(db)
	videoRepo := repository.NewVideoRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	playlistRepo := repository.NewPlaylistRepository(db)

	tokens := utils.NewTokenManager(&cfg.JWT, cfg.App.Name)
	folder := cfg.Media.Folder

	authService := service.NewAuthService(userRepo, delegate, tokens, folder)
	userService := service.NewUserService(userRepo, likeRepo, delegate, folder)
	videoService := service.NewVideoService(videoRepo, likeRepo, delegate, events, folder)
	searchService := service.NewSearchService(videoRepo, likeRepo, searcher)
	commentService := service.NewCommentService(commentRepo, videoRepo)
	likeService := service.NewLikeService(likeRepo, videoRepo, commentRepo)
	subscriptionService := service.NewSubscriptionService(subscriptionRepo, userRepo)
	playlistService := service.NewPlaylistService(playlistRepo, videoRepo, likeRepo)

	cookies := handler.CookieConfig{
		Secure:     cfg.App.IsProduction(),
		AccessTTL:  tokens.AccessTTL(),
		RefreshTTL: tokens.RefreshTTL(),
	}

	r := router.New(&router.Handlers{
		Auth:         handler.NewAuthHandler(authService, cookies),
		User:         handler.NewUserHandler(userService),
		Video:        handler.NewVideoHandler(videoService),
		Search:       handler.NewSearchHandler(searchService),
		Comment:      handler.NewCommentHandler(commentService),
		Like:         handler.NewLikeHandler(likeService),
		Subscription: handler.NewSubscriptionHandler(subscriptionService),
		Playlist:     handler.NewPlaylistHandler(playlistService),
		Health:       handler.NewHealthHandler(cfg.App.Name, cfg.App.Version, healthChecks),
	}, &router.Options{
		Auth:        middleware.AuthRequired(tokens, userRepo),
		RateLimiter: limiter,
		CORSOrigins: cfg.CORS.Origins,
		Media:       cfg.Media,
		Swagger:     !cfg.App.IsProduction(),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       5 * time.Minute, // 视频上传
		WriteTimeout:      5 * time.Minute,
		IdleTimeout:       2 * time.Minute,
	}

	go func() {
		logger.Info("Server listening",
			zap.String("name", cfg.App.Name),
			zap.String("version", cfg.App.Version),
			zap.String("env", cfg.App.Env),
			zap.String("addr", addr),
			zap.String("media_driver", cfg.Media.Driver),
			zap.Bool("kafka", events != nil),
			zap.Bool("elasticsearch", searcher != nil),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// 监听系统信号，优雅退出
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}
	logger.Info("Server stopped")
}

func newMediaStore(cfg *config.Config) (media.Store, error) {
	switch cfg.Media.Driver {
	case "s3":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		store, err := infraS3.NewStore(ctx, &cfg.S3)
		if err != nil {
			return nil, err
		}
		return store, nil
	case "minio":
		if err := infraMinio.Init(&cfg.MinIO); err != nil {
			return nil, err
		}
		return infraMinio.NewStore(&cfg.MinIO), nil
	default:
		return nil, fmt.Errorf("unknown media driver %q", cfg.Media.Driver)
	}
}
