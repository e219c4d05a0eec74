package router

import (
	"vidtube-go/internal/api/handler"
	"vidtube-go/internal/api/middleware"
	"vidtube-go/internal/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers 各业务模块的处理器
type Handlers struct {
	Auth         *handler.AuthHandler
	User         *handler.UserHandler
	Video        *handler.VideoHandler
	Search       *handler.SearchHandler
	Comment      *handler.CommentHandler
	Like         *handler.LikeHandler
	Subscription *handler.SubscriptionHandler
	Playlist     *handler.PlaylistHandler
	Health       *handler.HealthHandler
}

// Options 路由依赖的中间件与配置
type Options struct {
	Auth        gin.HandlerFunc
	RateLimiter middleware.RateLimiter // 为 nil 时不限流
	CORSOrigins []string
	Media       config.MediaConfig
	Swagger     bool
}

// New 创建 Gin 引擎，注册全局中间件和全部路由
func New(h *Handlers, opts *Options) *gin.Engine {
	r := gin.New()
	r.MaxMultipartMemory = 8 << 20

	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(opts.CORSOrigins))
	r.Use(middleware.ErrorHandler())

	r.GET("/healthz", h.Health.Liveness)
	if opts.Swagger {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	Setup(r, h, opts)
	return r
}

// Setup 注册所有业务路由
func Setup(r *gin.Engine, h *Handlers, opts *Options) {
	v1 := r.Group("/api/v1")
	v1.GET("/healthcheck", h.Health.Healthcheck)

	limit := func(scope string) gin.HandlerFunc {
		if opts.RateLimiter == nil {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimit(opts.RateLimiter, scope)
	}

	media := opts.Media
	avatar := middleware.ImageField("avatar", media.MaxImageMB)
	cover := middleware.ImageField("coverImage", media.MaxImageMB)
	thumbnail := middleware.ImageField("thumbnail", media.MaxImageMB)
	video := middleware.VideoField("video", media.MaxVideoMB)

	// --- 用户与认证 ---
	users := v1.Group("/users")
	{
		users.POST("/register", limit("register"), middleware.Upload(media.TempDir, avatar, cover), h.Auth.Register)
		users.POST("/login", limit("login"), h.Auth.Login)
		users.POST("/refresh-token", limit("refresh-token"), h.Auth.RefreshToken)

		authed := users.Group("", opts.Auth)
		{
			authed.POST("/logout", h.Auth.Logout)
			authed.POST("/change-password", h.Auth.ChangePassword)
			authed.GET("/current-user", h.User.GetCurrentUser)
			authed.GET("/c/:username", h.User.GetChannelProfile)
			authed.GET("/history", h.User.GetWatchHistory)
			authed.GET("/all-users", h.User.ListUsers)
			authed.PATCH("/update-account", h.User.UpdateAccount)
			authed.PATCH("/avatar", middleware.Upload(media.TempDir, avatar), h.User.UpdateAvatar)
			authed.PATCH("/cover-image", middleware.Upload(media.TempDir, cover), h.User.UpdateCoverImage)
		}
	}

	// --- 视频 ---
	videos := v1.Group("/videos", opts.Auth)
	{
		videos.GET("/feed", h.Video.GetFeed)
		videos.GET("/search", h.Search.SearchVideos)
		videos.POST("/upload", middleware.Upload(media.TempDir, video, thumbnail), h.Video.Upload)
		videos.GET("/:videoId", h.Video.GetVideo)
		videos.DELETE("/:videoId", h.Video.Delete)
		videos.PATCH("/update-video/:videoId", middleware.Upload(media.TempDir, thumbnail), h.Video.Update)
		videos.PATCH("/toggle/publish/:videoId", h.Video.TogglePublish)
	}

	// --- 评论 ---
	comments := v1.Group("/comments", opts.Auth)
	{
		comments.GET("/comments/:videoId", h.Comment.ListByVideo)
		comments.POST("/add/:videoId", h.Comment.Add)
		comments.PATCH("/update/:id", h.Comment.Update)
		comments.DELETE("/delete/:id", h.Comment.Delete)
	}

	// --- 点赞 ---
	likes := v1.Group("/likes", opts.Auth)
	{
		likes.POST("/video/:videoId", h.Like.ToggleVideoLike)
		likes.POST("/like/:id", h.Like.ToggleCommentLike)
		likes.GET("/liked-videos", h.Like.ListLikedVideos)
	}

	// --- 订阅 ---
	subscriptions := v1.Group("/subscriptions", opts.Auth)
	{
		subscriptions.POST("/c/:channelId", h.Subscription.Toggle)
		subscriptions.POST("/c", h.Subscription.Subscribe)
		subscriptions.DELETE("/c", h.Subscription.Unsubscribe)
		subscriptions.GET("/c", h.Subscription.ListSubscribedChannels)
		subscriptions.GET("/u/:channelId", h.Subscription.ListSubscribers)
	}

	// --- 播放列表 ---
	playlists := v1.Group("/playlists", opts.Auth)
	{
		playlists.POST("/create", h.Playlist.Create)
		playlists.GET("/playlists", h.Playlist.ListMine)
		playlists.GET("/p/:id", h.Playlist.Get)
		playlists.POST("/playlist", h.Playlist.AddVideo)
		playlists.DELETE("/remove-video/:playlistId", h.Playlist.RemoveVideo)
		playlists.PATCH("/update/:playlistId", h.Playlist.Update)
		playlists.DELETE("/delete/:playlistId", h.Playlist.Delete)
	}
}
