package middleware

import (
	"context"
	"sync"
	"time"

	"vidtube-go/internal/api/response"
	infraredis "vidtube-go/internal/infra/redis"
	"vidtube-go/pkg/logger"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter 判断调用方是否还能继续请求
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryRateLimiter 进程内按 key 的令牌桶，长时间未访问的 key 会被回收
type MemoryRateLimiter struct {
	mu         sync.Mutex
	visitors   map[string]*visitor
	limit      rate.Limit
	burst      int
	ttl        time.Duration
	sweepEvery time.Duration
	lastSweep  time.Time
	now        func() time.Time
}

// NewMemoryRateLimiter 每 window 允许 requests 次，另有 burst 的突发容量
func NewMemoryRateLimiter(requests int, window time.Duration, burst int) *MemoryRateLimiter {
	if requests <= 0 {
		requests = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	if burst <= 0 {
		burst = 1
	}
	return &MemoryRateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Every(window / time.Duration(requests)),
		burst:    burst,
		ttl:        window * 5,
		sweepEvery: window,
		lastSweep:  time.Now(),
		now:        time.Now,
	}
}

func (l *MemoryRateLimiter) Allow(_ context.Context, key string) (bool, error) {
	if key == "" {
		key = "unknown"
	}
	now := l.now()

	l.mu.Lock()
	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[key] = v
	}
	v.lastSeen = now
	if now.Sub(l.lastSweep) >= l.sweepEvery {
		l.sweepLocked(now)
	}
	l.mu.Unlock()

	return v.limiter.AllowN(now, 1), nil
}

// sweepLocked 回收超过 ttl 未访问的 key，每个 window 至多一次
func (l *MemoryRateLimiter) sweepLocked(now time.Time) {
	for k, v := range l.visitors {
		if now.Sub(v.lastSeen) > l.ttl {
			delete(l.visitors, k)
		}
	}
	l.lastSweep = now
}

// RedisRateLimiter 多实例共享的固定窗口计数
type RedisRateLimiter struct {
	client   goredis.Cmdable
	requests int
	window   time.Duration
	prefix   string
}

func NewRedisRateLimiter(client goredis.Cmdable, requests int, window time.Duration) *RedisRateLimiter {
	if requests <= 0 {
		requests = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &RedisRateLimiter{client: client, requests: requests, window: window, prefix: "ratelimit:"}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	n, err := infraredis.IncrWindow(ctx, l.client, l.prefix+key, l.window)
	if err != nil {
		return false, err
	}
	return n <= int64(l.requests), nil
}

// RateLimit 以 scope + 客户端 IP 为 key 限流；限流器故障时放行
func RateLimit(limiter RateLimiter, scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := scope + ":" + c.ClientIP()
		ok, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			logger.Warn("Rate limiter unavailable", zap.String("key", key), zap.Error(err))
			c.Next()
			return
		}
		if !ok {
			response.TooManyRequests(c, "Too many requests, please try again later")
			return
		}
		c.Next()
	}
}
