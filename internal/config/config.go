package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 全局配置结构体
type Config struct {
	App           AppConfig           `mapstructure:"app"`
	CORS          CORSConfig          `mapstructure:"cors"`
	Database      DatabaseConfig      `mapstructure:"database"`
	Redis         RedisConfig         `mapstructure:"redis"`
	Media         MediaConfig         `mapstructure:"media"`
	MinIO         MinIOConfig         `mapstructure:"minio"`
	S3            S3Config            `mapstructure:"s3"`
	Kafka         KafkaConfig         `mapstructure:"kafka"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
	JWT           JWTConfig           `mapstructure:"jwt"`
	Log           LogConfig           `mapstructure:"log"`
	RateLimit     RateLimitConfig     `mapstructure:"rate_limit"`
}

// AppConfig 应用配置
type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
	Mode    string `mapstructure:"mode"` // gin 模式: debug / release / test
	Env     string `mapstructure:"env"`  // development / production
	Port    int    `mapstructure:"port"`
}

// IsProduction 生产环境下 Cookie 需要 Secure
func (a *AppConfig) IsProduction() bool {
	return strings.EqualFold(a.Env, "production")
}

// CORSConfig 跨域配置
type CORSConfig struct {
	Origins []string `mapstructure:"origins"`
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	URL             string `mapstructure:"url"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	DBName          string `mapstructure:"dbname"`
	SSLMode         string `mapstructure:"sslmode"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"` // 秒
}

// DSN 返回PostgreSQL连接字符串，优先使用 DATABASE_URL
func (d *DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// RedisConfig Redis配置
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// Addr 返回Redis地址
func (r *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// MediaConfig 媒体上传配置
type MediaConfig struct {
	Driver     string `mapstructure:"driver"` // minio / s3
	Folder     string `mapstructure:"folder"`
	TempDir    string `mapstructure:"temp_dir"`
	MaxImageMB int64  `mapstructure:"max_image_mb"`
	MaxVideoMB int64  `mapstructure:"max_video_mb"`
}

// MinIOConfig MinIO配置
type MinIOConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	UseSSL    bool   `mapstructure:"use_ssl"`
	Bucket    string `mapstructure:"bucket"`
	PublicURL string `mapstructure:"public_url"`
}

// S3Config S3 兼容对象存储配置
type S3Config struct {
	Region        string `mapstructure:"region"`
	Endpoint      string `mapstructure:"endpoint"`
	Bucket        string `mapstructure:"bucket"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	PublicBaseURL string `mapstructure:"public_base_url"`
}

// KafkaConfig Kafka配置
type KafkaConfig struct {
	Enabled bool              `mapstructure:"enabled"`
	Brokers []string          `mapstructure:"brokers"`
	Topics  map[string]string `mapstructure:"topics"`
}

// Topic 返回指定用途的 topic，未配置时返回 fallback
func (k *KafkaConfig) Topic(name, fallback string) string {
	if t, ok := k.Topics[name]; ok && t != "" {
		return t
	}
	return fallback
}

// ElasticsearchConfig Elasticsearch配置
type ElasticsearchConfig struct {
	Enabled bool              `mapstructure:"enabled"`
	Hosts   []string          `mapstructure:"hosts"`
	Index   map[string]string `mapstructure:"index"`
}

// VideosIndex 返回视频索引名
func (e *ElasticsearchConfig) VideosIndex() string {
	if name := e.Index["videos"]; name != "" {
		return name
	}
	return "videos"
}

// JWTConfig JWT配置，过期时间支持 Go duration 与 "10d" 形式
type JWTConfig struct {
	AccessSecret  string `mapstructure:"access_secret"`
	AccessExpiry  string `mapstructure:"access_expiry"`
	RefreshSecret string `mapstructure:"refresh_secret"`
	RefreshExpiry string `mapstructure:"refresh_expiry"`
}

// AccessDuration 返回 access token 有效期
func (j *JWTConfig) AccessDuration() time.Duration {
	return parseExpiry(j.AccessExpiry, 24*time.Hour)
}

// RefreshDuration 返回 refresh token 有效期
func (j *JWTConfig) RefreshDuration() time.Duration {
	return parseExpiry(j.RefreshExpiry, 10*24*time.Hour)
}

// LogConfig 日志配置
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"` // stdout / file / both
	FilePath   string `mapstructure:"file_path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// RateLimitConfig 认证接口限流配置
type RateLimitConfig struct {
	Backend  string        `mapstructure:"backend"` // memory / redis
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
	Burst    int           `mapstructure:"burst"`
}

// 全局配置实例
var globalConfig *Config

// envAliases 兼容常见的环境变量命名
var envAliases = map[string][]string{
	"app.port":            {"PORT", "APP_PORT"},
	"app.env":             {"NODE_ENV", "APP_ENV"},
	"database.url":        {"DATABASE_URL"},
	"cors.origins":        {"CORS_ORIGIN", "CORS_ORIGINS"},
	"jwt.access_secret":   {"ACCESS_TOKEN_SECRET", "JWT_ACCESS_SECRET"},
	"jwt.access_expiry":   {"ACCESS_TOKEN_EXPIRY", "JWT_ACCESS_EXPIRY"},
	"jwt.refresh_secret":  {"REFRESH_TOKEN_SECRET", "JWT_REFRESH_SECRET"},
	"jwt.refresh_expiry":  {"REFRESH_TOKEN_EXPIRY", "JWT_REFRESH_EXPIRY"},
	"redis.host":          {"REDIS_HOST"},
	"minio.endpoint":      {"MINIO_ENDPOINT"},
	"minio.access_key":    {"MINIO_ACCESS_KEY"},
	"minio.secret_key":    {"MINIO_SECRET_KEY"},
	"s3.bucket":           {"S3_BUCKET"},
	"s3.region":           {"S3_REGION", "AWS_REGION"},
	"kafka.brokers":       {"KAFKA_BROKERS"},
	"elasticsearch.hosts": {"ELASTICSEARCH_HOSTS"},
	"media.driver":        {"MEDIA_DRIVER"},
	"log.level":           {"LOG_LEVEL"},
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "vidtube-go")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.mode", "release")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", 8000)

	v.SetDefault("cors.origins", []string{"http://localhost:5173"})

	v.SetDefault("database.url", "")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "vidtube")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.conn_max_lifetime", 300)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("media.driver", "minio")
	v.SetDefault("media.folder", "VIDTUBE")
	v.SetDefault("media.temp_dir", os.TempDir())
	v.SetDefault("media.max_image_mb", 5)
	v.SetDefault("media.max_video_mb", 500)

	v.SetDefault("minio.endpoint", "localhost:9000")
	v.SetDefault("minio.access_key", "minioadmin")
	v.SetDefault("minio.secret_key", "minioadmin")
	v.SetDefault("minio.use_ssl", false)
	v.SetDefault("minio.bucket", "vidtube-media")
	v.SetDefault("minio.public_url", "")

	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.bucket", "vidtube-media")
	v.SetDefault("s3.access_key", "")
	v.SetDefault("s3.secret_key", "")
	v.SetDefault("s3.public_base_url", "")

	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.topics", map[string]string{"video_events": "vidtube.video-events"})

	v.SetDefault("elasticsearch.enabled", false)
	v.SetDefault("elasticsearch.hosts", []string{"http://localhost:9200"})
	v.SetDefault("elasticsearch.index", map[string]string{"videos": "videos"})

	v.SetDefault("jwt.access_secret", "")
	v.SetDefault("jwt.access_expiry", "1d")
	v.SetDefault("jwt.refresh_secret", "")
	v.SetDefault("jwt.refresh_expiry", "10d")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")
	v.SetDefault("log.file_path", "logs/vidtube.log")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age_days", 30)
	v.SetDefault("log.compress", true)

	v.SetDefault("rate_limit.backend", "memory")
	v.SetDefault("rate_limit.requests", 10)
	v.SetDefault("rate_limit.window", time.Minute)
	v.SetDefault("rate_limit.burst", 5)
}

// LoadDotEnv 读取 .env 文件（不存在时忽略）
func LoadDotEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

// Load 加载配置：默认值 -> 配置文件（可选） -> 环境变量
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, envs := range envAliases {
		names := append([]string{strings.ToUpper(strings.ReplaceAll(key, ".", "_"))}, envs...)
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			v.SetConfigFile(configPath)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.CORS.Origins = splitList(cfg.CORS.Origins)
	cfg.Kafka.Brokers = splitList(cfg.Kafka.Brokers)
	cfg.Elasticsearch.Hosts = splitList(cfg.Elasticsearch.Hosts)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	globalConfig = &cfg
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.JWT.AccessSecret == "" || c.JWT.RefreshSecret == "" {
		return errors.New("jwt access_secret and refresh_secret are required")
	}
	switch c.Media.Driver {
	case "minio", "s3":
	default:
		return fmt.Errorf("unsupported media driver %q", c.Media.Driver)
	}
	return nil
}

// Get 获取全局配置
func Get() *Config {
	if globalConfig == nil {
		panic("config not loaded, please call Load() first")
	}
	return globalConfig
}

// GetApp 获取应用配置
func GetApp() *AppConfig {
	return &Get().App
}

// GetJWT 获取JWT配置
func GetJWT() *JWTConfig {
	return &Get().JWT
}

// splitList 兼容 "a,b" 形式的环境变量
func splitList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

func parseExpiry(raw string, fallback time.Duration) time.Duration {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	if strings.HasSuffix(raw, "d") {
		days, err := strconv.Atoi(strings.TrimSuffix(raw, "d"))
		if err != nil || days <= 0 {
			return fallback
		}
		return time.Duration(days) * 24 * time.Hour
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
