package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setSecrets(t *testing.T) {
	t.Helper()
	t.Setenv("ACCESS_TOKEN_SECRET", "access-secret")
	t.Setenv("REFRESH_TOKEN_SECRET", "refresh-secret")
}

func TestLoadDefaults(t *testing.T) {
	setSecrets(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.App.Port)
	assert.Equal(t, "minio", cfg.Media.Driver)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORS.Origins)
	assert.Equal(t, 24*time.Hour, cfg.JWT.AccessDuration())
	assert.Equal(t, 10*24*time.Hour, cfg.JWT.RefreshDuration())
	assert.Equal(t, "videos", cfg.Elasticsearch.VideosIndex())
	assert.False(t, cfg.App.IsProduction())
	assert.Same(t, cfg, Get())
}

func TestLoadEnvironmentAliases(t *testing.T) {
	setSecrets(t)
	t.Setenv("PORT", "9090")
	t.Setenv("NODE_ENV", "production")
	t.Setenv("CORS_ORIGIN", "https://a.example.com, https://b.example.com")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/vidtube")
	t.Setenv("ACCESS_TOKEN_EXPIRY", "15m")
	t.Setenv("MEDIA_DRIVER", "s3")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.True(t, cfg.App.IsProduction())
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORS.Origins)
	assert.Equal(t, "postgres://u:p@db:5432/vidtube", cfg.Database.DSN())
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessDuration())
	assert.Equal(t, "s3", cfg.Media.Driver)
}

func TestLoadConfigFile(t *testing.T) {
	setSecrets(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("app:\n  name: from-file\n  port: 7000\nmedia:\n  folder: CUSTOM\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.App.Name)
	assert.Equal(t, 7000, cfg.App.Port)
	assert.Equal(t, "CUSTOM", cfg.Media.Folder)
}

func TestLoadRequiresSecrets(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "")
	t.Setenv("REFRESH_TOKEN_SECRET", "")

	_, err := Load("")
	assert.Error(t, err)
}

func TestLoadRejectsUnknownMediaDriver(t *testing.T) {
	setSecrets(t)
	t.Setenv("MEDIA_DRIVER", "cloudinary")

	_, err := Load("")
	assert.Error(t, err)
}

func TestParseExpiry(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Duration
	}{
		{"", time.Hour},
		{"2d", 48 * time.Hour},
		{"90s", 90 * time.Second},
		{"bogus", time.Hour},
		{"-5m", time.Hour},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, parseExpiry(tt.raw, time.Hour))
		})
	}
}
