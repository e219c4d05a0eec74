package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"vidtube-go/pkg/logger"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrNoFile = errors.New("no local file to upload")

// Store 对象存储的最小接口，由 MinIO / S3 实现
type Store interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
	Remove(ctx context.Context, key string) error
}

// Asset 上传结果：可访问地址 + 对象标识
type Asset struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// Delegate 负责把本地临时文件上传到对象存储
type Delegate struct {
	store Store
}

func NewDelegate(store Store) *Delegate {
	return &Delegate{store: store}
}

// Upload 上传本地文件到 folder 下，无论成功与否都会删除本地文件
func (d *Delegate) Upload(ctx context.Context, localPath, folder string) (*Asset, error) {
	if strings.TrimSpace(localPath) == "" {
		return nil, ErrNoFile
	}
	defer removeLocal(localPath)

	mtype, err := mimetype.DetectFile(localPath)
	if err != nil {
		return nil, fmt.Errorf("detect content type: %w", err)
	}

	f, err := os.Open(localPath)
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat upload: %w", err)
	}

	ext := filepath.Ext(localPath)
	if ext == "" {
		ext = mtype.Extension()
	}
	key := path.Join(folder, uuid.NewString()+ext)

	url, err := d.store.Put(ctx, key, f, info.Size(), mtype.String())
	if err != nil {
		logger.Error("Media upload failed", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("upload %s: %w", key, err)
	}

	logger.Debug("Media uploaded", zap.String("key", key), zap.Int64("size", info.Size()))
	return &Asset{URL: url, PublicID: key}, nil
}

// Delete 删除远端对象，失败只记录日志
func (d *Delegate) Delete(ctx context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}
	if err := d.store.Remove(ctx, publicID); err != nil {
		logger.Warn("Media delete failed", zap.String("public_id", publicID), zap.Error(err))
		return err
	}
	return nil
}

func removeLocal(p string) {
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warn("Failed to remove temp upload", zap.String("path", p), zap.Error(err))
	}
}
