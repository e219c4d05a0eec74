package middleware

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"vidtube-go/internal/api/response"
	"vidtube-go/pkg/logger"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const contextKeyUploads = "uploadedFiles"

// formOverhead 文本字段和 multipart 分隔符的余量
const formOverhead int64 = 1 << 20

// FileKind 允许上传的文件类别
type FileKind int

const (
	KindImage FileKind = iota
	KindVideo
)

// UploadField 声明一个 multipart 文件字段
type UploadField struct {
	Name     string
	Kind     FileKind
	MaxBytes int64
}

// ImageField png / jpeg，maxMB 为 0 表示不限制
func ImageField(name string, maxMB int64) UploadField {
	return UploadField{Name: name, Kind: KindImage, MaxBytes: maxMB << 20}
}

// VideoField 任意 video/* 类型
func VideoField(name string, maxMB int64) UploadField {
	return UploadField{Name: name, Kind: KindVideo, MaxBytes: maxMB << 20}
}

var errUnsupportedType = errors.New("unsupported file type")

// bodyLimit 所有字段上限之和加余量，任一字段不限制时返回 0
func bodyLimit(fields []UploadField) int64 {
	total := formOverhead
	for _, f := range fields {
		if f.MaxBytes <= 0 {
			return 0
		}
		total += f.MaxBytes
	}
	return total
}

// Upload 将声明的文件字段落盘到 tempDir，请求结束后清理残留文件
func Upload(tempDir string, fields ...UploadField) gin.HandlerFunc {
	limit := bodyLimit(fields)
	return func(c *gin.Context) {
		if limit > 0 {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		form, err := c.MultipartForm()
		if err != nil {
			if errors.Is(err, http.ErrNotMultipart) {
				c.Next()
				return
			}
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				response.Fail(c, http.StatusRequestEntityTooLarge,
					fmt.Sprintf("Request body exceeds the %d MB limit", tooLarge.Limit>>20))
				return
			}
			response.BadRequest(c, "Invalid multipart form")
			return
		}

		saved := make(map[string]string, len(fields))
		defer func() {
			for _, p := range saved {
				if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
					logger.Warn("Failed to clean up upload", zap.String("path", p), zap.Error(err))
				}
			}
		}()

		for _, field := range fields {
			headers := form.File[field.Name]
			if len(headers) == 0 {
				continue
			}
			fh := headers[0]
			if field.MaxBytes > 0 && fh.Size > field.MaxBytes {
				response.BadRequest(c, fmt.Sprintf("%s exceeds the %d MB limit", field.Name, field.MaxBytes>>20))
				return
			}

			p, err := saveUpload(tempDir, fh, field.Kind)
			if err != nil {
				if errors.Is(err, errUnsupportedType) {
					response.BadRequest(c, fmt.Sprintf("%s: %v", field.Name, err))
					return
				}
				response.Abort(c, fmt.Errorf("save upload %s: %w", field.Name, err))
				return
			}
			saved[field.Name] = p
		}

		c.Set(contextKeyUploads, saved)
		c.Next()
	}
}

// UploadedFile 返回字段对应的本地临时文件路径
func UploadedFile(c *gin.Context, name string) (string, bool) {
	val, ok := c.Get(contextKeyUploads)
	if !ok {
		return "", false
	}
	files, ok := val.(map[string]string)
	if !ok {
		return "", false
	}
	p, ok := files[name]
	return p, ok
}

func saveUpload(tempDir string, fh *multipart.FileHeader, kind FileKind) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(tempDir, 0o755); err != nil {
		return "", err
	}
	dst := filepath.Join(tempDir, uuid.NewString())
	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		os.Remove(dst)
		return "", err
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return "", err
	}

	mtype, err := mimetype.DetectFile(dst)
	if err != nil {
		os.Remove(dst)
		return "", err
	}
	if !allowed(mtype, kind) {
		os.Remove(dst)
		return "", fmt.Errorf("%w %s", errUnsupportedType, mtype.String())
	}

	final := dst + mtype.Extension()
	if err := os.Rename(dst, final); err != nil {
		os.Remove(dst)
		return "", err
	}
	return final, nil
}

func allowed(mtype *mimetype.MIME, kind FileKind) bool {
	switch kind {
	case KindImage:
		return mtype.Is("image/png") || mtype.Is("image/jpeg")
	case KindVideo:
		return strings.HasPrefix(mtype.String(), "video/")
	}
	return false
}
