package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"MonthlyMasti/pkg/errors"
	"MonthlyMasti/pkg/logger"
	"MonthlyMasti/pkg/metrics"
	"MonthlyMasti/pkg/objstore"
)

// 上传目录就两类，photos 是打卡照片，selfies 是自拍
var uploadKinds = map[string]bool{
	"photos":  true,
	"selfies": true,
}

type UploadService struct{}

var (
	uploadService *UploadService
	uploadOnce    sync.Once
)

func Upload() *UploadService {
	uploadOnce.Do(func() {
		uploadService = &UploadService{}
	})
	return uploadService
}

// Store 上传一个媒体文件，返回公网地址。
// 对象路径为 <kind>/<毫秒时间戳>_<文件名>，避免同名覆盖
func (s *UploadService) Store(ctx context.Context, kind, filename string, body io.Reader, contentType string, size int64) (string, error) {
	if !uploadKinds[kind] {
		return "", errors.UploadKindInvalid
	}

	// 只保留文件名部分，去掉客户端可能带的路径
	filename = path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if filename == "" || filename == "." || filename == "/" {
		filename = "upload"
	}

	objectPath := fmt.Sprintf("%s/%d_%s", kind, time.Now().UnixMilli(), filename)

	if err := objstore.GetClient().Upload(ctx, objectPath, body, contentType); err != nil {
		metrics.RecordUpload(kind, "failed", size)
		logger.Logger.Error("Failed to upload media",
			zap.String("path", objectPath),
			zap.Error(err),
		)
		return "", errors.UploadFailed
	}

	metrics.RecordUpload(kind, "success", size)
	url := objstore.GetClient().PublicURL(objectPath)

	logger.Logger.Info("Media uploaded",
		zap.String("path", objectPath),
		zap.String("url", url),
	)

	return url, nil
}
