package objstore

import (
	"context"
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"

	"MonthlyMasti/config"
	"MonthlyMasti/pkg/logger"
)

// Client 对象存储客户端接口
type Client interface {
	// Upload 上传一个对象到指定路径，path 形如 photos/<ts>_<filename>
	Upload(ctx context.Context, path string, body io.Reader, contentType string) error

	// PublicURL 返回对象的公网访问地址
	PublicURL(path string) string
}

var (
	storeClient Client
	storeOnce   sync.Once
	storeErr    error
)

// Init 初始化对象存储客户端
func Init() error {
	storeOnce.Do(func() {
		cfg := config.Cfg

		if cfg.S3AccessKey == "" || cfg.S3SecretKey == "" {
			storeErr = fmt.Errorf("object storage credentials are not configured")
			return
		}

		storeClient, storeErr = NewS3Client(context.Background())
		if storeErr != nil {
			logger.Logger.Error("Failed to initialize object storage client", zap.Error(storeErr))
			return
		}

		logger.Logger.Info("Object storage client initialized successfully",
			zap.String("bucket", cfg.S3Bucket),
			zap.String("endpoint", cfg.S3BaseEndpoint),
		)
	})

	return storeErr
}

func GetClient() Client {
	if storeClient == nil {
		panic("object storage client not initialized, call objstore.Init() first")
	}
	return storeClient
}

// SetClient 替换客户端实例（测试用）
func SetClient(c Client) {
	storeClient = c
}
