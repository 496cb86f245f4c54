package email

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"MonthlyMasti/config"
	"MonthlyMasti/pkg/logger"
)

// Client 邮件客户端接口
type Client interface {
	// Send 发送单封纯文本邮件
	// to: 收件人地址
	// subject: 主题
	// text: 正文
	Send(ctx context.Context, to, subject, text string) error
}

var (
	emailClient Client
	emailOnce   sync.Once
	emailErr    error
)

// Init 初始化邮件客户端
func Init() error {
	emailOnce.Do(func() {
		cfg := config.Cfg

		switch cfg.EmailProvider {
		case "resend":
			emailClient = NewResendClient(cfg.ResendAPIKey, cfg.EmailFrom)
		case "mock":
			emailClient = NewMockClient()
		default:
			emailErr = fmt.Errorf("unsupported email provider: %s", cfg.EmailProvider)
		}

		if emailErr != nil {
			logger.Logger.Error("Failed to initialize email client", zap.Error(emailErr))
			return
		}

		logger.Logger.Info("Email client initialized successfully",
			zap.String("provider", cfg.EmailProvider),
		)
	})

	return emailErr
}

func GetClient() Client {
	if emailClient == nil {
		panic("email client not initialized, call email.Init() first")
	}
	return emailClient
}

// SetClient 替换客户端实例（测试用）
func SetClient(c Client) {
	emailClient = c
}

func Send(ctx context.Context, to, subject, text string) error {
	return GetClient().Send(ctx, to, subject, text)
}
