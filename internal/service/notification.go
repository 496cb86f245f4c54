package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"MonthlyMasti/internal/model"
	"MonthlyMasti/config"
	"MonthlyMasti/pkg/email"
	"MonthlyMasti/pkg/logger"
	"MonthlyMasti/pkg/metrics"
	"MonthlyMasti/storage/database"
)

const notifySubject = "📬 New Monthly Check-in Submitted!"

type NotificationService struct{}

var (
	notificationService *NotificationService
	notificationOnce    sync.Once
)

func Notification() *NotificationService {
	notificationOnce.Do(func() {
		notificationService = &NotificationService{}
	})
	return notificationService
}

// listUsers 可在测试中替换
var listUsers = func(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := database.DB().WithContext(ctx).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// NotifyAll 给所有注册用户发送提交通知邮件。
// 单个收件人失败只记录日志，不影响其余收件人，整体仍视为成功。
func (s *NotificationService) NotifyAll(ctx context.Context, name string) error {
	if name == "" {
		name = "Someone"
	}

	users, err := listUsers(ctx)
	if err != nil {
		logger.Logger.Error("Failed to fetch notification recipients", zap.Error(err))
		return err
	}

	if len(users) == 0 {
		logger.Logger.Info("No registered users to notify")
		return nil
	}

	text := fmt.Sprintf("%s just submitted their monthly check-in. Come share yours too!", name)

	sent, failed := 0, 0
	for _, u := range users {
		if u.Email == "" {
			continue
		}

		start := time.Now()
		if err := email.Send(ctx, u.Email, notifySubject, text); err != nil {
			failed++
			metrics.RecordEmailSent(config.Cfg.EmailProvider, "failed", time.Since(start).Seconds())
			logger.Logger.Error("Failed to send notification email",
				zap.String("to", u.Email),
				zap.Error(err),
			)
			continue
		}
		sent++
		metrics.RecordEmailSent(config.Cfg.EmailProvider, "success", time.Since(start).Seconds())
	}

	logger.Logger.Info("Notification emails dispatched",
		zap.String("name", name),
		zap.Int("sent", sent),
		zap.Int("failed", failed),
	)

	return nil
}
