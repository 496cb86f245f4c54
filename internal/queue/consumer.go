package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"MonthlyMasti/internal/cache"
	"MonthlyMasti/internal/model"
	"MonthlyMasti/pkg/errors"
	"MonthlyMasti/pkg/logger"
	"MonthlyMasti/pkg/metrics"
	"MonthlyMasti/storage/mq"
)

// Notifier 通知服务接口，由 worker 启动时注入
type Notifier interface {
	NotifyAll(ctx context.Context, name string) error
}

var notifier Notifier

// SetNotifier 设置通知服务（在 worker 启动时调用）
func SetNotifier(n Notifier) {
	notifier = n
}

// StartSubmissionNotifyConsumer 启动提交通知消费者
func StartSubmissionNotifyConsumer(ctx context.Context) error {
	handler := func(body []byte) error {
		var msg model.SubmissionNotificationMessage
		if err := json.Unmarshal(body, &msg); err != nil {
			return &errors.SkipMessageError{Reason: fmt.Sprintf("malformed notification message: %v", err)}
		}

		// 【幂等性检查】SETNX 原子性地检查并标记消息正在处理
		processing, err := cache.TryMarkMessageProcessing(ctx, msg.MessageID, 24*time.Hour)
		if err != nil {
			logger.Logger.Warn("Failed to check message processed status",
				zap.String("message_id", msg.MessageID),
				zap.Error(err),
			)
			// 如果检查失败，继续处理（不阻塞业务），但可能重复处理
		} else if !processing {
			logger.Logger.Info("Message already processed or being processed, skipping",
				zap.String("message_id", msg.MessageID),
			)
			return &errors.SkipMessageError{Reason: fmt.Sprintf("Message %s already processed", msg.MessageID)}
		}

		logger.Logger.Info("Processing submission notification",
			zap.String("message_id", msg.MessageID),
			zap.String("name", msg.Name),
		)

		metrics.UpdateNotifyQueueLength(mq.NotifyQueue, -1)

		if notifier == nil {
			return fmt.Errorf("notifier not set, call queue.SetNotifier first")
		}

		if err := notifier.NotifyAll(ctx, msg.Name); err != nil {
			// 处理失败，取消标记，允许重试
			if unmarkErr := cache.UnmarkMessageProcessing(ctx, msg.MessageID); unmarkErr != nil {
				logger.Logger.Warn("Failed to unmark message processing",
					zap.String("message_id", msg.MessageID),
					zap.Error(unmarkErr),
				)
			}
			return fmt.Errorf("failed to process submission notification: %w", err)
		}

		if err := cache.MarkMessageProcessed(ctx, msg.MessageID, 48*time.Hour); err != nil {
			logger.Logger.Warn("Failed to mark message as processed",
				zap.String("message_id", msg.MessageID),
				zap.Error(err),
			)
		}

		return nil
	}

	// Consume 阻塞循环，放到单独的 goroutine 里跑
	go func() {
		err := mq.Consume(mq.ConsumeOptions{
			Queue:         mq.NotifyQueue,
			ConsumerTag:   "submission_notify_consumer",
			PrefetchCount: 10,
			Handler:       handler,
		})
		if err != nil {
			logger.Logger.Error("Submission notify consumer stopped", zap.Error(err))
		}
	}()

	return nil
}

// StartAllConsumers 启动全部消费者
func StartAllConsumers(ctx context.Context) error {
	if err := StartSubmissionNotifyConsumer(ctx); err != nil {
		return fmt.Errorf("failed to start submission notify consumer: %w", err)
	}

	logger.Logger.Info("All consumers started")
	return nil
}
