package queue

import (
	"fmt"

	"go.uber.org/zap"

	"MonthlyMasti/internal/model"
	"MonthlyMasti/pkg/logger"
	"MonthlyMasti/pkg/metrics"
	"MonthlyMasti/pkg/snowflake"
	"MonthlyMasti/storage/mq"
	"MonthlyMasti/utils"

	"time"
)

// PublishSubmissionNotification 发布提交完成的通知任务
func PublishSubmissionNotification(msg model.SubmissionNotificationMessage) error {
	if msg.MessageID == "" {
		id, err := snowflake.NextString()
		if err != nil {
			logger.Logger.Error("Failed to generate message ID",
				zap.String("name", msg.Name),
				zap.Error(err),
			)
			return fmt.Errorf("failed to generate message ID: %w", err)
		}
		msg.MessageID = "submission_notify_" + id
	}
	if msg.OccurredAt == "" {
		msg.OccurredAt = utils.ISOTimestamp(time.Now())
	}

	err := mq.PublishMessage(
		mq.NotifyExchange,
		mq.NotifyRoutingKey,
		msg,
	)
	if err != nil {
		logger.Logger.Error("Failed to publish submission notification message",
			zap.String("message_id", msg.MessageID),
			zap.String("name", msg.Name),
			zap.Error(err),
		)
		return err
	}

	metrics.UpdateNotifyQueueLength(mq.NotifyQueue, 1)
	logger.Logger.Info("Published submission notification message",
		zap.String("message_id", msg.MessageID),
		zap.String("name", msg.Name),
	)

	return nil
}
