package storage

import (
	"context"
	"time"

	"go.uber.org/zap"

	"MonthlyMasti/pkg/logger"
	"MonthlyMasti/storage/database"
	"MonthlyMasti/storage/mq"
	"MonthlyMasti/storage/redis"
)

// Close 优雅关闭所有存储连接
// 关闭顺序：MQ -> Redis -> Database
// 先停止消息流入，最后关数据库，保证在途写入完成
func Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := mq.Close(); err != nil {
		logger.Logger.Warn("Failed to close RabbitMQ connection", zap.Error(err))
	}

	if err := redis.Close(ctx); err != nil {
		logger.Logger.Warn("Failed to close Redis client", zap.Error(err))
	}

	if err := database.Close(ctx); err != nil {
		logger.Logger.Warn("Failed to close database connection", zap.Error(err))
	}

	logger.Logger.Info("All storage connections closed")
}
