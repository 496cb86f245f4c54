package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"MonthlyMasti/config"
	"MonthlyMasti/internal/queue"
	"MonthlyMasti/internal/service"
	"MonthlyMasti/pkg/email"
	"MonthlyMasti/pkg/logger"
	"MonthlyMasti/pkg/snowflake"
	"MonthlyMasti/storage"
)

func main() {

	logger.Init()
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		logger.Logger.Info("Received shutdown signal",
			zap.String("signal", sig.String()),
		)
		cancel()
	}()

	if err := storage.Init(); err != nil {
		logger.Logger.Fatal("Failed to initialize storage", zap.Error(err))
	}
	defer storage.Close()

	if err := snowflake.Init(config.Cfg.SnowflakeMachineID, config.Cfg.SnowflakeDataCenter); err != nil {
		logger.Logger.Fatal("Failed to initialize snowflake", zap.Error(err))
	}

	if err := email.Init(); err != nil {
		logger.Logger.Warn("Failed to initialize email service", zap.Error(err))
		logger.Logger.Info("Email service will be disabled, notifications may not work")
	}

	// 设置通知服务，消费者处理消息时需要
	queue.SetNotifier(service.Notification())

	logger.Logger.Info("Worker service starting",
		zap.String("service", config.Cfg.ServiceName+"-worker"),
		zap.String("environment", config.Cfg.Environment),
	)

	// 启动所有消费者
	if err := queue.StartAllConsumers(ctx); err != nil {
		logger.Logger.Fatal("Failed to start consumers", zap.Error(err))
	}

	<-ctx.Done()

	logger.Logger.Info("Worker service shutting down gracefully")
}
