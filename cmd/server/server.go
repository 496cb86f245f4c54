package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	hzconfig "github.com/cloudwego/hertz/pkg/common/config"
	"go.uber.org/zap"

	"MonthlyMasti/config"
	"MonthlyMasti/internal/middleware"
	"MonthlyMasti/internal/router"
	"MonthlyMasti/pkg/email"
	"MonthlyMasti/pkg/logger"
	"MonthlyMasti/pkg/metrics"
	"MonthlyMasti/pkg/objstore"
	"MonthlyMasti/pkg/otel"
	"MonthlyMasti/pkg/snowflake"
	"MonthlyMasti/pkg/token"
	"MonthlyMasti/storage"
)

func main() {
	// 日志部分
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

	// 可观测性
	if config.Cfg.OTelEnabled {
		shutdown, err := otel.InitOpenTelemetry(ctx, otel.Config{
			ServiceName:    config.Cfg.ServiceName,
			ServiceVersion: "1.0.0",
			Environment:    config.Cfg.Environment,
			OTLPEndpoint:   config.Cfg.OTLPEndpoint,
			SampleRatio:    config.Cfg.OTelSampler,
		})
		if err != nil {
			logger.Logger.Warn("Failed to initialize OpenTelemetry", zap.Error(err))
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logger.Logger.Error("Failed to shutdown OpenTelemetry", zap.Error(err))
				}
			}()
		}

		if err := metrics.InitMetrics(); err != nil {
			logger.Logger.Warn("Failed to initialize metrics", zap.Error(err))
		}
	}

	// 初始化存储层，记得关闭外部连接
	if err := storage.Init(); err != nil {
		logger.Logger.Fatal("Failed to initialize storage", zap.Error(err))
	}
	defer storage.Close()

	if err := snowflake.Init(config.Cfg.SnowflakeMachineID, config.Cfg.SnowflakeDataCenter); err != nil {
		logger.Logger.Fatal("Failed to initialize snowflake", zap.Error(err))
	}

	// 初始化邮件服务
	if err := email.Init(); err != nil {
		logger.Logger.Warn("Failed to initialize email service", zap.Error(err))
		logger.Logger.Info("Email service will be disabled, notifications may not work")
	}

	// 初始化对象存储
	if err := objstore.Init(); err != nil {
		logger.Logger.Warn("Failed to initialize object storage", zap.Error(err))
		logger.Logger.Info("Object storage will be disabled, media uploads may not work")
	}

	if err := token.Init(); err != nil {
		logger.Logger.Fatal("Failed to initialize token package", zap.Error(err))
	} // token 在中间件前初始化，middleware 依赖 token

	// 初始化中间件
	if err := middleware.Init(); err != nil {
		logger.Logger.Fatal("Failed to initialize middlewares", zap.Error(err))
	}

	logger.Logger.Info("Server starting",
		zap.String("service", config.Cfg.ServiceName),
		zap.String("port", config.Cfg.ServerPort),
		zap.String("environment", config.Cfg.Environment),
	)

	addr := net.JoinHostPort(config.Cfg.ServerHost, config.Cfg.ServerPort)

	serverOpts := []hzconfig.Option{server.WithHostPorts(addr)}
	var tracerMW app.HandlerFunc
	if config.Cfg.OTelEnabled {
		var tracerOpt hzconfig.Option
		tracerOpt, tracerMW = middleware.NewServerTracerConfig()
		serverOpts = append(serverOpts, tracerOpt)
	}

	h := server.Default(serverOpts...)
	if tracerMW != nil {
		h.Use(tracerMW)
	}

	router.Register(h)

	// 优雅关闭：监听关闭信号并调用 Shutdown
	go func() {
		<-ctx.Done()
		logger.Logger.Info("Initiating graceful shutdown...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := h.Shutdown(shutdownCtx); err != nil {
			logger.Logger.Error("Failed to shutdown HTTP server", zap.Error(err))
		}
	}()

	logger.Logger.Info("HTTP server listening", zap.String("addr", addr))

	h.Spin()

	logger.Logger.Info("Server shutting down gracefully")
}
