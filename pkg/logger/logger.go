package logger

import (
	"io"
	"os"
	"strings"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	hertzzap "github.com/hertz-contrib/logger/zap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"MonthlyMasti/config"
)

var (
	Logger  *zap.Logger
	logFile io.Closer
)

// Init 初始化全局 zap logger，并接管 hertz 的 hlog 输出。
// server / worker / cli 三个入口共用
func Init() {
	level := levelFor(config.Cfg.LoggerLevel)

	atomic := zap.NewAtomicLevel()
	atomic.SetLevel(level)

	hzLogger := hertzzap.NewLogger(
		hertzzap.WithCoreEnc(newEncoder()),
		hertzzap.WithCoreWs(newWriteSyncer()),
		hertzzap.WithCoreLevel(atomic),
		hertzzap.WithZapOptions(
			zap.AddCaller(),
			zap.AddStacktrace(zapcore.ErrorLevel),
			zap.Fields(zap.String("service", "monthlymasti")),
		),
	)
	hlog.SetLogger(hzLogger)
	hlog.SetLevel(hlogLevelFor(level))

	Logger = hzLogger.Logger()
	Logger.Info("Logger ready",
		zap.String("level", level.String()),
		zap.String("format", config.Cfg.LoggerFormat),
		zap.String("environment", config.Cfg.Environment),
	)
}

// Sync 刷新缓冲并关闭日志文件，仅在进程退出时调用
func Sync() {
	if Logger != nil {
		_ = Logger.Sync()
	}
	if logFile != nil {
		_ = logFile.Close()
	}
}

func newEncoder() zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeCaller = zapcore.ShortCallerEncoder

	// 开发环境用彩色 console 输出，线上固定 JSON
	if config.Cfg.IsDevelopment() || strings.EqualFold(config.Cfg.LoggerFormat, "text") {
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return zapcore.NewConsoleEncoder(cfg)
	}
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewJSONEncoder(cfg)
}

func newWriteSyncer() zapcore.WriteSyncer {
	switch strings.ToLower(config.Cfg.LoggerOutputPath) {
	case "", "stdout":
		return zapcore.AddSync(os.Stdout)
	case "stderr":
		return zapcore.AddSync(os.Stderr)
	}

	file, err := os.OpenFile(config.Cfg.LoggerOutputPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		panic("failed to open log file: " + err.Error())
	}
	logFile = file
	return zapcore.AddSync(file)
}

func levelFor(level string) zapcore.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return zapcore.DebugLevel
	case "WARN":
		return zapcore.WarnLevel
	case "ERROR":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func hlogLevelFor(level zapcore.Level) hlog.Level {
	switch level {
	case zapcore.DebugLevel:
		return hlog.LevelDebug
	case zapcore.WarnLevel:
		return hlog.LevelWarn
	case zapcore.ErrorLevel:
		return hlog.LevelError
	default:
		return hlog.LevelInfo
	}
}
