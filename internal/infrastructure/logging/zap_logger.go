package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rafabene/avantpro-commerce/internal/domain/ports"
)

// ZapLogger implementa ports.Logger usando zap
type ZapLogger struct {
	logger *zap.SugaredLogger
}

// NewZapLogger cria um novo logger usando zap
// format: "json" (padrão) ou "console"
func NewZapLogger(level, format string) ports.Logger {
	var logLevel zapcore.Level

	switch level {
	case "debug":
		logLevel = zapcore.DebugLevel
	case "info":
		logLevel = zapcore.InfoLevel
	case "warn":
		logLevel = zapcore.WarnLevel
	case "error":
		logLevel = zapcore.ErrorLevel
	default:
		logLevel = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	if format == "console" {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(logLevel)
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		logger = zap.NewNop()
	}

	return &ZapLogger{logger: logger.Sugar()}
}

// NewNopLogger retorna um logger que descarta tudo (útil em testes)
func NewNopLogger() ports.Logger {
	return &ZapLogger{logger: zap.NewNop().Sugar()}
}

// FromZap adapta um *zap.Logger existente
func FromZap(logger *zap.Logger) ports.Logger {
	return &ZapLogger{logger: logger.Sugar()}
}

func (l *ZapLogger) Info(msg string, args ...any) {
	l.logger.Infow(msg, args...)
}

func (l *ZapLogger) Error(msg string, args ...any) {
	l.logger.Errorw(msg, args...)
}

func (l *ZapLogger) Debug(msg string, args ...any) {
	l.logger.Debugw(msg, args...)
}

func (l *ZapLogger) Warn(msg string, args ...any) {
	l.logger.Warnw(msg, args...)
}

func (l *ZapLogger) With(args ...any) ports.Logger {
	return &ZapLogger{
		logger: l.logger.With(args...),
	}
}

// Sync descarrega buffers pendentes
func (l *ZapLogger) Sync() error {
	return l.logger.Sync()
}
