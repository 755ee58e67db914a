package logger

import (
	"os"

	"github.com/lajubus/lajubus/internal/pkg/models"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger wraps zap with the sugared logger kept alongside for the rare
// printf-style call site.
type ZapLogger struct {
	*zap.Logger
	sugar *zap.SugaredLogger
}

// NewZapLogger creates a structured JSON logger writing to stdout.
func NewZapLogger(config models.LoggerConfig) (*ZapLogger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(config.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	var encoder zapcore.Encoder
	if config.Format == "console" {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level)
	zapLogger := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))

	return &ZapLogger{
		Logger: zapLogger,
		sugar:  zapLogger.Sugar(),
	}, nil
}

// InitFromConfig creates the logger from application config and installs it
// as the global logger.
func InitFromConfig(cfg *models.Config) (*ZapLogger, error) {
	zapLogger, err := NewZapLogger(cfg.Logger)
	if err != nil {
		return nil, err
	}
	zapLogger.Logger = zapLogger.Logger.With(zap.String("service", cfg.App.Name))
	zapLogger.sugar = zapLogger.Logger.Sugar()
	SetGlobalLogger(zapLogger)
	return zapLogger, nil
}

// Sugar returns the sugared logger.
func (z *ZapLogger) Sugar() *zap.SugaredLogger {
	return z.sugar
}

// WithFields returns a logger with additional fields.
func (z *ZapLogger) WithFields(fields map[string]interface{}) *zap.Logger {
	zapFields := make([]zap.Field, 0, len(fields))
	for key, value := range fields {
		zapFields = append(zapFields, zap.Any(key, value))
	}
	return z.Logger.With(zapFields...)
}

// WithError returns a logger with an error field attached.
func (z *ZapLogger) WithError(err error) *zap.Logger {
	return z.Logger.With(zap.Error(err))
}

// Close flushes buffered log entries.
func (z *ZapLogger) Close() {
	_ = z.Logger.Sync()
}
