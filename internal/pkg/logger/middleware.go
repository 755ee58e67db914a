package logger

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EchoMiddleware logs every HTTP request with method, path, status and
// latency. Server errors log at error level, client errors at warn.
func EchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			err := next(c)

			latency := time.Since(start)
			statusCode := c.Response().Status
			if raw != "" {
				path = path + "?" + raw
			}

			userIDStr := "anonymous"
			if userID := c.Get("user_id"); userID != nil {
				userIDStr = fmt.Sprintf("%v", userID)
			}

			fields := []Field{
				zap.String("method", c.Request().Method),
				zap.String("path", path),
				zap.Int("status", statusCode),
				zap.Duration("latency", latency),
				zap.String("client_ip", c.RealIP()),
				zap.String("user_id", userIDStr),
				zap.String("request_id", c.Response().Header().Get("X-Request-ID")),
			}
			if err != nil {
				fields = append(fields, zap.Error(err))
			}

			level := zapcore.InfoLevel
			switch {
			case statusCode >= 500:
				level = zapcore.ErrorLevel
			case statusCode >= 400:
				level = zapcore.WarnLevel
			}
			logger.Log(level, "HTTP request", fields...)

			return err
		}
	}
}
