package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Astemirdum/ureserve/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/time/rate"
)

const XStudentIDHeader = "X-Student-Id"

type studentKey struct{}

// StudentContext puts the caller's matricula from X-Student-Id into the request context.
func StudentContext(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		studentID := strings.TrimSpace(req.Header.Get(XStudentIDHeader))
		if studentID == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "X-Student-Id is empty")
		}
		c.SetRequest(req.WithContext(context.WithValue(req.Context(), studentKey{}, studentID)))
		return next(c)
	}
}

func StudentID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(studentKey{}).(string)
	return id, ok
}

func NewRateLimiter(rps rate.Limit) echo.MiddlewareFunc {
	return middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rps))
}

func RequestLoggerConfig(log *zap.Logger) middleware.RequestLoggerConfig {
	if log == nil {
		log = logger.NewLogger(logger.Log{LogLevel: zapcore.DebugLevel}, "echo")
	}
	return middleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		HandleError:  true,
		LogError:     true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := zapcore.InfoLevel
			if v.Error != nil {
				level = zapcore.ErrorLevel
			}
			log.Log(level, "request",
				zap.String("URI", v.URI),
				zap.String("Method", v.Method),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.Error(v.Error),
				zap.String("request_id", v.RequestID),
			)
			return nil
		},
	}
}
