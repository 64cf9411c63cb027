package logger

import (
	"os"
	"time"

	"github.com/debugg-er/zootube-api-sub000/pkg/constant"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// New builds the process logger. Unknown levels fall back to info.
func New(level, format string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	if format == FormatJSON {
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	}
	return log
}

// FromCtx returns log enriched with the request id and, when authenticated, the user id.
func FromCtx(c *fiber.Ctx, log logrus.FieldLogger) logrus.FieldLogger {
	fields := logrus.Fields{}
	if id, ok := c.Locals(constant.LocalsRequestID).(string); ok {
		fields["request_id"] = id
	}
	if userID, ok := c.Locals(constant.LocalsUserID).(string); ok && userID != "" {
		fields["user_id"] = userID
	}
	return log.WithFields(fields)
}

// Middleware logs one line per completed request. It must run after the requestid middleware.
// Errors from the chain are rendered here through the app's error handler so the logged
// status matches the response.
func Middleware(log logrus.FieldLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()
		if chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		entry := FromCtx(c, log).WithFields(logrus.Fields{
			"method":  c.Method(),
			"path":    c.Path(),
			"status":  status,
			"latency": time.Since(start).String(),
			"ip":      c.IP(),
		})
		if chainErr != nil {
			entry = entry.WithError(chainErr)
		}
		if status >= fiber.StatusInternalServerError {
			entry.Error("request completed")
		} else {
			entry.Info("request completed")
		}
		return nil
	}
}
