package response

import (
	"errors"

	apperror "github.com/debugg-er/zootube-api-sub000/internal/errors"
	"github.com/debugg-er/zootube-api-sub000/internal/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type Message struct {
	Message string `json:"message"`
}

// Fail writes the envelope used for client errors: {"fail": {"message": ...}}.
func Fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"fail": Message{Message: message}})
}

// Error writes the envelope used for server errors: {"error": {"message": ...}}.
func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": Message{Message: message}})
}

// ErrorHandler maps returned errors onto the envelopes. Internal detail is logged and only
// echoed back when exposeInternal is set (development).
func ErrorHandler(log logrus.FieldLogger, exposeInternal bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			if fe.Code >= fiber.StatusInternalServerError {
				logger.FromCtx(c, log).WithError(err).Error("request failed")
				return Error(c, fe.Code, "internal server error")
			}
			return Fail(c, fe.Code, fe.Message)
		}

		status := apperror.StatusOf(err)
		if status >= fiber.StatusInternalServerError {
			logger.FromCtx(c, log).WithError(err).Error("request failed")
			message := apperror.PublicMessage(err)
			if exposeInternal {
				message = err.Error()
			}
			return Error(c, status, message)
		}
		return Fail(c, status, apperror.PublicMessage(err))
	}
}
