package handler

import (
	"github.com/debugg-er/zootube-api-sub000/internal/auth/dto"
	"github.com/debugg-er/zootube-api-sub000/internal/auth/service"
	apperror "github.com/debugg-er/zootube-api-sub000/internal/errors"
	"github.com/debugg-er/zootube-api-sub000/internal/response"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	userService    *service.UserService
	sessionService *service.SessionService
}

func NewAuthHandler(userService *service.UserService, sessionService *service.SessionService) *AuthHandler {
	return &AuthHandler{userService: userService, sessionService: sessionService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return apperror.Validation("invalid input")
	}

	tokens, err := h.userService.Register(c.UserContext(), input, deviceFrom(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(tokens)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return apperror.Validation("invalid input")
	}

	tokens, err := h.userService.Login(c.UserContext(), input, deviceFrom(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(tokens)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.userService.Logout(c.UserContext(), UserID(c), Token(c)); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(response.Message{Message: "logged out"})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.userService.Me(c.UserContext(), UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(user)
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var input dto.ChangePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return apperror.Validation("invalid input")
	}

	tokens, err := h.userService.ChangePassword(c.UserContext(), UserID(c), input, deviceFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(tokens)
}

func (h *AuthHandler) ListSessions(c *fiber.Ctx) error {
	list, err := h.sessionService.ListSessions(c.UserContext(), UserID(c), Token(c),
		c.QueryInt("page"), c.QueryInt("limit"))
	if err != nil {
		return err
	}
	return c.JSON(list)
}

func (h *AuthHandler) DeleteSession(c *fiber.Ctx) error {
	if err := h.sessionService.DeleteSession(c.UserContext(), UserID(c), Token(c), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AuthHandler) LogoutOtherDevices(c *fiber.Ctx) error {
	n, err := h.sessionService.LogoutOtherDevices(c.UserContext(), UserID(c), Token(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.LogoutOthersOutput{Revoked: n})
}

// deviceFrom copies request metadata since fiber reuses its buffers after the handler returns.
func deviceFrom(c *fiber.Ctx) dto.DeviceInput {
	return dto.DeviceInput{
		IPAddress: c.IP(),
		UserAgent: string(c.Request().Header.UserAgent()),
	}
}
