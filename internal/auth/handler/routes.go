package handler

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the auth endpoints. limit guards the credential endpoints.
func RegisterRoutes(router fiber.Router, h *AuthHandler, guard *Guard, limit fiber.Handler) {
	auth := router.Group("/api/v1/auth")

	auth.Post("/register", limit, h.Register)
	auth.Post("/login", limit, h.Login)

	auth.Post("/logout", guard.RequireAuth, h.Logout)
	auth.Get("/me", guard.RequireAuth, h.Me)
	auth.Put("/password", guard.RequireAuth, h.ChangePassword)

	auth.Get("/sessions", guard.RequireAuth, h.ListSessions)
	auth.Post("/sessions/logout-others", guard.RequireAuth, h.LogoutOtherDevices)
	auth.Delete("/sessions/:id", guard.RequireAuth, h.DeleteSession)
}
