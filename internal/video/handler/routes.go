package handler

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the video endpoints. requireAuth and optionalAuth are the auth guards.
func RegisterRoutes(router fiber.Router, h *VideoHandler, requireAuth, optionalAuth fiber.Handler) {
	videos := router.Group("/api/v1/videos")

	videos.Get("/", h.List)
	videos.Get("/search", optionalAuth, h.Search)
	videos.Post("/", requireAuth, h.Create)

	videos.Get("/:id", optionalAuth, h.Watch)
	videos.Get("/:id/analysis", requireAuth, h.Analysis)

	videos.Get("/:id/comments", optionalAuth, h.ListComments)
	videos.Post("/:id/comments", requireAuth, h.AddComment)

	videos.Put("/:id/reaction", requireAuth, h.React)
	videos.Delete("/:id/reaction", requireAuth, h.Unreact)
}
