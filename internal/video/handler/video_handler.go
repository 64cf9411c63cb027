package handler

import (
	"strings"

	apperror "github.com/debugg-er/zootube-api-sub000/internal/errors"
	"github.com/debugg-er/zootube-api-sub000/internal/video/dto"
	"github.com/debugg-er/zootube-api-sub000/internal/video/service"
	"github.com/debugg-er/zootube-api-sub000/pkg/constant"
	"github.com/gofiber/fiber/v2"
)

type VideoHandler struct {
	videos    *service.VideoService
	analytics *service.AnalyticsService
	recorder  *service.ViewRecorder
}

func NewVideoHandler(videos *service.VideoService, analytics *service.AnalyticsService, recorder *service.ViewRecorder) *VideoHandler {
	return &VideoHandler{videos: videos, analytics: analytics, recorder: recorder}
}

func (h *VideoHandler) List(c *fiber.Ctx) error {
	list, err := h.videos.List(c.UserContext(), dto.ListInput{
		Sort:  c.Query("sort", constant.SortHot),
		Page:  c.QueryInt("page"),
		Limit: c.QueryInt("limit"),
	})
	if err != nil {
		return err
	}
	return c.JSON(list)
}

func (h *VideoHandler) Search(c *fiber.Ctx) error {
	list, err := h.videos.Search(c.UserContext(), viewerID(c), dto.SearchInput{
		Query: c.Query("q"),
		Page:  c.QueryInt("page"),
		Limit: c.QueryInt("limit"),
	})
	if err != nil {
		return err
	}
	return c.JSON(list)
}

func (h *VideoHandler) Create(c *fiber.Ctx) error {
	var input dto.CreateVideoInput
	if err := c.BodyParser(&input); err != nil {
		return apperror.Validation("invalid input")
	}

	video, err := h.videos.Create(c.UserContext(), viewerID(c), input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(video)
}

// Watch returns the video and counts the view in the background once the response is built.
func (h *VideoHandler) Watch(c *fiber.Ctx) error {
	videoID := strings.Clone(c.Params("id"))

	video, err := h.videos.Get(c.UserContext(), viewerID(c), videoID)
	if err != nil {
		return err
	}
	if err := c.JSON(video); err != nil {
		return err
	}

	fingerprint := service.Fingerprint(c.IP(), string(c.Request().Header.UserAgent()), videoID)
	h.recorder.RecordAsync(videoID, fingerprint)
	return nil
}

func (h *VideoHandler) Analysis(c *fiber.Ctx) error {
	out, err := h.analytics.Analysis(c.UserContext(), viewerID(c), c.Params("id"), dto.AnalysisInput{
		From: c.Query("from"),
		Unit: c.Query("unit"),
	})
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func (h *VideoHandler) ListComments(c *fiber.Ctx) error {
	list, err := h.videos.ListComments(c.UserContext(), viewerID(c), c.Params("id"),
		c.QueryInt("page"), c.QueryInt("limit"))
	if err != nil {
		return err
	}
	return c.JSON(list)
}

func (h *VideoHandler) AddComment(c *fiber.Ctx) error {
	var input dto.CommentInput
	if err := c.BodyParser(&input); err != nil {
		return apperror.Validation("invalid input")
	}

	comment, err := h.videos.AddComment(c.UserContext(), viewerID(c), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

func (h *VideoHandler) React(c *fiber.Ctx) error {
	var input dto.ReactionInput
	if err := c.BodyParser(&input); err != nil {
		return apperror.Validation("invalid input")
	}

	if err := h.videos.React(c.UserContext(), viewerID(c), c.Params("id"), input); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *VideoHandler) Unreact(c *fiber.Ctx) error {
	if err := h.videos.Unreact(c.UserContext(), viewerID(c), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// viewerID is the authenticated user, or "" when the guard let the request through anonymously.
func viewerID(c *fiber.Ctx) string {
	id, _ := c.Locals(constant.LocalsUserID).(string)
	return id
}
