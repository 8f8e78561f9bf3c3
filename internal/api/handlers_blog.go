package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/vitalis/internal/services"
)

func (handler *Handler) ListBlogPosts(c *fiber.Ctx) error {
	posts, err := handler.blogService.List(handler.now(), c.QueryInt("limit", services.DefaultBlogPageSize))
	if err != nil {
		return handler.respondServiceError(c, err, "failed to load posts")
	}
	return c.JSON(fiber.Map{"posts": posts})
}

func (handler *Handler) GetBlogPost(c *fiber.Ctx) error {
	post, err := handler.blogService.Get(c.Params("slug"), handler.now())
	if errors.Is(err, services.ErrBlogPostNotFound) {
		return apiError(c, fiber.StatusNotFound, "post not found")
	}
	if err != nil {
		return handler.respondServiceError(c, err, "failed to load post")
	}
	return c.JSON(post)
}
