package server

import (
	"newsroom/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetTopics handles GET /api/topics
func (s *Server) GetTopics(c *fiber.Ctx) error {
	topics, err := s.topicService.List(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{"topics": topics})
}

// CreateTopic handles POST /api/topics
func (s *Server) CreateTopic(c *fiber.Ctx) error {
	var req struct {
		Slug        string `json:"slug"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Bad request"))
	}

	topic, err := s.topicService.Create(c.UserContext(), req.Slug, req.Description)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"topic": topic})
}
