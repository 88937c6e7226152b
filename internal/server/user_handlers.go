package server

import (
	"newsroom/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetUsers handles GET /api/users
func (s *Server) GetUsers(c *fiber.Ctx) error {
	users, err := s.userService.List(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{"users": users})
}

// GetUser handles GET /api/users/:username
func (s *Server) GetUser(c *fiber.Ctx) error {
	username := c.Params("username")

	user, err := s.userService.Get(c.UserContext(), username)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{"user": user})
}

// FollowTopic handles POST /api/users/:username/topics
func (s *Server) FollowTopic(c *fiber.Ctx) error {
	username := c.Params("username")

	var req struct {
		Topic string `json:"topic"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Bad request"))
	}

	follow, err := s.userService.FollowTopic(c.UserContext(), username, req.Topic)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"user_topic": follow})
}
