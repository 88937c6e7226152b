package server

import (
	"newsroom/internal/models"
	"newsroom/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateReaction handles POST /api/articles/:id/reactions
func (s *Server) CreateReaction(c *fiber.Ctx) error {
	articleID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		EmojiName string `json:"emoji_name"`
		Username  string `json:"username"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Bad request"))
	}

	reaction, err := s.reactionService.Create(c.UserContext(), service.CreateReactionInput{
		ArticleID: articleID,
		EmojiName: req.EmojiName,
		Username:  req.Username,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"reaction": reaction})
}
