package server

import (
	"newsroom/internal/models"
	"newsroom/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetArticleComments handles GET /api/articles/:id/comments
func (s *Server) GetArticleComments(c *fiber.Ctx) error {
	articleID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comments, total, err := s.commentService.ListByArticle(c.UserContext(), articleID, c.Query("limit"), c.Query("p"))
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"comments":    comments,
		"total_count": total,
	})
}

// CreateComment handles POST /api/articles/:id/comments
func (s *Server) CreateComment(c *fiber.Ctx) error {
	articleID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Username string `json:"username"`
		Body     string `json:"body"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Bad request"))
	}

	comment, err := s.commentService.Create(c.UserContext(), service.CreateCommentInput{
		ArticleID: articleID,
		Username:  req.Username,
		Body:      req.Body,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"comment": comment})
}

// PatchCommentVotes handles PATCH /api/comments/:id
func (s *Server) PatchCommentVotes(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		IncVotes *int `json:"inc_votes"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Bad request"))
	}

	comment, err := s.commentService.IncrementVotes(c.UserContext(), id, req.IncVotes)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{"comment": comment})
}

// DeleteComment handles DELETE /api/comments/:id
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.commentService.Delete(c.UserContext(), id); err != nil {
		return models.RespondWithError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
