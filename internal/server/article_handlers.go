package server

import (
	"newsroom/internal/models"
	"newsroom/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetArticles handles GET /api/articles
func (s *Server) GetArticles(c *fiber.Ctx) error {
	articles, total, err := s.articleService.List(c.UserContext(), service.ListArticlesInput{
		SortBy: c.Query("sort_by"),
		Order:  c.Query("order"),
		Topic:  c.Query("topic"),
		Limit:  c.Query("limit"),
		Page:   c.Query("p"),
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"articles":    articles,
		"total_count": total,
	})
}

// GetArticle handles GET /api/articles/:id
func (s *Server) GetArticle(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	article, err := s.articleService.Get(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{"article": article})
}

// CreateArticle handles POST /api/articles
func (s *Server) CreateArticle(c *fiber.Ctx) error {
	var req struct {
		Author        string `json:"author"`
		Title         string `json:"title"`
		Body          string `json:"body"`
		Topic         string `json:"topic"`
		ArticleImgURL string `json:"article_img_url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Bad request"))
	}

	article, err := s.articleService.Create(c.UserContext(), service.CreateArticleInput{
		Author:        req.Author,
		Title:         req.Title,
		Body:          req.Body,
		Topic:         req.Topic,
		ArticleImgURL: req.ArticleImgURL,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"article": article})
}

// PatchArticleVotes handles PATCH /api/articles/:id
func (s *Server) PatchArticleVotes(c *fiber.Ctx) error {
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

	article, err := s.articleService.IncrementVotes(c.UserContext(), id, req.IncVotes)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{"article": article})
}

// DeleteArticle handles DELETE /api/articles/:id
func (s *Server) DeleteArticle(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.articleService.Delete(c.UserContext(), id); err != nil {
		return models.RespondWithError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
