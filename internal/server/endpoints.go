package server

import "github.com/gofiber/fiber/v2"

// Endpoint describes one API route for the catalogue served at GET /api.
type Endpoint struct {
	Description string   `json:"description"`
	Queries     []string `json:"queries,omitempty"`
	Body        string   `json:"body,omitempty"`
}

// endpoints is the static catalogue of every route this API exposes.
var endpoints = map[string]Endpoint{
	"GET /api": {
		Description: "serves a json representation of all the available endpoints of the api",
	},
	"GET /api/topics": {
		Description: "serves an array of all topics",
	},
	"POST /api/topics": {
		Description: "adds a new topic",
		Body:        `{"slug": "...", "description": "..."}`,
	},
	"GET /api/articles": {
		Description: "serves a paginated array of all articles with a total_count",
		Queries:     []string{"sort_by", "order", "topic", "limit", "p"},
	},
	"POST /api/articles": {
		Description: "adds a new article",
		Body:        `{"author": "...", "title": "...", "body": "...", "topic": "...", "article_img_url": "..."}`,
	},
	"GET /api/articles/:article_id": {
		Description: "serves a single article with its comment_count and emoji_reactions",
	},
	"PATCH /api/articles/:article_id": {
		Description: "adjusts an article's votes by inc_votes",
		Body:        `{"inc_votes": 1}`,
	},
	"DELETE /api/articles/:article_id": {
		Description: "deletes an article and its comments and reactions",
	},
	"GET /api/articles/:article_id/comments": {
		Description: "serves a paginated array of comments for an article with a total_count",
		Queries:     []string{"limit", "p"},
	},
	"POST /api/articles/:article_id/comments": {
		Description: "adds a comment to an article",
		Body:        `{"username": "...", "body": "..."}`,
	},
	"POST /api/articles/:article_id/reactions": {
		Description: "adds an emoji reaction to an article",
		Body:        `{"emoji_name": "...", "username": "..."}`,
	},
	"PATCH /api/comments/:comment_id": {
		Description: "adjusts a comment's votes by inc_votes",
		Body:        `{"inc_votes": 1}`,
	},
	"DELETE /api/comments/:comment_id": {
		Description: "deletes a comment",
	},
	"GET /api/users": {
		Description: "serves an array of all users",
	},
	"GET /api/users/:username": {
		Description: "serves a single user with their followed_topics",
	},
	"POST /api/users/:username/topics": {
		Description: "follows a topic on behalf of a user",
		Body:        `{"topic": "..."}`,
	},
}

// GetEndpoints handles GET /api
func (s *Server) GetEndpoints(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"endpoints": endpoints})
}
