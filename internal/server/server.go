// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"log"
	"time"

	"newsroom/internal/config"
	"newsroom/internal/database"
	"newsroom/internal/middleware"
	"newsroom/internal/models"
	"newsroom/internal/repository"
	"newsroom/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config          *config.Config
	db              *gorm.DB
	app             *fiber.App
	topicRepo       repository.TopicRepository
	userRepo        repository.UserRepository
	articleRepo     repository.ArticleRepository
	commentRepo     repository.CommentRepository
	followRepo      repository.FollowRepository
	reactionRepo    repository.ReactionRepository
	articleService  *service.ArticleService
	commentService  *service.CommentService
	topicService    *service.TopicService
	userService     *service.UserService
	reactionService *service.ReactionService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	return NewServerWithDeps(cfg, db), nil
}

// NewServerWithDeps creates a Server using an already-initialized database.
// Use this in tests or when a bootstrap layer establishes the DB and
// optionally performs explicit seeding.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB) *Server {
	topicRepo := repository.NewTopicRepository(db)
	userRepo := repository.NewUserRepository(db)
	articleRepo := repository.NewArticleRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	followRepo := repository.NewFollowRepository(db)
	reactionRepo := repository.NewReactionRepository(db)

	server := &Server{
		config:       cfg,
		db:           db,
		topicRepo:    topicRepo,
		userRepo:     userRepo,
		articleRepo:  articleRepo,
		commentRepo:  commentRepo,
		followRepo:   followRepo,
		reactionRepo: reactionRepo,
	}
	server.articleService = service.NewArticleService(articleRepo, topicRepo, reactionRepo)
	server.commentService = service.NewCommentService(commentRepo, articleRepo)
	server.topicService = service.NewTopicService(topicRepo)
	server.userService = service.NewUserService(userRepo, topicRepo, followRepo)
	server.reactionService = service.NewReactionService(reactionRepo, articleRepo, userRepo)

	return server
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context middleware to propagate the request ID into request contexts
	app.Use(middleware.ContextMiddleware())

	// Structured logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept",
		MaxAge:       86400, // 24 hours
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	// Endpoint catalogue
	api.Get("/", s.GetEndpoints)

	// Topic routes
	api.Get("/topics", s.GetTopics)
	api.Post("/topics", s.CreateTopic)

	// Article routes: specific /:id/:resource routes BEFORE generic /:id
	articles := api.Group("/articles")
	articles.Get("/", s.GetArticles)
	articles.Post("/", s.CreateArticle)
	articles.Get("/:id/comments", s.GetArticleComments)
	articles.Post("/:id/comments", s.CreateComment)
	articles.Post("/:id/reactions", s.CreateReaction)
	articles.Get("/:id", s.GetArticle)
	articles.Patch("/:id", s.PatchArticleVotes)
	articles.Delete("/:id", s.DeleteArticle)

	// Comment routes
	comments := api.Group("/comments")
	comments.Patch("/:id", s.PatchCommentVotes)
	comments.Delete("/:id", s.DeleteComment)

	// User routes
	users := api.Group("/users")
	users.Get("/", s.GetUsers)
	users.Get("/:username", s.GetUser)
	users.Post("/:username/topics", s.FollowTopic)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus != "healthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
		},
		"time": time.Now(),
	})
}

// Start starts the server
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName: "Newsroom API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("error closing sql DB: %v", cerr)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}
