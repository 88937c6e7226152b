package service

import (
	"context"
	"errors"

	"newsroom/internal/models"
	"newsroom/internal/repository"

	"gorm.io/gorm"
)

// ReactionService validates reaction requests and orchestrates the
// repositories.
type ReactionService struct {
	reactionRepo repository.ReactionRepository
	articleRepo  repository.ArticleRepository
	userRepo     repository.UserRepository
}

// CreateReactionInput is the payload for reacting to an article.
type CreateReactionInput struct {
	ArticleID int
	EmojiName string
	Username  string
}

// NewReactionService creates a new reaction service
func NewReactionService(
	reactionRepo repository.ReactionRepository,
	articleRepo repository.ArticleRepository,
	userRepo repository.UserRepository,
) *ReactionService {
	return &ReactionService{
		reactionRepo: reactionRepo,
		articleRepo:  articleRepo,
		userRepo:     userRepo,
	}
}

// Create records one user's emoji reaction to an article. Article, user and
// emoji are each checked for existence with an entity-specific 404; a
// duplicate (emoji, user, article) triple surfaces as 400 via the unique
// constraint and the boundary error translator.
func (s *ReactionService) Create(ctx context.Context, in CreateReactionInput) (*models.Reaction, error) {
	if in.EmojiName == "" || in.Username == "" {
		return nil, models.NewValidationError("Bad request")
	}

	articleExists, err := s.articleRepo.Exists(ctx, in.ArticleID)
	if err != nil {
		return nil, err
	}
	if !articleExists {
		return nil, models.NewNotFoundError("Article")
	}

	userExists, err := s.userRepo.Exists(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if !userExists {
		return nil, models.NewNotFoundError("User")
	}

	emoji, err := s.reactionRepo.GetEmojiByName(ctx, in.EmojiName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Emoji")
		}
		return nil, err
	}

	reaction := &models.Reaction{
		EmojiID:   emoji.EmojiID,
		Username:  in.Username,
		ArticleID: in.ArticleID,
	}
	if err := s.reactionRepo.Create(ctx, reaction); err != nil {
		return nil, err
	}
	return reaction, nil
}
