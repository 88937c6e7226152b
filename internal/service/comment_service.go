package service

import (
	"context"
	"errors"

	"newsroom/internal/models"
	"newsroom/internal/repository"

	"gorm.io/gorm"
)

// CommentService validates comment requests and orchestrates the repositories.
type CommentService struct {
	commentRepo repository.CommentRepository
	articleRepo repository.ArticleRepository
}

// CreateCommentInput is the payload for posting a comment on an article.
type CreateCommentInput struct {
	ArticleID int
	Username  string
	Body      string
}

// NewCommentService creates a new comment service
func NewCommentService(
	commentRepo repository.CommentRepository,
	articleRepo repository.ArticleRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
	}
}

// ListByArticle validates pagination, confirms the article exists, and then
// returns one page of its comments plus the unpaginated total.
func (s *CommentService) ListByArticle(ctx context.Context, articleID int, limitRaw, pageRaw string) ([]*models.Comment, int64, error) {
	limit, offset, err := parsePagination(limitRaw, pageRaw)
	if err != nil {
		return nil, 0, err
	}

	exists, err := s.articleRepo.Exists(ctx, articleID)
	if err != nil {
		return nil, 0, err
	}
	if !exists {
		return nil, 0, models.NewNotFoundError("Article")
	}

	return s.commentRepo.ListByArticle(ctx, articleID, limit, offset)
}

// Create inserts a comment. An unknown article or author surfaces as 404 via
// the store's foreign keys and the boundary error translator.
func (s *CommentService) Create(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if in.Username == "" || in.Body == "" {
		return nil, models.NewValidationError("Bad request")
	}

	comment := &models.Comment{
		ArticleID: in.ArticleID,
		Author:    in.Username,
		Body:      in.Body,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// IncrementVotes applies a vote delta to the stored value and returns the
// updated comment. A nil delta means inc_votes was missing or non-numeric.
func (s *CommentService) IncrementVotes(ctx context.Context, id int, incVotes *int) (*models.Comment, error) {
	if incVotes == nil {
		return nil, models.NewValidationError("Bad request")
	}

	if err := s.commentRepo.AddVotes(ctx, id, *incVotes); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment")
		}
		return nil, err
	}

	return s.commentRepo.GetByID(ctx, id)
}

// Delete removes a comment by id.
func (s *CommentService) Delete(ctx context.Context, id int) error {
	if err := s.commentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Comment")
		}
		return err
	}
	return nil
}
