package service

import (
	"context"
	"errors"
	"strings"

	"newsroom/internal/models"
	"newsroom/internal/repository"

	"gorm.io/gorm"
)

// allowedSortBy is the closed set of article sort tokens. The repository maps
// each token onto a fixed column expression.
var allowedSortBy = map[string]struct{}{
	"title":         {},
	"topic":         {},
	"author":        {},
	"created_at":    {},
	"votes":         {},
	"comment_count": {},
}

// ArticleService validates article requests and orchestrates the repositories.
type ArticleService struct {
	articleRepo  repository.ArticleRepository
	topicRepo    repository.TopicRepository
	reactionRepo repository.ReactionRepository
}

// ListArticlesInput carries raw query-string values; List validates them.
type ListArticlesInput struct {
	SortBy string
	Order  string
	Topic  string
	Limit  string
	Page   string
}

// CreateArticleInput is the payload for inserting a new article.
type CreateArticleInput struct {
	Author        string
	Title         string
	Body          string
	Topic         string
	ArticleImgURL string
}

// NewArticleService creates a new article service
func NewArticleService(
	articleRepo repository.ArticleRepository,
	topicRepo repository.TopicRepository,
	reactionRepo repository.ReactionRepository,
) *ArticleService {
	return &ArticleService{
		articleRepo:  articleRepo,
		topicRepo:    topicRepo,
		reactionRepo: reactionRepo,
	}
}

// List validates sort, order, topic and pagination values, then runs the
// two-phase count-and-page query. Validation failures surface as 400; an
// unknown topic filter surfaces as 404 before any pagination math or query.
func (s *ArticleService) List(ctx context.Context, in ListArticlesInput) ([]*models.Article, int64, error) {
	sortBy := in.SortBy
	if sortBy == "" {
		sortBy = "created_at"
	}
	if _, ok := allowedSortBy[sortBy]; !ok {
		return nil, 0, models.NewValidationError("Bad request")
	}

	order := strings.ToLower(in.Order)
	if order == "" {
		order = "desc"
	}
	if order != "asc" && order != "desc" {
		return nil, 0, models.NewValidationError("Bad request")
	}

	limit, offset, err := parsePagination(in.Limit, in.Page)
	if err != nil {
		return nil, 0, err
	}

	if in.Topic != "" {
		exists, err := s.topicRepo.Exists(ctx, in.Topic)
		if err != nil {
			return nil, 0, err
		}
		if !exists {
			return nil, 0, models.NewNotFoundError("Topic")
		}
	}

	return s.articleRepo.List(ctx, repository.ArticleListOptions{
		Topic:  in.Topic,
		SortBy: sortBy,
		Desc:   order == "desc",
		Limit:  limit,
		Offset: offset,
	})
}

// Get fetches one article with its comment count and emoji reaction summary.
func (s *ArticleService) Get(ctx context.Context, id int) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Article")
		}
		return nil, err
	}

	reactions, err := s.reactionRepo.SummaryByArticle(ctx, id)
	if err != nil {
		return nil, err
	}
	article.EmojiReactions = &reactions

	return article, nil
}

// Create inserts a new article. Unknown author or topic surfaces as 404 via
// the store's foreign keys and the boundary error translator.
func (s *ArticleService) Create(ctx context.Context, in CreateArticleInput) (*models.Article, error) {
	if in.Author == "" || in.Title == "" || in.Body == "" || in.Topic == "" {
		return nil, models.NewValidationError("Bad request")
	}

	imgURL := in.ArticleImgURL
	if imgURL == "" {
		imgURL = models.DefaultArticleImgURL
	}

	article := &models.Article{
		Author:        in.Author,
		Title:         in.Title,
		Body:          in.Body,
		Topic:         in.Topic,
		ArticleImgURL: imgURL,
	}
	if err := s.articleRepo.Create(ctx, article); err != nil {
		return nil, err
	}

	// Re-fetch for the computed comment_count (0 for a new article).
	return s.articleRepo.GetByID(ctx, article.ArticleID)
}

// IncrementVotes applies a vote delta to the stored value and returns the
// updated article. A nil delta means inc_votes was missing or non-numeric.
func (s *ArticleService) IncrementVotes(ctx context.Context, id int, incVotes *int) (*models.Article, error) {
	if incVotes == nil {
		return nil, models.NewValidationError("Bad request")
	}

	if err := s.articleRepo.AddVotes(ctx, id, *incVotes); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Article")
		}
		return nil, err
	}

	return s.articleRepo.GetByID(ctx, id)
}

// Delete removes an article; the store cascades to comments and reactions.
func (s *ArticleService) Delete(ctx context.Context, id int) error {
	if err := s.articleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Article")
		}
		return err
	}
	return nil
}
