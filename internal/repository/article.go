// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"

	"newsroom/internal/models"

	"gorm.io/gorm"
)

// articleColumns is the list projection: every article column except body,
// plus the aggregated comment count.
const articleColumns = "articles.article_id, articles.title, articles.topic, " +
	"articles.author, articles.created_at, articles.votes, articles.article_img_url, " +
	"COUNT(comments.comment_id) AS comment_count"

// articleSortColumns maps validated sort tokens onto fixed column expressions.
// Caller-supplied strings never reach the query text; anything outside this map
// falls back to created_at.
var articleSortColumns = map[string]string{
	"created_at":    "articles.created_at",
	"title":         "articles.title",
	"topic":         "articles.topic",
	"author":        "articles.author",
	"votes":         "articles.votes",
	"comment_count": "COUNT(comments.comment_id)",
}

// ArticleListOptions carries validated listing parameters. SortBy must be one
// of the articleSortColumns tokens; Topic is an optional filter already checked
// for existence by the caller.
type ArticleListOptions struct {
	Topic  string
	SortBy string
	Desc   bool
	Limit  int
	Offset int
}

// ArticleRepository defines the interface for article data operations
type ArticleRepository interface {
	List(ctx context.Context, opts ArticleListOptions) ([]*models.Article, int64, error)
	GetByID(ctx context.Context, id int) (*models.Article, error)
	Exists(ctx context.Context, id int) (bool, error)
	Create(ctx context.Context, article *models.Article) error
	AddVotes(ctx context.Context, id, delta int) error
	Delete(ctx context.Context, id int) error
}

// articleRepository implements ArticleRepository
type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

// List runs the two-phase listing: a filtered count ignoring pagination, then
// one page joined to comments for the aggregated comment_count. The two
// statements are independent, so under concurrent writes the count and the
// page may disagree by the delta of those writes.
func (r *articleRepository) List(ctx context.Context, opts ArticleListOptions) ([]*models.Article, int64, error) {
	count := r.db.WithContext(ctx).Model(&models.Article{})
	if opts.Topic != "" {
		count = count.Where("articles.topic = ?", opts.Topic)
	}
	var total int64
	if err := count.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := r.db.WithContext(ctx).Model(&models.Article{}).
		Select(articleColumns).
		Joins("LEFT JOIN comments ON comments.article_id = articles.article_id")
	if opts.Topic != "" {
		page = page.Where("articles.topic = ?", opts.Topic)
	}

	articles := make([]*models.Article, 0)
	err := page.Group("articles.article_id").
		Order(orderClause(opts.SortBy, opts.Desc)).
		Limit(opts.Limit).
		Offset(opts.Offset).
		Find(&articles).Error
	if err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}

// orderClause resolves a validated sort token to its ORDER BY expression.
func orderClause(sortBy string, desc bool) string {
	col, ok := articleSortColumns[sortBy]
	if !ok {
		col = articleSortColumns["created_at"]
	}
	if desc {
		return col + " DESC"
	}
	return col + " ASC"
}

func (r *articleRepository) GetByID(ctx context.Context, id int) (*models.Article, error) {
	var article models.Article
	err := r.db.WithContext(ctx).Model(&models.Article{}).
		Select("articles.*, COUNT(comments.comment_id) AS comment_count").
		Joins("LEFT JOIN comments ON comments.article_id = articles.article_id").
		Where("articles.article_id = ?", id).
		Group("articles.article_id").
		First(&article).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) Exists(ctx context.Context, id int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Article{}).
		Where("article_id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *articleRepository) Create(ctx context.Context, article *models.Article) error {
	return r.db.WithContext(ctx).Create(article).Error
}

// AddVotes applies the delta against the stored value, not a clamped one.
func (r *articleRepository) AddVotes(ctx context.Context, id, delta int) error {
	res := r.db.WithContext(ctx).
		Model(&models.Article{}).
		Where("article_id = ?", id).
		UpdateColumn("votes", gorm.Expr("votes + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes an article; the store cascades to its comments and reactions.
func (r *articleRepository) Delete(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).
		Where("article_id = ?", id).
		Delete(&models.Article{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
