package repository

import (
	"context"

	"newsroom/internal/models"

	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	ListByArticle(ctx context.Context, articleID, limit, offset int) ([]*models.Comment, int64, error)
	Create(ctx context.Context, comment *models.Comment) error
	AddVotes(ctx context.Context, id, delta int) error
	GetByID(ctx context.Context, id int) (*models.Comment, error)
	Delete(ctx context.Context, id int) error
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// ListByArticle counts the article's comments, then fetches one page newest
// first. Like the article listing, the two statements are not a single
// snapshot.
func (r *commentRepository) ListByArticle(ctx context.Context, articleID, limit, offset int) ([]*models.Comment, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("article_id = ?", articleID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	comments := make([]*models.Comment, 0)
	err = r.db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) AddVotes(ctx context.Context, id, delta int) error {
	res := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("comment_id = ?", id).
		UpdateColumn("votes", gorm.Expr("votes + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id int) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).
		Where("comment_id = ?", id).
		First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) Delete(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).
		Where("comment_id = ?", id).
		Delete(&models.Comment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
