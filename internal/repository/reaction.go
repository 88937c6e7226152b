package repository

import (
	"context"

	"newsroom/internal/models"

	"gorm.io/gorm"
)

// ReactionRepository defines the interface for emoji and reaction data operations
type ReactionRepository interface {
	GetEmojiByName(ctx context.Context, name string) (*models.Emoji, error)
	SummaryByArticle(ctx context.Context, articleID int) ([]models.ReactionCount, error)
	Create(ctx context.Context, reaction *models.Reaction) error
}

type reactionRepository struct {
	db *gorm.DB
}

// NewReactionRepository creates a new reaction repository
func NewReactionRepository(db *gorm.DB) ReactionRepository {
	return &reactionRepository{db: db}
}

func (r *reactionRepository) GetEmojiByName(ctx context.Context, name string) (*models.Emoji, error) {
	var emoji models.Emoji
	err := r.db.WithContext(ctx).
		Where("emoji_name = ?", name).
		First(&emoji).Error
	if err != nil {
		return nil, err
	}
	return &emoji, nil
}

// SummaryByArticle aggregates per-emoji reaction counts for one article,
// dropping emojis nobody used, most-used first.
func (r *reactionRepository) SummaryByArticle(ctx context.Context, articleID int) ([]models.ReactionCount, error) {
	summary := make([]models.ReactionCount, 0)
	err := r.db.WithContext(ctx).
		Model(&models.Emoji{}).
		Select("emojis.emoji, emojis.emoji_name, COUNT(emoji_article_user.emoji_id) AS count").
		Joins("LEFT JOIN emoji_article_user ON emoji_article_user.emoji_id = emojis.emoji_id AND emoji_article_user.article_id = ?", articleID).
		Group("emojis.emoji_id, emojis.emoji, emojis.emoji_name").
		Having("COUNT(emoji_article_user.emoji_id) > 0").
		Order("count DESC").
		Scan(&summary).Error
	return summary, err
}

func (r *reactionRepository) Create(ctx context.Context, reaction *models.Reaction) error {
	return r.db.WithContext(ctx).Create(reaction).Error
}
