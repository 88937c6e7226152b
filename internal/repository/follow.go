package repository

import (
	"context"

	"newsroom/internal/models"

	"gorm.io/gorm"
)

// FollowRepository defines the interface for user-topic follow operations
type FollowRepository interface {
	TopicsByUser(ctx context.Context, username string) ([]string, error)
	Create(ctx context.Context, follow *models.UserTopic) error
}

type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository creates a new follow repository
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

// TopicsByUser returns the slugs a user follows, most recent first.
func (r *followRepository) TopicsByUser(ctx context.Context, username string) ([]string, error) {
	topics := make([]string, 0)
	err := r.db.WithContext(ctx).
		Model(&models.UserTopic{}).
		Where("username = ?", username).
		Order("created_at DESC").
		Pluck("topic", &topics).Error
	return topics, err
}

func (r *followRepository) Create(ctx context.Context, follow *models.UserTopic) error {
	return r.db.WithContext(ctx).Create(follow).Error
}
