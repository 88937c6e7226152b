package repository

import (
	"context"

	"newsroom/internal/models"

	"gorm.io/gorm"
)

// TopicRepository defines the interface for topic data operations
type TopicRepository interface {
	List(ctx context.Context) ([]models.Topic, error)
	Exists(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, topic *models.Topic) error
}

type topicRepository struct {
	db *gorm.DB
}

// NewTopicRepository creates a new topic repository
func NewTopicRepository(db *gorm.DB) TopicRepository {
	return &topicRepository{db: db}
}

func (r *topicRepository) List(ctx context.Context) ([]models.Topic, error) {
	topics := make([]models.Topic, 0)
	err := r.db.WithContext(ctx).Find(&topics).Error
	return topics, err
}

func (r *topicRepository) Exists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Topic{}).
		Where("slug = ?", slug).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *topicRepository) Create(ctx context.Context, topic *models.Topic) error {
	return r.db.WithContext(ctx).Create(topic).Error
}
