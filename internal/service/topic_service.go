package service

import (
	"context"
	"strings"

	"newsroom/internal/models"
	"newsroom/internal/repository"
)

// TopicService validates topic requests and orchestrates the topic repository.
type TopicService struct {
	topicRepo repository.TopicRepository
}

// NewTopicService creates a new topic service
func NewTopicService(topicRepo repository.TopicRepository) *TopicService {
	return &TopicService{topicRepo: topicRepo}
}

// List returns all topics.
func (s *TopicService) List(ctx context.Context) ([]models.Topic, error) {
	return s.topicRepo.List(ctx)
}

// Create inserts a topic. The slug is trimmed and must be non-empty; a
// duplicate slug surfaces as 400 via the unique constraint and the boundary
// error translator.
func (s *TopicService) Create(ctx context.Context, slug, description string) (*models.Topic, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" || description == "" {
		return nil, models.NewValidationError("Bad request")
	}

	topic := &models.Topic{
		Slug:        slug,
		Description: description,
		ImgURL:      models.DefaultTopicImgURL,
	}
	if err := s.topicRepo.Create(ctx, topic); err != nil {
		return nil, err
	}
	return topic, nil
}
