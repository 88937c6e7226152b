package service

import (
	"context"
	"errors"

	"newsroom/internal/models"
	"newsroom/internal/repository"

	"gorm.io/gorm"
)

// UserService validates user requests and orchestrates the user and follow
// repositories.
type UserService struct {
	userRepo   repository.UserRepository
	topicRepo  repository.TopicRepository
	followRepo repository.FollowRepository
}

// NewUserService creates a new user service
func NewUserService(
	userRepo repository.UserRepository,
	topicRepo repository.TopicRepository,
	followRepo repository.FollowRepository,
) *UserService {
	return &UserService{
		userRepo:   userRepo,
		topicRepo:  topicRepo,
		followRepo: followRepo,
	}
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}

// Get fetches one user with the topics they follow, most recent follow first.
func (s *UserService) Get(ctx context.Context, username string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User")
		}
		return nil, err
	}

	topics, err := s.followRepo.TopicsByUser(ctx, username)
	if err != nil {
		return nil, err
	}
	user.FollowedTopics = &topics

	return user, nil
}

// FollowTopic records that a user follows a topic. Both sides are checked for
// existence first; a duplicate follow surfaces as 400 via the unique
// constraint and the boundary error translator.
func (s *UserService) FollowTopic(ctx context.Context, username, topic string) (*models.UserTopic, error) {
	if topic == "" {
		return nil, models.NewValidationError("Bad request")
	}

	userExists, err := s.userRepo.Exists(ctx, username)
	if err != nil {
		return nil, err
	}
	if !userExists {
		return nil, models.NewNotFoundError("User")
	}

	topicExists, err := s.topicRepo.Exists(ctx, topic)
	if err != nil {
		return nil, err
	}
	if !topicExists {
		return nil, models.NewNotFoundError("Topic")
	}

	follow := &models.UserTopic{
		Username: username,
		Topic:    topic,
	}
	if err := s.followRepo.Create(ctx, follow); err != nil {
		return nil, err
	}
	return follow, nil
}
