package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"newsroom/internal/config"
	"newsroom/internal/models"
	"newsroom/internal/repository"
	"newsroom/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockArticleRepository is a mock of the ArticleRepository interface
type MockArticleRepository struct {
	mock.Mock
}

func (m *MockArticleRepository) List(ctx context.Context, opts repository.ArticleListOptions) ([]*models.Article, int64, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.Article), args.Get(1).(int64), args.Error(2)
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id int) (*models.Article, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

func (m *MockArticleRepository) Exists(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockArticleRepository) Create(ctx context.Context, article *models.Article) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

func (m *MockArticleRepository) AddVotes(ctx context.Context, id, delta int) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

func (m *MockArticleRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTopicRepository is a mock of the TopicRepository interface
type MockTopicRepository struct {
	mock.Mock
}

func (m *MockTopicRepository) List(ctx context.Context) ([]models.Topic, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Topic), args.Error(1)
}

func (m *MockTopicRepository) Exists(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *MockTopicRepository) Create(ctx context.Context, topic *models.Topic) error {
	args := m.Called(ctx, topic)
	return args.Error(0)
}

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Exists(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

// MockCommentRepository is a mock of the CommentRepository interface
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) ListByArticle(ctx context.Context, articleID, limit, offset int) ([]*models.Comment, int64, error) {
	args := m.Called(ctx, articleID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.Comment), args.Get(1).(int64), args.Error(2)
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) AddVotes(ctx context.Context, id, delta int) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id int) (*models.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockFollowRepository is a mock of the FollowRepository interface
type MockFollowRepository struct {
	mock.Mock
}

func (m *MockFollowRepository) TopicsByUser(ctx context.Context, username string) ([]string, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockFollowRepository) Create(ctx context.Context, follow *models.UserTopic) error {
	args := m.Called(ctx, follow)
	return args.Error(0)
}

// MockReactionRepository is a mock of the ReactionRepository interface
type MockReactionRepository struct {
	mock.Mock
}

func (m *MockReactionRepository) GetEmojiByName(ctx context.Context, name string) (*models.Emoji, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Emoji), args.Error(1)
}

func (m *MockReactionRepository) SummaryByArticle(ctx context.Context, articleID int) ([]models.ReactionCount, error) {
	args := m.Called(ctx, articleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ReactionCount), args.Error(1)
}

func (m *MockReactionRepository) Create(ctx context.Context, reaction *models.Reaction) error {
	args := m.Called(ctx, reaction)
	return args.Error(0)
}

// testMocks bundles one mock per repository interface.
type testMocks struct {
	articles  *MockArticleRepository
	topics    *MockTopicRepository
	users     *MockUserRepository
	comments  *MockCommentRepository
	follows   *MockFollowRepository
	reactions *MockReactionRepository
}

// newTestApp wires a Server over fresh mocks and registers the full API
// routing table on a bare Fiber app. Any middleware passed in runs ahead of
// the routes.
func newTestApp(mw ...fiber.Handler) (*fiber.App, *testMocks) {
	m := &testMocks{
		articles:  new(MockArticleRepository),
		topics:    new(MockTopicRepository),
		users:     new(MockUserRepository),
		comments:  new(MockCommentRepository),
		follows:   new(MockFollowRepository),
		reactions: new(MockReactionRepository),
	}

	s := &Server{
		config:       &config.Config{},
		topicRepo:    m.topics,
		userRepo:     m.users,
		articleRepo:  m.articles,
		commentRepo:  m.comments,
		followRepo:   m.follows,
		reactionRepo: m.reactions,
	}
	s.articleService = service.NewArticleService(m.articles, m.topics, m.reactions)
	s.commentService = service.NewCommentService(m.comments, m.articles)
	s.topicService = service.NewTopicService(m.topics)
	s.userService = service.NewUserService(m.users, m.topics, m.follows)
	s.reactionService = service.NewReactionService(m.reactions, m.articles, m.users)

	app := fiber.New()
	for _, h := range mw {
		app.Use(h)
	}
	s.SetupRoutes(app)
	return app, m
}

// decodeBody parses a JSON response body into a generic map.
func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}
