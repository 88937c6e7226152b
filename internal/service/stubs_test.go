package service

import (
	"context"

	"newsroom/internal/models"
	"newsroom/internal/repository"
)

// Hand-rolled stubs for the repository interfaces. Each field defaults to a
// no-op via the noop constructors; tests override only what they need.

type articleRepoStub struct {
	listFn     func(context.Context, repository.ArticleListOptions) ([]*models.Article, int64, error)
	getByIDFn  func(context.Context, int) (*models.Article, error)
	existsFn   func(context.Context, int) (bool, error)
	createFn   func(context.Context, *models.Article) error
	addVotesFn func(context.Context, int, int) error
	deleteFn   func(context.Context, int) error
}

func (s *articleRepoStub) List(ctx context.Context, opts repository.ArticleListOptions) ([]*models.Article, int64, error) {
	return s.listFn(ctx, opts)
}
func (s *articleRepoStub) GetByID(ctx context.Context, id int) (*models.Article, error) {
	return s.getByIDFn(ctx, id)
}
func (s *articleRepoStub) Exists(ctx context.Context, id int) (bool, error) {
	return s.existsFn(ctx, id)
}
func (s *articleRepoStub) Create(ctx context.Context, article *models.Article) error {
	return s.createFn(ctx, article)
}
func (s *articleRepoStub) AddVotes(ctx context.Context, id, delta int) error {
	return s.addVotesFn(ctx, id, delta)
}
func (s *articleRepoStub) Delete(ctx context.Context, id int) error {
	return s.deleteFn(ctx, id)
}

func noopArticleRepo() *articleRepoStub {
	return &articleRepoStub{
		listFn: func(_ context.Context, _ repository.ArticleListOptions) ([]*models.Article, int64, error) {
			return nil, 0, nil
		},
		getByIDFn:  func(_ context.Context, _ int) (*models.Article, error) { return &models.Article{}, nil },
		existsFn:   func(_ context.Context, _ int) (bool, error) { return true, nil },
		createFn:   func(_ context.Context, _ *models.Article) error { return nil },
		addVotesFn: func(_ context.Context, _, _ int) error { return nil },
		deleteFn:   func(_ context.Context, _ int) error { return nil },
	}
}

type topicRepoStub struct {
	listFn   func(context.Context) ([]models.Topic, error)
	existsFn func(context.Context, string) (bool, error)
	createFn func(context.Context, *models.Topic) error
}

func (s *topicRepoStub) List(ctx context.Context) ([]models.Topic, error) { return s.listFn(ctx) }
func (s *topicRepoStub) Exists(ctx context.Context, slug string) (bool, error) {
	return s.existsFn(ctx, slug)
}
func (s *topicRepoStub) Create(ctx context.Context, topic *models.Topic) error {
	return s.createFn(ctx, topic)
}

func noopTopicRepo() *topicRepoStub {
	return &topicRepoStub{
		listFn:   func(_ context.Context) ([]models.Topic, error) { return nil, nil },
		existsFn: func(_ context.Context, _ string) (bool, error) { return true, nil },
		createFn: func(_ context.Context, _ *models.Topic) error { return nil },
	}
}

type reactionRepoStub struct {
	getEmojiFn func(context.Context, string) (*models.Emoji, error)
	summaryFn  func(context.Context, int) ([]models.ReactionCount, error)
	createFn   func(context.Context, *models.Reaction) error
}

func (s *reactionRepoStub) GetEmojiByName(ctx context.Context, name string) (*models.Emoji, error) {
	return s.getEmojiFn(ctx, name)
}
func (s *reactionRepoStub) SummaryByArticle(ctx context.Context, articleID int) ([]models.ReactionCount, error) {
	return s.summaryFn(ctx, articleID)
}
func (s *reactionRepoStub) Create(ctx context.Context, reaction *models.Reaction) error {
	return s.createFn(ctx, reaction)
}

func noopReactionRepo() *reactionRepoStub {
	return &reactionRepoStub{
		getEmojiFn: func(_ context.Context, _ string) (*models.Emoji, error) { return &models.Emoji{EmojiID: 1}, nil },
		summaryFn:  func(_ context.Context, _ int) ([]models.ReactionCount, error) { return nil, nil },
		createFn:   func(_ context.Context, _ *models.Reaction) error { return nil },
	}
}

type commentRepoStub struct {
	listByArticleFn func(context.Context, int, int, int) ([]*models.Comment, int64, error)
	createFn        func(context.Context, *models.Comment) error
	addVotesFn      func(context.Context, int, int) error
	getByIDFn       func(context.Context, int) (*models.Comment, error)
	deleteFn        func(context.Context, int) error
}

func (s *commentRepoStub) ListByArticle(ctx context.Context, articleID, limit, offset int) ([]*models.Comment, int64, error) {
	return s.listByArticleFn(ctx, articleID, limit, offset)
}
func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) AddVotes(ctx context.Context, id, delta int) error {
	return s.addVotesFn(ctx, id, delta)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id int) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) Delete(ctx context.Context, id int) error { return s.deleteFn(ctx, id) }

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		listByArticleFn: func(_ context.Context, _, _, _ int) ([]*models.Comment, int64, error) {
			return nil, 0, nil
		},
		createFn:   func(_ context.Context, _ *models.Comment) error { return nil },
		addVotesFn: func(_ context.Context, _, _ int) error { return nil },
		getByIDFn:  func(_ context.Context, _ int) (*models.Comment, error) { return &models.Comment{}, nil },
		deleteFn:   func(_ context.Context, _ int) error { return nil },
	}
}

type userRepoStub struct {
	listFn          func(context.Context) ([]models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	existsFn        func(context.Context, string) (bool, error)
}

func (s *userRepoStub) List(ctx context.Context) ([]models.User, error) { return s.listFn(ctx) }
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Exists(ctx context.Context, username string) (bool, error) {
	return s.existsFn(ctx, username)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		listFn:          func(_ context.Context) ([]models.User, error) { return nil, nil },
		getByUsernameFn: func(_ context.Context, _ string) (*models.User, error) { return &models.User{}, nil },
		existsFn:        func(_ context.Context, _ string) (bool, error) { return true, nil },
	}
}

type followRepoStub struct {
	topicsByUserFn func(context.Context, string) ([]string, error)
	createFn       func(context.Context, *models.UserTopic) error
}

func (s *followRepoStub) TopicsByUser(ctx context.Context, username string) ([]string, error) {
	return s.topicsByUserFn(ctx, username)
}
func (s *followRepoStub) Create(ctx context.Context, follow *models.UserTopic) error {
	return s.createFn(ctx, follow)
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		topicsByUserFn: func(_ context.Context, _ string) ([]string, error) { return nil, nil },
		createFn:       func(_ context.Context, _ *models.UserTopic) error { return nil },
	}
}
