package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"newsroom/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by the seeder and tests.
type Factory struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db: db,
		r:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUsers persists n users with unique usernames.
func (f *Factory) CreateUsers(n int) ([]models.User, error) {
	users := make([]models.User, 0, n)
	seen := map[string]struct{}{}
	for len(users) < n {
		username := strings.ToLower(gofakeit.Username())
		if _, dup := seen[username]; dup {
			continue
		}
		seen[username] = struct{}{}
		users = append(users, models.User{
			Username:  username,
			Name:      gofakeit.Name(),
			AvatarURL: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", username),
		})
	}
	if err := f.db.Create(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// CreateArticles persists n articles spread over the last 90 days.
func (f *Factory) CreateArticles(n int, users []models.User, topics []models.Topic) ([]models.Article, error) {
	articles := make([]models.Article, 0, n)
	for i := 0; i < n; i++ {
		articles = append(articles, models.Article{
			Title:         gofakeit.Sentence(6),
			Topic:         pick(f.r, topics).Slug,
			Author:        pick(f.r, users).Username,
			Body:          gofakeit.Paragraph(2, 4, 8, "\n"),
			CreatedAt:     f.pastTimestamp(90),
			Votes:         f.r.Intn(120) - 10,
			ArticleImgURL: fmt.Sprintf("https://picsum.photos/seed/%s/700/700", gofakeit.UUID()),
		})
	}
	if err := f.db.Create(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// CreateComments persists a random handful of comments per article.
func (f *Factory) CreateComments(articles []models.Article, users []models.User) error {
	comments := make([]models.Comment, 0, len(articles)*3)
	for _, article := range articles {
		for i := 0; i < f.r.Intn(6); i++ {
			comments = append(comments, models.Comment{
				ArticleID: article.ArticleID,
				Body:      gofakeit.Sentence(12),
				Votes:     f.r.Intn(30) - 5,
				Author:    pick(f.r, users).Username,
				CreatedAt: f.pastTimestamp(60),
			})
		}
	}
	if len(comments) == 0 {
		return nil
	}
	return f.db.Create(&comments).Error
}

// CreateFollows gives each user a few followed topics, unique per pair.
func (f *Factory) CreateFollows(users []models.User, topics []models.Topic) error {
	follows := make([]models.UserTopic, 0, len(users)*2)
	for _, user := range users {
		followed := map[string]struct{}{}
		for i := 0; i < f.r.Intn(len(topics)); i++ {
			topic := pick(f.r, topics).Slug
			if _, dup := followed[topic]; dup {
				continue
			}
			followed[topic] = struct{}{}
			follows = append(follows, models.UserTopic{
				Username:  user.Username,
				Topic:     topic,
				CreatedAt: f.pastTimestamp(30),
			})
		}
	}
	if len(follows) == 0 {
		return nil
	}
	return f.db.Create(&follows).Error
}

// CreateReactions sprinkles emoji reactions over articles, unique per
// (emoji, user, article) triple.
func (f *Factory) CreateReactions(articles []models.Article, users []models.User, emojis []models.Emoji) error {
	type key struct {
		emojiID   int
		username  string
		articleID int
	}
	seen := map[key]struct{}{}
	reactions := make([]models.Reaction, 0, len(articles)*2)
	for _, article := range articles {
		for i := 0; i < f.r.Intn(8); i++ {
			emoji := pick(f.r, emojis)
			user := pick(f.r, users)
			k := key{emoji.EmojiID, user.Username, article.ArticleID}
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			reactions = append(reactions, models.Reaction{
				EmojiID:   emoji.EmojiID,
				Username:  user.Username,
				ArticleID: article.ArticleID,
				CreatedAt: f.pastTimestamp(30),
			})
		}
	}
	if len(reactions) == 0 {
		return nil
	}
	return f.db.Create(&reactions).Error
}

// pastTimestamp returns a time up to maxDays in the past with minute jitter.
func (f *Factory) pastTimestamp(maxDays int) time.Time {
	daysBack := f.r.Intn(maxDays)
	hoursBack := f.r.Intn(24)
	minsBack := f.r.Intn(60)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour -
		time.Duration(minsBack)*time.Minute)
}
