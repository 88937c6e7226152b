// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"

	"newsroom/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumArticles int
	ShouldClean bool
}

// defaultEmojis is the fixed reaction palette every environment gets.
var defaultEmojis = []models.Emoji{
	{Emoji: "👍", EmojiName: "thumbs_up"},
	{Emoji: "❤️", EmojiName: "heart"},
	{Emoji: "😂", EmojiName: "joy"},
	{Emoji: "😮", EmojiName: "open_mouth"},
	{Emoji: "😢", EmojiName: "cry"},
	{Emoji: "🔥", EmojiName: "fire"},
}

// defaultTopics is a deterministic set of demo topics.
var defaultTopics = []models.Topic{
	{Slug: "coding", Description: "Code is love, code is life", ImgURL: models.DefaultTopicImgURL},
	{Slug: "football", Description: "FOOTIE!", ImgURL: models.DefaultTopicImgURL},
	{Slug: "cooking", Description: "Hey good looking, what you got cooking?", ImgURL: models.DefaultTopicImgURL},
	{Slug: "science", Description: "The study of everything", ImgURL: models.DefaultTopicImgURL},
	{Slug: "travel", Description: "Somewhere else, please", ImgURL: models.DefaultTopicImgURL},
}

// Seed populates the database with demo data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Starting database seeding with %d users and %d articles...", opts.NumUsers, opts.NumArticles)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			return fmt.Errorf("clearing existing data: %w", err)
		}
	}

	f := NewFactory(db)

	if err := db.Create(&defaultEmojis).Error; err != nil {
		return fmt.Errorf("seeding emojis: %w", err)
	}
	if err := db.Create(&defaultTopics).Error; err != nil {
		return fmt.Errorf("seeding topics: %w", err)
	}

	users, err := f.CreateUsers(opts.NumUsers)
	if err != nil {
		return fmt.Errorf("seeding users: %w", err)
	}

	articles, err := f.CreateArticles(opts.NumArticles, users, defaultTopics)
	if err != nil {
		return fmt.Errorf("seeding articles: %w", err)
	}

	if err := f.CreateComments(articles, users); err != nil {
		return fmt.Errorf("seeding comments: %w", err)
	}
	if err := f.CreateFollows(users, defaultTopics); err != nil {
		return fmt.Errorf("seeding follows: %w", err)
	}
	if err := f.CreateReactions(articles, users, defaultEmojis); err != nil {
		return fmt.Errorf("seeding reactions: %w", err)
	}

	log.Println("Seeding complete")
	return nil
}

// clearData removes all rows, dependents first so foreign keys hold.
func clearData(db *gorm.DB) error {
	tables := []string{
		"emoji_article_user",
		"user_topic",
		"comments",
		"articles",
		"emojis",
		"users",
		"topics",
	}
	for _, table := range tables {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}

// pick returns a random element of a non-empty slice.
func pick[T any](r *rand.Rand, s []T) T {
	return s[r.Intn(len(s))]
}
