package models

import "time"

// Reaction records a single user's emoji reaction to an article. At most one
// row may exist per (emoji, user, article) triple.
type Reaction struct {
	EmojiArticleUserID int       `gorm:"primaryKey;column:emoji_article_user_id" json:"emoji_article_user_id"`
	EmojiID            int       `gorm:"not null;uniqueIndex:idx_emoji_article_user" json:"emoji_id"`
	EmojiRef           *Emoji    `gorm:"foreignKey:EmojiID;references:EmojiID" json:"-"`
	Username           string    `gorm:"not null;uniqueIndex:idx_emoji_article_user" json:"username"`
	UserRef            *User     `gorm:"foreignKey:Username;references:Username" json:"-"`
	ArticleID          int       `gorm:"not null;uniqueIndex:idx_emoji_article_user" json:"article_id"`
	Article            *Article  `gorm:"foreignKey:ArticleID;references:ArticleID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt          time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Reaction) TableName() string {
	return "emoji_article_user"
}

// ReactionCount is an aggregated per-article emoji summary. Count is always
// derived, never stored.
type ReactionCount struct {
	Emoji     string `json:"emoji"`
	EmojiName string `json:"emoji_name"`
	Count     int    `json:"count"`
}
