package models

import "time"

// DefaultArticleImgURL is applied when an article is created without an image.
const DefaultArticleImgURL = "https://images.pexels.com/photos/97050/pexels-photo-97050.jpeg?w=700&h=700"

// Article represents a published piece under a topic.
//
// Body is only selected on single-article reads; list queries leave it empty so
// the omitempty tag keeps it out of list responses.
type Article struct {
	ArticleID     int       `gorm:"primaryKey;column:article_id" json:"article_id"`
	Title         string    `gorm:"not null" json:"title"`
	Topic         string    `gorm:"not null" json:"topic"`
	TopicRef      *Topic    `gorm:"foreignKey:Topic;references:Slug" json:"-"`
	Author        string    `gorm:"not null" json:"author"`
	AuthorRef     *User     `gorm:"foreignKey:Author;references:Username" json:"-"`
	Body          string    `gorm:"type:text;not null" json:"body,omitempty"`
	CreatedAt     time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	Votes         int       `gorm:"not null;default:0" json:"votes"`
	ArticleImgURL string    `gorm:"column:article_img_url;size:1000" json:"article_img_url"`
	// CommentCount is not persisted; computed at query time
	CommentCount int `gorm:"->;-:migration" json:"comment_count"`
	// EmojiReactions is not persisted; attached on single-article reads. A
	// pointer so list responses omit the key while a single read with zero
	// reactions still serializes as [].
	EmojiReactions *[]ReactionCount `gorm:"-" json:"emoji_reactions,omitempty"`
}

// TableName specifies the table name for GORM.
func (Article) TableName() string {
	return "articles"
}
