package models

import "time"

// Comment represents a comment left on an article.
type Comment struct {
	CommentID int       `gorm:"primaryKey;column:comment_id" json:"comment_id"`
	ArticleID int       `gorm:"not null;index" json:"article_id"`
	Article   *Article  `gorm:"foreignKey:ArticleID;references:ArticleID;constraint:OnDelete:CASCADE" json:"-"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	Votes     int       `gorm:"not null;default:0" json:"votes"`
	Author    string    `gorm:"not null" json:"author"`
	AuthorRef *User     `gorm:"foreignKey:Author;references:Username" json:"-"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Comment) TableName() string {
	return "comments"
}
