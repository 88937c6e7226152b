// Package models contains data structures for the application's domain models.
package models

// DefaultTopicImgURL is applied when a topic is created without an image.
const DefaultTopicImgURL = "https://images.pexels.com/photos/158651/news-newsletter-newspaper-information-158651.jpeg?w=700&h=700"

// Topic represents a subject area that articles are filed under.
type Topic struct {
	Slug        string `gorm:"primaryKey;column:slug" json:"slug"`
	Description string `gorm:"not null" json:"description"`
	ImgURL      string `gorm:"column:img_url;size:1000" json:"img_url"`
}

// TableName specifies the table name for GORM.
func (Topic) TableName() string {
	return "topics"
}
