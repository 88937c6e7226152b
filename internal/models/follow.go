package models

import "time"

// UserTopic records that a user follows a topic. At most one row may exist
// per (username, topic) pair.
type UserTopic struct {
	UserTopicID int       `gorm:"primaryKey;column:user_topic_id" json:"user_topic_id"`
	Username    string    `gorm:"not null;uniqueIndex:idx_user_topic" json:"username"`
	UserRef     *User     `gorm:"foreignKey:Username;references:Username" json:"-"`
	Topic       string    `gorm:"not null;uniqueIndex:idx_user_topic" json:"topic"`
	TopicRef    *Topic    `gorm:"foreignKey:Topic;references:Slug" json:"-"`
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName specifies the table name for GORM.
func (UserTopic) TableName() string {
	return "user_topic"
}
