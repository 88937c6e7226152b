package models

// User represents a registered account, keyed by username.
type User struct {
	Username  string `gorm:"primaryKey;column:username" json:"username"`
	Name      string `gorm:"not null" json:"name"`
	AvatarURL string `gorm:"column:avatar_url;size:1000" json:"avatar_url"`
	// FollowedTopics is not persisted; populated from user_topic on single-user
	// reads. A pointer so the users listing omits the key while a single read
	// with no follows still serializes as [].
	FollowedTopics *[]string `gorm:"-" json:"followed_topics,omitempty"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}
