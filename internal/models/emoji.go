package models

// Emoji is a reaction glyph available to users.
type Emoji struct {
	EmojiID   int    `gorm:"primaryKey;column:emoji_id" json:"emoji_id"`
	Emoji     string `gorm:"not null" json:"emoji"`
	EmojiName string `gorm:"column:emoji_name;not null;uniqueIndex" json:"emoji_name"`
}

// TableName specifies the table name for GORM.
func (Emoji) TableName() string {
	return "emojis"
}
