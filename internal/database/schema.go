package database

import (
	"newsroom/internal/models"

	"gorm.io/gorm"
)

// PersistentModels returns the authoritative set of schema-managed GORM models.
// Order matters: referenced tables come before the tables that reference them
// so foreign keys can be created in a single pass.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.Topic{},
		&models.User{},
		&models.Article{},
		&models.Comment{},
		&models.Emoji{},
		&models.UserTopic{},
		&models.Reaction{},
	}
}

// Migrate creates or updates the schema for all persistent models. Cascade
// deletes from articles to comments and reactions are declared on the model
// associations and enforced by the store.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(PersistentModels()...)
}

// Drop removes all managed tables, dependents first.
func Drop(db *gorm.DB) error {
	ms := PersistentModels()
	for i := len(ms) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(ms[i]); err != nil {
			return err
		}
	}
	return nil
}
