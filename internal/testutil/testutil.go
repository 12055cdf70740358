package testutil

import (
	"testing"

	"recipe-catalog/entities"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// DB returns an isolated in-memory database, migrated and torn down with the
// test. TranslateError keeps unique-constraint violations visible as
// gorm.ErrDuplicatedKey, same as the production connection.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		tb.Fatalf("failed to open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		tb.Fatalf("failed to get sql db: %v", err)
	}
	// a second pooled connection would see its own empty :memory: database
	sqlDB.SetMaxOpenConns(1)
	tb.Cleanup(func() {
		_ = sqlDB.Close()
	})

	if err := autoMigrateAll(db); err != nil {
		tb.Fatalf("failed to migrate test db: %v", err)
	}
	return db
}

func autoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.Category{},
		&entities.Ingredient{},
		&entities.Unit{},
		&entities.Recipe{},
		&entities.RecipeIngredient{},
		&entities.UserRecipe{},
		&entities.UserRecipeIngredient{},
	)
}
