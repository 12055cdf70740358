package migration

import (
	"fmt"
	"log"

	"recipe-catalog/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.Category{}); err != nil {
		log.Fatalf("Error migrating category database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Ingredient{}); err != nil {
		log.Fatalf("Error migrating ingredient database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Unit{}); err != nil {
		log.Fatalf("Error migrating unit database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}, &entities.RecipeIngredient{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.UserRecipe{}, &entities.UserRecipeIngredient{}); err != nil {
		log.Fatalf("Error migrating user recipe database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
