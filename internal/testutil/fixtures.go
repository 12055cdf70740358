package testutil

import (
	"testing"

	"recipe-catalog/entities"

	"gorm.io/gorm"
)

func SeedCategory(tb testing.TB, db *gorm.DB, name string) *entities.Category {
	tb.Helper()
	category := &entities.Category{Name: name}
	if err := db.Create(category).Error; err != nil {
		tb.Fatalf("seed category %q: %v", name, err)
	}
	return category
}

func SeedIngredient(tb testing.TB, db *gorm.DB, name string, categories ...*entities.Category) *entities.Ingredient {
	tb.Helper()
	ingredient := &entities.Ingredient{Name: name, Categories: categories}
	if err := db.Create(ingredient).Error; err != nil {
		tb.Fatalf("seed ingredient %q: %v", name, err)
	}
	return ingredient
}

func SeedUnit(tb testing.TB, db *gorm.DB, symbol string) *entities.Unit {
	tb.Helper()
	unit := &entities.Unit{Symbol: symbol}
	if err := db.Create(unit).Error; err != nil {
		tb.Fatalf("seed unit %q: %v", symbol, err)
	}
	return unit
}

func SeedRecipe(tb testing.TB, db *gorm.DB, recipe *entities.Recipe) *entities.Recipe {
	tb.Helper()
	if err := db.Create(recipe).Error; err != nil {
		tb.Fatalf("seed recipe: %v", err)
	}
	return recipe
}
