package entities

import (
	"time"
)

type Recipe struct {
	ID                   int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	AuthorID             *int64    `json:"author_id"`
	CookingTimeInMinutes int       `json:"cooking_time_in_minutes"`
	ImageURL             string    `gorm:"size:1000" json:"image_url,omitempty"`
	CreatedAt            time.Time `gorm:"type:timestamp" json:"created_at"`
	UpdatedAt            time.Time `gorm:"type:timestamp" json:"updated_at"`

	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID" json:"ingredients"`
}

// RecipeIngredient is an association row with payload: one row per
// (recipe, ingredient) pair, carrying the quantity and unit for that pair.
type RecipeIngredient struct {
	RecipeID     int64   `gorm:"primaryKey;autoIncrement:false" json:"recipe_id"`
	IngredientID int64   `gorm:"primaryKey;autoIncrement:false" json:"ingredient_id"`
	Quantity     float64 `gorm:"not null" json:"quantity"`
	UnitID       *int64  `json:"unit_id,omitempty"`

	Ingredient *Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
	Unit       *Unit       `gorm:"foreignKey:UnitID" json:"unit,omitempty"`
}
