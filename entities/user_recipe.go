package entities

import (
	"time"
)

// UserRecipe is a personalized fork of a base recipe. It carries its own
// ingredient list and free-text instructions; deleting the base recipe does
// not delete the fork.
type UserRecipe struct {
	ID                   int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	BaseRecipeID         int64     `gorm:"not null" json:"base_recipe_id"`
	UserID               int64     `gorm:"not null" json:"user_id"`
	Title                string    `gorm:"size:100;not null" json:"title"`
	Description          string    `gorm:"size:1000" json:"description,omitempty"`
	Instructions         string    `gorm:"type:text;not null" json:"instructions"`
	CookingTimeInMinutes int       `json:"cooking_time_in_minutes"`
	UpdatedAt            time.Time `gorm:"type:timestamp" json:"updated_at"`

	BaseRecipe  *Recipe                `gorm:"foreignKey:BaseRecipeID" json:"-"`
	Ingredients []UserRecipeIngredient `gorm:"foreignKey:UserRecipeID" json:"ingredients"`
}

type UserRecipeIngredient struct {
	UserRecipeID int64   `gorm:"primaryKey;autoIncrement:false" json:"user_recipe_id"`
	IngredientID int64   `gorm:"primaryKey;autoIncrement:false" json:"ingredient_id"`
	Quantity     float64 `gorm:"not null" json:"quantity"`
	UnitID       *int64  `json:"unit_id,omitempty"`

	Ingredient *Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
	Unit       *Unit       `gorm:"foreignKey:UnitID" json:"unit,omitempty"`
}
