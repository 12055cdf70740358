package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	MessageSuccessCreateRecipe      = "recipe created successfully"
	MessageSuccessGetRecipes        = "recipes retrieved successfully"
	MessageSuccessGetRecipe         = "recipe retrieved successfully"
	MessageSuccessUpdateRecipe      = "recipe updated successfully"
	MessageSuccessDeleteRecipe      = "recipe deleted successfully"
	MessageSuccessSearchRecipes     = "recipes search completed"
	MessageSuccessUploadRecipeImage = "recipe image uploaded successfully"

	MessageFailedCreateRecipe      = "failed to create recipe"
	MessageFailedGetRecipes        = "failed to retrieve recipes"
	MessageFailedGetRecipe         = "failed to retrieve recipe"
	MessageFailedUpdateRecipe      = "failed to update recipe"
	MessageFailedDeleteRecipe      = "failed to delete recipe"
	MessageFailedSearchRecipes     = "failed to search recipes"
	MessageFailedUploadRecipeImage = "failed to upload recipe image"

	ErrRecipeNotFound      = errors.New("recipe not found")
	ErrRecipeAlreadyExists = errors.New("recipe with the same author and image already exists")
	ErrRecipeNoIngredients = errors.New("recipe must contain at least one ingredient")
	ErrRecipeHasForks      = errors.New("recipe has personalized copies and cannot be deleted")
	ErrInvalidMatchMode    = errors.New("match mode must be \"any\" or \"all\"")
)

// IngredientsNotFoundError carries every unresolved ingredient id at once so
// the caller can correct all of them in a single round trip.
type IngredientsNotFoundError struct {
	IDs []int64
}

func (e *IngredientsNotFoundError) Error() string {
	return fmt.Sprintf("ingredients not found: %v", e.IDs)
}

// MatchMode selects the search semantics over a query ingredient-id set.
type MatchMode string

const (
	MatchAny MatchMode = "any"
	MatchAll MatchMode = "all"
)

func ParseMatchMode(s string) (MatchMode, error) {
	switch MatchMode(s) {
	case MatchAny, MatchAll:
		return MatchMode(s), nil
	case "":
		return MatchAny, nil
	}
	return "", ErrInvalidMatchMode
}

type (
	RecipeIngredientRequest struct {
		IngredientID int64   `json:"ingredient_id" validate:"required,gt=0"`
		Quantity     float64 `json:"quantity" validate:"required,gt=0"`
		UnitID       *int64  `json:"unit_id" validate:"omitempty,gt=0"`
	}

	CreateRecipeRequest struct {
		AuthorID             *int64                    `json:"author_id" validate:"omitempty,gt=0"`
		CookingTimeInMinutes int                       `json:"cooking_time_in_minutes" validate:"gte=0,lte=1200"`
		ImageURL             string                    `json:"image_url" validate:"omitempty,max=1000"`
		Ingredients          []RecipeIngredientRequest `json:"ingredients" validate:"required,min=1,unique=IngredientID,dive"`
	}

	// UpdateRecipeRequest uses pointers so absent fields stay untouched. A
	// non-nil empty Ingredients slice is allowed and clears the association
	// set, unlike on create.
	UpdateRecipeRequest struct {
		CookingTimeInMinutes *int                       `json:"cooking_time_in_minutes" validate:"omitempty,gte=0,lte=1200"`
		ImageURL             *string                    `json:"image_url" validate:"omitempty,max=1000"`
		Ingredients          *[]RecipeIngredientRequest `json:"ingredients" validate:"omitempty,unique=IngredientID,dive"`
	}

	SearchRecipesRequest struct {
		IngredientIDs []int64   `json:"ingredient_ids" validate:"required,min=1,unique,dive,gt=0"`
		Match         MatchMode `json:"match" validate:"required,oneof=any all"`
	}

	RecipeIngredientResponse struct {
		IngredientID int64   `json:"ingredient_id"`
		Name         string  `json:"name,omitempty"`
		Quantity     float64 `json:"quantity"`
		UnitID       *int64  `json:"unit_id,omitempty"`
		UnitSymbol   string  `json:"unit_symbol,omitempty"`
	}

	RecipeResponse struct {
		ID                   int64                      `json:"id"`
		AuthorID             *int64                     `json:"author_id"`
		CookingTimeInMinutes int                        `json:"cooking_time_in_minutes"`
		ImageURL             string                     `json:"image_url,omitempty"`
		CreatedAt            time.Time                  `json:"created_at"`
		UpdatedAt            time.Time                  `json:"updated_at"`
		Ingredients          []RecipeIngredientResponse `json:"ingredients"`
	}

	DeleteRecipeResponse struct {
		ID int64 `json:"id"`
	}

	UploadRecipeImageResponse struct {
		ID       int64  `json:"id"`
		ImageURL string `json:"image_url"`
	}
)
