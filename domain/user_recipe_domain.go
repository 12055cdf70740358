package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateUserRecipe = "user recipe created successfully"
	MessageSuccessGetUserRecipes   = "user recipes retrieved successfully"
	MessageSuccessGetUserRecipe    = "user recipe retrieved successfully"
	MessageSuccessUpdateUserRecipe = "user recipe updated successfully"
	MessageSuccessDeleteUserRecipe = "user recipe deleted successfully"

	MessageFailedCreateUserRecipe = "failed to create user recipe"
	MessageFailedGetUserRecipes   = "failed to retrieve user recipes"
	MessageFailedGetUserRecipe    = "failed to retrieve user recipe"
	MessageFailedUpdateUserRecipe = "failed to update user recipe"
	MessageFailedDeleteUserRecipe = "failed to delete user recipe"

	ErrUserRecipeNotFound = errors.New("user recipe not found")
)

type (
	CreateUserRecipeRequest struct {
		BaseRecipeID         int64                     `json:"base_recipe_id" validate:"required,gt=0"`
		UserID               int64                     `json:"user_id" validate:"required,gt=0"`
		Title                string                    `json:"title" validate:"required,min=2,max=100"`
		Description          string                    `json:"description" validate:"omitempty,max=1000"`
		Instructions         string                    `json:"instructions" validate:"required"`
		CookingTimeInMinutes int                       `json:"cooking_time_in_minutes" validate:"gte=0,lte=1200"`
		Ingredients          []RecipeIngredientRequest `json:"ingredients" validate:"required,min=1,unique=IngredientID,dive"`
	}

	UpdateUserRecipeRequest struct {
		Title                *string                    `json:"title" validate:"omitempty,min=2,max=100"`
		Description          *string                    `json:"description" validate:"omitempty,max=1000"`
		Instructions         *string                    `json:"instructions" validate:"omitempty"`
		CookingTimeInMinutes *int                       `json:"cooking_time_in_minutes" validate:"omitempty,gte=0,lte=1200"`
		Ingredients          *[]RecipeIngredientRequest `json:"ingredients" validate:"omitempty,unique=IngredientID,dive"`
	}

	UserRecipeResponse struct {
		ID                   int64                      `json:"id"`
		BaseRecipeID         int64                      `json:"base_recipe_id"`
		UserID               int64                      `json:"user_id"`
		Title                string                     `json:"title"`
		Description          string                     `json:"description,omitempty"`
		Instructions         string                     `json:"instructions"`
		CookingTimeInMinutes int                        `json:"cooking_time_in_minutes"`
		UpdatedAt            time.Time                  `json:"updated_at"`
		Ingredients          []RecipeIngredientResponse `json:"ingredients"`
	}

	DeleteUserRecipeResponse struct {
		ID int64 `json:"id"`
	}
)
