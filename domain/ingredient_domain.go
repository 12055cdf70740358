package domain

import (
	"errors"
)

var (
	MessageSuccessCreateIngredient = "ingredient created successfully"
	MessageSuccessGetIngredients   = "ingredients retrieved successfully"
	MessageSuccessGetIngredient    = "ingredient retrieved successfully"
	MessageSuccessUpdateIngredient = "ingredient updated successfully"
	MessageSuccessDeleteIngredient = "ingredient deleted successfully"

	MessageFailedCreateIngredient = "failed to create ingredient"
	MessageFailedGetIngredients   = "failed to retrieve ingredients"
	MessageFailedGetIngredient    = "failed to retrieve ingredient"
	MessageFailedUpdateIngredient = "failed to update ingredient"
	MessageFailedDeleteIngredient = "failed to delete ingredient"

	ErrIngredientNotFound      = errors.New("ingredient not found")
	ErrIngredientAlreadyExists = errors.New("ingredient with the same name already exists")
	ErrIngredientNoCategories  = errors.New("ingredient must belong to at least one category")
	ErrCategoriesNotResolved   = errors.New("some categories not found")
)

type (
	CreateIngredientRequest struct {
		Name        string  `json:"name" validate:"required,min=2,max=100"`
		CategoryIDs []int64 `json:"category_ids" validate:"required,min=1,unique,dive,gt=0"`
	}

	// UpdateIngredientRequest distinguishes "absent" from "empty": a nil
	// CategoryIDs slice leaves the association set alone, an explicit empty
	// one is rejected by the service.
	UpdateIngredientRequest struct {
		Name        *string `json:"name" validate:"omitempty,min=2,max=100"`
		CategoryIDs []int64 `json:"category_ids" validate:"omitempty,unique,dive,gt=0"`
	}

	IngredientResponse struct {
		ID         int64              `json:"id"`
		Name       string             `json:"name"`
		Categories []CategoryResponse `json:"categories"`
	}

	DeleteIngredientResponse struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
)
