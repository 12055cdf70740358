package domain

import (
	"errors"
)

// SentinelCategoryName is the reserved fallback category. Ingredients whose
// last category is deleted get reassigned to it so the non-empty-categories
// invariant holds.
const SentinelCategoryName = "noname"

var (
	MessageSuccessCreateCategory = "category created successfully"
	MessageSuccessGetCategories  = "categories retrieved successfully"
	MessageSuccessGetCategory    = "category retrieved successfully"
	MessageSuccessUpdateCategory = "category updated successfully"
	MessageSuccessDeleteCategory = "category deleted successfully"

	MessageFailedCreateCategory = "failed to create category"
	MessageFailedGetCategories  = "failed to retrieve categories"
	MessageFailedGetCategory    = "failed to retrieve category"
	MessageFailedUpdateCategory = "failed to update category"
	MessageFailedDeleteCategory = "failed to delete category"

	ErrCategoryNotFound      = errors.New("category not found")
	ErrCategoryAlreadyExists = errors.New("category with the same name already exists")
	ErrSentinelCategory      = errors.New("the noname category cannot be deleted")
)

type (
	CreateCategoryRequest struct {
		Name string `json:"name" validate:"required,min=2,max=100"`
	}

	UpdateCategoryRequest struct {
		Name string `json:"name" validate:"required,min=2,max=100"`
	}

	CategoryResponse struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}

	DeleteCategoryResponse struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
)
