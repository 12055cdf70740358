package userrecipe

import (
	"context"

	"recipe-catalog/entities"

	"gorm.io/gorm"
)

type (
	UserRecipeRepository interface {
		CreateUserRecipe(ctx context.Context, userRecipe *entities.UserRecipe) error
		GetUserRecipeByID(ctx context.Context, id int64) (*entities.UserRecipe, error)
		GetUserRecipesByUserID(ctx context.Context, userID int64) ([]*entities.UserRecipe, error)
		UpdateUserRecipeFields(ctx context.Context, id int64, fields map[string]interface{}) error
		DeleteUserRecipe(ctx context.Context, userRecipe *entities.UserRecipe) error

		RecipeExists(ctx context.Context, recipeID int64) (bool, error)
		GetIngredientIDs(ctx context.Context, ids []int64) ([]int64, error)

		AddUserRecipeIngredients(ctx context.Context, rows []entities.UserRecipeIngredient) error
		UpdateUserRecipeIngredient(ctx context.Context, row *entities.UserRecipeIngredient) error
		DeleteUserRecipeIngredients(ctx context.Context, userRecipeID int64, ingredientIDs []int64) error
		DeleteAllUserRecipeIngredients(ctx context.Context, userRecipeID int64) error

		Transaction(ctx context.Context, fn func(txRepo UserRecipeRepository) error) error
	}

	userRecipeRepository struct {
		db *gorm.DB
	}
)

func NewUserRecipeRepository(db *gorm.DB) UserRecipeRepository {
	return &userRecipeRepository{db: db}
}

func (r *userRecipeRepository) CreateUserRecipe(ctx context.Context, userRecipe *entities.UserRecipe) error {
	return r.db.WithContext(ctx).Create(userRecipe).Error
}

func (r *userRecipeRepository) GetUserRecipeByID(ctx context.Context, id int64) (*entities.UserRecipe, error) {
	var userRecipe entities.UserRecipe
	if err := r.db.WithContext(ctx).
		Preload("Ingredients").
		Preload("Ingredients.Ingredient").
		Preload("Ingredients.Unit").
		Where("id = ?", id).
		First(&userRecipe).Error; err != nil {
		return nil, err
	}
	return &userRecipe, nil
}

func (r *userRecipeRepository) GetUserRecipesByUserID(ctx context.Context, userID int64) ([]*entities.UserRecipe, error) {
	var userRecipes []*entities.UserRecipe
	if err := r.db.WithContext(ctx).
		Preload("Ingredients").
		Preload("Ingredients.Ingredient").
		Preload("Ingredients.Unit").
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&userRecipes).Error; err != nil {
		return nil, err
	}
	return userRecipes, nil
}

func (r *userRecipeRepository) UpdateUserRecipeFields(ctx context.Context, id int64, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&entities.UserRecipe{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *userRecipeRepository) DeleteUserRecipe(ctx context.Context, userRecipe *entities.UserRecipe) error {
	return r.db.WithContext(ctx).Delete(userRecipe).Error
}

func (r *userRecipeRepository) RecipeExists(ctx context.Context, recipeID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ?", recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRecipeRepository) GetIngredientIDs(ctx context.Context, ids []int64) ([]int64, error) {
	var found []int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Ingredient{}).
		Where("id IN ?", ids).
		Pluck("id", &found).Error; err != nil {
		return nil, err
	}
	return found, nil
}

func (r *userRecipeRepository) AddUserRecipeIngredients(ctx context.Context, rows []entities.UserRecipeIngredient) error {
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *userRecipeRepository) UpdateUserRecipeIngredient(ctx context.Context, row *entities.UserRecipeIngredient) error {
	return r.db.WithContext(ctx).
		Model(&entities.UserRecipeIngredient{}).
		Where("user_recipe_id = ? AND ingredient_id = ?", row.UserRecipeID, row.IngredientID).
		Updates(map[string]interface{}{
			"quantity": row.Quantity,
			"unit_id":  row.UnitID,
		}).Error
}

func (r *userRecipeRepository) DeleteUserRecipeIngredients(ctx context.Context, userRecipeID int64, ingredientIDs []int64) error {
	return r.db.WithContext(ctx).
		Where("user_recipe_id = ? AND ingredient_id IN ?", userRecipeID, ingredientIDs).
		Delete(&entities.UserRecipeIngredient{}).Error
}

func (r *userRecipeRepository) DeleteAllUserRecipeIngredients(ctx context.Context, userRecipeID int64) error {
	return r.db.WithContext(ctx).
		Where("user_recipe_id = ?", userRecipeID).
		Delete(&entities.UserRecipeIngredient{}).Error
}

func (r *userRecipeRepository) Transaction(ctx context.Context, fn func(txRepo UserRecipeRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&userRecipeRepository{db: tx})
	})
}
