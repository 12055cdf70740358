package recipe

import (
	"context"

	"recipe-catalog/entities"

	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id int64) (*entities.Recipe, error)
		GetRecipes(ctx context.Context) ([]*entities.Recipe, error)
		UpdateRecipeFields(ctx context.Context, id int64, fields map[string]interface{}) error
		DeleteRecipe(ctx context.Context, recipe *entities.Recipe) error

		HasDuplicateRecipe(ctx context.Context, authorID int64, imageURL string, excludeID int64) (bool, error)
		GetIngredientIDs(ctx context.Context, ids []int64) ([]int64, error)
		CountForksByBaseRecipeID(ctx context.Context, recipeID int64) (int64, error)

		AddRecipeIngredients(ctx context.Context, rows []entities.RecipeIngredient) error
		DeleteAllRecipeIngredients(ctx context.Context, recipeID int64) error
		UpdateRecipeIngredient(ctx context.Context, row *entities.RecipeIngredient) error
		DeleteRecipeIngredients(ctx context.Context, recipeID int64, ingredientIDs []int64) error

		SearchRecipes(ctx context.Context, ingredientIDs []int64, matchAll bool) ([]*entities.Recipe, error)

		Transaction(ctx context.Context, fn func(txRepo RecipeRepository) error) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id int64) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Ingredients").
		Preload("Ingredients.Ingredient").
		Preload("Ingredients.Unit").
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipes(ctx context.Context) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Ingredients").
		Preload("Ingredients.Ingredient").
		Preload("Ingredients.Unit").
		Order("id asc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) UpdateRecipeFields(ctx context.Context, id int64, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// DeleteRecipe removes only the recipe row; association cleanup is dispatched
// separately by the service according to the declared relation policy.
func (r *recipeRepository) DeleteRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Delete(recipe).Error
}

func (r *recipeRepository) DeleteAllRecipeIngredients(ctx context.Context, recipeID int64) error {
	return r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Delete(&entities.RecipeIngredient{}).Error
}

// HasDuplicateRecipe reports whether another recipe already claims the same
// (author_id, image_url) pair. Pass excludeID 0 when creating.
func (r *recipeRepository) HasDuplicateRecipe(ctx context.Context, authorID int64, imageURL string, excludeID int64) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("author_id = ? AND image_url = ?", authorID, imageURL)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *recipeRepository) GetIngredientIDs(ctx context.Context, ids []int64) ([]int64, error) {
	var found []int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Ingredient{}).
		Where("id IN ?", ids).
		Pluck("id", &found).Error; err != nil {
		return nil, err
	}
	return found, nil
}

func (r *recipeRepository) CountForksByBaseRecipeID(ctx context.Context, recipeID int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.UserRecipe{}).
		Where("base_recipe_id = ?", recipeID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *recipeRepository) AddRecipeIngredients(ctx context.Context, rows []entities.RecipeIngredient) error {
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *recipeRepository) UpdateRecipeIngredient(ctx context.Context, row *entities.RecipeIngredient) error {
	return r.db.WithContext(ctx).
		Model(&entities.RecipeIngredient{}).
		Where("recipe_id = ? AND ingredient_id = ?", row.RecipeID, row.IngredientID).
		Updates(map[string]interface{}{
			"quantity": row.Quantity,
			"unit_id":  row.UnitID,
		}).Error
}

func (r *recipeRepository) DeleteRecipeIngredients(ctx context.Context, recipeID int64, ingredientIDs []int64) error {
	return r.db.WithContext(ctx).
		Where("recipe_id = ? AND ingredient_id IN ?", recipeID, ingredientIDs).
		Delete(&entities.RecipeIngredient{}).Error
}

func (r *recipeRepository) SearchRecipes(ctx context.Context, ingredientIDs []int64, matchAll bool) ([]*entities.Recipe, error) {
	query := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Joins("JOIN recipe_ingredients ON recipe_ingredients.recipe_id = recipes.id").
		Where("recipe_ingredients.ingredient_id IN ?", ingredientIDs).
		Group("recipes.id")
	if matchAll {
		query = query.Having("COUNT(DISTINCT recipe_ingredients.ingredient_id) = ?", len(ingredientIDs))
	}

	var recipes []*entities.Recipe
	if err := query.
		Preload("Ingredients").
		Preload("Ingredients.Ingredient").
		Preload("Ingredients.Unit").
		Order("recipes.id asc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) Transaction(ctx context.Context, fn func(txRepo RecipeRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&recipeRepository{db: tx})
	})
}
