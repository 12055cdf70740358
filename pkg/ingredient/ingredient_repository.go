package ingredient

import (
	"context"

	"recipe-catalog/entities"

	"gorm.io/gorm"
)

type (
	IngredientRepository interface {
		CreateIngredient(ctx context.Context, ingredient *entities.Ingredient) error
		GetIngredientByID(ctx context.Context, id int64) (*entities.Ingredient, error)
		GetIngredientByName(ctx context.Context, name string) (*entities.Ingredient, error)
		GetIngredients(ctx context.Context) ([]*entities.Ingredient, error)
		UpdateIngredientName(ctx context.Context, ingredient *entities.Ingredient) error
		ReplaceCategories(ctx context.Context, ingredient *entities.Ingredient, categories []*entities.Category) error
		DeleteIngredient(ctx context.Context, ingredient *entities.Ingredient) error

		GetCategoriesByIDs(ctx context.Context, ids []int64) ([]*entities.Category, error)

		Transaction(ctx context.Context, fn func(txRepo IngredientRepository) error) error
	}

	ingredientRepository struct {
		db *gorm.DB
	}
)

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) CreateIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	return r.db.WithContext(ctx).Create(ingredient).Error
}

func (r *ingredientRepository) GetIngredientByID(ctx context.Context, id int64) (*entities.Ingredient, error) {
	var ingredient entities.Ingredient
	if err := r.db.WithContext(ctx).
		Preload("Categories").
		Where("id = ?", id).
		First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *ingredientRepository) GetIngredientByName(ctx context.Context, name string) (*entities.Ingredient, error) {
	var ingredient entities.Ingredient
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *ingredientRepository) GetIngredients(ctx context.Context) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient
	if err := r.db.WithContext(ctx).
		Preload("Categories").
		Order("id asc").
		Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *ingredientRepository) UpdateIngredientName(ctx context.Context, ingredient *entities.Ingredient) error {
	return r.db.WithContext(ctx).Model(ingredient).Update("name", ingredient.Name).Error
}

func (r *ingredientRepository) ReplaceCategories(ctx context.Context, ingredient *entities.Ingredient, categories []*entities.Category) error {
	return r.db.WithContext(ctx).Model(ingredient).Association("Categories").Replace(categories)
}

func (r *ingredientRepository) DeleteIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	if err := r.db.WithContext(ctx).Model(ingredient).Association("Categories").Clear(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(ingredient).Error
}

func (r *ingredientRepository) GetCategoriesByIDs(ctx context.Context, ids []int64) ([]*entities.Category, error) {
	var categories []*entities.Category
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *ingredientRepository) Transaction(ctx context.Context, fn func(txRepo IngredientRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ingredientRepository{db: tx})
	})
}
