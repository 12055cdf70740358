package category

import (
	"context"

	"recipe-catalog/entities"

	"gorm.io/gorm"
)

type (
	CategoryRepository interface {
		CreateCategory(ctx context.Context, category *entities.Category) error
		GetCategoryByID(ctx context.Context, id int64) (*entities.Category, error)
		GetCategoryByName(ctx context.Context, name string) (*entities.Category, error)
		GetCategories(ctx context.Context) ([]*entities.Category, error)
		UpdateCategory(ctx context.Context, category *entities.Category) error
		DeleteCategory(ctx context.Context, category *entities.Category) error

		GetIngredientsByCategoryID(ctx context.Context, categoryID int64) ([]*entities.Ingredient, error)
		ReplaceIngredientCategories(ctx context.Context, ingredient *entities.Ingredient, categories []*entities.Category) error
		RemoveIngredientCategory(ctx context.Context, ingredient *entities.Ingredient, category *entities.Category) error

		Transaction(ctx context.Context, fn func(txRepo CategoryRepository) error) error
	}

	categoryRepository struct {
		db *gorm.DB
	}
)

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) CreateCategory(ctx context.Context, category *entities.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) GetCategoryByID(ctx context.Context, id int64) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetCategoryByName(ctx context.Context, name string) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetCategories(ctx context.Context) ([]*entities.Category, error) {
	var categories []*entities.Category
	if err := r.db.WithContext(ctx).Order("id asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, category *entities.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *categoryRepository) DeleteCategory(ctx context.Context, category *entities.Category) error {
	if err := r.db.WithContext(ctx).Model(category).Association("Ingredients").Clear(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(category).Error
}

func (r *categoryRepository) GetIngredientsByCategoryID(ctx context.Context, categoryID int64) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient
	if err := r.db.WithContext(ctx).
		Preload("Categories").
		Joins("JOIN ingredient_categories ON ingredient_categories.ingredient_id = ingredients.id").
		Where("ingredient_categories.category_id = ?", categoryID).
		Order("ingredients.id asc").
		Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *categoryRepository) ReplaceIngredientCategories(ctx context.Context, ingredient *entities.Ingredient, categories []*entities.Category) error {
	return r.db.WithContext(ctx).Model(ingredient).Association("Categories").Replace(categories)
}

func (r *categoryRepository) RemoveIngredientCategory(ctx context.Context, ingredient *entities.Ingredient, category *entities.Category) error {
	return r.db.WithContext(ctx).Model(ingredient).Association("Categories").Delete(category)
}

func (r *categoryRepository) Transaction(ctx context.Context, fn func(txRepo CategoryRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&categoryRepository{db: tx})
	})
}
