package category

import (
	"context"
	"errors"

	"recipe-catalog/domain"
	"recipe-catalog/entities"

	"gorm.io/gorm"
)

type (
	CategoryService interface {
		CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (domain.CategoryResponse, error)
		GetCategoryByID(ctx context.Context, id int64) (domain.CategoryResponse, error)
		GetCategories(ctx context.Context) ([]domain.CategoryResponse, error)
		UpdateCategory(ctx context.Context, id int64, req domain.UpdateCategoryRequest) (domain.CategoryResponse, error)
		DeleteCategory(ctx context.Context, id int64) (domain.DeleteCategoryResponse, error)
	}

	categoryService struct {
		categoryRepository CategoryRepository
	}
)

func NewCategoryService(categoryRepository CategoryRepository) CategoryService {
	return &categoryService{categoryRepository: categoryRepository}
}

func (s *categoryService) CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (domain.CategoryResponse, error) {
	if _, err := s.categoryRepository.GetCategoryByName(ctx, req.Name); err == nil {
		return domain.CategoryResponse{}, domain.ErrCategoryAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.CategoryResponse{}, err
	}

	category := &entities.Category{Name: req.Name}
	if err := s.categoryRepository.CreateCategory(ctx, category); err != nil {
		// the unique constraint is authoritative when the pre-check raced
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.CategoryResponse{}, domain.ErrCategoryAlreadyExists
		}
		return domain.CategoryResponse{}, err
	}

	return toCategoryResponse(category), nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, id int64) (domain.CategoryResponse, error) {
	category, err := s.categoryRepository.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CategoryResponse{}, domain.ErrCategoryNotFound
		}
		return domain.CategoryResponse{}, err
	}
	return toCategoryResponse(category), nil
}

func (s *categoryService) GetCategories(ctx context.Context) ([]domain.CategoryResponse, error) {
	categories, err := s.categoryRepository.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]domain.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		res = append(res, toCategoryResponse(category))
	}
	return res, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id int64, req domain.UpdateCategoryRequest) (domain.CategoryResponse, error) {
	category, err := s.categoryRepository.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CategoryResponse{}, domain.ErrCategoryNotFound
		}
		return domain.CategoryResponse{}, err
	}

	if category.Name == req.Name {
		return toCategoryResponse(category), nil
	}

	if _, err := s.categoryRepository.GetCategoryByName(ctx, req.Name); err == nil {
		return domain.CategoryResponse{}, domain.ErrCategoryAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.CategoryResponse{}, err
	}

	category.Name = req.Name
	if err := s.categoryRepository.UpdateCategory(ctx, category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.CategoryResponse{}, domain.ErrCategoryAlreadyExists
		}
		return domain.CategoryResponse{}, err
	}

	return toCategoryResponse(category), nil
}

// DeleteCategory runs the reassign-then-delete algorithm: every ingredient
// whose only category is the doomed one is moved to the sentinel category
// before the row goes away. Deleting first and relying on a cascade would
// destroy the ingredient's last category link instead.
func (s *categoryService) DeleteCategory(ctx context.Context, id int64) (domain.DeleteCategoryResponse, error) {
	category, err := s.categoryRepository.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DeleteCategoryResponse{}, domain.ErrCategoryNotFound
		}
		return domain.DeleteCategoryResponse{}, err
	}

	if category.Name == domain.SentinelCategoryName {
		return domain.DeleteCategoryResponse{}, domain.ErrSentinelCategory
	}

	err = s.categoryRepository.Transaction(ctx, func(txRepo CategoryRepository) error {
		if entities.PolicyFor("ingredient_categories", "categories") == entities.ApplicationManaged {
			sentinel, err := s.findOrCreateSentinel(ctx, txRepo)
			if err != nil {
				return err
			}

			ingredients, err := txRepo.GetIngredientsByCategoryID(ctx, category.ID)
			if err != nil {
				return err
			}

			for _, ingredient := range ingredients {
				if len(ingredient.Categories) == 1 {
					if err := txRepo.ReplaceIngredientCategories(ctx, ingredient, []*entities.Category{sentinel}); err != nil {
						return err
					}
					continue
				}
				if err := txRepo.RemoveIngredientCategory(ctx, ingredient, category); err != nil {
					return err
				}
			}
		}

		return txRepo.DeleteCategory(ctx, category)
	})
	if err != nil {
		return domain.DeleteCategoryResponse{}, err
	}

	return domain.DeleteCategoryResponse{ID: category.ID, Name: category.Name}, nil
}

func (s *categoryService) findOrCreateSentinel(ctx context.Context, repo CategoryRepository) (*entities.Category, error) {
	sentinel, err := repo.GetCategoryByName(ctx, domain.SentinelCategoryName)
	if err == nil {
		return sentinel, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	sentinel = &entities.Category{Name: domain.SentinelCategoryName}
	if err := repo.CreateCategory(ctx, sentinel); err != nil {
		return nil, err
	}
	return sentinel, nil
}

func toCategoryResponse(category *entities.Category) domain.CategoryResponse {
	return domain.CategoryResponse{
		ID:   category.ID,
		Name: category.Name,
	}
}
