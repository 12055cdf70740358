package ingredient

import (
	"context"
	"errors"

	"recipe-catalog/domain"
	"recipe-catalog/entities"

	"gorm.io/gorm"
)

type (
	IngredientService interface {
		CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest) (domain.IngredientResponse, error)
		GetIngredientByID(ctx context.Context, id int64) (domain.IngredientResponse, error)
		GetIngredients(ctx context.Context) ([]domain.IngredientResponse, error)
		UpdateIngredient(ctx context.Context, id int64, req domain.UpdateIngredientRequest) (domain.IngredientResponse, error)
		DeleteIngredient(ctx context.Context, id int64) (domain.DeleteIngredientResponse, error)
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
	}
)

func NewIngredientService(ingredientRepository IngredientRepository) IngredientService {
	return &ingredientService{ingredientRepository: ingredientRepository}
}

func (s *ingredientService) CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest) (domain.IngredientResponse, error) {
	if len(req.CategoryIDs) == 0 {
		return domain.IngredientResponse{}, domain.ErrIngredientNoCategories
	}

	if _, err := s.ingredientRepository.GetIngredientByName(ctx, req.Name); err == nil {
		return domain.IngredientResponse{}, domain.ErrIngredientAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.IngredientResponse{}, err
	}

	categories, err := s.resolveCategories(ctx, s.ingredientRepository, req.CategoryIDs)
	if err != nil {
		return domain.IngredientResponse{}, err
	}

	ingredient := &entities.Ingredient{
		Name:       req.Name,
		Categories: categories,
	}
	if err := s.ingredientRepository.CreateIngredient(ctx, ingredient); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.IngredientResponse{}, domain.ErrIngredientAlreadyExists
		}
		return domain.IngredientResponse{}, err
	}

	return toIngredientResponse(ingredient), nil
}

func (s *ingredientService) GetIngredientByID(ctx context.Context, id int64) (domain.IngredientResponse, error) {
	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.IngredientResponse{}, domain.ErrIngredientNotFound
		}
		return domain.IngredientResponse{}, err
	}
	return toIngredientResponse(ingredient), nil
}

func (s *ingredientService) GetIngredients(ctx context.Context) ([]domain.IngredientResponse, error) {
	ingredients, err := s.ingredientRepository.GetIngredients(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]domain.IngredientResponse, 0, len(ingredients))
	for _, ingredient := range ingredients {
		res = append(res, toIngredientResponse(ingredient))
	}
	return res, nil
}

func (s *ingredientService) UpdateIngredient(ctx context.Context, id int64, req domain.UpdateIngredientRequest) (domain.IngredientResponse, error) {
	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.IngredientResponse{}, domain.ErrIngredientNotFound
		}
		return domain.IngredientResponse{}, err
	}

	rename := req.Name != nil && *req.Name != ingredient.Name
	if rename {
		if _, err := s.ingredientRepository.GetIngredientByName(ctx, *req.Name); err == nil {
			return domain.IngredientResponse{}, domain.ErrIngredientAlreadyExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.IngredientResponse{}, err
		}
	}

	var categories []*entities.Category
	replaceCategories := false
	if req.CategoryIDs != nil {
		if len(req.CategoryIDs) == 0 {
			return domain.IngredientResponse{}, domain.ErrIngredientNoCategories
		}
		categories, err = s.resolveCategories(ctx, s.ingredientRepository, req.CategoryIDs)
		if err != nil {
			return domain.IngredientResponse{}, err
		}
		replaceCategories = !sameCategorySet(ingredient.Categories, categories)
	}

	if !rename && !replaceCategories {
		return toIngredientResponse(ingredient), nil
	}

	err = s.ingredientRepository.Transaction(ctx, func(txRepo IngredientRepository) error {
		if replaceCategories {
			if err := txRepo.ReplaceCategories(ctx, ingredient, categories); err != nil {
				return err
			}
			ingredient.Categories = categories
		}
		if rename {
			ingredient.Name = *req.Name
			if err := txRepo.UpdateIngredientName(ctx, ingredient); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.IngredientResponse{}, domain.ErrIngredientAlreadyExists
		}
		return domain.IngredientResponse{}, err
	}

	return toIngredientResponse(ingredient), nil
}

func (s *ingredientService) DeleteIngredient(ctx context.Context, id int64) (domain.DeleteIngredientResponse, error) {
	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DeleteIngredientResponse{}, domain.ErrIngredientNotFound
		}
		return domain.DeleteIngredientResponse{}, err
	}

	err = s.ingredientRepository.Transaction(ctx, func(txRepo IngredientRepository) error {
		return txRepo.DeleteIngredient(ctx, ingredient)
	})
	if err != nil {
		return domain.DeleteIngredientResponse{}, err
	}

	return domain.DeleteIngredientResponse{ID: ingredient.ID, Name: ingredient.Name}, nil
}

// resolveCategories requires every requested id to resolve: partial matches
// are rejected rather than silently narrowing the set.
func (s *ingredientService) resolveCategories(ctx context.Context, repo IngredientRepository, ids []int64) ([]*entities.Category, error) {
	categories, err := repo.GetCategoriesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(categories) != len(ids) {
		return nil, domain.ErrCategoriesNotResolved
	}
	return categories, nil
}

func sameCategorySet(current, requested []*entities.Category) bool {
	if len(current) != len(requested) {
		return false
	}
	ids := make(map[int64]struct{}, len(current))
	for _, c := range current {
		ids[c.ID] = struct{}{}
	}
	for _, c := range requested {
		if _, ok := ids[c.ID]; !ok {
			return false
		}
	}
	return true
}

func toIngredientResponse(ingredient *entities.Ingredient) domain.IngredientResponse {
	categories := make([]domain.CategoryResponse, 0, len(ingredient.Categories))
	for _, category := range ingredient.Categories {
		categories = append(categories, domain.CategoryResponse{ID: category.ID, Name: category.Name})
	}
	return domain.IngredientResponse{
		ID:         ingredient.ID,
		Name:       ingredient.Name,
		Categories: categories,
	}
}
