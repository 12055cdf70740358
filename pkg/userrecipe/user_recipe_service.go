package userrecipe

import (
	"context"
	"errors"
	"sort"

	"recipe-catalog/domain"
	"recipe-catalog/entities"

	"gorm.io/gorm"
)

type (
	UserRecipeService interface {
		CreateUserRecipe(ctx context.Context, req domain.CreateUserRecipeRequest) (domain.UserRecipeResponse, error)
		GetUserRecipeByID(ctx context.Context, id int64) (domain.UserRecipeResponse, error)
		GetUserRecipesByUserID(ctx context.Context, userID int64) ([]domain.UserRecipeResponse, error)
		UpdateUserRecipe(ctx context.Context, id int64, req domain.UpdateUserRecipeRequest) (domain.UserRecipeResponse, error)
		DeleteUserRecipe(ctx context.Context, id int64) (domain.DeleteUserRecipeResponse, error)
	}

	userRecipeService struct {
		userRecipeRepository UserRecipeRepository
	}
)

func NewUserRecipeService(userRecipeRepository UserRecipeRepository) UserRecipeService {
	return &userRecipeService{userRecipeRepository: userRecipeRepository}
}

func (s *userRecipeService) CreateUserRecipe(ctx context.Context, req domain.CreateUserRecipeRequest) (domain.UserRecipeResponse, error) {
	exists, err := s.userRecipeRepository.RecipeExists(ctx, req.BaseRecipeID)
	if err != nil {
		return domain.UserRecipeResponse{}, err
	}
	if !exists {
		return domain.UserRecipeResponse{}, domain.ErrRecipeNotFound
	}

	if len(req.Ingredients) == 0 {
		return domain.UserRecipeResponse{}, domain.ErrRecipeNoIngredients
	}
	if err := s.validateIngredients(ctx, ingredientIDsOf(req.Ingredients)); err != nil {
		return domain.UserRecipeResponse{}, err
	}

	userRecipe := &entities.UserRecipe{
		BaseRecipeID:         req.BaseRecipeID,
		UserID:               req.UserID,
		Title:                req.Title,
		Description:          req.Description,
		Instructions:         req.Instructions,
		CookingTimeInMinutes: req.CookingTimeInMinutes,
	}
	for _, ing := range req.Ingredients {
		userRecipe.Ingredients = append(userRecipe.Ingredients, entities.UserRecipeIngredient{
			IngredientID: ing.IngredientID,
			Quantity:     ing.Quantity,
			UnitID:       ing.UnitID,
		})
	}

	if err := s.userRecipeRepository.CreateUserRecipe(ctx, userRecipe); err != nil {
		return domain.UserRecipeResponse{}, err
	}

	return s.GetUserRecipeByID(ctx, userRecipe.ID)
}

func (s *userRecipeService) GetUserRecipeByID(ctx context.Context, id int64) (domain.UserRecipeResponse, error) {
	userRecipe, err := s.userRecipeRepository.GetUserRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserRecipeResponse{}, domain.ErrUserRecipeNotFound
		}
		return domain.UserRecipeResponse{}, err
	}
	return toUserRecipeResponse(userRecipe), nil
}

func (s *userRecipeService) GetUserRecipesByUserID(ctx context.Context, userID int64) ([]domain.UserRecipeResponse, error) {
	userRecipes, err := s.userRecipeRepository.GetUserRecipesByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.UserRecipeResponse, 0, len(userRecipes))
	for _, userRecipe := range userRecipes {
		res = append(res, toUserRecipeResponse(userRecipe))
	}
	return res, nil
}

func (s *userRecipeService) UpdateUserRecipe(ctx context.Context, id int64, req domain.UpdateUserRecipeRequest) (domain.UserRecipeResponse, error) {
	userRecipe, err := s.userRecipeRepository.GetUserRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserRecipeResponse{}, domain.ErrUserRecipeNotFound
		}
		return domain.UserRecipeResponse{}, err
	}

	fields := map[string]interface{}{}
	if req.Title != nil && *req.Title != userRecipe.Title {
		fields["title"] = *req.Title
	}
	if req.Description != nil && *req.Description != userRecipe.Description {
		fields["description"] = *req.Description
	}
	if req.Instructions != nil && *req.Instructions != userRecipe.Instructions {
		fields["instructions"] = *req.Instructions
	}
	if req.CookingTimeInMinutes != nil && *req.CookingTimeInMinutes != userRecipe.CookingTimeInMinutes {
		fields["cooking_time_in_minutes"] = *req.CookingTimeInMinutes
	}

	var plan syncPlan
	if req.Ingredients != nil {
		desired := *req.Ingredients
		if len(desired) > 0 {
			if err := s.validateIngredients(ctx, ingredientIDsOf(desired)); err != nil {
				return domain.UserRecipeResponse{}, err
			}
		}
		plan = buildSyncPlan(userRecipe.ID, userRecipe.Ingredients, desired)
	}

	if len(fields) == 0 && plan.empty() {
		return toUserRecipeResponse(userRecipe), nil
	}

	err = s.userRecipeRepository.Transaction(ctx, func(txRepo UserRecipeRepository) error {
		if len(fields) > 0 {
			if err := txRepo.UpdateUserRecipeFields(ctx, userRecipe.ID, fields); err != nil {
				return err
			}
		}
		if len(plan.toDelete) > 0 {
			if err := txRepo.DeleteUserRecipeIngredients(ctx, plan.userRecipeID, plan.toDelete); err != nil {
				return err
			}
		}
		for i := range plan.toUpdate {
			if err := txRepo.UpdateUserRecipeIngredient(ctx, &plan.toUpdate[i]); err != nil {
				return err
			}
		}
		if len(plan.toInsert) > 0 {
			if err := txRepo.AddUserRecipeIngredients(ctx, plan.toInsert); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return domain.UserRecipeResponse{}, err
	}

	return s.GetUserRecipeByID(ctx, userRecipe.ID)
}

func (s *userRecipeService) DeleteUserRecipe(ctx context.Context, id int64) (domain.DeleteUserRecipeResponse, error) {
	userRecipe, err := s.userRecipeRepository.GetUserRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DeleteUserRecipeResponse{}, domain.ErrUserRecipeNotFound
		}
		return domain.DeleteUserRecipeResponse{}, err
	}

	err = s.userRecipeRepository.Transaction(ctx, func(txRepo UserRecipeRepository) error {
		if entities.PolicyFor("user_recipe_ingredients", "user_recipes") == entities.ApplicationManaged {
			if err := txRepo.DeleteAllUserRecipeIngredients(ctx, userRecipe.ID); err != nil {
				return err
			}
		}
		return txRepo.DeleteUserRecipe(ctx, userRecipe)
	})
	if err != nil {
		return domain.DeleteUserRecipeResponse{}, err
	}

	return domain.DeleteUserRecipeResponse{ID: userRecipe.ID}, nil
}

func (s *userRecipeService) validateIngredients(ctx context.Context, ids []int64) error {
	found, err := s.userRecipeRepository.GetIngredientIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(found) == len(ids) {
		return nil
	}

	foundSet := make(map[int64]struct{}, len(found))
	for _, id := range found {
		foundSet[id] = struct{}{}
	}
	var missing []int64
	for _, id := range ids {
		if _, ok := foundSet[id]; !ok {
			missing = append(missing, id)
		}
	}
	sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
	return &domain.IngredientsNotFoundError{IDs: missing}
}

type syncPlan struct {
	userRecipeID int64
	toDelete     []int64
	toUpdate     []entities.UserRecipeIngredient
	toInsert     []entities.UserRecipeIngredient
}

func (p syncPlan) empty() bool {
	return len(p.toDelete) == 0 && len(p.toUpdate) == 0 && len(p.toInsert) == 0
}

func buildSyncPlan(userRecipeID int64, current []entities.UserRecipeIngredient, desired []domain.RecipeIngredientRequest) syncPlan {
	currentByID := make(map[int64]entities.UserRecipeIngredient, len(current))
	for _, row := range current {
		currentByID[row.IngredientID] = row
	}
	desiredByID := make(map[int64]domain.RecipeIngredientRequest, len(desired))
	for _, row := range desired {
		desiredByID[row.IngredientID] = row
	}

	plan := syncPlan{userRecipeID: userRecipeID}
	for _, row := range current {
		want, ok := desiredByID[row.IngredientID]
		if !ok {
			plan.toDelete = append(plan.toDelete, row.IngredientID)
			continue
		}
		if row.Quantity != want.Quantity || !int64PtrEqual(row.UnitID, want.UnitID) {
			plan.toUpdate = append(plan.toUpdate, entities.UserRecipeIngredient{
				UserRecipeID: userRecipeID,
				IngredientID: row.IngredientID,
				Quantity:     want.Quantity,
				UnitID:       want.UnitID,
			})
		}
	}
	for _, want := range desired {
		if _, ok := currentByID[want.IngredientID]; !ok {
			plan.toInsert = append(plan.toInsert, entities.UserRecipeIngredient{
				UserRecipeID: userRecipeID,
				IngredientID: want.IngredientID,
				Quantity:     want.Quantity,
				UnitID:       want.UnitID,
			})
		}
	}
	return plan
}

func ingredientIDsOf(rows []domain.RecipeIngredientRequest) []int64 {
	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.IngredientID)
	}
	return ids
}

func int64PtrEqual(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func toUserRecipeResponse(userRecipe *entities.UserRecipe) domain.UserRecipeResponse {
	ingredients := make([]domain.RecipeIngredientResponse, 0, len(userRecipe.Ingredients))
	for _, row := range userRecipe.Ingredients {
		ing := domain.RecipeIngredientResponse{
			IngredientID: row.IngredientID,
			Quantity:     row.Quantity,
			UnitID:       row.UnitID,
		}
		if row.Ingredient != nil {
			ing.Name = row.Ingredient.Name
		}
		if row.Unit != nil {
			ing.UnitSymbol = row.Unit.Symbol
		}
		ingredients = append(ingredients, ing)
	}
	return domain.UserRecipeResponse{
		ID:                   userRecipe.ID,
		BaseRecipeID:         userRecipe.BaseRecipeID,
		UserID:               userRecipe.UserID,
		Title:                userRecipe.Title,
		Description:          userRecipe.Description,
		Instructions:         userRecipe.Instructions,
		CookingTimeInMinutes: userRecipe.CookingTimeInMinutes,
		UpdatedAt:            userRecipe.UpdatedAt,
		Ingredients:          ingredients,
	}
}
