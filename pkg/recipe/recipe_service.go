package recipe

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"sort"

	"recipe-catalog/domain"
	"recipe-catalog/entities"
	"recipe-catalog/internal/utils/storage"

	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.RecipeResponse, error)
		GetRecipeByID(ctx context.Context, id int64) (domain.RecipeResponse, error)
		GetRecipes(ctx context.Context) ([]domain.RecipeResponse, error)
		UpdateRecipe(ctx context.Context, id int64, req domain.UpdateRecipeRequest) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, id int64) (domain.DeleteRecipeResponse, error)
		SearchRecipes(ctx context.Context, req domain.SearchRecipesRequest) ([]domain.RecipeResponse, error)
		UploadRecipeImage(ctx context.Context, id int64, image *multipart.FileHeader) (domain.UploadRecipeImageResponse, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		s3               storage.AwsS3
	}
)

func NewRecipeService(recipeRepository RecipeRepository, s3 storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		s3:               s3,
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.RecipeResponse, error) {
	if len(req.Ingredients) == 0 {
		return domain.RecipeResponse{}, domain.ErrRecipeNoIngredients
	}

	if err := s.validateIngredients(ctx, s.recipeRepository, ingredientIDsOf(req.Ingredients)); err != nil {
		return domain.RecipeResponse{}, err
	}

	// duplicate detection only applies when both sides of the pair are set
	if req.AuthorID != nil && req.ImageURL != "" {
		exists, err := s.recipeRepository.HasDuplicateRecipe(ctx, *req.AuthorID, req.ImageURL, 0)
		if err != nil {
			return domain.RecipeResponse{}, err
		}
		if exists {
			return domain.RecipeResponse{}, domain.ErrRecipeAlreadyExists
		}
	}

	recipe := &entities.Recipe{
		AuthorID:             req.AuthorID,
		CookingTimeInMinutes: req.CookingTimeInMinutes,
		ImageURL:             req.ImageURL,
	}
	for _, ing := range req.Ingredients {
		recipe.Ingredients = append(recipe.Ingredients, entities.RecipeIngredient{
			IngredientID: ing.IngredientID,
			Quantity:     ing.Quantity,
			UnitID:       ing.UnitID,
		})
	}

	// recipe row and association rows go in as one unit: gorm wraps the
	// create with its associations in a single transaction
	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.RecipeResponse{}, domain.ErrRecipeAlreadyExists
		}
		return domain.RecipeResponse{}, err
	}

	return s.GetRecipeByID(ctx, recipe.ID)
}

func (s *recipeService) GetRecipeByID(ctx context.Context, id int64) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}
	return toRecipeResponse(recipe), nil
}

func (s *recipeService) GetRecipes(ctx context.Context) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		res = append(res, toRecipeResponse(recipe))
	}
	return res, nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id int64, req domain.UpdateRecipeRequest) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}

	fields := map[string]interface{}{}

	if req.CookingTimeInMinutes != nil && *req.CookingTimeInMinutes != recipe.CookingTimeInMinutes {
		fields["cooking_time_in_minutes"] = *req.CookingTimeInMinutes
	}

	if req.ImageURL != nil && *req.ImageURL != recipe.ImageURL {
		if recipe.AuthorID != nil && *req.ImageURL != "" {
			exists, err := s.recipeRepository.HasDuplicateRecipe(ctx, *recipe.AuthorID, *req.ImageURL, recipe.ID)
			if err != nil {
				return domain.RecipeResponse{}, err
			}
			if exists {
				return domain.RecipeResponse{}, domain.ErrRecipeAlreadyExists
			}
		}
		fields["image_url"] = *req.ImageURL
	}

	var plan syncPlan
	if req.Ingredients != nil {
		desired := *req.Ingredients
		if len(desired) > 0 {
			if err := s.validateIngredients(ctx, s.recipeRepository, ingredientIDsOf(desired)); err != nil {
				return domain.RecipeResponse{}, err
			}
		}
		plan = buildSyncPlan(recipe.ID, recipe.Ingredients, desired)
	}

	if len(fields) == 0 && plan.empty() {
		// nothing actually differs: no store write, no updated_at bump
		return toRecipeResponse(recipe), nil
	}

	err = s.recipeRepository.Transaction(ctx, func(txRepo RecipeRepository) error {
		if len(fields) > 0 {
			if err := txRepo.UpdateRecipeFields(ctx, recipe.ID, fields); err != nil {
				return err
			}
		}
		return applySyncPlan(ctx, txRepo, plan)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.RecipeResponse{}, domain.ErrRecipeAlreadyExists
		}
		return domain.RecipeResponse{}, err
	}

	return s.GetRecipeByID(ctx, recipe.ID)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id int64) (domain.DeleteRecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DeleteRecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.DeleteRecipeResponse{}, err
	}

	if entities.PolicyFor("user_recipes", "recipes") == entities.Restrict {
		forks, err := s.recipeRepository.CountForksByBaseRecipeID(ctx, recipe.ID)
		if err != nil {
			return domain.DeleteRecipeResponse{}, err
		}
		if forks > 0 {
			return domain.DeleteRecipeResponse{}, domain.ErrRecipeHasForks
		}
	}

	err = s.recipeRepository.Transaction(ctx, func(txRepo RecipeRepository) error {
		if entities.PolicyFor("recipe_ingredients", "recipes") == entities.ApplicationManaged {
			if err := txRepo.DeleteAllRecipeIngredients(ctx, recipe.ID); err != nil {
				return err
			}
		}
		return txRepo.DeleteRecipe(ctx, recipe)
	})
	if err != nil {
		return domain.DeleteRecipeResponse{}, err
	}

	return domain.DeleteRecipeResponse{ID: recipe.ID}, nil
}

func (s *recipeService) SearchRecipes(ctx context.Context, req domain.SearchRecipesRequest) ([]domain.RecipeResponse, error) {
	var matchAll bool
	switch req.Match {
	case domain.MatchAny:
		matchAll = false
	case domain.MatchAll:
		matchAll = true
	default:
		return nil, domain.ErrInvalidMatchMode
	}

	if len(req.IngredientIDs) == 0 {
		return []domain.RecipeResponse{}, nil
	}

	recipes, err := s.recipeRepository.SearchRecipes(ctx, req.IngredientIDs, matchAll)
	if err != nil {
		return nil, err
	}

	res := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		res = append(res, toRecipeResponse(recipe))
	}
	return res, nil
}

func (s *recipeService) UploadRecipeImage(ctx context.Context, id int64, image *multipart.FileHeader) (domain.UploadRecipeImageResponse, error) {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UploadRecipeImageResponse{}, domain.ErrRecipeNotFound
		}
		return domain.UploadRecipeImageResponse{}, err
	}

	objectKey, err := s.s3.UploadFile(fmt.Sprintf("recipe-%d", id), image, "recipes", storage.AllowImage...)
	if err != nil {
		return domain.UploadRecipeImageResponse{}, err
	}
	imageURL := s.s3.GetPublicLinkKey(objectKey)

	// route through the normal update path so the duplicate check still runs
	updated, err := s.UpdateRecipe(ctx, id, domain.UpdateRecipeRequest{ImageURL: &imageURL})
	if err != nil {
		return domain.UploadRecipeImageResponse{}, err
	}

	return domain.UploadRecipeImageResponse{ID: updated.ID, ImageURL: updated.ImageURL}, nil
}

// validateIngredients resolves every requested ingredient id and reports ALL
// missing ids at once rather than failing on the first.
func (s *recipeService) validateIngredients(ctx context.Context, repo RecipeRepository, ids []int64) error {
	found, err := repo.GetIngredientIDs(ctx, ids)
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

// syncPlan is the add/update/remove delta between the current association set
// and the requested one. Rows present in both sets are mutated in place so
// their identity never churns.
type syncPlan struct {
	recipeID int64
	toDelete []int64
	toUpdate []entities.RecipeIngredient
	toInsert []entities.RecipeIngredient
}

func (p syncPlan) empty() bool {
	return len(p.toDelete) == 0 && len(p.toUpdate) == 0 && len(p.toInsert) == 0
}

func buildSyncPlan(recipeID int64, current []entities.RecipeIngredient, desired []domain.RecipeIngredientRequest) syncPlan {
	currentByID := make(map[int64]entities.RecipeIngredient, len(current))
	for _, row := range current {
		currentByID[row.IngredientID] = row
	}
	desiredByID := make(map[int64]domain.RecipeIngredientRequest, len(desired))
	for _, row := range desired {
		desiredByID[row.IngredientID] = row
	}

	plan := syncPlan{recipeID: recipeID}
	for _, row := range current {
		want, ok := desiredByID[row.IngredientID]
		if !ok {
			plan.toDelete = append(plan.toDelete, row.IngredientID)
			continue
		}
		if row.Quantity != want.Quantity || !int64PtrEqual(row.UnitID, want.UnitID) {
			plan.toUpdate = append(plan.toUpdate, entities.RecipeIngredient{
				RecipeID:     recipeID,
				IngredientID: row.IngredientID,
				Quantity:     want.Quantity,
				UnitID:       want.UnitID,
			})
		}
	}
	for _, want := range desired {
		if _, ok := currentByID[want.IngredientID]; !ok {
			plan.toInsert = append(plan.toInsert, entities.RecipeIngredient{
				RecipeID:     recipeID,
				IngredientID: want.IngredientID,
				Quantity:     want.Quantity,
				UnitID:       want.UnitID,
			})
		}
	}
	return plan
}

func applySyncPlan(ctx context.Context, repo RecipeRepository, plan syncPlan) error {
	if len(plan.toDelete) > 0 {
		if err := repo.DeleteRecipeIngredients(ctx, plan.recipeID, plan.toDelete); err != nil {
			return err
		}
	}
	for i := range plan.toUpdate {
		if err := repo.UpdateRecipeIngredient(ctx, &plan.toUpdate[i]); err != nil {
			return err
		}
	}
	if len(plan.toInsert) > 0 {
		if err := repo.AddRecipeIngredients(ctx, plan.toInsert); err != nil {
			return err
		}
	}
	return nil
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

func toRecipeResponse(recipe *entities.Recipe) domain.RecipeResponse {
	ingredients := make([]domain.RecipeIngredientResponse, 0, len(recipe.Ingredients))
	for _, row := range recipe.Ingredients {
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
	return domain.RecipeResponse{
		ID:                   recipe.ID,
		AuthorID:             recipe.AuthorID,
		CookingTimeInMinutes: recipe.CookingTimeInMinutes,
		ImageURL:             recipe.ImageURL,
		CreatedAt:            recipe.CreatedAt,
		UpdatedAt:            recipe.UpdatedAt,
		Ingredients:          ingredients,
	}
}
