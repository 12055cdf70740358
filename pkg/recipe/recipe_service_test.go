package recipe

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"reflect"
	"sort"
	"testing"

	"recipe-catalog/domain"
	"recipe-catalog/entities"
	"recipe-catalog/internal/testutil"

	"gorm.io/gorm"
)

type stubS3 struct{}

func (stubS3) UploadFile(name string, _ *multipart.FileHeader, dir string, _ ...string) (string, error) {
	return fmt.Sprintf("%s/%s.jpg", dir, name), nil
}

func (stubS3) GetPublicLinkKey(objectKey string) string {
	return "https://cdn.test/" + objectKey
}

type fixture struct {
	db  *gorm.DB
	svc RecipeService

	tomato *entities.Ingredient
	basil  *entities.Ingredient
	garlic *entities.Ingredient
	gram   *entities.Unit
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.DB(t)

	produce := testutil.SeedCategory(t, db, "Produce")
	return &fixture{
		db:     db,
		svc:    NewRecipeService(NewRecipeRepository(db), stubS3{}),
		tomato: testutil.SeedIngredient(t, db, "Tomato", produce),
		basil:  testutil.SeedIngredient(t, db, "Basil", produce),
		garlic: testutil.SeedIngredient(t, db, "Garlic", produce),
		gram:   testutil.SeedUnit(t, db, "g"),
	}
}

func (f *fixture) ingredientIDs(t *testing.T, resp domain.RecipeResponse) []int64 {
	t.Helper()
	ids := make([]int64, 0, len(resp.Ingredients))
	for _, ing := range resp.Ingredients {
		ids = append(ids, ing.IngredientID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func TestCreateRecipe(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateRecipe(ctx, domain.CreateRecipeRequest{
		CookingTimeInMinutes: 30,
		Ingredients: []domain.RecipeIngredientRequest{
			{IngredientID: f.tomato.ID, Quantity: 400, UnitID: &f.gram.ID},
			{IngredientID: f.basil.ID, Quantity: 5},
		},
	})
	if err != nil {
		t.Fatalf("CreateRecipe: %v", err)
	}
	if created.ID == 0 || created.CookingTimeInMinutes != 30 {
		t.Fatalf("CreateRecipe: unexpected response: %+v", created)
	}
	if len(created.Ingredients) != 2 {
		t.Fatalf("CreateRecipe: got %d ingredients, want 2", len(created.Ingredients))
	}

	// association rows come back with their referenced rows resolved
	byID := map[int64]domain.RecipeIngredientResponse{}
	for _, ing := range created.Ingredients {
		byID[ing.IngredientID] = ing
	}
	if got := byID[f.tomato.ID]; got.Name != "Tomato" || got.Quantity != 400 || got.UnitSymbol != "g" {
		t.Fatalf("CreateRecipe: unexpected tomato row: %+v", got)
	}
	if got := byID[f.basil.ID]; got.Name != "Basil" || got.UnitID != nil {
		t.Fatalf("CreateRecipe: unexpected basil row: %+v", got)
	}
}

func TestCreateRecipeWithoutIngredients(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.svc.CreateRecipe(ctx, domain.CreateRecipeRequest{}); !errors.Is(err, domain.ErrRecipeNoIngredients) {
		t.Fatalf("expected ErrRecipeNoIngredients, got %v", err)
	}

	recipes, err := f.svc.GetRecipes(ctx)
	if err != nil {
		t.Fatalf("GetRecipes: %v", err)
	}
	if len(recipes) != 0 {
		t.Fatalf("rejected create left %d recipes behind", len(recipes))
	}
}

func TestCreateRecipeReportsAllMissingIngredients(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Ingredients: []domain.RecipeIngredientRequest{
			{IngredientID: 999, Quantity: 1},
			{IngredientID: f.tomato.ID, Quantity: 1},
			{IngredientID: 998, Quantity: 1},
		},
	})

	var notFound *domain.IngredientsNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected IngredientsNotFoundError, got %v", err)
	}
	if !reflect.DeepEqual(notFound.IDs, []int64{998, 999}) {
		t.Fatalf("expected missing ids [998 999], got %v", notFound.IDs)
	}
}

func TestCreateRecipeDuplicateDetection(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	author := int64(5)
	ingredients := []domain.RecipeIngredientRequest{{IngredientID: f.tomato.ID, Quantity: 1}}

	if _, err := f.svc.CreateRecipe(ctx, domain.CreateRecipeRequest{
		AuthorID:    &author,
		ImageURL:    "https://img.test/x.jpg",
		Ingredients: ingredients,
	}); err != nil {
		t.Fatalf("CreateRecipe: %v", err)
	}

	if _, err := f.svc.CreateRecipe(ctx, domain.CreateRecipeRequest{
		AuthorID:    &author,
		ImageURL:    "https://img.test/x.jpg",
		Ingredients: ingredients,
	}); !errors.Is(err, domain.ErrRecipeAlreadyExists) {
		t.Fatalf("expected ErrRecipeAlreadyExists, got %v", err)
	}

	// anonymous recipes are never considered duplicates of each other
	for i := 0; i < 2; i++ {
		if _, err := f.svc.CreateRecipe(ctx, domain.CreateRecipeRequest{
			ImageURL:    "https://img.test/x.jpg",
			Ingredients: ingredients,
		}); err != nil {
			t.Fatalf("CreateRecipe (anonymous %d): %v", i, err)
		}
	}
}

func TestUpdateRecipeNoChangeSkipsWrite(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	minutes := 30
	created, err := f.svc.CreateRecipe(ctx, domain.CreateRecipeRequest{
		CookingTimeInMinutes: minutes,
		Ingredients: []domain.RecipeIngredientRequest{
			{IngredientID: f.tomato.ID, Quantity: 400, UnitID: &f.gram.ID},
		},
	})
	if err != nil {
		t.Fatalf("CreateRecipe: %v", err)
	}

	same := []domain.RecipeIngredientRequest{
		{IngredientID: f.tomato.ID, Quantity: 400, UnitID: &f.gram.ID},
	}
	updated, err := f.svc.UpdateRecipe(ctx, created.ID, domain.UpdateRecipeRequest{
		CookingTimeInMinutes: &minutes,
		Ingredients:          &same,
	})
	if err != nil {
		t.Fatalf("UpdateRecipe: %v", err)
	}
	if !updated.UpdatedAt.Equal(created.UpdatedAt) {
		t.Fatalf("idempotent update bumped updated_at: %v -> %v", created.UpdatedAt, updated.UpdatedAt)
	}
}

func TestUpdateRecipeSynchronizesIngredients(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateRecipe(ctx, domain.CreateRecipeRequest{
		Ingredients: []domain.RecipeIngredientRequest{
			{IngredientID: f.tomato.ID, Quantity: 400, UnitID: &f.gram.ID},
			{IngredientID: f.basil.ID, Quantity: 5},
		},
	})
	if err != nil {
		t.Fatalf("CreateRecipe: %v", err)
	}

	// drop tomato, change basil's quantity, add garlic
	desired := []domain.RecipeIngredientRequest{
		{IngredientID: f.basil.ID, Quantity: 10},
		{IngredientID: f.garlic.ID, Quantity: 2},
	}
	updated, err := f.svc.UpdateRecipe(ctx, created.ID, domain.UpdateRecipeRequest{Ingredients: &desired})
	if err != nil {
		t.Fatalf("UpdateRecipe: %v", err)
	}

	want := []int64{f.basil.ID, f.garlic.ID}
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
	if got := f.ingredientIDs(t, updated); !reflect.DeepEqual(got, want) {
		t.Fatalf("UpdateRecipe: got ingredient ids %v, want %v", got, want)
	}
	for _, ing := range updated.Ingredients {
		if ing.IngredientID == f.basil.ID && ing.Quantity != 10 {
			t.Fatalf("UpdateRecipe: basil quantity not updated: %+v", ing)
		}
	}

	// no stale association rows survive the sync
	var count int64
	if err := f.db.Model(&entities.RecipeIngredient{}).Where("recipe_id = ?", created.ID).Count(&count).Error; err != nil {
		t.Fatalf("count association rows: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 association rows, got %d", count)
	}
}

func TestUpdateRecipeNotFound(t *testing.T) {
	f := newFixture(t)

	minutes := 10
	if _, err := f.svc.UpdateRecipe(context.Background(), 12345, domain.UpdateRecipeRequest{
		CookingTimeInMinutes: &minutes,
	}); !errors.Is(err, domain.ErrRecipeNotFound) {
		t.Fatalf("expected ErrRecipeNotFound, got %v", err)
	}
}

func TestDeleteRecipe(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateRecipe(ctx, domain.CreateRecipeRequest{
		Ingredients: []domain.RecipeIngredientRequest{
			{IngredientID: f.tomato.ID, Quantity: 1},
			{IngredientID: f.basil.ID, Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("CreateRecipe: %v", err)
	}

	deleted, err := f.svc.DeleteRecipe(ctx, created.ID)
	if err != nil {
		t.Fatalf("DeleteRecipe: %v", err)
	}
	if deleted.ID != created.ID {
		t.Fatalf("DeleteRecipe: unexpected response: %+v", deleted)
	}

	if _, err := f.svc.GetRecipeByID(ctx, created.ID); !errors.Is(err, domain.ErrRecipeNotFound) {
		t.Fatalf("deleted recipe still readable: %v", err)
	}

	var count int64
	if err := f.db.Model(&entities.RecipeIngredient{}).Where("recipe_id = ?", created.ID).Count(&count).Error; err != nil {
		t.Fatalf("count association rows: %v", err)
	}
	if count != 0 {
		t.Fatalf("delete left %d association rows behind", count)
	}
}

func TestDeleteRecipeWithForksRefused(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateRecipe(ctx, domain.CreateRecipeRequest{
		Ingredients: []domain.RecipeIngredientRequest{{IngredientID: f.tomato.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("CreateRecipe: %v", err)
	}

	fork := &entities.UserRecipe{
		BaseRecipeID: created.ID,
		UserID:       7,
		Title:        "My version",
		Instructions: "Chop and simmer.",
	}
	if err := f.db.Create(fork).Error; err != nil {
		t.Fatalf("seed fork: %v", err)
	}

	if _, err := f.svc.DeleteRecipe(ctx, created.ID); !errors.Is(err, domain.ErrRecipeHasForks) {
		t.Fatalf("expected ErrRecipeHasForks, got %v", err)
	}

	// the base recipe is untouched
	if _, err := f.svc.GetRecipeByID(ctx, created.ID); err != nil {
		t.Fatalf("GetRecipeByID after refused delete: %v", err)
	}
}

func TestSearchRecipes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	mk := func(rows ...domain.RecipeIngredientRequest) int64 {
		t.Helper()
		created, err := f.svc.CreateRecipe(ctx, domain.CreateRecipeRequest{Ingredients: rows})
		if err != nil {
			t.Fatalf("CreateRecipe: %v", err)
		}
		return created.ID
	}

	r1 := mk(
		domain.RecipeIngredientRequest{IngredientID: f.tomato.ID, Quantity: 1},
		domain.RecipeIngredientRequest{IngredientID: f.basil.ID, Quantity: 1},
	)
	r2 := mk(domain.RecipeIngredientRequest{IngredientID: f.tomato.ID, Quantity: 1})
	r3 := mk(
		domain.RecipeIngredientRequest{IngredientID: f.basil.ID, Quantity: 1},
		domain.RecipeIngredientRequest{IngredientID: f.garlic.ID, Quantity: 1},
	)

	search := func(match domain.MatchMode, ids ...int64) []int64 {
		t.Helper()
		found, err := f.svc.SearchRecipes(ctx, domain.SearchRecipesRequest{IngredientIDs: ids, Match: match})
		if err != nil {
			t.Fatalf("SearchRecipes(%v, %v): %v", match, ids, err)
		}
		got := make([]int64, 0, len(found))
		for _, r := range found {
			got = append(got, r.ID)
		}
		sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
		return got
	}

	if got := search(domain.MatchAny, f.tomato.ID); !reflect.DeepEqual(got, []int64{r1, r2}) {
		t.Fatalf("any(tomato): got %v, want [%d %d]", got, r1, r2)
	}
	if got := search(domain.MatchAny, f.tomato.ID, f.garlic.ID); !reflect.DeepEqual(got, []int64{r1, r2, r3}) {
		t.Fatalf("any(tomato,garlic): got %v", got)
	}
	if got := search(domain.MatchAll, f.tomato.ID, f.basil.ID); !reflect.DeepEqual(got, []int64{r1}) {
		t.Fatalf("all(tomato,basil): got %v, want [%d]", got, r1)
	}
	if got := search(domain.MatchAll, f.basil.ID, f.garlic.ID); !reflect.DeepEqual(got, []int64{r3}) {
		t.Fatalf("all(basil,garlic): got %v, want [%d]", got, r3)
	}
	if got := search(domain.MatchAll, f.tomato.ID, f.garlic.ID); len(got) != 0 {
		t.Fatalf("all(tomato,garlic): got %v, want none", got)
	}

	if got := search(domain.MatchAny); len(got) != 0 {
		t.Fatalf("any(): got %v, want none", got)
	}

	if _, err := f.svc.SearchRecipes(ctx, domain.SearchRecipesRequest{
		IngredientIDs: []int64{f.tomato.ID},
		Match:         domain.MatchMode("some"),
	}); !errors.Is(err, domain.ErrInvalidMatchMode) {
		t.Fatalf("expected ErrInvalidMatchMode, got %v", err)
	}
}

func TestUploadRecipeImage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateRecipe(ctx, domain.CreateRecipeRequest{
		Ingredients: []domain.RecipeIngredientRequest{{IngredientID: f.tomato.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("CreateRecipe: %v", err)
	}

	uploaded, err := f.svc.UploadRecipeImage(ctx, created.ID, &multipart.FileHeader{Filename: "photo.jpg"})
	if err != nil {
		t.Fatalf("UploadRecipeImage: %v", err)
	}
	wantURL := fmt.Sprintf("https://cdn.test/recipes/recipe-%d.jpg", created.ID)
	if uploaded.ImageURL != wantURL {
		t.Fatalf("UploadRecipeImage: got url %q, want %q", uploaded.ImageURL, wantURL)
	}

	got, err := f.svc.GetRecipeByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetRecipeByID: %v", err)
	}
	if got.ImageURL != wantURL {
		t.Fatalf("image url not persisted: %q", got.ImageURL)
	}

	if _, err := f.svc.UploadRecipeImage(ctx, 12345, &multipart.FileHeader{Filename: "photo.jpg"}); !errors.Is(err, domain.ErrRecipeNotFound) {
		t.Fatalf("expected ErrRecipeNotFound, got %v", err)
	}
}
