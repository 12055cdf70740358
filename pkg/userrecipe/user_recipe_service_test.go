package userrecipe

import (
	"context"
	"errors"
	"reflect"
	"sort"
	"testing"

	"recipe-catalog/domain"
	"recipe-catalog/entities"
	"recipe-catalog/internal/testutil"

	"gorm.io/gorm"
)

type fixture struct {
	db  *gorm.DB
	svc UserRecipeService

	base   *entities.Recipe
	tomato *entities.Ingredient
	basil  *entities.Ingredient
	garlic *entities.Ingredient
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.DB(t)

	produce := testutil.SeedCategory(t, db, "Produce")
	tomato := testutil.SeedIngredient(t, db, "Tomato", produce)
	basil := testutil.SeedIngredient(t, db, "Basil", produce)
	garlic := testutil.SeedIngredient(t, db, "Garlic", produce)

	base := testutil.SeedRecipe(t, db, &entities.Recipe{
		CookingTimeInMinutes: 30,
		Ingredients: []entities.RecipeIngredient{
			{IngredientID: tomato.ID, Quantity: 400},
		},
	})

	return &fixture{
		db:     db,
		svc:    NewUserRecipeService(NewUserRecipeRepository(db)),
		base:   base,
		tomato: tomato,
		basil:  basil,
		garlic: garlic,
	}
}

func (f *fixture) create(t *testing.T, rows ...domain.RecipeIngredientRequest) domain.UserRecipeResponse {
	t.Helper()
	created, err := f.svc.CreateUserRecipe(context.Background(), domain.CreateUserRecipeRequest{
		BaseRecipeID:         f.base.ID,
		UserID:               7,
		Title:                "My version",
		Instructions:         "Chop everything, then simmer.",
		CookingTimeInMinutes: 25,
		Ingredients:          rows,
	})
	if err != nil {
		t.Fatalf("CreateUserRecipe: %v", err)
	}
	return created
}

func TestCreateUserRecipe(t *testing.T) {
	f := newFixture(t)

	created := f.create(t,
		domain.RecipeIngredientRequest{IngredientID: f.tomato.ID, Quantity: 300},
		domain.RecipeIngredientRequest{IngredientID: f.basil.ID, Quantity: 5},
	)
	if created.ID == 0 || created.BaseRecipeID != f.base.ID || created.UserID != 7 {
		t.Fatalf("CreateUserRecipe: unexpected response: %+v", created)
	}
	if len(created.Ingredients) != 2 {
		t.Fatalf("CreateUserRecipe: got %d ingredients, want 2", len(created.Ingredients))
	}

	got, err := f.svc.GetUserRecipeByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetUserRecipeByID: %v", err)
	}
	if got.Title != "My version" || got.CookingTimeInMinutes != 25 {
		t.Fatalf("GetUserRecipeByID: unexpected response: %+v", got)
	}
}

func TestCreateUserRecipeMissingBase(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateUserRecipe(context.Background(), domain.CreateUserRecipeRequest{
		BaseRecipeID: 12345,
		UserID:       7,
		Title:        "My version",
		Instructions: "Simmer.",
		Ingredients:  []domain.RecipeIngredientRequest{{IngredientID: f.tomato.ID, Quantity: 1}},
	})
	if !errors.Is(err, domain.ErrRecipeNotFound) {
		t.Fatalf("expected ErrRecipeNotFound, got %v", err)
	}
}

func TestCreateUserRecipeWithoutIngredients(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateUserRecipe(context.Background(), domain.CreateUserRecipeRequest{
		BaseRecipeID: f.base.ID,
		UserID:       7,
		Title:        "My version",
		Instructions: "Simmer.",
	})
	if !errors.Is(err, domain.ErrRecipeNoIngredients) {
		t.Fatalf("expected ErrRecipeNoIngredients, got %v", err)
	}
}

func TestCreateUserRecipeReportsAllMissingIngredients(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateUserRecipe(context.Background(), domain.CreateUserRecipeRequest{
		BaseRecipeID: f.base.ID,
		UserID:       7,
		Title:        "My version",
		Instructions: "Simmer.",
		Ingredients: []domain.RecipeIngredientRequest{
			{IngredientID: 999, Quantity: 1},
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

func TestGetUserRecipesByUserID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	mine := f.create(t, domain.RecipeIngredientRequest{IngredientID: f.tomato.ID, Quantity: 1})

	other := &entities.UserRecipe{
		BaseRecipeID: f.base.ID,
		UserID:       8,
		Title:        "Someone else's version",
		Instructions: "Roast instead.",
	}
	if err := f.db.Create(other).Error; err != nil {
		t.Fatalf("seed other user recipe: %v", err)
	}

	got, err := f.svc.GetUserRecipesByUserID(ctx, 7)
	if err != nil {
		t.Fatalf("GetUserRecipesByUserID: %v", err)
	}
	if len(got) != 1 || got[0].ID != mine.ID {
		t.Fatalf("GetUserRecipesByUserID: got %+v, want only id %d", got, mine.ID)
	}

	got, err = f.svc.GetUserRecipesByUserID(ctx, 99)
	if err != nil {
		t.Fatalf("GetUserRecipesByUserID (none): %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("GetUserRecipesByUserID (none): got %+v", got)
	}
}

func TestUpdateUserRecipe(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created := f.create(t,
		domain.RecipeIngredientRequest{IngredientID: f.tomato.ID, Quantity: 300},
		domain.RecipeIngredientRequest{IngredientID: f.basil.ID, Quantity: 5},
	)

	// change a scalar and resynchronize the ingredient rows in one call
	title := "Weeknight version"
	desired := []domain.RecipeIngredientRequest{
		{IngredientID: f.basil.ID, Quantity: 10},
		{IngredientID: f.garlic.ID, Quantity: 2},
	}
	updated, err := f.svc.UpdateUserRecipe(ctx, created.ID, domain.UpdateUserRecipeRequest{
		Title:       &title,
		Ingredients: &desired,
	})
	if err != nil {
		t.Fatalf("UpdateUserRecipe: %v", err)
	}
	if updated.Title != title {
		t.Fatalf("UpdateUserRecipe: got title %q", updated.Title)
	}

	ids := make([]int64, 0, len(updated.Ingredients))
	for _, ing := range updated.Ingredients {
		ids = append(ids, ing.IngredientID)
		if ing.IngredientID == f.basil.ID && ing.Quantity != 10 {
			t.Fatalf("UpdateUserRecipe: basil quantity not updated: %+v", ing)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	want := []int64{f.basil.ID, f.garlic.ID}
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("UpdateUserRecipe: got ingredient ids %v, want %v", ids, want)
	}

	// identical request is a no-op
	same, err := f.svc.UpdateUserRecipe(ctx, created.ID, domain.UpdateUserRecipeRequest{
		Title:       &title,
		Ingredients: &desired,
	})
	if err != nil {
		t.Fatalf("UpdateUserRecipe (no-op): %v", err)
	}
	if !same.UpdatedAt.Equal(updated.UpdatedAt) {
		t.Fatalf("idempotent update bumped updated_at: %v -> %v", updated.UpdatedAt, same.UpdatedAt)
	}

	if _, err := f.svc.UpdateUserRecipe(ctx, 12345, domain.UpdateUserRecipeRequest{Title: &title}); !errors.Is(err, domain.ErrUserRecipeNotFound) {
		t.Fatalf("expected ErrUserRecipeNotFound, got %v", err)
	}
}

func TestDeleteUserRecipe(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created := f.create(t, domain.RecipeIngredientRequest{IngredientID: f.tomato.ID, Quantity: 1})

	deleted, err := f.svc.DeleteUserRecipe(ctx, created.ID)
	if err != nil {
		t.Fatalf("DeleteUserRecipe: %v", err)
	}
	if deleted.ID != created.ID {
		t.Fatalf("DeleteUserRecipe: unexpected response: %+v", deleted)
	}

	if _, err := f.svc.GetUserRecipeByID(ctx, created.ID); !errors.Is(err, domain.ErrUserRecipeNotFound) {
		t.Fatalf("deleted user recipe still readable: %v", err)
	}

	var count int64
	if err := f.db.Model(&entities.UserRecipeIngredient{}).Where("user_recipe_id = ?", created.ID).Count(&count).Error; err != nil {
		t.Fatalf("count association rows: %v", err)
	}
	if count != 0 {
		t.Fatalf("delete left %d association rows behind", count)
	}
}
