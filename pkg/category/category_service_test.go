package category

import (
	"context"
	"errors"
	"testing"

	"recipe-catalog/domain"
	"recipe-catalog/entities"
	"recipe-catalog/internal/testutil"
)

func newTestService(t *testing.T) CategoryService {
	t.Helper()
	return NewCategoryService(NewCategoryRepository(testutil.DB(t)))
}

func TestCreateCategory(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateCategory(ctx, domain.CreateCategoryRequest{Name: "Vegetables"})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	if created.ID == 0 || created.Name != "Vegetables" {
		t.Fatalf("CreateCategory: unexpected response: %+v", created)
	}

	got, err := svc.GetCategoryByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetCategoryByID: %v", err)
	}
	if got != created {
		t.Fatalf("GetCategoryByID: got %+v, want %+v", got, created)
	}

	if _, err := svc.CreateCategory(ctx, domain.CreateCategoryRequest{Name: "Vegetables"}); !errors.Is(err, domain.ErrCategoryAlreadyExists) {
		t.Fatalf("CreateCategory (duplicate): expected ErrCategoryAlreadyExists, got %v", err)
	}
}

func TestGetCategoryByIDNotFound(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.GetCategoryByID(context.Background(), 12345); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestUpdateCategory(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateCategory(ctx, domain.CreateCategoryRequest{Name: "Herbs"})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	other, err := svc.CreateCategory(ctx, domain.CreateCategoryRequest{Name: "Spices"})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}

	updated, err := svc.UpdateCategory(ctx, created.ID, domain.UpdateCategoryRequest{Name: "Fresh Herbs"})
	if err != nil {
		t.Fatalf("UpdateCategory: %v", err)
	}
	if updated.Name != "Fresh Herbs" {
		t.Fatalf("UpdateCategory: got name %q", updated.Name)
	}

	// same name again is a no-op, not a conflict with itself
	again, err := svc.UpdateCategory(ctx, created.ID, domain.UpdateCategoryRequest{Name: "Fresh Herbs"})
	if err != nil {
		t.Fatalf("UpdateCategory (no-op): %v", err)
	}
	if again != updated {
		t.Fatalf("UpdateCategory (no-op): got %+v, want %+v", again, updated)
	}

	if _, err := svc.UpdateCategory(ctx, created.ID, domain.UpdateCategoryRequest{Name: other.Name}); !errors.Is(err, domain.ErrCategoryAlreadyExists) {
		t.Fatalf("UpdateCategory (collision): expected ErrCategoryAlreadyExists, got %v", err)
	}

	if _, err := svc.UpdateCategory(ctx, 12345, domain.UpdateCategoryRequest{Name: "Whatever"}); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("UpdateCategory (missing): expected ErrCategoryNotFound, got %v", err)
	}
}

func TestDeleteCategoryReassignsOrphanedIngredients(t *testing.T) {
	db := testutil.DB(t)
	repo := NewCategoryRepository(db)
	svc := NewCategoryService(repo)
	ctx := context.Background()

	catA := testutil.SeedCategory(t, db, "Dairy")
	catB := testutil.SeedCategory(t, db, "Baking")
	soleMember := testutil.SeedIngredient(t, db, "Milk", catA)
	dualMember := testutil.SeedIngredient(t, db, "Butter", catA, catB)

	deleted, err := svc.DeleteCategory(ctx, catA.ID)
	if err != nil {
		t.Fatalf("DeleteCategory: %v", err)
	}
	if deleted.ID != catA.ID || deleted.Name != "Dairy" {
		t.Fatalf("DeleteCategory: unexpected response: %+v", deleted)
	}

	// the ingredient whose only category was deleted lands in the sentinel
	var reloaded entities.Ingredient
	if err := db.Preload("Categories").First(&reloaded, soleMember.ID).Error; err != nil {
		t.Fatalf("reload sole-member ingredient: %v", err)
	}
	if len(reloaded.Categories) != 1 || reloaded.Categories[0].Name != domain.SentinelCategoryName {
		t.Fatalf("sole-member ingredient: got categories %+v, want only %q", reloaded.Categories, domain.SentinelCategoryName)
	}

	// the dual-member ingredient just loses the deleted link
	reloaded = entities.Ingredient{}
	if err := db.Preload("Categories").First(&reloaded, dualMember.ID).Error; err != nil {
		t.Fatalf("reload dual-member ingredient: %v", err)
	}
	if len(reloaded.Categories) != 1 || reloaded.Categories[0].ID != catB.ID {
		t.Fatalf("dual-member ingredient: got categories %+v, want only %q", reloaded.Categories, catB.Name)
	}

	if _, err := svc.GetCategoryByID(ctx, catA.ID); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("deleted category still readable: %v", err)
	}
}

func TestDeleteSentinelCategoryRefused(t *testing.T) {
	db := testutil.DB(t)
	svc := NewCategoryService(NewCategoryRepository(db))
	ctx := context.Background()

	sentinel := testutil.SeedCategory(t, db, domain.SentinelCategoryName)

	if _, err := svc.DeleteCategory(ctx, sentinel.ID); !errors.Is(err, domain.ErrSentinelCategory) {
		t.Fatalf("expected ErrSentinelCategory, got %v", err)
	}
}

func TestDeleteCategoryNotFound(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.DeleteCategory(context.Background(), 12345); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}
