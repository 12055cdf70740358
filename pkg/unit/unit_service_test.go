package unit

import (
	"context"
	"errors"
	"testing"

	"recipe-catalog/domain"
	"recipe-catalog/internal/testutil"
)

func TestUnitService(t *testing.T) {
	svc := NewUnitService(NewUnitRepository(testutil.DB(t)))
	ctx := context.Background()

	created, err := svc.CreateUnit(ctx, domain.CreateUnitRequest{Symbol: "g"})
	if err != nil {
		t.Fatalf("CreateUnit: %v", err)
	}
	if created.ID == 0 || created.Symbol != "g" {
		t.Fatalf("CreateUnit: unexpected response: %+v", created)
	}

	if _, err := svc.CreateUnit(ctx, domain.CreateUnitRequest{Symbol: "g"}); !errors.Is(err, domain.ErrUnitAlreadyExists) {
		t.Fatalf("CreateUnit (duplicate): expected ErrUnitAlreadyExists, got %v", err)
	}

	got, err := svc.GetUnitByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetUnitByID: %v", err)
	}
	if got != created {
		t.Fatalf("GetUnitByID: got %+v, want %+v", got, created)
	}

	if _, err := svc.GetUnitByID(ctx, 12345); !errors.Is(err, domain.ErrUnitNotFound) {
		t.Fatalf("GetUnitByID (missing): expected ErrUnitNotFound, got %v", err)
	}

	if _, err := svc.CreateUnit(ctx, domain.CreateUnitRequest{Symbol: "ml"}); err != nil {
		t.Fatalf("CreateUnit: %v", err)
	}
	units, err := svc.GetUnits(ctx)
	if err != nil {
		t.Fatalf("GetUnits: %v", err)
	}
	if len(units) != 2 {
		t.Fatalf("GetUnits: got %d units, want 2", len(units))
	}
}
