package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/gelacuca/gelo/internal/catalog"
	"github.com/gelacuca/gelo/internal/common"
	"github.com/gelacuca/gelo/internal/model"
)

func TestSaveRawMaterialDerivesUnitCost(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	material := model.RawMaterial{Name: "Leite", Unit: "1 L", Price: 4.00, Yield: 13}
	if err := store.SaveRawMaterial(ctx, &material); err != nil {
		t.Fatalf("SaveRawMaterial() failed: %v", err)
	}

	got, err := store.GetRawMaterials(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d materials, want 1", len(got))
	}
	want := model.UnitCost(4.00, 13)
	if got[0].CostPerUnit != want {
		t.Errorf("costPerUnit = %v, want %v", got[0].CostPerUnit, want)
	}
}

func TestDeleteRawMaterial(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	material := model.RawMaterial{Name: "Morango", Price: 20, Yield: 60}
	if err := store.SaveRawMaterial(ctx, &material); err != nil {
		t.Fatal(err)
	}

	if err := store.DeleteRawMaterial(ctx, material.ID); err != nil {
		t.Fatalf("DeleteRawMaterial() failed: %v", err)
	}

	if err := store.DeleteRawMaterial(ctx, material.ID); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("second delete error = %v, want ErrNotFound", err)
	}

	got, err := store.GetRawMaterials(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("materials after delete = %d, want 0", len(got))
	}
}

func TestApplyCatalogPlanRoundTrip(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	// First sync against an empty store creates everything.
	plan := catalog.Reconcile(catalog.ReferenceMaterials(), catalog.ReferenceProducts(), nil, nil)
	if err := store.ApplyCatalogPlan(ctx, plan); err != nil {
		t.Fatalf("ApplyCatalogPlan() failed: %v", err)
	}

	materials, err := store.GetRawMaterials(ctx)
	if err != nil {
		t.Fatal(err)
	}
	products, err := store.GetProducts(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(materials) != len(catalog.ReferenceMaterials()) {
		t.Errorf("materials = %d, want %d", len(materials), len(catalog.ReferenceMaterials()))
	}
	if len(products) != len(catalog.ReferenceProducts()) {
		t.Errorf("products = %d, want %d", len(products), len(catalog.ReferenceProducts()))
	}

	// Second sync matches everything by natural key: no creates, only
	// field-identical updates, and applying them changes nothing.
	plan2 := catalog.Reconcile(catalog.ReferenceMaterials(), catalog.ReferenceProducts(), materials, products)
	if plan2.Creates() != 0 {
		t.Errorf("second plan creates = %d, want 0", plan2.Creates())
	}
	if err := store.ApplyCatalogPlan(ctx, plan2); err != nil {
		t.Fatalf("second ApplyCatalogPlan() failed: %v", err)
	}

	materials2, err := store.GetRawMaterials(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(materials2) != len(materials) {
		t.Errorf("materials after re-sync = %d, want %d", len(materials2), len(materials))
	}
	for i := range materials {
		if materials2[i] != materials[i] {
			t.Errorf("material changed on re-sync: %+v != %+v", materials2[i], materials[i])
		}
	}
}

func TestApplyCatalogPlanUpdatesInPlace(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	material := model.RawMaterial{Name: "Leite", Unit: "1 L", Price: 3.00, Yield: 13, CostPerUnit: 0.23}
	if err := store.SaveRawMaterial(ctx, &material); err != nil {
		t.Fatal(err)
	}

	reference := []model.RawMaterial{
		{Name: "leite", Unit: "1 L", Price: 4.00, PromoPrice: 4.00, Yield: 13, CostPerUnit: 0.31},
	}
	existing, err := store.GetRawMaterials(ctx)
	if err != nil {
		t.Fatal(err)
	}

	creates, updates := catalog.ReconcileMaterials(reference, existing)
	if len(creates) != 0 || len(updates) != 1 {
		t.Fatalf("plan = %d creates %d updates, want 0/1", len(creates), len(updates))
	}

	if err := store.ApplyCatalogPlan(ctx, catalog.Plan{UpdateMaterials: updates}); err != nil {
		t.Fatal(err)
	}

	got, err := store.GetRawMaterials(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got[0].ID != material.ID {
		t.Errorf("update created a new document: id %s != %s", got[0].ID, material.ID)
	}
	if got[0].Price != 4.00 || got[0].CostPerUnit != 0.31 {
		t.Errorf("update not applied: %+v", got[0])
	}
	if got[0].Name != "Leite" {
		t.Errorf("update rewrote the stored name casing: %q", got[0].Name)
	}
}

func TestUpdateProduct(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	plan := catalog.Plan{CreateProducts: []model.Product{
		{Slug: "oreo", Name: "Oreo", Price: 4.00, CostPrice: 1.32, PromoCost: 1.22},
	}}
	if err := store.ApplyCatalogPlan(ctx, plan); err != nil {
		t.Fatal(err)
	}

	products, err := store.GetProducts(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(products) != 1 {
		t.Fatalf("got %d products, want 1", len(products))
	}

	edited := products[0]
	edited.Price = 5.00
	edited.PromoCost = 1.10
	if err := store.UpdateProduct(ctx, &edited); err != nil {
		t.Fatalf("UpdateProduct() failed: %v", err)
	}

	got, err := store.GetProducts(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got[0].ID != products[0].ID {
		t.Errorf("edit created a new document: id %s != %s", got[0].ID, products[0].ID)
	}
	if got[0].Price != 5.00 || got[0].PromoCost != 1.10 {
		t.Errorf("edit not applied: %+v", got[0])
	}
	// Cost price was untouched by this edit and must survive.
	if got[0].CostPrice != 1.32 {
		t.Errorf("costPrice = %v, want 1.32", got[0].CostPrice)
	}
}

func TestUpdateProductUnknownID(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	product := model.Product{ID: "missing", Slug: "coco", Price: 3}
	if err := store.UpdateProduct(context.Background(), &product); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestApplyCatalogPlanEmptyIsNoOp(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	if err := store.ApplyCatalogPlan(context.Background(), catalog.Plan{}); err != nil {
		t.Errorf("empty plan returned error: %v", err)
	}
}
