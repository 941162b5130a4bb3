package catalog

import (
	"testing"

	"github.com/gelacuca/gelo/internal/model"
)

func TestReconcileMaterialsCaseInsensitiveMatch(t *testing.T) {
	existing := []model.RawMaterial{
		{ID: "x1", Name: "Leite", Price: 3},
	}
	reference := []model.RawMaterial{
		{Name: "leite", Price: 4},
		{Name: "Oreo", Price: 8},
	}

	toCreate, toUpdate := ReconcileMaterials(reference, existing)

	if len(toUpdate) != 1 {
		t.Fatalf("got %d updates, want 1", len(toUpdate))
	}
	if toUpdate[0].ID != "x1" {
		t.Errorf("update id = %q, want x1", toUpdate[0].ID)
	}
	if toUpdate[0].Price != 4 {
		t.Errorf("update price = %v, want 4", toUpdate[0].Price)
	}

	if len(toCreate) != 1 {
		t.Fatalf("got %d creates, want 1", len(toCreate))
	}
	if toCreate[0].Name != "Oreo" || toCreate[0].Price != 8 {
		t.Errorf("create = %+v, want Oreo at 8", toCreate[0])
	}
}

func TestReconcileMaterialsAlwaysEmitsUpdateForMatch(t *testing.T) {
	// Even a field-identical match emits an update; re-running the
	// reconciliation must be an observable no-op, not an error.
	existing := []model.RawMaterial{
		{ID: "m1", Name: "Nutella", Unit: "650g", Price: 38.89, PromoPrice: 36.00, Yield: 60, CostPerUnit: 0.65},
	}
	reference := []model.RawMaterial{
		{Name: "Nutella", Unit: "650g", Price: 38.89, PromoPrice: 36.00, Yield: 60, CostPerUnit: 0.65},
	}

	toCreate, toUpdate := ReconcileMaterials(reference, existing)

	if len(toCreate) != 0 {
		t.Errorf("got %d creates, want 0", len(toCreate))
	}
	if len(toUpdate) != 1 || toUpdate[0].ID != "m1" {
		t.Fatalf("updates = %+v, want one update for m1", toUpdate)
	}
}

func TestReconcileProductsMatchesBySlugOnly(t *testing.T) {
	existing := []model.Product{
		{ID: "p1", Slug: "coco", Name: "Coco", Price: 3.00},
		{ID: "p2", Slug: "uva", Name: "Uva", Price: 3.00},
	}
	reference := []model.Product{
		{Slug: "coco", Name: "Coco", Price: 4.00, CostPrice: 1.25, PromoCost: 0.83},
		{Slug: "pistache", Name: "Pistache", Price: 6.00},
	}

	toCreate, toUpdate := ReconcileProducts(reference, existing)

	if len(toUpdate) != 1 || toUpdate[0].ID != "p1" {
		t.Fatalf("updates = %+v, want one update for p1", toUpdate)
	}
	if toUpdate[0].Price != 4.00 || toUpdate[0].CostPrice != 1.25 {
		t.Errorf("update fields = %+v, want reference price and cost", toUpdate[0])
	}
	if len(toCreate) != 1 || toCreate[0].Slug != "pistache" {
		t.Fatalf("creates = %+v, want one create for pistache", toCreate)
	}
}

// applyMaterials simulates the storage layer committing a plan, for the
// idempotence check below.
func applyMaterials(existing []model.RawMaterial, creates []model.RawMaterial, updates []MaterialUpdate) []model.RawMaterial {
	next := make([]model.RawMaterial, len(existing))
	copy(next, existing)

	for i, m := range next {
		for _, u := range updates {
			if m.ID == u.ID {
				next[i].Unit = u.Unit
				next[i].Price = u.Price
				next[i].PromoPrice = u.PromoPrice
				next[i].Yield = u.Yield
				next[i].CostPerUnit = u.CostPerUnit
			}
		}
	}
	for _, c := range creates {
		c.ID = "new-" + c.Name
		next = append(next, c)
	}
	return next
}

func TestReconcileMaterialsIdempotent(t *testing.T) {
	existing := []model.RawMaterial{
		{ID: "x1", Name: "Leite", Unit: "1 L", Price: 3, Yield: 13},
	}
	reference := ReferenceMaterials()

	creates, updates := ReconcileMaterials(reference, existing)
	applied := applyMaterials(existing, creates, updates)

	creates2, updates2 := ReconcileMaterials(reference, applied)

	if len(creates2) != 0 {
		t.Fatalf("second pass created %d materials, want 0", len(creates2))
	}
	if len(updates2) != len(reference) {
		t.Fatalf("second pass has %d updates, want %d (one per reference entry)", len(updates2), len(reference))
	}

	// Every second-pass update must be a no-op on the applied state.
	byID := make(map[string]model.RawMaterial)
	for _, m := range applied {
		byID[m.ID] = m
	}
	for _, u := range updates2 {
		m := byID[u.ID]
		if m.Unit != u.Unit || m.Price != u.Price || m.PromoPrice != u.PromoPrice ||
			m.Yield != u.Yield || m.CostPerUnit != u.CostPerUnit {
			t.Errorf("update for %s is not a no-op: have %+v, plan %+v", u.ID, m, u)
		}
	}
}

func TestReconcileFullPlan(t *testing.T) {
	plan := Reconcile(ReferenceMaterials(), ReferenceProducts(), nil, nil)

	if plan.Empty() {
		t.Fatal("plan against an empty store must not be empty")
	}
	if plan.Creates() != len(ReferenceMaterials())+len(ReferenceProducts()) {
		t.Errorf("creates = %d, want %d", plan.Creates(), len(ReferenceMaterials())+len(ReferenceProducts()))
	}
	if plan.Updates() != 0 {
		t.Errorf("updates = %d, want 0", plan.Updates())
	}
}

func TestKeyLabel(t *testing.T) {
	if got := KeyLabel("ninho_nutella"); got != "Ninho c/ Nutella" {
		t.Errorf("KeyLabel(ninho_nutella) = %q", got)
	}
	if got := KeyLabel("desconhecido"); got != "desconhecido" {
		t.Errorf("KeyLabel falls back to the slug, got %q", got)
	}
}
