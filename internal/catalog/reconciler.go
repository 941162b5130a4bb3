// Package catalog reconciles the costing-sheet reference data against the
// persisted product and raw material collections.
package catalog

import (
	"strings"

	"github.com/gelacuca/gelo/internal/model"
)

// MaterialUpdate carries the reference-defined fields to apply to one
// existing raw material, addressed by its document id. Fields the reference
// does not define are left untouched by the storage layer.
type MaterialUpdate struct {
	ID          string
	Unit        string
	Price       float64
	PromoPrice  float64
	Yield       int
	CostPerUnit float64
}

// ProductUpdate carries the reference-defined fields to apply to one
// existing product, addressed by its document id.
type ProductUpdate struct {
	ID        string
	Slug      string
	Name      string
	Price     float64
	CostPrice float64
	PromoCost float64
}

// Plan is the minimal set of create and update operations that brings the
// persisted catalog in line with a reference. It is a pure value; applying
// it is the storage layer's job, as a single atomic batch.
type Plan struct {
	CreateMaterials []model.RawMaterial
	UpdateMaterials []MaterialUpdate
	CreateProducts  []model.Product
	UpdateProducts  []ProductUpdate
}

// Empty reports whether applying the plan would write nothing.
func (p *Plan) Empty() bool {
	return len(p.CreateMaterials) == 0 && len(p.UpdateMaterials) == 0 &&
		len(p.CreateProducts) == 0 && len(p.UpdateProducts) == 0
}

// Creates counts the documents the plan would create.
func (p *Plan) Creates() int {
	return len(p.CreateMaterials) + len(p.CreateProducts)
}

// Updates counts the documents the plan would update.
func (p *Plan) Updates() int {
	return len(p.UpdateMaterials) + len(p.UpdateProducts)
}

// ReconcileMaterials matches each reference material against the existing
// set by case-insensitive exact name. A match becomes an update against the
// matched document's id; anything unmatched becomes a create carrying the
// full reference entry. Absence of a match is never an error. Matches always
// emit an update, even when every field already holds the reference value,
// so re-running the reconciliation is an observable no-op.
func ReconcileMaterials(reference, existing []model.RawMaterial) ([]model.RawMaterial, []MaterialUpdate) {
	byName := make(map[string]model.RawMaterial, len(existing))
	for _, m := range existing {
		byName[strings.ToLower(m.Name)] = m
	}

	var toCreate []model.RawMaterial
	var toUpdate []MaterialUpdate
	for _, ref := range reference {
		match, ok := byName[strings.ToLower(ref.Name)]
		if !ok || match.ID == "" {
			toCreate = append(toCreate, ref)
			continue
		}
		toUpdate = append(toUpdate, MaterialUpdate{
			ID:          match.ID,
			Unit:        ref.Unit,
			Price:       ref.Price,
			PromoPrice:  ref.PromoPrice,
			Yield:       ref.Yield,
			CostPerUnit: ref.CostPerUnit,
		})
	}
	return toCreate, toUpdate
}

// ReconcileProducts matches each reference product against the existing set
// by exact slug. Matching and upsert semantics mirror ReconcileMaterials;
// there is no fuzzy or partial matching, and display order plays no part.
func ReconcileProducts(reference, existing []model.Product) ([]model.Product, []ProductUpdate) {
	bySlug := make(map[string]model.Product, len(existing))
	for _, p := range existing {
		bySlug[p.Slug] = p
	}

	var toCreate []model.Product
	var toUpdate []ProductUpdate
	for _, ref := range reference {
		match, ok := bySlug[ref.Slug]
		if !ok || match.ID == "" {
			toCreate = append(toCreate, ref)
			continue
		}
		toUpdate = append(toUpdate, ProductUpdate{
			ID:        match.ID,
			Slug:      ref.Slug,
			Name:      ref.Name,
			Price:     ref.Price,
			CostPrice: ref.CostPrice,
			PromoCost: ref.PromoCost,
		})
	}
	return toCreate, toUpdate
}

// Reconcile builds the combined plan for both halves of the catalog.
func Reconcile(materialRef []model.RawMaterial, productRef []model.Product, materials []model.RawMaterial, products []model.Product) Plan {
	var plan Plan
	plan.CreateMaterials, plan.UpdateMaterials = ReconcileMaterials(materialRef, materials)
	plan.CreateProducts, plan.UpdateProducts = ReconcileProducts(productRef, products)
	return plan
}
