// Package service defines the contracts between the core logic and its
// collaborators.
package service

import (
	"context"

	"github.com/gelacuca/gelo/internal/catalog"
	"github.com/gelacuca/gelo/internal/model"
)

// Document is one record bound for a named collection, expressed as a
// mapping of field name to JSON-representable value. Every field is always
// present with a defined value; the persisted format carries no "no value"
// markers.
type Document struct {
	Fields     map[string]any
	Collection string
}

// Collection names for the three logical document sets.
const (
	CollectionOrders       = "orders"
	CollectionExpenses     = "expenses"
	CollectionProducts     = "products"
	CollectionRawMaterials = "raw_materials"
)

// Storage is the persistence collaborator. Reads hand the core an immutable
// point-in-time snapshot of a collection; writes are either single-document
// appends or atomic batches. A batch either commits wholesale or fails
// wholesale; there is no per-item failure reporting.
type Storage interface {
	// Order operations
	SaveOrder(ctx context.Context, order *model.Order) error
	GetOrders(ctx context.Context) ([]model.Order, error)

	// Expense operations
	SaveExpense(ctx context.Context, expense *model.Expense) error
	GetExpenses(ctx context.Context) ([]model.Expense, error)

	// Catalog operations
	GetProducts(ctx context.Context) ([]model.Product, error)
	UpdateProduct(ctx context.Context, product *model.Product) error
	GetRawMaterials(ctx context.Context) ([]model.RawMaterial, error)
	SaveRawMaterial(ctx context.Context, material *model.RawMaterial) error
	DeleteRawMaterial(ctx context.Context, id string) error

	// Batch operations. Progress, when non-nil, is invoked once per
	// document staged; the batch still commits all-or-nothing.
	ApplyCatalogPlan(ctx context.Context, plan catalog.Plan) error
	ImportDocuments(ctx context.Context, docs []Document, progress func()) error

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}
