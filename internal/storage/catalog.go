package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"

	"github.com/gelacuca/gelo/internal/catalog"
	"github.com/gelacuca/gelo/internal/common"
	"github.com/gelacuca/gelo/internal/model"
)

// GetProducts returns a snapshot of the products collection in menu order.
func (s *SQLiteStorage) GetProducts(ctx context.Context) ([]model.Product, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, slug, name, price, cost_price, promo_cost
		FROM products
		ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Slug, &p.Name, &p.Price, &p.CostPrice, &p.PromoCost); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}
	return products, nil
}

// UpdateProduct rewrites the priced fields of one existing product,
// addressed by its document id. Products are only ever price-edited, never
// deleted; there is no product delete counterpart.
func (s *SQLiteStorage) UpdateProduct(ctx context.Context, product *model.Product) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if product == nil {
		return fmt.Errorf("product cannot be nil")
	}
	if err := validateString(product.ID, "product id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE products
		SET price = ?, cost_price = ?, promo_cost = ?
		WHERE id = ?`,
		product.Price, product.CostPrice, product.PromoCost, product.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("product %s: %w", product.ID, common.ErrNotFound)
	}

	slog.Info("updated product", "id", product.ID, "slug", product.Slug, "price", product.Price)
	return nil
}

// GetRawMaterials returns a snapshot of the raw_materials collection.
func (s *SQLiteStorage) GetRawMaterials(ctx context.Context) ([]model.RawMaterial, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, unit, price, promo_price, yield, cost_per_unit
		FROM raw_materials
		ORDER BY name COLLATE NOCASE`)
	if err != nil {
		return nil, fmt.Errorf("failed to query raw materials: %w", err)
	}
	defer rows.Close()

	var materials []model.RawMaterial
	for rows.Next() {
		var m model.RawMaterial
		if err := rows.Scan(&m.ID, &m.Name, &m.Unit, &m.Price, &m.PromoPrice, &m.Yield, &m.CostPerUnit); err != nil {
			return nil, fmt.Errorf("failed to scan raw material: %w", err)
		}
		materials = append(materials, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating raw materials: %w", err)
	}
	return materials, nil
}

// SaveRawMaterial appends a manually entered raw material, deriving the
// cost per unit when the caller left it unset.
func (s *SQLiteStorage) SaveRawMaterial(ctx context.Context, material *model.RawMaterial) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if material == nil {
		return fmt.Errorf("material cannot be nil")
	}
	if err := validateString(material.Name, "material name"); err != nil {
		return err
	}

	if material.ID == "" {
		material.ID = uuid.NewString()
	}
	if material.CostPerUnit == 0 {
		material.CostPerUnit = model.UnitCost(material.Price, material.Yield)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO raw_materials (id, name, unit, price, promo_price, yield, cost_per_unit)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		material.ID, material.Name, material.Unit, material.Price,
		material.PromoPrice, material.Yield, material.CostPerUnit,
	)
	if err != nil {
		return fmt.Errorf("failed to save raw material: %w", err)
	}

	slog.Info("saved raw material", "id", material.ID, "name", material.Name)
	return nil
}

// DeleteRawMaterial removes one raw material document. Deletion only ever
// happens on explicit user action; products are never deleted.
func (s *SQLiteStorage) DeleteRawMaterial(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "material id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM raw_materials WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete raw material: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("raw material %s: %w", id, common.ErrNotFound)
	}

	slog.Info("deleted raw material", "id", id)
	return nil
}

// ApplyCatalogPlan commits a reconciliation plan in a single transaction.
// The batch is all-or-nothing: any failure rolls back every operation and
// is reported as one error for the whole plan.
func (s *SQLiteStorage) ApplyCatalogPlan(ctx context.Context, plan catalog.Plan) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if plan.Empty() {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin batch: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, m := range plan.CreateMaterials {
		id := m.ID
		if id == "" {
			id = uuid.NewString()
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO raw_materials (id, name, unit, price, promo_price, yield, cost_per_unit)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			id, m.Name, m.Unit, m.Price, m.PromoPrice, m.Yield, m.CostPerUnit,
		); err != nil {
			return fmt.Errorf("failed to create raw material %q: %w", m.Name, err)
		}
	}

	for _, u := range plan.UpdateMaterials {
		if _, err := tx.ExecContext(ctx, `
			UPDATE raw_materials
			SET unit = ?, price = ?, promo_price = ?, yield = ?, cost_per_unit = ?
			WHERE id = ?`,
			u.Unit, u.Price, u.PromoPrice, u.Yield, u.CostPerUnit, u.ID,
		); err != nil {
			return fmt.Errorf("failed to update raw material %s: %w", u.ID, err)
		}
	}

	for _, p := range plan.CreateProducts {
		id := p.ID
		if id == "" {
			id = uuid.NewString()
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO products (id, slug, name, price, cost_price, promo_cost)
			VALUES (?, ?, ?, ?, ?, ?)`,
			id, p.Slug, p.Name, p.Price, p.CostPrice, p.PromoCost,
		); err != nil {
			var sqliteErr sqlite3.Error
			if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
				return fmt.Errorf("product %q: %w", p.Slug, common.ErrDuplicateEntry)
			}
			return fmt.Errorf("failed to create product %q: %w", p.Slug, err)
		}
	}

	for _, u := range plan.UpdateProducts {
		if _, err := tx.ExecContext(ctx, `
			UPDATE products
			SET slug = ?, name = ?, price = ?, cost_price = ?, promo_cost = ?
			WHERE id = ?`,
			u.Slug, u.Name, u.Price, u.CostPrice, u.PromoCost, u.ID,
		); err != nil {
			return fmt.Errorf("failed to update product %s: %w", u.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit catalog plan: %w", err)
	}

	slog.Info("applied catalog plan", "created", plan.Creates(), "updated", plan.Updates())
	return nil
}
