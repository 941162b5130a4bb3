package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gelacuca/gelo/internal/service"
)

// ImportDocuments commits a sanitized legacy batch in a single transaction.
// The batch is atomic: a failure on any document rolls back the whole
// import and surfaces as one error. Progress, when non-nil, is called once
// per document staged into the transaction.
func (s *SQLiteStorage) ImportDocuments(ctx context.Context, docs []service.Document, progress func()) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if len(docs) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin import batch: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, doc := range docs {
		switch doc.Collection {
		case service.CollectionOrders:
			flavorsJSON, err := json.Marshal(flavorsField(doc.Fields["flavors"]))
			if err != nil {
				return fmt.Errorf("failed to encode flavors: %w", err)
			}
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO orders (id, date, customer_name, phone, address, flavors, delivery_fee, discount, total, created_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				uuid.NewString(),
				stringField(doc.Fields["date"]),
				stringField(doc.Fields["customerName"]),
				stringField(doc.Fields["phone"]),
				stringField(doc.Fields["address"]),
				string(flavorsJSON),
				floatField(doc.Fields["deliveryFee"]),
				floatField(doc.Fields["discount"]),
				floatField(doc.Fields["total"]),
				intField(doc.Fields["createdAt"]),
			); err != nil {
				return fmt.Errorf("failed to import order: %w", err)
			}

		case service.CollectionExpenses:
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO expenses (id, date, description, author, amount, created_at)
				VALUES (?, ?, ?, ?, ?, ?)`,
				uuid.NewString(),
				stringField(doc.Fields["date"]),
				stringField(doc.Fields["description"]),
				stringField(doc.Fields["author"]),
				floatField(doc.Fields["amount"]),
				intField(doc.Fields["createdAt"]),
			); err != nil {
				return fmt.Errorf("failed to import expense: %w", err)
			}

		default:
			return fmt.Errorf("unknown target collection %q", doc.Collection)
		}

		if progress != nil {
			progress()
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import batch: %w", err)
	}

	slog.Info("imported legacy documents", "count", len(docs))
	return nil
}

func stringField(v any) string {
	s, _ := v.(string)
	return s
}

func floatField(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}

func intField(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	default:
		return 0
	}
}

func flavorsField(v any) map[string]int {
	switch m := v.(type) {
	case map[string]int:
		return m
	case map[string]any:
		flavors := make(map[string]int, len(m))
		for k, qty := range m {
			flavors[k] = int(floatField(qty))
		}
		return flavors
	default:
		return map[string]int{}
	}
}
