package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gelacuca/gelo/internal/model"
)

// SaveOrder appends a new order document. An identifier is assigned at
// creation when the order does not carry one.
func (s *SQLiteStorage) SaveOrder(ctx context.Context, order *model.Order) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if order == nil {
		return fmt.Errorf("order cannot be nil")
	}
	if err := validateString(order.Date, "order date"); err != nil {
		return err
	}

	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if order.CreatedAt == 0 {
		order.CreatedAt = time.Now().UnixMilli()
	}

	flavors := order.Flavors
	if flavors == nil {
		flavors = map[string]int{}
	}
	flavorsJSON, err := json.Marshal(flavors)
	if err != nil {
		return fmt.Errorf("failed to encode flavors: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO orders (id, date, customer_name, phone, address, flavors, delivery_fee, discount, total, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		order.ID, order.Date, order.CustomerName, order.Phone, order.Address,
		string(flavorsJSON), order.DeliveryFee, order.Discount, order.Total, order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}

	slog.Debug("saved order", "id", order.ID, "date", order.Date, "total", order.Total)
	return nil
}

// GetOrders returns a snapshot of the orders collection, newest date first.
func (s *SQLiteStorage) GetOrders(ctx context.Context) ([]model.Order, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, date, customer_name, phone, address, flavors, delivery_fee, discount, total, created_at
		FROM orders
		ORDER BY date DESC, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	slog.Debug("retrieved orders", "count", len(orders))
	return orders, nil
}

func scanOrder(rows *sql.Rows) (model.Order, error) {
	var order model.Order
	var flavorsJSON string

	if err := rows.Scan(
		&order.ID, &order.Date, &order.CustomerName, &order.Phone, &order.Address,
		&flavorsJSON, &order.DeliveryFee, &order.Discount, &order.Total, &order.CreatedAt,
	); err != nil {
		return model.Order{}, fmt.Errorf("failed to scan order: %w", err)
	}

	order.Flavors = map[string]int{}
	if flavorsJSON != "" {
		if err := json.Unmarshal([]byte(flavorsJSON), &order.Flavors); err != nil {
			return model.Order{}, fmt.Errorf("failed to decode flavors for order %s: %w", order.ID, err)
		}
	}
	return order, nil
}
