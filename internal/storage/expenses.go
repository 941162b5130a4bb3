package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gelacuca/gelo/internal/model"
)

// SaveExpense appends a new expense document.
func (s *SQLiteStorage) SaveExpense(ctx context.Context, expense *model.Expense) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if expense == nil {
		return fmt.Errorf("expense cannot be nil")
	}
	if err := validateString(expense.Date, "expense date"); err != nil {
		return err
	}

	if expense.ID == "" {
		expense.ID = uuid.NewString()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().UnixMilli()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO expenses (id, date, description, author, amount, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		expense.ID, expense.Date, expense.Description, expense.Author, expense.Amount, expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save expense: %w", err)
	}

	slog.Debug("saved expense", "id", expense.ID, "date", expense.Date, "amount", expense.Amount)
	return nil
}

// GetExpenses returns a snapshot of the expenses collection, newest date first.
func (s *SQLiteStorage) GetExpenses(ctx context.Context) ([]model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, date, description, author, amount, created_at
		FROM expenses
		ORDER BY date DESC, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	var expenses []model.Expense
	for rows.Next() {
		var e model.Expense
		if err := rows.Scan(&e.ID, &e.Date, &e.Description, &e.Author, &e.Amount, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expenses: %w", err)
	}

	slog.Debug("retrieved expenses", "count", len(expenses))
	return expenses, nil
}
