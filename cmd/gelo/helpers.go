package main

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/gelacuca/gelo/internal/config"
	"github.com/gelacuca/gelo/internal/model"
	"github.com/gelacuca/gelo/internal/service"
	"github.com/gelacuca/gelo/internal/storage"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// parseFlavorFlags turns repeated key=qty flags into a flavor map.
func parseFlavorFlags(flags []string) (map[string]int, error) {
	flavors := make(map[string]int, len(flags))
	for _, flag := range flags {
		key, qtyStr, found := strings.Cut(flag, "=")
		if !found {
			return nil, fmt.Errorf("invalid flavor %q (want key=quantity)", flag)
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("invalid flavor %q (empty key)", flag)
		}

		qty, err := strconv.Atoi(strings.TrimSpace(qtyStr))
		if err != nil {
			return nil, fmt.Errorf("invalid quantity in %q: %w", flag, err)
		}
		if qty < 0 {
			return nil, fmt.Errorf("invalid quantity in %q: must not be negative", flag)
		}
		if qty > 0 {
			flavors[key] = qty
		}
	}
	return flavors, nil
}

// sanitizeAmount coerces the malformed numeric inputs the calculator does
// not accept (NaN, infinities, negatives) to zero before they reach it.
func sanitizeAmount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// parseDateFlag validates a --date value, defaulting to today.
func parseDateFlag(value string) (string, error) {
	if value == "" {
		return time.Now().Format(model.DateLayout), nil
	}
	if _, err := time.Parse(model.DateLayout, value); err != nil {
		return "", fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", value, err)
	}
	return value, nil
}
