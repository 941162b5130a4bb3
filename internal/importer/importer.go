// Package importer maps exported legacy history into the document shapes
// the rest of the system consumes.
package importer

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/gelacuca/gelo/internal/model"
	"github.com/gelacuca/gelo/internal/service"
)

// RawRecord mirrors one row of the exported legacy JSON. Orders and
// expenses share the file; the Type tag discriminates them.
type RawRecord struct {
	Flavors      map[string]int `json:"flavors"`
	Type         string         `json:"type"`
	Date         string         `json:"date"`
	CustomerName string         `json:"customerName"`
	Phone        string         `json:"phone"`
	Address      string         `json:"address"`
	Description  string         `json:"description"`
	Author       string         `json:"author"`
	DeliveryFee  float64        `json:"deliveryFee"`
	Discount     float64        `json:"discount"`
	Total        float64        `json:"total"`
	Amount       float64        `json:"amount"`
	CreatedAt    float64        `json:"createdAt"`
}

// Stats counts the outcome of a sanitation pass.
type Stats struct {
	Prepared int
	Skipped  int
	Repaired int
}

// Load reads a legacy export file.
func Load(path string) ([]RawRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read legacy export: %w", err)
	}

	var records []RawRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse legacy export: %w", err)
	}
	return records, nil
}

// Sanitize repairs each record locally and routes it to its target
// collection. One bad record never aborts the batch: records with an
// unknown type tag are counted as skipped and the pass continues.
//
// Repairs applied silently: a missing or non-finite creation timestamp is
// replaced with the current time, and an order without a flavor map gets an
// empty one. The produced documents contain every field with a defined
// value, so the destination format never sees null or absent markers.
func Sanitize(records []RawRecord, now func() time.Time) ([]service.Document, Stats) {
	if now == nil {
		now = time.Now
	}

	var docs []service.Document
	var stats Stats

	for _, rec := range records {
		var createdAt int64
		if rec.CreatedAt <= 0 || math.IsNaN(rec.CreatedAt) || math.IsInf(rec.CreatedAt, 0) {
			createdAt = now().UnixMilli()
			stats.Repaired++
			slog.Debug("repaired missing creation timestamp", "date", rec.Date)
		} else {
			createdAt = int64(rec.CreatedAt)
		}

		switch rec.Type {
		case model.TypeOrder:
			flavors := rec.Flavors
			if flavors == nil {
				flavors = map[string]int{}
				stats.Repaired++
			}
			docs = append(docs, service.Document{
				Collection: service.CollectionOrders,
				Fields: map[string]any{
					"date":         rec.Date,
					"customerName": rec.CustomerName,
					"phone":        rec.Phone,
					"address":      rec.Address,
					"flavors":      flavors,
					"deliveryFee":  rec.DeliveryFee,
					"discount":     rec.Discount,
					"total":        rec.Total,
					"type":         model.TypeOrder,
					"createdAt":    createdAt,
				},
			})
			stats.Prepared++

		case model.TypeExpense:
			docs = append(docs, service.Document{
				Collection: service.CollectionExpenses,
				Fields: map[string]any{
					"date":        rec.Date,
					"description": rec.Description,
					"author":      rec.Author,
					"amount":      rec.Amount,
					"type":        model.TypeExpense,
					"createdAt":   createdAt,
				},
			})
			stats.Prepared++

		default:
			stats.Skipped++
			slog.Warn("skipping legacy record with unknown type", "type", rec.Type, "date", rec.Date)
		}
	}

	return docs, stats
}
