// Package pricing computes order totals from priced line items.
package pricing

import (
	"math"

	"github.com/gelacuca/gelo/internal/model"
)

// ComputeTotal prices an order from its flavor quantities against the
// product catalog, adds the delivery fee and subtracts the discount.
//
// A flavor with no catalog entry is priced at zero rather than rejected, so
// a catalog gap never blocks point-of-sale entry. Quantity keys that name no
// product are ignored. The result is floored at zero. Callers are expected
// to coerce non-finite fee, discount and quantity inputs to zero before
// calling; the calculator itself performs no validation and has no side
// effects.
func ComputeTotal(quantities map[string]int, deliveryFee, discount float64, catalog []model.Product) float64 {
	var subtotal float64
	for _, p := range catalog {
		if qty, ok := quantities[p.Slug]; ok {
			subtotal += float64(qty) * p.Price
		}
	}

	total := subtotal + deliveryFee - discount
	return math.Max(0, total)
}
