package model

import (
	"math"
	"testing"
)

func TestUnitCost(t *testing.T) {
	tests := []struct {
		name  string
		price float64
		yield int
		want  float64
	}{
		{name: "regular yield", price: 4.00, yield: 13, want: 4.00 / 13},
		{name: "single unit", price: 2.25, yield: 1, want: 2.25},
		{name: "zero yield falls back to one", price: 5.00, yield: 0, want: 5.00},
		{name: "negative yield falls back to one", price: 5.00, yield: -3, want: 5.00},
		{name: "zero price", price: 0, yield: 10, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UnitCost(tt.price, tt.yield)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("UnitCost(%v, %d) = %v, want %v", tt.price, tt.yield, got, tt.want)
			}
		})
	}
}

func TestProductMargins(t *testing.T) {
	p := Product{Slug: "oreo", Name: "Oreo", Price: 5.00, CostPrice: 1.32, PromoCost: 1.22}

	if got := p.Margin(); math.Abs(got-3.68) > 1e-9 {
		t.Errorf("Margin() = %v, want 3.68", got)
	}
	if got := p.PromoMargin(); math.Abs(got-3.78) > 1e-9 {
		t.Errorf("PromoMargin() = %v, want 3.78", got)
	}
}
