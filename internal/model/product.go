package model

// Product is a sellable flavor. Slug is the natural key used by the
// point-of-sale flavor map and by catalog reconciliation. Products are only
// ever price-edited, never deleted.
type Product struct {
	ID        string
	Slug      string
	Name      string
	Price     float64
	CostPrice float64
	PromoCost float64
}

// Margin returns the profit per unit sold at the regular production cost.
func (p *Product) Margin() float64 {
	return p.Price - p.CostPrice
}

// PromoMargin returns the profit per unit sold at the promotional cost.
func (p *Product) PromoMargin() float64 {
	return p.Price - p.PromoCost
}

// RawMaterial is a purchased production input. Name is the natural key and
// is matched case-insensitively during reconciliation.
type RawMaterial struct {
	ID          string
	Name        string
	Unit        string
	Price       float64
	PromoPrice  float64
	Yield       int
	CostPerUnit float64
}

// UnitCost derives the cost per produced unit from a purchase price and a
// yield count. A non-positive yield is treated as one unit.
func UnitCost(price float64, yield int) float64 {
	if yield <= 0 {
		yield = 1
	}
	return price / float64(yield)
}
