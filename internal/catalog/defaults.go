package catalog

import "github.com/gelacuca/gelo/internal/model"

// ProductKey pairs a flavor slug with its display label. The slug set below
// is the canonical key list for point-of-sale flavor maps.
type ProductKey struct {
	Key   string
	Label string
}

// ProductKeys lists every sellable flavor, in menu order.
var ProductKeys = []ProductKey{
	{Key: "coco", Label: "Coco"},
	{Key: "limao", Label: "Limão"},
	{Key: "maracuja", Label: "Maracujá"},
	{Key: "uva", Label: "Uva"},
	{Key: "ceu_azul", Label: "Céu Azul"},
	{Key: "danoninho", Label: "Danoninho"},
	{Key: "oreo", Label: "Oreo"},
	{Key: "pudim", Label: "Pudim"},
	{Key: "pacoquinha", Label: "Paçoquinha"},
	{Key: "ninho_nutella", Label: "Ninho c/ Nutella"},
	{Key: "ninho_morango", Label: "Ninho c/ Morango"},
	{Key: "choco_nutella", Label: "Choco c/ Nutella"},
	{Key: "choco_morango", Label: "Choco c/ Morango"},
}

// KeyLabel returns the display label for a flavor slug, falling back to the
// slug itself for unknown keys.
func KeyLabel(key string) string {
	for _, pk := range ProductKeys {
		if pk.Key == key {
			return pk.Label
		}
	}
	return key
}

// DefaultProducts is the fallback sale price list, used by the point of
// sale whenever the products collection is still empty.
func DefaultProducts() []model.Product {
	return []model.Product{
		{Slug: "coco", Name: "Coco", Price: 3.00},
		{Slug: "limao", Name: "Limão", Price: 3.00},
		{Slug: "maracuja", Name: "Maracujá", Price: 3.00},
		{Slug: "uva", Name: "Uva", Price: 3.00},
		{Slug: "ceu_azul", Name: "Céu Azul", Price: 3.50},
		{Slug: "danoninho", Name: "Danoninho", Price: 3.50},
		{Slug: "oreo", Name: "Oreo", Price: 4.00},
		{Slug: "pudim", Name: "Pudim", Price: 4.00},
		{Slug: "pacoquinha", Name: "Paçoquinha", Price: 3.50},
		{Slug: "ninho_nutella", Name: "Ninho c/ Nutella", Price: 5.00},
		{Slug: "ninho_morango", Name: "Ninho c/ Morango", Price: 5.00},
		{Slug: "choco_nutella", Name: "Choco c/ Nutella", Price: 5.00},
		{Slug: "choco_morango", Name: "Choco c/ Morango", Price: 5.00},
	}
}

// ReferenceMaterials is the raw material purchase list transcribed from the
// operation's costing sheet. It is the canonical reference that
// `gelo catalog sync` reconciles against the raw_materials collection.
func ReferenceMaterials() []model.RawMaterial {
	return []model.RawMaterial{
		{Name: "Leite", Unit: "1 L", Price: 4.00, PromoPrice: 4.00, Yield: 13, CostPerUnit: 0.31},
		{Name: "Leite condensado", Unit: "1 cx", Price: 3.28, PromoPrice: 3.39, Yield: 13, CostPerUnit: 0.25},
		{Name: "Creme de leite", Unit: "1 cx", Price: 1.99, PromoPrice: 1.80, Yield: 13, CostPerUnit: 0.15},
		{Name: "Saco de dindin", Unit: "1000 un", Price: 84.00, PromoPrice: 4.00, Yield: 1000, CostPerUnit: 0.08},
		{Name: "Liga", Unit: "100 un", Price: 2.00, PromoPrice: 2.00, Yield: 95, CostPerUnit: 0.02},
		{Name: "Liga Neutra", Unit: "1000 g", Price: 23.00, PromoPrice: 20.00, Yield: 800, CostPerUnit: 0.03},
		{Name: "Nutella", Unit: "650g", Price: 38.89, PromoPrice: 36.00, Yield: 60, CostPerUnit: 0.65},
		{Name: "Oreo", Unit: "1 pc", Price: 8.09, PromoPrice: 10.00, Yield: 30, CostPerUnit: 0.27},
		{Name: "Coco", Unit: "1000g", Price: 29.45, PromoPrice: 5.77, Yield: 87, CostPerUnit: 0.34},
		{Name: "Frisco", Unit: "2 pc", Price: 1.40, PromoPrice: 1.20, Yield: 13, CostPerUnit: 0.11},
		{Name: "Paçoquinha", Unit: "54 un", Price: 31.49, PromoPrice: 28.00, Yield: 63, CostPerUnit: 0.50},
		{Name: "Morango", Unit: "1000g", Price: 20.00, PromoPrice: 7.50, Yield: 60, CostPerUnit: 0.33},
		{Name: "Leite em pó", Unit: "1000 g", Price: 35.99, PromoPrice: 29.90, Yield: 109, CostPerUnit: 0.33},
		{Name: "Chocolate em pó", Unit: "2000g", Price: 29.00, PromoPrice: 28.00, Yield: 221, CostPerUnit: 0.13},
		{Name: "Adesivo", Unit: "570", Price: 39.00, PromoPrice: 3.00, Yield: 570, CostPerUnit: 0.07},
		{Name: "Saco Pack", Unit: "300 un", Price: 28.00, PromoPrice: 26.77, Yield: 300, CostPerUnit: 0.09},
		{Name: "Essên. Baunilha", Unit: "960 ml", Price: 12.00, PromoPrice: 10.00, Yield: 768, CostPerUnit: 0.02},
		{Name: "Açucar cristal", Unit: "1000 g", Price: 4.00, PromoPrice: 4.00, Yield: 80, CostPerUnit: 0.05},
		{Name: "Ovo", Unit: "30 un", Price: 15.00, PromoPrice: 9.00, Yield: 360, CostPerUnit: 0.04},
		{Name: "Blue Ice", Unit: "1000 g", Price: 27.35, PromoPrice: 23.00, Yield: 300, CostPerUnit: 0.09},
		{Name: "Maracujá", Unit: "1", Price: 2.25, PromoPrice: 1.50, Yield: 13, CostPerUnit: 0.17},
	}
}

// ReferenceProducts is the per-flavor cost and sale price list from the
// costing sheet, keyed by slug for reconciliation against products.
func ReferenceProducts() []model.Product {
	costs := []struct {
		slug      string
		costPrice float64
		promoCost float64
		price     float64
	}{
		{"coco", 1.25, 0.83, 4.00},
		{"limao", 1.02, 0.85, 4.00},
		{"maracuja", 1.25, 1.02, 4.00},
		{"uva", 1.02, 0.85, 3.00},
		{"ceu_azul", 1.01, 0.84, 3.00},
		{"danoninho", 1.02, 0.85, 3.00},
		{"oreo", 1.32, 1.22, 5.00},
		{"pudim", 1.29, 1.08, 5.00},
		{"pacoquinha", 1.42, 1.26, 5.00},
		{"ninho_nutella", 1.89, 1.64, 5.00},
		{"ninho_morango", 1.58, 1.16, 5.00},
		{"choco_nutella", 1.69, 1.49, 5.00},
		{"choco_morango", 1.38, 1.01, 5.00},
	}

	products := make([]model.Product, 0, len(costs))
	for _, c := range costs {
		products = append(products, model.Product{
			Slug:      c.slug,
			Name:      KeyLabel(c.slug),
			Price:     c.price,
			CostPrice: c.costPrice,
			PromoCost: c.promoCost,
		})
	}
	return products
}
