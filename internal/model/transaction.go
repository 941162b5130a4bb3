// Package model defines the document shapes held in the gelo collections.
package model

// Document type tags, carried over from the legacy spreadsheets.
const (
	// TypeOrder tags order documents.
	TypeOrder = "Pedido"
	// TypeExpense tags expense documents.
	TypeExpense = "Despesa"
)

// DateLayout is the calendar-day format used on every document. Dates are
// kept as strings in this form so range filtering reduces to lexicographic
// comparison, with no timezone handling past the initial formatting.
const DateLayout = "2006-01-02"

// Order is a single point-of-sale entry. Flavors maps product slug to the
// quantity sold; Total is computed at entry time and floored at zero.
type Order struct {
	Flavors      map[string]int
	ID           string
	Date         string
	CustomerName string
	Phone        string
	Address      string
	DeliveryFee  float64
	Discount     float64
	Total        float64
	CreatedAt    int64 // unix milliseconds
}

// Expense is a single logged outgoing payment.
type Expense struct {
	ID          string
	Date        string
	Description string
	Author      string
	Amount      float64
	CreatedAt   int64 // unix milliseconds
}
