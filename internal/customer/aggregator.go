// Package customer folds order history into per-customer profiles.
package customer

import (
	"sort"
	"strings"

	"github.com/gelacuca/gelo/internal/model"
)

// Profile is the derived roll-up for one customer identity. It is a pure
// view: recomputed from scratch on every Aggregate call, never persisted.
type Profile struct {
	Name          string
	Phone         string
	Address       string
	LastOrderDate string
	History       []model.Order
	TotalSpent    float64
	OrderCount    int
}

// Aggregate folds an unordered order snapshot into one profile per distinct
// customer, sorted by total spent descending (best customers first).
//
// Identity is the trimmed, case-folded customer name; orders whose name
// trims to empty are skipped. Orders are processed oldest first so that the
// recorded phone and address are the chronologically latest non-empty
// values and the last order date is the true maximum. The first-seen casing
// of the name becomes the display name.
func Aggregate(orders []model.Order) []Profile {
	sorted := make([]model.Order, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})

	index := make(map[string]int)
	var profiles []Profile

	for _, order := range sorted {
		name := strings.TrimSpace(order.CustomerName)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)

		i, seen := index[key]
		if !seen {
			index[key] = len(profiles)
			profiles = append(profiles, Profile{
				Name:          name,
				Phone:         order.Phone,
				Address:       order.Address,
				TotalSpent:    order.Total,
				OrderCount:    1,
				LastOrderDate: order.Date,
				History:       []model.Order{order},
			})
			continue
		}

		p := &profiles[i]
		p.TotalSpent += order.Total
		p.OrderCount++
		p.LastOrderDate = order.Date
		// An empty value never erases a previously captured one.
		if order.Phone != "" {
			p.Phone = order.Phone
		}
		if order.Address != "" {
			p.Address = order.Address
		}
		p.History = append(p.History, order)
	}

	sort.SliceStable(profiles, func(i, j int) bool {
		return profiles[i].TotalSpent > profiles[j].TotalSpent
	})
	return profiles
}

// Search filters profiles by a name substring or phone fragment, the same
// match the customer screen's search box applies.
func Search(profiles []Profile, term string) []Profile {
	if term == "" {
		return profiles
	}
	needle := strings.ToLower(term)

	var matched []Profile
	for _, p := range profiles {
		if strings.Contains(strings.ToLower(p.Name), needle) || strings.Contains(p.Phone, term) {
			matched = append(matched, p)
		}
	}
	return matched
}

// Find returns the profile whose identity matches name, or nil.
func Find(profiles []Profile, name string) *Profile {
	key := strings.ToLower(strings.TrimSpace(name))
	for i := range profiles {
		if strings.ToLower(profiles[i].Name) == key {
			return &profiles[i]
		}
	}
	return nil
}
