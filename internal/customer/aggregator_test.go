package customer

import (
	"testing"

	"github.com/gelacuca/gelo/internal/model"
)

func TestAggregateMergesByNormalizedName(t *testing.T) {
	orders := []model.Order{
		{CustomerName: "ana", Date: "2024-01-01", Total: 10, Phone: "1"},
		{CustomerName: "Ana ", Date: "2024-01-05", Total: 20, Phone: ""},
	}

	profiles := Aggregate(orders)

	if len(profiles) != 1 {
		t.Fatalf("got %d profiles, want 1", len(profiles))
	}
	p := profiles[0]
	if p.Name != "ana" {
		t.Errorf("display name = %q, want first-seen casing %q", p.Name, "ana")
	}
	if p.TotalSpent != 30 {
		t.Errorf("totalSpent = %v, want 30", p.TotalSpent)
	}
	if p.OrderCount != 2 {
		t.Errorf("orderCount = %d, want 2", p.OrderCount)
	}
	if p.Phone != "1" {
		t.Errorf("phone = %q, want %q (empty value must not overwrite)", p.Phone, "1")
	}
	if p.LastOrderDate != "2024-01-05" {
		t.Errorf("lastOrderDate = %q, want 2024-01-05", p.LastOrderDate)
	}
	if len(p.History) != 2 {
		t.Errorf("history length = %d, want 2", len(p.History))
	}
}

func TestAggregateSkipsEmptyNames(t *testing.T) {
	orders := []model.Order{
		{CustomerName: "", Date: "2024-01-01", Total: 10},
		{CustomerName: "   ", Date: "2024-01-02", Total: 20},
		{CustomerName: "Bia", Date: "2024-01-03", Total: 5},
	}

	profiles := Aggregate(orders)

	if len(profiles) != 1 || profiles[0].Name != "Bia" {
		t.Fatalf("profiles = %+v, want only Bia", profiles)
	}
}

func TestAggregateLatestContactWins(t *testing.T) {
	// Input is deliberately out of chronological order; the fold must sort
	// by date first so the newest non-empty contact survives.
	orders := []model.Order{
		{CustomerName: "Carla", Date: "2024-03-10", Phone: "9999", Address: "Rua Nova 20", Total: 5},
		{CustomerName: "carla", Date: "2024-01-02", Phone: "1111", Address: "Rua Velha 1", Total: 5},
		{CustomerName: "CARLA", Date: "2024-05-01", Phone: "", Address: "", Total: 5},
	}

	profiles := Aggregate(orders)

	if len(profiles) != 1 {
		t.Fatalf("got %d profiles, want 1", len(profiles))
	}
	p := profiles[0]
	if p.Name != "carla" {
		t.Errorf("display name = %q, want oldest order's casing %q", p.Name, "carla")
	}
	if p.Phone != "9999" {
		t.Errorf("phone = %q, want 9999", p.Phone)
	}
	if p.Address != "Rua Nova 20" {
		t.Errorf("address = %q, want Rua Nova 20", p.Address)
	}
	if p.LastOrderDate != "2024-05-01" {
		t.Errorf("lastOrderDate = %q, want 2024-05-01", p.LastOrderDate)
	}
}

func TestAggregateSortsBySpendDescending(t *testing.T) {
	orders := []model.Order{
		{CustomerName: "Ana", Date: "2024-01-01", Total: 10},
		{CustomerName: "Bia", Date: "2024-01-02", Total: 50},
		{CustomerName: "Cris", Date: "2024-01-03", Total: 30},
	}

	profiles := Aggregate(orders)

	want := []string{"Bia", "Cris", "Ana"}
	for i, name := range want {
		if profiles[i].Name != name {
			t.Errorf("profiles[%d].Name = %q, want %q", i, profiles[i].Name, name)
		}
	}
}

func TestAggregateStableTies(t *testing.T) {
	// Equal spend keeps encounter order (oldest first).
	orders := []model.Order{
		{CustomerName: "Ana", Date: "2024-01-01", Total: 10},
		{CustomerName: "Bia", Date: "2024-01-02", Total: 10},
	}

	profiles := Aggregate(orders)

	if profiles[0].Name != "Ana" || profiles[1].Name != "Bia" {
		t.Errorf("tie order = [%q, %q], want [Ana, Bia]", profiles[0].Name, profiles[1].Name)
	}
}

func TestAggregateEmptySnapshot(t *testing.T) {
	if got := Aggregate(nil); len(got) != 0 {
		t.Errorf("Aggregate(nil) = %+v, want empty", got)
	}
}

func TestSearch(t *testing.T) {
	profiles := Aggregate([]model.Order{
		{CustomerName: "Ana Souza", Date: "2024-01-01", Phone: "8899-1122", Total: 10},
		{CustomerName: "Beatriz", Date: "2024-01-02", Phone: "7777-0000", Total: 20},
	})

	tests := []struct {
		name string
		term string
		want int
	}{
		{name: "empty term returns all", term: "", want: 2},
		{name: "name substring case-insensitive", term: "souza", want: 1},
		{name: "phone fragment", term: "7777", want: 1},
		{name: "no match", term: "zzz", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Search(profiles, tt.term); len(got) != tt.want {
				t.Errorf("Search(%q) returned %d profiles, want %d", tt.term, len(got), tt.want)
			}
		})
	}
}

func TestFind(t *testing.T) {
	profiles := Aggregate([]model.Order{
		{CustomerName: "Ana", Date: "2024-01-01", Total: 10},
	})

	if p := Find(profiles, "  ANA "); p == nil || p.Name != "Ana" {
		t.Errorf("Find normalized lookup failed: %+v", p)
	}
	if p := Find(profiles, "Bia"); p != nil {
		t.Errorf("Find for unknown name = %+v, want nil", p)
	}
}
