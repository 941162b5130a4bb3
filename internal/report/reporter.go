// Package report partitions transaction snapshots into fixed time buckets
// and sums revenue, expense and profit per bucket.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/gelacuca/gelo/internal/model"
)

// Range selects the reporting window.
type Range string

// Supported reporting windows.
const (
	// RangeWeek covers the last 7 calendar days, including today.
	RangeWeek Range = "week"
	// RangeMonth covers the last 30 calendar days, including today.
	RangeMonth Range = "month"
	// RangeYear covers the last 12 calendar months, including this one.
	RangeYear Range = "year"
)

// ParseRange validates a user-supplied range name.
func ParseRange(s string) (Range, error) {
	switch Range(s) {
	case RangeWeek, RangeMonth, RangeYear:
		return Range(s), nil
	default:
		return "", fmt.Errorf("invalid range %q (want week, month or year)", s)
	}
}

// TimeBucket is one fixed time slice of a report: a single calendar day for
// week/month ranges, a single calendar month for the year range. Buckets are
// owned by the Build call that produced them and are never mutated after.
type TimeBucket struct {
	Label   string
	Date    string // YYYY-MM-DD for day buckets, YYYY-MM for month buckets
	Revenue float64
	Expense float64
	Profit  float64
}

// Totals aggregates the whole filtered window.
type Totals struct {
	Revenue float64
	Expense float64
	Balance float64
}

// FlavorCount ranks one flavor by the quantity sold in the window.
type FlavorCount struct {
	Name  string
	Count int
}

// Report is the derived dashboard view for one window.
type Report struct {
	Range      Range
	Cutoff     string
	Buckets    []TimeBucket
	TopFlavors []FlavorCount
	Totals     Totals
}

// topFlavorCount limits the flavor ranking, matching the dashboard's pie chart.
const topFlavorCount = 5

// Build computes the report for the given snapshot and window anchored on
// now. It is a pure function: given the same snapshot, range and now it
// always produces the same report, and it holds no state between calls.
//
// The window cutoff is the local midnight of now minus 6 days, 29 days or 11
// months; a record is included iff its date compares >= the cutoff date
// string. The bucket sequence is always fixed-length and contiguous (7, 30
// or 12 buckets), with zero sums where nothing matched.
func Build(orders []model.Order, expenses []model.Expense, rng Range, now time.Time) Report {
	start := startOfDay(now)
	switch rng {
	case RangeWeek:
		start = start.AddDate(0, 0, -6)
	case RangeMonth:
		start = start.AddDate(0, 0, -29)
	case RangeYear:
		start = start.AddDate(0, -11, 0)
	}
	cutoff := start.Format(model.DateLayout)

	var filteredOrders []model.Order
	for _, o := range orders {
		if o.Date >= cutoff {
			filteredOrders = append(filteredOrders, o)
		}
	}

	var filteredExpenses []model.Expense
	for _, e := range expenses {
		if e.Date >= cutoff {
			filteredExpenses = append(filteredExpenses, e)
		}
	}

	rep := Report{Range: rng, Cutoff: cutoff}

	for _, o := range filteredOrders {
		rep.Totals.Revenue += o.Total
	}
	for _, e := range filteredExpenses {
		rep.Totals.Expense += e.Amount
	}
	rep.Totals.Balance = rep.Totals.Revenue - rep.Totals.Expense

	if rng == RangeYear {
		rep.Buckets = monthBuckets(filteredOrders, filteredExpenses, start)
	} else {
		days := 7
		if rng == RangeMonth {
			days = 30
		}
		rep.Buckets = dayBuckets(filteredOrders, filteredExpenses, start, days)
	}

	rep.TopFlavors = topFlavors(filteredOrders)
	return rep
}

// dayBuckets produces one bucket per calendar day, chronological from start.
func dayBuckets(orders []model.Order, expenses []model.Expense, start time.Time, days int) []TimeBucket {
	buckets := make([]TimeBucket, 0, days)
	for i := 0; i < days; i++ {
		d := start.AddDate(0, 0, i)
		date := d.Format(model.DateLayout)

		b := TimeBucket{Label: d.Format("02/01"), Date: date}
		for _, o := range orders {
			if o.Date == date {
				b.Revenue += o.Total
			}
		}
		for _, e := range expenses {
			if e.Date == date {
				b.Expense += e.Amount
			}
		}
		b.Profit = b.Revenue - b.Expense
		buckets = append(buckets, b)
	}
	return buckets
}

// monthBuckets produces exactly 12 buckets, one per calendar month starting
// at the cutoff month. Records are assigned by YYYY-MM prefix match, so each
// filtered record lands in exactly one bucket.
func monthBuckets(orders []model.Order, expenses []model.Expense, start time.Time) []TimeBucket {
	buckets := make([]TimeBucket, 0, 12)
	for i := 0; i < 12; i++ {
		m := time.Date(start.Year(), start.Month()+time.Month(i), 1, 0, 0, 0, 0, start.Location())
		prefix := m.Format("2006-01")

		b := TimeBucket{Label: monthLabel(m), Date: prefix}
		for _, o := range orders {
			if strings.HasPrefix(o.Date, prefix) {
				b.Revenue += o.Total
			}
		}
		for _, e := range expenses {
			if strings.HasPrefix(e.Date, prefix) {
				b.Expense += e.Amount
			}
		}
		b.Profit = b.Revenue - b.Expense
		buckets = append(buckets, b)
	}
	return buckets
}

// topFlavors sums quantities per flavor across the filtered orders and
// returns the five best sellers. Ties keep the first-encountered flavor
// ahead: accumulation preserves encounter order and the sort is stable.
func topFlavors(orders []model.Order) []FlavorCount {
	counts := make(map[string]int)
	var keys []string
	for _, o := range orders {
		for _, key := range sortedFlavorKeys(o.Flavors) {
			if _, seen := counts[key]; !seen {
				keys = append(keys, key)
			}
			counts[key] += o.Flavors[key]
		}
	}

	ranked := make([]FlavorCount, 0, len(keys))
	for _, key := range keys {
		ranked = append(ranked, FlavorCount{
			Name:  strings.ReplaceAll(key, "_", " "),
			Count: counts[key],
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > topFlavorCount {
		ranked = ranked[:topFlavorCount]
	}
	return ranked
}

// sortedFlavorKeys gives a deterministic encounter order for the flavors of
// a single order; Go map iteration order would otherwise make the tie-break
// nondeterministic.
func sortedFlavorKeys(flavors map[string]int) []string {
	keys := make([]string, 0, len(flavors))
	for key := range flavors {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// startOfDay normalizes to local midnight so date-string comparisons are
// unaffected by the time of day the report runs.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// monthLabel renders a short pt-BR month plus two-digit year, e.g. "out/24".
func monthLabel(t time.Time) string {
	months := [...]string{"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"}
	return fmt.Sprintf("%s/%02d", months[t.Month()-1], t.Year()%100)
}
