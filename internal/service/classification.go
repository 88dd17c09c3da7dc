package service

import (
	"math"
	"sort"
	"time"
)

// Inventory classification core. Pure functions over a snapshot of items and
// their consumption ledger, so the engine is testable without a database.

// ABC cut-offs over the cumulative usage-value fraction.
const (
	abcCutA = 0.80
	abcCutB = 0.95
)

// XYZ cut-offs over the coefficient of variation of monthly demand.
const (
	xyzCutX = 0.2
	xyzCutY = 0.5
)

// ClassItemInput is the snapshot of one active warehouse item.
type ClassItemInput struct {
	ID          uint
	Cost        float64 // average_cost, else unit_cost, else 0
	LeadTime    int     // days
	SafetyStock int     // stored value; 0 triggers the fallback
}

// ClassMovement is one consumption ledger row (OUT or ADJUST).
type ClassMovement struct {
	ItemID   uint
	Quantity int // signed; magnitude is what counts as demand
	Date     time.Time
}

// ItemClassification is the computed result for one item.
type ItemClassification struct {
	ItemID      uint
	ABCClass    string
	XYZClass    string
	SafetyStock int
	ROP         int
	UsageValue  float64
	AvgDaily    float64
}

// ComputeClassification runs the ABC/XYZ analysis and the reorder-point
// calculation over a trailing window of movements (callers filter to the last
// 12 months). Every division is guarded: items with no history land in class
// C/Z with zero reorder parameters rather than erroring out.
func ComputeClassification(items []ClassItemInput, movements []ClassMovement) []ItemClassification {
	type usage struct {
		total   int
		monthly map[string]int // "2006-01" → abs qty
	}
	usageByItem := make(map[uint]*usage, len(items))
	for _, it := range items {
		usageByItem[it.ID] = &usage{monthly: make(map[string]int)}
	}

	for _, m := range movements {
		u, ok := usageByItem[m.ItemID]
		if !ok {
			continue // inactive or deleted item
		}
		qty := m.Quantity
		if qty < 0 {
			qty = -qty
		}
		u.total += qty
		u.monthly[m.Date.Format("2006-01")] += qty
	}

	results := make([]ItemClassification, 0, len(items))
	totalValue := 0.0
	for _, it := range items {
		u := usageByItem[it.ID]
		value := float64(u.total) * it.Cost
		totalValue += value

		avgDaily := float64(u.total) / 365.0

		ss := it.SafetyStock
		if ss == 0 && avgDaily > 0 {
			ss = int(avgDaily * float64(it.LeadTime) * 0.5)
		}
		rop := int(math.Ceil(avgDaily*float64(it.LeadTime) + float64(ss)))

		results = append(results, ItemClassification{
			ItemID:      it.ID,
			XYZClass:    xyzClass(u.monthly),
			SafetyStock: ss,
			ROP:         rop,
			UsageValue:  value,
			AvgDaily:    avgDaily,
		})
	}

	// ABC: rank by descending usage value, classify on the cumulative fraction.
	// With zero total value every fraction is 0 and everything lands in A.
	order := make([]int, len(results))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return results[order[a]].UsageValue > results[order[b]].UsageValue
	})

	cumulative := 0.0
	for _, idx := range order {
		cumulative += results[idx].UsageValue
		pct := 0.0
		if totalValue > 0 {
			pct = cumulative / totalValue
		}
		switch {
		case pct <= abcCutA:
			results[idx].ABCClass = "A"
		case pct <= abcCutB:
			results[idx].ABCClass = "B"
		default:
			results[idx].ABCClass = "C"
		}
	}

	return results
}

// xyzClass maps demand regularity to X/Y/Z from the coefficient of variation
// of the monthly buckets. No history, a single bucket, or zero mean all mean
// we cannot claim regularity, so the item is Z.
func xyzClass(monthly map[string]int) string {
	if len(monthly) <= 1 {
		return "Z"
	}
	n := float64(len(monthly))
	sum := 0.0
	for _, qty := range monthly {
		sum += float64(qty)
	}
	mean := sum / n
	if mean == 0 {
		return "Z"
	}
	var sqDiff float64
	for _, qty := range monthly {
		d := float64(qty) - mean
		sqDiff += d * d
	}
	cv := math.Sqrt(sqDiff/(n-1)) / mean
	switch {
	case cv < xyzCutX:
		return "X"
	case cv < xyzCutY:
		return "Y"
	default:
		return "Z"
	}
}
