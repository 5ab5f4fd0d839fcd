package services

import (
	"cost-intelligence-service/internal/domain"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// ComputeKPIs totals cost, counts orders and averages cost per km over records.
func ComputeKPIs(records []domain.MergedRecord) domain.KPIs {
	k := domain.KPIs{
		TotalCost:  decimal.Zero,
		OrderCount: len(records),
	}

	for _, r := range records {
		k.TotalCost = k.TotalCost.Add(r.TotalCost)
		if r.Incomplete {
			k.IncompleteOrders++
		}
		if !r.HasCostPerDistance {
			k.UndefinedCostPerDistance++
		}
	}

	k.MeanCostPerDistance, k.HasMeanCostPerDistance = meanCostPerDistance(records)
	return k
}

// meanCostPerDistance averages the defined cost-per-distance values.
// It reports false when no record has one.
func meanCostPerDistance(records []domain.MergedRecord) (decimal.Decimal, bool) {
	sum := decimal.Zero
	n := int64(0)
	for _, r := range records {
		if !r.HasCostPerDistance {
			continue
		}
		sum = sum.Add(r.CostPerDistance)
		n++
	}
	if n == 0 {
		return decimal.Zero, false
	}
	return sum.Div(decimal.NewFromInt(n)), true
}

// CostByRoute sums TotalCost per route label, sorted by label.
func CostByRoute(records []domain.MergedRecord) []domain.CategoryValue {
	sums := map[string]decimal.Decimal{}
	for _, r := range records {
		sums[r.Route.Label] = sums[r.Route.Label].Add(r.TotalCost)
	}

	out := make([]domain.CategoryValue, 0, len(sums))
	for label, v := range sums {
		out = append(out, domain.CategoryValue{Label: label, Value: v})
	}
	slices.SortFunc(out, func(a, b domain.CategoryValue) int {
		return strings.Compare(a.Label, b.Label)
	})
	return out
}

// MeanCostByDistance averages TotalCost per distinct distance, ascending by distance.
func MeanCostByDistance(records []domain.MergedRecord) []domain.DistancePoint {
	type acc struct {
		distance decimal.Decimal
		sum      decimal.Decimal
		n        int64
	}

	// Keyed by the normalized decimal string so 10 and 10.0 share a group.
	groups := map[string]*acc{}
	for _, r := range records {
		key := r.Route.DistanceKM.String()
		g, ok := groups[key]
		if !ok {
			g = &acc{distance: r.Route.DistanceKM, sum: decimal.Zero}
			groups[key] = g
		}
		g.sum = g.sum.Add(r.TotalCost)
		g.n++
	}

	out := make([]domain.DistancePoint, 0, len(groups))
	for _, g := range groups {
		out = append(out, domain.DistancePoint{
			DistanceKM:    g.distance,
			MeanTotalCost: g.sum.Div(decimal.NewFromInt(g.n)),
		})
	}
	slices.SortFunc(out, func(a, b domain.DistancePoint) int {
		return a.DistanceKM.Cmp(b.DistanceKM)
	})
	return out
}

// Composition sums the breakdown components across records, in CompositionColumns order.
func Composition(records []domain.MergedRecord) []domain.CategoryValue {
	out := make([]domain.CategoryValue, 0, len(domain.CompositionColumns))
	for _, col := range domain.CompositionColumns {
		sum := decimal.Zero
		for _, r := range records {
			v, _ := r.Costs.Component(col)
			sum = sum.Add(v)
		}
		out = append(out, domain.CategoryValue{Label: col, Value: sum})
	}
	return out
}

// DelayVsCost pairs each record's traffic delay with its total cost, in record order.
func DelayVsCost(records []domain.MergedRecord) []domain.ScatterPoint {
	out := make([]domain.ScatterPoint, 0, len(records))
	for _, r := range records {
		out = append(out, domain.ScatterPoint{
			OrderID:             r.OrderID,
			TrafficDelayMinutes: r.Delivery.TrafficDelayMinutes,
			TotalCost:           r.TotalCost,
		})
	}
	return out
}
