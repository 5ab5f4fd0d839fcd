package services

import (
	"cost-intelligence-service/internal/domain"
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// nullFill is what every null joined cell becomes.
const nullFill = "0"

// nullMarkers are the cell texts read as null besides the empty cell. Matching
// is exact after trimming surrounding spaces.
var nullMarkers = map[string]struct{}{
	"#N/A": {}, "#N/A N/A": {}, "#NA": {},
	"-1.#IND": {}, "-1.#QNAN": {}, "-NaN": {}, "-nan": {},
	"1.#IND": {}, "1.#QNAN": {}, "<NA>": {},
	"N/A": {}, "NA": {}, "NULL": {}, "NaN": {}, "None": {},
	"n/a": {}, "nan": {}, "null": {},
}

// derivedColumns are computed by Enrich; a source column with the same name is replaced.
var derivedColumns = []string{domain.ColTotalCost, domain.ColCostPerKM}

// Enrich fills nulls in a joined table and derives TotalCost and CostPerDistance.
//
// Missing data is treated as zero: an order without a cost row reports zero
// cost and an order without a route row reports zero distance. Such orders are
// flagged Incomplete but otherwise counted like any other.
func Enrich(j *domain.Joined, policy domain.ZeroDistancePolicy) (*domain.Enriched, error) {
	if j == nil {
		return nil, fmt.Errorf("enrich: %w", domain.ErrNilDataset)
	}

	policy, err := domain.ParseZeroDistancePolicy(string(policy))
	if err != nil {
		return nil, fmt.Errorf("enrich: %w", err)
	}

	keep := make([]int, 0, len(j.Columns))
	columns := make([]string, 0, len(j.Columns))
	for i, c := range j.Columns {
		if slices.Contains(derivedColumns, c) {
			continue
		}
		keep = append(keep, i)
		columns = append(columns, c)
	}

	idx, err := columnIndexes(columns,
		append([]string{
			domain.ColOrderID,
			domain.ColPriority,
			domain.ColProductCategory,
			domain.ColRoute,
			domain.ColDistanceKM,
			domain.ColTrafficDelay,
		}, domain.CostColumns...)...,
	)
	if err != nil {
		return nil, fmt.Errorf("enrich: %w", err)
	}

	records := make([]domain.MergedRecord, 0, len(j.Rows))
	for _, row := range j.Rows {
		values := fillNulls(pick(row.Cells, keep), len(columns))

		rec := domain.MergedRecord{
			Order: domain.Order{
				OrderID:         strings.TrimSpace(values[idx[domain.ColOrderID]]),
				Priority:        strings.TrimSpace(values[idx[domain.ColPriority]]),
				ProductCategory: strings.TrimSpace(values[idx[domain.ColProductCategory]]),
			},
			Route:      domain.Route{Label: strings.TrimSpace(values[idx[domain.ColRoute]])},
			Incomplete: len(row.Unmatched) > 0,
			Values:     values,
		}

		number := func(col string) (decimal.Decimal, error) {
			d, err := parseDecimal(values[idx[col]])
			if err != nil {
				return decimal.Zero, fmt.Errorf("enrich: order %q column %s: %w", rec.OrderID, col, err)
			}
			return d, nil
		}

		if rec.Route.DistanceKM, err = number(domain.ColDistanceKM); err != nil {
			return nil, err
		}
		if rec.Delivery.TrafficDelayMinutes, err = number(domain.ColTrafficDelay); err != nil {
			return nil, err
		}
		for _, col := range domain.CostColumns {
			v, err := number(col)
			if err != nil {
				return nil, err
			}
			rec.Costs.Set(col, v)
		}

		rec.TotalCost = rec.Costs.Total()
		rec.CostPerDistance, rec.HasCostPerDistance = costPerDistance(rec.TotalCost, rec.Route.DistanceKM, policy)

		records = append(records, rec)
	}

	return &domain.Enriched{Columns: columns, Records: records}, nil
}

// costPerDistance divides total cost by distance, applying the zero-distance policy.
func costPerDistance(total, distance decimal.Decimal, policy domain.ZeroDistancePolicy) (decimal.Decimal, bool) {
	if distance.IsZero() {
		if policy == domain.PolicyZero {
			return decimal.Zero, true
		}
		return decimal.Zero, false
	}
	return total.Div(distance), true
}

// pick returns the cells at the given positions; missing cells are empty.
func pick(cells []string, positions []int) []string {
	out := make([]string, len(positions))
	for i, p := range positions {
		if p < len(cells) {
			out[i] = cells[p]
		}
	}
	return out
}

// isNull reports whether a cell is blank or a null marker.
func isNull(v string) bool {
	v = strings.TrimSpace(v)
	if v == "" {
		return true
	}
	_, ok := nullMarkers[v]
	return ok
}

// fillNulls returns a copy of cells padded to width with every null cell set to "0".
func fillNulls(cells []string, width int) []string {
	out := make([]string, width)
	for i := range out {
		v := ""
		if i < len(cells) {
			v = cells[i]
		}
		if isNull(v) {
			v = nullFill
		}
		out[i] = v
	}
	return out
}

func parseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrInvalidNumber, s)
	}
	return d, nil
}

func columnIndexes(columns []string, names ...string) (map[string]int, error) {
	out := make(map[string]int, len(names))
	for _, n := range names {
		found := false
		for i, c := range columns {
			if c == n {
				out[n] = i
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %q", domain.ErrMissingColumn, n)
		}
	}
	return out, nil
}
