package domain

import "github.com/shopspring/decimal"

// MergedRecord is one order after joining, null-filling and deriving metrics.
//
// Values holds every joined cell (null-filled) aligned with Enriched.Columns,
// so the export can reproduce columns the analysis itself does not use.
type MergedRecord struct {
	Order
	Route    Route
	Delivery Delivery
	Costs    CostBreakdown

	TotalCost decimal.Decimal

	// CostPerDistance is meaningful only when HasCostPerDistance is true.
	// Under PolicyExclude a zero distance leaves it undefined.
	CostPerDistance    decimal.Decimal
	HasCostPerDistance bool

	// Incomplete marks orders where at least one right-hand source had no row.
	Incomplete bool

	Values []string
}

// Enriched is the full metric-enriched table before filtering.
type Enriched struct {
	Columns []string
	Records []MergedRecord
}

// ExportColumns is the joined header followed by the two derived columns.
// Enrich strips same-named source columns, so each derived name appears once.
func (e *Enriched) ExportColumns() []string {
	cols := make([]string, 0, len(e.Columns)+2)
	cols = append(cols, e.Columns...)
	return append(cols, ColTotalCost, ColCostPerKM)
}
