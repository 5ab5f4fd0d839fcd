package domain

import "github.com/shopspring/decimal"

// KPIs are the headline numbers over the filtered records.
type KPIs struct {
	TotalCost  decimal.Decimal
	OrderCount int

	MeanCostPerDistance    decimal.Decimal
	HasMeanCostPerDistance bool

	// Data-quality counters. Incomplete orders are still zero-filled and counted.
	IncompleteOrders         int
	UndefinedCostPerDistance int
}

// CategoryValue is one bar or slice: a label and its aggregated cost.
type CategoryValue struct {
	Label string
	Value decimal.Decimal
}

// DistancePoint is the mean total cost observed at one distance value.
type DistancePoint struct {
	DistanceKM    decimal.Decimal
	MeanTotalCost decimal.Decimal
}

// ScatterPoint relates the traffic delay of one order to its total cost.
type ScatterPoint struct {
	OrderID             string
	TrafficDelayMinutes decimal.Decimal
	TotalCost           decimal.Decimal
}

// LeakageRow is an order whose cost per km exceeds the filtered mean.
type LeakageRow struct {
	OrderID             string
	Route               string
	CostPerKM           decimal.Decimal
	TrafficDelayMinutes decimal.Decimal
}

// Report is everything the dashboard renders for one filter selection.
type Report struct {
	Filter  Filter
	Columns []string
	Records []MergedRecord

	KPIs           KPIs
	CostByRoute    []CategoryValue
	CostByDistance []DistancePoint
	Composition    []CategoryValue
	DelayVsCost    []ScatterPoint

	LeakageThreshold    decimal.Decimal
	HasLeakageThreshold bool
	Leakage             []LeakageRow
}
