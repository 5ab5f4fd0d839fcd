package dto

import "github.com/shopspring/decimal"

// Money and ratio fields are decimals, encoded as JSON strings to keep them exact.

type FilterResponse struct {
	Priorities []string `json:"priorities"`
	Categories []string `json:"categories"`
}

type KPIResponse struct {
	TotalCost  decimal.Decimal `json:"total_cost_inr"`
	OrderCount int             `json:"order_count"`

	// Null when no filtered order has a defined cost per km.
	MeanCostPerKM      *decimal.Decimal `json:"mean_cost_per_km"`
	IncompleteOrders   int              `json:"incomplete_orders"`
	UndefinedCostPerKM int              `json:"undefined_cost_per_km"`
}

type CategoryValueResponse struct {
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
}

type DistancePointResponse struct {
	DistanceKM    decimal.Decimal `json:"distance_km"`
	MeanTotalCost decimal.Decimal `json:"mean_total_cost_inr"`
}

type ScatterPointResponse struct {
	OrderID             string          `json:"order_id"`
	TrafficDelayMinutes decimal.Decimal `json:"traffic_delay_minutes"`
	TotalCost           decimal.Decimal `json:"total_cost_inr"`
}

type LeakageRowResponse struct {
	OrderID             string          `json:"order_id"`
	Route               string          `json:"route"`
	CostPerKM           decimal.Decimal `json:"cost_per_km"`
	TrafficDelayMinutes decimal.Decimal `json:"traffic_delay_minutes"`
}

type LeakageResponse struct {
	Threshold *decimal.Decimal     `json:"threshold"`
	Orders    []LeakageRowResponse `json:"orders"`
}

type ReportResponse struct {
	Filter         FilterResponse          `json:"filter"`
	KPIs           KPIResponse             `json:"kpis"`
	CostByRoute    []CategoryValueResponse `json:"cost_by_route"`
	CostByDistance []DistancePointResponse `json:"cost_by_distance"`
	Composition    []CategoryValueResponse `json:"composition"`
	DelayVsCost    []ScatterPointResponse  `json:"delay_vs_cost"`
	Leakage        LeakageResponse         `json:"leakage"`
}
