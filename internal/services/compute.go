package services

import (
	"cost-intelligence-service/internal/domain"
	"fmt"
)

// Options control how the pipeline derives metrics.
type Options struct {
	ZeroDistancePolicy domain.ZeroDistancePolicy
}

// Compute runs the whole pipeline on a dataset: join, fill, derive, filter,
// aggregate and detect leakage. It holds no state between calls.
func Compute(ds *domain.Dataset, f domain.Filter, opts Options) (*domain.Report, error) {
	joined, err := Join(ds)
	if err != nil {
		return nil, fmt.Errorf("compute: %w", err)
	}

	enriched, err := Enrich(joined, opts.ZeroDistancePolicy)
	if err != nil {
		return nil, fmt.Errorf("compute: %w", err)
	}

	return Summarize(enriched, f), nil
}

// Summarize filters an enriched table and computes every dashboard aggregate.
func Summarize(e *domain.Enriched, f domain.Filter) *domain.Report {
	records := ApplyFilter(e.Records, f)

	threshold, hasThreshold, leakage := DetectLeakage(records)

	return &domain.Report{
		Filter:              f,
		Columns:             e.ExportColumns(),
		Records:             records,
		KPIs:                ComputeKPIs(records),
		CostByRoute:         CostByRoute(records),
		CostByDistance:      MeanCostByDistance(records),
		Composition:         Composition(records),
		DelayVsCost:         DelayVsCost(records),
		LeakageThreshold:    threshold,
		HasLeakageThreshold: hasThreshold,
		Leakage:             leakage,
	}
}
