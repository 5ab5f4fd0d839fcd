package ports

import (
	"context"
	"cost-intelligence-service/internal/domain"
)

// Port: what the HTTP layer needs from the cost pipeline.
type CostReporter interface {
	Report(ctx context.Context, f domain.Filter) (*domain.Report, error)
	// Distinct priorities and product categories, in first-seen order.
	FilterOptions(ctx context.Context) (priorities []string, categories []string, err error)
}
