package ports

import (
	"context"
	"cost-intelligence-service/internal/domain"
)

// Contract for loading the four source tables.
type DatasetSource interface {
	// Load all four tables. Any missing source or column is fatal.
	Load(ctx context.Context) (*domain.Dataset, error)
}

// Optional extension of DatasetSource whose content can be identified cheaply.
// A changed fingerprint means the sources must be reloaded.
type FingerprintedSource interface {
	DatasetSource
	Fingerprint(ctx context.Context) (string, error)
}
