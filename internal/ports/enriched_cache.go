package ports

import "cost-intelligence-service/internal/domain"

// Cache for the load+join+enrich result, keyed by source fingerprint.
type EnrichedCache interface {
	Get(key string) (*domain.Enriched, bool)
	Put(key string, e *domain.Enriched)
	Invalidate()
}
