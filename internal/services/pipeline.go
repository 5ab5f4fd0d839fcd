package services

import (
	"context"
	"cost-intelligence-service/internal/domain"
	"cost-intelligence-service/internal/platform/obs"
	"cost-intelligence-service/internal/ports"
	"errors"
	"fmt"
)

// Pipeline reruns the cost analysis for every request.
//
// The load+join+enrich result only depends on the sources, so when a cache is
// set and the source can be fingerprinted it is reused until the sources change.
// Filtering and aggregation always run fresh.
type Pipeline struct {
	Source  ports.DatasetSource
	Cache   ports.EnrichedCache
	Options Options
}

func NewPipeline(src ports.DatasetSource, cache ports.EnrichedCache, opts Options) *Pipeline {
	return &Pipeline{Source: src, Cache: cache, Options: opts}
}

// Enriched returns the joined, null-filled and metric-enriched table.
func (p *Pipeline) Enriched(ctx context.Context) (_ *domain.Enriched, err error) {
	defer obs.Time(ctx, "pipeline.Enriched")(&err)

	if p.Source == nil {
		return nil, errors.New("pipeline: source is nil")
	}

	key := ""
	if fs, ok := p.Source.(ports.FingerprintedSource); ok && p.Cache != nil {
		key, err = fs.Fingerprint(ctx)
		if err != nil {
			return nil, fmt.Errorf("pipeline: fingerprint sources: %w", err)
		}
		if e, hit := p.Cache.Get(key); hit {
			return e, nil
		}
	}

	ds, err := p.Source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	joined, err := Join(ds)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	enriched, err := Enrich(joined, p.Options.ZeroDistancePolicy)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	if key != "" {
		p.Cache.Put(key, enriched)
	}
	return enriched, nil
}

// Report computes the dashboard report for one filter selection.
func (p *Pipeline) Report(ctx context.Context, f domain.Filter) (*domain.Report, error) {
	e, err := p.Enriched(ctx)
	if err != nil {
		return nil, err
	}
	return Summarize(e, f), nil
}

// FilterOptions lists the values offered by the priority and category selectors.
func (p *Pipeline) FilterOptions(ctx context.Context) ([]string, []string, error) {
	e, err := p.Enriched(ctx)
	if err != nil {
		return nil, nil, err
	}
	priorities, categories := FilterOptions(e.Records)
	return priorities, categories, nil
}
