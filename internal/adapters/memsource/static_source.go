package memsource

import (
	"context"
	"cost-intelligence-service/internal/domain"
	"fmt"
	"sync"
)

// Source serves a fixed in-memory dataset. It is used by tests and by callers
// that already hold the tables.
type Source struct {
	mu      sync.Mutex
	ds      *domain.Dataset
	version string
	loads   int
}

func New(ds *domain.Dataset) *Source {
	return &Source{ds: ds, version: "v1"}
}

func (s *Source) Load(ctx context.Context) (*domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ds.Validate(); err != nil {
		return nil, fmt.Errorf("memsource: %w", err)
	}
	s.loads++
	return s.ds, nil
}

func (s *Source) Fingerprint(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version, ctx.Err()
}

// Replace swaps the dataset and changes the fingerprint.
func (s *Source) Replace(ds *domain.Dataset, version string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ds = ds
	s.version = version
}

// Loads reports how many times Load succeeded.
func (s *Source) Loads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loads
}

// NewTable builds a table from a header and rows.
func NewTable(name string, columns []string, rows ...[]string) *domain.Table {
	return &domain.Table{Name: name, Columns: columns, Rows: rows}
}
