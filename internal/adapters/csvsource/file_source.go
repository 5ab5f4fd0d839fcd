package csvsource

import (
	"context"
	"cost-intelligence-service/internal/domain"
	"cost-intelligence-service/internal/platform/obs"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Paths of the four source files.
type Paths struct {
	Orders   string
	Routes   string
	Delivery string
	Costs    string
}

// All returns the paths in join order.
func (p Paths) All() []string {
	return []string{p.Orders, p.Routes, p.Delivery, p.Costs}
}

// File-backed implementation of the DatasetSource port.
type FileSource struct {
	Paths Paths
}

func NewFileSource(p Paths) *FileSource {
	return &FileSource{Paths: p}
}

// Load reads the four files concurrently. The first failure cancels the rest
// and no partial dataset is returned.
func (s *FileSource) Load(ctx context.Context) (_ *domain.Dataset, err error) {
	defer obs.Time(ctx, "csvsource.Load")(&err)

	ds := &domain.Dataset{}
	targets := []struct {
		name string
		path string
		dst  **domain.Table
	}{
		{domain.SourceOrders, s.Paths.Orders, &ds.Orders},
		{domain.SourceRoutes, s.Paths.Routes, &ds.Routes},
		{domain.SourceDelivery, s.Paths.Delivery, &ds.Deliveries},
		{domain.SourceCosts, s.Paths.Costs, &ds.Costs},
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, tgt := range targets {
		g.Go(func() error {
			t, err := readFile(gctx, tgt.name, tgt.path)
			if err != nil {
				return err
			}
			*tgt.dst = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load sources: %w", err)
	}

	return ds, nil
}

func readFile(ctx context.Context, name, path string) (*domain.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%s: %w: empty path", name, domain.ErrSourceMissing)
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w: %q", name, domain.ErrSourceMissing, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: open %q: %w", name, path, err)
	}
	defer f.Close()

	t, err := ReadTable(name, f)
	if err != nil {
		return nil, err
	}
	if err := t.Require(domain.RequiredColumns(name)...); err != nil {
		return nil, err
	}
	return t, nil
}

// Fingerprint identifies the current content of the four files by path,
// size and modification time.
func (s *FileSource) Fingerprint(ctx context.Context) (string, error) {
	h := sha256.New()
	for _, p := range s.Paths.All() {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		st, err := os.Stat(p)
		if err != nil {
			return "", fmt.Errorf("fingerprint %q: %w", p, err)
		}
		fmt.Fprintf(h, "%s|%d|%d\n", p, st.Size(), st.ModTime().UnixNano())
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
