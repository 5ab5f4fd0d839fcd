package csvsource

import (
	"cost-intelligence-service/internal/domain"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadTable parses a delimited file with a header row into a Table.
//
// A leading UTF-8 BOM is dropped. Rows shorter than the header are padded
// with empty (null) cells; rows longer than the header are malformed.
func ReadTable(name string, r io.Reader) (*domain.Table, error) {
	dec := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	reader := csv.NewReader(dec)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read %s: %w", name, domain.ErrEmptySource)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: header: %w", name, err)
	}

	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = strings.TrimSpace(h)
	}

	t := &domain.Table{Name: name, Columns: columns}
	line := 1
	for {
		line++
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: line %d: %w", name, line, err)
		}
		if len(rec) > len(columns) {
			return nil, fmt.Errorf("read %s: line %d: %w (%d > %d)", name, line, domain.ErrMalformedRow, len(rec), len(columns))
		}

		row := make([]string, len(columns))
		copy(row, rec)
		t.Rows = append(t.Rows, row)
	}

	return t, nil
}
