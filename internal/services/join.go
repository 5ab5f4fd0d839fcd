package services

import (
	"cost-intelligence-service/internal/domain"
	"fmt"
	"strings"
)

// Join left-joins orders with routes, then delivery performance, then costs,
// all on Order_ID.
//
// Every order row yields exactly one joined row, in input order. When a right
// table repeats a key, its first row wins so the order count is preserved.
// Unmatched right-hand cells stay empty and are filled later.
func Join(ds *domain.Dataset) (*domain.Joined, error) {
	if err := ds.Validate(); err != nil {
		return nil, fmt.Errorf("join: %w", err)
	}

	base := ds.Orders
	baseKey, _ := base.ColumnIndex(domain.ColOrderID)

	columns := make([]string, 0, len(base.Columns))
	for _, c := range base.Columns {
		columns = append(columns, strings.TrimSpace(c))
	}

	rows := make([]domain.JoinedRow, len(base.Rows))
	for i := range base.Rows {
		cells := make([]string, len(columns))
		for j := range columns {
			cells[j] = base.Cell(i, j)
		}
		rows[i] = domain.JoinedRow{Cells: cells}
	}

	for _, right := range []*domain.Table{ds.Routes, ds.Deliveries, ds.Costs} {
		rightKey, _ := right.ColumnIndex(domain.ColOrderID)

		index := make(map[string]int, len(right.Rows))
		for i := range right.Rows {
			k := strings.TrimSpace(right.Cell(i, rightKey))
			if _, seen := index[k]; !seen {
				index[k] = i
			}
		}

		// Source positions of the right-hand columns carried into the join.
		carried := make([]int, 0, len(right.Columns))
		for j, c := range right.Columns {
			if j == rightKey {
				continue
			}
			carried = append(carried, j)
			columns = append(columns, uniqueColumn(columns, strings.TrimSpace(c), right.Name))
		}

		for i := range rows {
			k := strings.TrimSpace(rows[i].Cells[baseKey])
			ri, ok := index[k]
			if !ok {
				rows[i].Unmatched = append(rows[i].Unmatched, right.Name)
			}
			for _, j := range carried {
				v := ""
				if ok {
					v = right.Cell(ri, j)
				}
				rows[i].Cells = append(rows[i].Cells, v)
			}
		}
	}

	return &domain.Joined{Columns: columns, Rows: rows}, nil
}

// uniqueColumn suffixes a colliding column name with its source name.
func uniqueColumn(existing []string, name, source string) string {
	candidate := name
	for n := 1; containsColumn(existing, candidate); n++ {
		candidate = name + "_" + source
		if n > 1 {
			candidate = fmt.Sprintf("%s_%s%d", name, source, n)
		}
	}
	return candidate
}

func containsColumn(columns []string, name string) bool {
	for _, c := range columns {
		if c == name {
			return true
		}
	}
	return false
}
