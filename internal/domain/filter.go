package domain

import (
	"slices"
	"strings"
)

// Filter narrows records by priority and product category.
// An empty set accepts every value; both sets must accept a record.
type Filter struct {
	Priorities []string
	Categories []string
}

// NewFilter builds a filter from raw selections. Each entry may hold a
// comma-separated list; values are trimmed and blanks dropped.
func NewFilter(priorities, categories []string) Filter {
	return Filter{
		Priorities: splitValues(priorities),
		Categories: splitValues(categories),
	}
}

func splitValues(raw []string) []string {
	var out []string
	for _, v := range raw {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func (f Filter) Accepts(r *MergedRecord) bool {
	if len(f.Priorities) > 0 && !slices.Contains(f.Priorities, r.Priority) {
		return false
	}
	if len(f.Categories) > 0 && !slices.Contains(f.Categories, r.ProductCategory) {
		return false
	}
	return true
}

// IsZero reports whether the filter accepts everything.
func (f Filter) IsZero() bool {
	return len(f.Priorities) == 0 && len(f.Categories) == 0
}
