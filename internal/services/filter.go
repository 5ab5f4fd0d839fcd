package services

import "cost-intelligence-service/internal/domain"

// ApplyFilter returns the records accepted by f, preserving order.
func ApplyFilter(records []domain.MergedRecord, f domain.Filter) []domain.MergedRecord {
	if f.IsZero() {
		out := make([]domain.MergedRecord, len(records))
		copy(out, records)
		return out
	}

	out := make([]domain.MergedRecord, 0, len(records))
	for i := range records {
		if f.Accepts(&records[i]) {
			out = append(out, records[i])
		}
	}
	return out
}

// FilterOptions lists the distinct priorities and product categories in
// first-seen order, for multi-select controls.
func FilterOptions(records []domain.MergedRecord) (priorities []string, categories []string) {
	seenP := map[string]struct{}{}
	seenC := map[string]struct{}{}
	priorities = []string{}
	categories = []string{}

	for _, r := range records {
		if _, ok := seenP[r.Priority]; !ok {
			seenP[r.Priority] = struct{}{}
			priorities = append(priorities, r.Priority)
		}
		if _, ok := seenC[r.ProductCategory]; !ok {
			seenC[r.ProductCategory] = struct{}{}
			categories = append(categories, r.ProductCategory)
		}
	}
	return priorities, categories
}
