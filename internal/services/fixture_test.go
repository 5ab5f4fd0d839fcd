package services

import (
	"cost-intelligence-service/internal/adapters/memsource"
	"cost-intelligence-service/internal/domain"
	"testing"

	"github.com/shopspring/decimal"
)

var costHeader = append([]string{domain.ColOrderID}, domain.CostColumns...)

// fixtureDataset is a small fleet covering every join and fill case:
//   - O1 has a duplicate route row (first wins)
//   - O2 has zero distance
//   - O3 has empty delivery and cost cells
//   - O5 has no route, delivery or cost row at all
func fixtureDataset() *domain.Dataset {
	return &domain.Dataset{
		Orders: memsource.NewTable(domain.SourceOrders,
			[]string{domain.ColOrderID, domain.ColPriority, domain.ColProductCategory},
			[]string{"O1", "High", "Electronics"},
			[]string{"O2", "Low", "Food"},
			[]string{"O3", "High", "Food"},
			[]string{"O4", "Medium", "Electronics"},
			[]string{"O5", "Low", "Food"},
		),
		Routes: memsource.NewTable(domain.SourceRoutes,
			[]string{domain.ColOrderID, domain.ColRoute, domain.ColDistanceKM},
			[]string{"O1", "A", "10"},
			[]string{"O2", "B", "0"},
			[]string{"O3", "A", "20"},
			[]string{"O4", "C", "10.0"},
			[]string{"O1", "Z", "99"},
		),
		Deliveries: memsource.NewTable(domain.SourceDelivery,
			[]string{domain.ColOrderID, domain.ColTrafficDelay},
			[]string{"O1", "15"},
			[]string{"O2", "5"},
			[]string{"O3", ""},
			[]string{"O4", "40"},
		),
		Costs: memsource.NewTable(domain.SourceCosts,
			costHeader,
			[]string{"O1", "50", "30", "5", "2", "1", "1.5", "0.5"},
			[]string{"O2", "0", "0", "0", "0", "0", "0", "0"},
			[]string{"O3", "60", "40", "", "", "", "", ""},
			[]string{"O4", "120", "50", "10", "10", "5", "3", "2"},
		),
	}
}

// scenarioDataset is the two-order example: O1 costs 80 over 10 km, O2 has
// zero cost over zero distance.
func scenarioDataset() *domain.Dataset {
	return &domain.Dataset{
		Orders: memsource.NewTable(domain.SourceOrders,
			[]string{domain.ColOrderID, domain.ColPriority, domain.ColProductCategory},
			[]string{"O1", "High", "Electronics"},
			[]string{"O2", "Low", "Food"},
		),
		Routes: memsource.NewTable(domain.SourceRoutes,
			[]string{domain.ColOrderID, domain.ColRoute, domain.ColDistanceKM},
			[]string{"O1", "A", "10"},
			[]string{"O2", "B", "0"},
		),
		Deliveries: memsource.NewTable(domain.SourceDelivery,
			[]string{domain.ColOrderID, domain.ColTrafficDelay},
		),
		Costs: memsource.NewTable(domain.SourceCosts,
			costHeader,
			[]string{"O1", "50", "30", "0", "0", "0", "0", "0"},
			[]string{"O2", "0", "0", "0", "0", "0", "0", "0"},
		),
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	if !got.Equal(dec(want)) {
		t.Errorf("got %s, want %s %v", got, want, msgAndArgs)
	}
}

func orderIDs(records []domain.MergedRecord) []string {
	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.OrderID)
	}
	return ids
}
