package services

import (
	"cost-intelligence-service/internal/domain"

	"github.com/shopspring/decimal"
)

// DetectLeakage flags records whose cost per km is strictly above the mean
// cost per km of the same records.
//
// Records without a defined cost per km neither contribute to the threshold
// nor appear in the result. ok is false when no threshold could be computed.
func DetectLeakage(records []domain.MergedRecord) (threshold decimal.Decimal, ok bool, rows []domain.LeakageRow) {
	rows = []domain.LeakageRow{}

	threshold, ok = meanCostPerDistance(records)
	if !ok {
		return threshold, false, rows
	}

	for _, r := range records {
		if !r.HasCostPerDistance || !r.CostPerDistance.GreaterThan(threshold) {
			continue
		}
		rows = append(rows, domain.LeakageRow{
			OrderID:             r.OrderID,
			Route:               r.Route.Label,
			CostPerKM:           r.CostPerDistance,
			TrafficDelayMinutes: r.Delivery.TrafficDelayMinutes,
		})
	}
	return threshold, true, rows
}
