package domain

import "github.com/shopspring/decimal"

// Delivery timing for an order. Only the traffic delay takes part in the
// cost analysis; other timing columns are carried through to the export.
type Delivery struct {
	TrafficDelayMinutes decimal.Decimal
}
