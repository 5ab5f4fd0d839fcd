package domain

import "github.com/shopspring/decimal"

// Represents the route leg an order travelled.
// DistanceKM is zero after null-filling when the order had no route row.
type Route struct {
	Label      string
	DistanceKM decimal.Decimal
}
