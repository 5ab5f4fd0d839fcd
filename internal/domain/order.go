package domain

// Represents a single shipment from the orders source.
// Order_ID is the join key for every other source.
type Order struct {
	OrderID         string
	Priority        string
	ProductCategory string
}
