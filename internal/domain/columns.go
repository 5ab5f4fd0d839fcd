package domain

// Column names shared by the four source files and the export.
const (
	ColOrderID         = "Order_ID"
	ColPriority        = "Priority"
	ColProductCategory = "Product_Category"
	ColRoute           = "Route"
	ColDistanceKM      = "Distance_KM"
	ColTrafficDelay    = "Traffic_Delay_Minutes"

	ColFuelCost              = "Fuel_Cost"
	ColLaborCost             = "Labor_Cost"
	ColVehicleMaintenance    = "Vehicle_Maintenance"
	ColInsurance             = "Insurance"
	ColPackagingCost         = "Packaging_Cost"
	ColTechnologyPlatformFee = "Technology_Platform_Fee"
	ColOtherOverhead         = "Other_Overhead"

	ColTotalCost = "Total_Cost_INR"
	ColCostPerKM = "Cost_per_KM"
)

// CostColumns lists the seven components summed into TotalCost, in source order.
var CostColumns = []string{
	ColFuelCost,
	ColLaborCost,
	ColVehicleMaintenance,
	ColInsurance,
	ColPackagingCost,
	ColTechnologyPlatformFee,
	ColOtherOverhead,
}

// CompositionColumns are the components shown in the cost composition breakdown.
// The order is fixed so the breakdown chart is stable between renders.
var CompositionColumns = []string{
	ColFuelCost,
	ColLaborCost,
	ColVehicleMaintenance,
	ColOtherOverhead,
}

// Source names, also used to disambiguate colliding column names after a join.
const (
	SourceOrders   = "orders"
	SourceRoutes   = "routes"
	SourceDelivery = "delivery"
	SourceCosts    = "costs"
)

// RequiredColumns returns the columns a source must carry to be joined and enriched.
func RequiredColumns(source string) []string {
	switch source {
	case SourceOrders:
		return []string{ColOrderID, ColPriority, ColProductCategory}
	case SourceRoutes:
		return []string{ColOrderID, ColRoute, ColDistanceKM}
	case SourceDelivery:
		return []string{ColOrderID, ColTrafficDelay}
	case SourceCosts:
		return append([]string{ColOrderID}, CostColumns...)
	default:
		return []string{ColOrderID}
	}
}
