package domain

import "github.com/shopspring/decimal"

// CostBreakdown holds the seven operational cost components of one order, in INR.
type CostBreakdown struct {
	Fuel                  decimal.Decimal
	Labor                 decimal.Decimal
	VehicleMaintenance    decimal.Decimal
	Insurance             decimal.Decimal
	Packaging             decimal.Decimal
	TechnologyPlatformFee decimal.Decimal
	OtherOverhead         decimal.Decimal
}

// Total is the exact sum of all seven components.
func (c CostBreakdown) Total() decimal.Decimal {
	return decimal.Sum(
		c.Fuel,
		c.Labor,
		c.VehicleMaintenance,
		c.Insurance,
		c.Packaging,
		c.TechnologyPlatformFee,
		c.OtherOverhead,
	)
}

// Component returns a cost component by its source column name.
func (c CostBreakdown) Component(column string) (decimal.Decimal, bool) {
	switch column {
	case ColFuelCost:
		return c.Fuel, true
	case ColLaborCost:
		return c.Labor, true
	case ColVehicleMaintenance:
		return c.VehicleMaintenance, true
	case ColInsurance:
		return c.Insurance, true
	case ColPackagingCost:
		return c.Packaging, true
	case ColTechnologyPlatformFee:
		return c.TechnologyPlatformFee, true
	case ColOtherOverhead:
		return c.OtherOverhead, true
	}
	return decimal.Zero, false
}

// Set assigns a cost component by its source column name.
func (c *CostBreakdown) Set(column string, v decimal.Decimal) bool {
	switch column {
	case ColFuelCost:
		c.Fuel = v
	case ColLaborCost:
		c.Labor = v
	case ColVehicleMaintenance:
		c.VehicleMaintenance = v
	case ColInsurance:
		c.Insurance = v
	case ColPackagingCost:
		c.Packaging = v
	case ColTechnologyPlatformFee:
		c.TechnologyPlatformFee = v
	case ColOtherOverhead:
		c.OtherOverhead = v
	default:
		return false
	}
	return true
}
