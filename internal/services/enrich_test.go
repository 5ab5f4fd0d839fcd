package services

import (
	"cost-intelligence-service/internal/adapters/memsource"
	"cost-intelligence-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enrichFixture(t *testing.T, policy domain.ZeroDistancePolicy) *domain.Enriched {
	t.Helper()
	j, err := Join(fixtureDataset())
	require.NoError(t, err)
	e, err := Enrich(j, policy)
	require.NoError(t, err)
	return e
}

func TestEnrichTotalCostIsExactSum(t *testing.T) {
	e := enrichFixture(t, domain.PolicyExclude)

	want := []string{"90", "0", "100", "200", "0"}
	require.Len(t, e.Records, len(want))
	for i, r := range e.Records {
		assertDecimal(t, want[i], r.TotalCost, r.OrderID)

		sum := dec("0")
		for _, col := range domain.CostColumns {
			v, ok := r.Costs.Component(col)
			require.True(t, ok)
			sum = sum.Add(v)
		}
		assert.True(t, sum.Equal(r.TotalCost), "order %s total must equal component sum", r.OrderID)
	}
}

func TestEnrichFillsNulls(t *testing.T) {
	e := enrichFixture(t, domain.PolicyExclude)

	o3 := e.Records[2]
	assert.False(t, o3.Incomplete)
	assertDecimal(t, "0", o3.Delivery.TrafficDelayMinutes)

	o5 := e.Records[4]
	assert.True(t, o5.Incomplete)
	assert.Equal(t, "0", o5.Route.Label, "string cells are zero-filled too")
	assertDecimal(t, "0", o5.Route.DistanceKM)
	for _, v := range o5.Values[3:] {
		assert.Equal(t, "0", v)
	}
}

func TestEnrichCostPerDistancePolicies(t *testing.T) {
	t.Run("exclude leaves zero distance undefined", func(t *testing.T) {
		e := enrichFixture(t, domain.PolicyExclude)

		assert.True(t, e.Records[0].HasCostPerDistance)
		assertDecimal(t, "9", e.Records[0].CostPerDistance)
		assert.False(t, e.Records[1].HasCostPerDistance)
		assert.False(t, e.Records[4].HasCostPerDistance)
		assertDecimal(t, "20", e.Records[3].CostPerDistance)
	})

	t.Run("zero clamps to zero", func(t *testing.T) {
		e := enrichFixture(t, domain.PolicyZero)

		assert.True(t, e.Records[1].HasCostPerDistance)
		assertDecimal(t, "0", e.Records[1].CostPerDistance)
		assert.True(t, e.Records[4].HasCostPerDistance)
	})

	t.Run("empty policy defaults to exclude", func(t *testing.T) {
		e := enrichFixture(t, "")
		assert.False(t, e.Records[1].HasCostPerDistance)
	})

	t.Run("unknown policy fails", func(t *testing.T) {
		j, err := Join(fixtureDataset())
		require.NoError(t, err)
		_, err = Enrich(j, "clamp")
		require.ErrorIs(t, err, domain.ErrUnknownPolicy)
	})
}

func TestEnrichRejectsInvalidNumber(t *testing.T) {
	ds := fixtureDataset()
	ds.Costs.Rows[0][1] = "fifty"

	j, err := Join(ds)
	require.NoError(t, err)

	_, err = Enrich(j, domain.PolicyExclude)
	require.ErrorIs(t, err, domain.ErrInvalidNumber)
	assert.Contains(t, err.Error(), "O1")
	assert.Contains(t, err.Error(), domain.ColFuelCost)
}

func TestEnrichRejectsMissingColumn(t *testing.T) {
	j := &domain.Joined{Columns: []string{domain.ColOrderID, domain.ColPriority}}

	_, err := Enrich(j, domain.PolicyExclude)
	require.ErrorIs(t, err, domain.ErrMissingColumn)
}

func TestEnrichDoesNotAliasJoinedCells(t *testing.T) {
	j, err := Join(fixtureDataset())
	require.NoError(t, err)

	_, err = Enrich(j, domain.PolicyExclude)
	require.NoError(t, err)

	assert.Equal(t, "", j.Rows[4].Cells[3], "joined table keeps its nulls")
}

func TestEnrichTreatsNullMarkersAsZero(t *testing.T) {
	for _, marker := range []string{"NA", "N/A", "NaN", "nan", "null", "NULL", "#N/A", "None", " NA "} {
		t.Run(marker, func(t *testing.T) {
			ds := scenarioDataset()
			ds.Costs.Rows[0][3] = marker  // O1 Vehicle_Maintenance
			ds.Routes.Rows[1][1] = marker // O2 Route

			rep, err := Compute(ds, domain.Filter{}, Options{})
			require.NoError(t, err)

			o1 := rep.Records[0]
			v, ok := o1.Costs.Component(domain.ColVehicleMaintenance)
			require.True(t, ok)
			assertDecimal(t, "0", v)
			assertDecimal(t, "80", o1.TotalCost)
			assert.Equal(t, "0", o1.Values[indexOf(rep.Columns, domain.ColVehicleMaintenance)])
			assert.Equal(t, "0", rep.Records[1].Route.Label)
		})
	}
}

func TestEnrichRejectsUnlistedNullSpelling(t *testing.T) {
	ds := scenarioDataset()
	ds.Costs.Rows[0][3] = "n.a."

	_, err := Compute(ds, domain.Filter{}, Options{})
	require.ErrorIs(t, err, domain.ErrInvalidNumber)
}

func TestEnrichReplacesSourceDerivedColumns(t *testing.T) {
	ds := scenarioDataset()
	ds.Orders = memsource.NewTable(domain.SourceOrders,
		[]string{domain.ColOrderID, domain.ColPriority, domain.ColProductCategory, domain.ColTotalCost},
		[]string{"O1", "High", "Electronics", "999"},
		[]string{"O2", "Low", "Food", "999"},
	)
	ds.Routes = memsource.NewTable(domain.SourceRoutes,
		[]string{domain.ColOrderID, domain.ColRoute, domain.ColDistanceKM, domain.ColCostPerKM},
		[]string{"O1", "A", "10", "1"},
		[]string{"O2", "B", "0", "1"},
	)

	rep, err := Compute(ds, domain.Filter{}, Options{})
	require.NoError(t, err)

	count := func(name string) int {
		n := 0
		for _, c := range rep.Columns {
			if c == name {
				n++
			}
		}
		return n
	}
	assert.Equal(t, 1, count(domain.ColTotalCost))
	assert.Equal(t, 1, count(domain.ColCostPerKM))
	assert.Equal(t, []string{domain.ColTotalCost, domain.ColCostPerKM}, rep.Columns[len(rep.Columns)-2:])

	for _, r := range rep.Records {
		assert.Len(t, r.Values, len(rep.Columns)-2, "values align with joined columns")
		assert.NotContains(t, r.Values, "999")
	}
	assertDecimal(t, "80", rep.Records[0].TotalCost)
}
