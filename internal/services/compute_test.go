package services

import (
	"context"
	"cost-intelligence-service/internal/adapters/memsource"
	"cost-intelligence-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTwoOrderScenario(t *testing.T) {
	rep, err := Compute(scenarioDataset(), domain.Filter{}, Options{ZeroDistancePolicy: domain.PolicyExclude})
	require.NoError(t, err)

	require.Len(t, rep.Records, 2)
	assertDecimal(t, "80", rep.Records[0].TotalCost)
	assertDecimal(t, "0", rep.Records[1].TotalCost)
	assertDecimal(t, "8", rep.Records[0].CostPerDistance)
	assert.True(t, rep.Records[0].HasCostPerDistance)
	assert.False(t, rep.Records[1].HasCostPerDistance, "0/0 is undefined under exclude")

	high, err := Compute(scenarioDataset(), domain.Filter{Priorities: []string{"High"}}, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"O1"}, orderIDs(high.Records))
	assertDecimal(t, "80", high.KPIs.TotalCost)
	assert.Equal(t, 1, high.KPIs.OrderCount)
}

func TestComputeKPIs(t *testing.T) {
	rep, err := Compute(fixtureDataset(), domain.Filter{}, Options{ZeroDistancePolicy: domain.PolicyExclude})
	require.NoError(t, err)

	k := rep.KPIs
	assertDecimal(t, "390", k.TotalCost)
	assert.Equal(t, 5, k.OrderCount)
	assert.Equal(t, 1, k.IncompleteOrders)
	assert.Equal(t, 2, k.UndefinedCostPerDistance)
	require.True(t, k.HasMeanCostPerDistance)
	assert.Equal(t, "11.33", k.MeanCostPerDistance.StringFixed(2))

	zero, err := Compute(fixtureDataset(), domain.Filter{}, Options{ZeroDistancePolicy: domain.PolicyZero})
	require.NoError(t, err)
	assertDecimal(t, "6.8", zero.KPIs.MeanCostPerDistance)
	assert.Equal(t, 0, zero.KPIs.UndefinedCostPerDistance)
}

func TestComputeKPIsWithoutDefinedCostPerDistance(t *testing.T) {
	rep, err := Compute(scenarioDataset(), domain.Filter{Priorities: []string{"Low"}}, Options{})
	require.NoError(t, err)

	assert.False(t, rep.KPIs.HasMeanCostPerDistance)
	assert.False(t, rep.HasLeakageThreshold)
	assert.Empty(t, rep.Leakage)
}

func TestGroupAggregates(t *testing.T) {
	rep, err := Compute(fixtureDataset(), domain.Filter{}, Options{})
	require.NoError(t, err)

	t.Run("cost by route sorted by label", func(t *testing.T) {
		require.Len(t, rep.CostByRoute, 4)
		labels := []string{}
		for _, cv := range rep.CostByRoute {
			labels = append(labels, cv.Label)
		}
		assert.Equal(t, []string{"0", "A", "B", "C"}, labels)
		assertDecimal(t, "0", rep.CostByRoute[0].Value)
		assertDecimal(t, "190", rep.CostByRoute[1].Value)
		assertDecimal(t, "0", rep.CostByRoute[2].Value)
		assertDecimal(t, "200", rep.CostByRoute[3].Value)
	})

	t.Run("mean cost by distance groups equal values", func(t *testing.T) {
		require.Len(t, rep.CostByDistance, 3)
		assertDecimal(t, "0", rep.CostByDistance[0].DistanceKM)
		assertDecimal(t, "0", rep.CostByDistance[0].MeanTotalCost)
		assertDecimal(t, "10", rep.CostByDistance[1].DistanceKM)
		assertDecimal(t, "145", rep.CostByDistance[1].MeanTotalCost)
		assertDecimal(t, "20", rep.CostByDistance[2].DistanceKM)
		assertDecimal(t, "100", rep.CostByDistance[2].MeanTotalCost)
	})

	t.Run("composition keeps component order", func(t *testing.T) {
		require.Len(t, rep.Composition, len(domain.CompositionColumns))
		for i, cv := range rep.Composition {
			assert.Equal(t, domain.CompositionColumns[i], cv.Label)
		}
		assertDecimal(t, "230", rep.Composition[0].Value)
		assertDecimal(t, "120", rep.Composition[1].Value)
		assertDecimal(t, "15", rep.Composition[2].Value)
		assertDecimal(t, "2.5", rep.Composition[3].Value)
	})

	t.Run("delay vs cost follows record order", func(t *testing.T) {
		require.Len(t, rep.DelayVsCost, 5)
		assert.Equal(t, "O4", rep.DelayVsCost[3].OrderID)
		assertDecimal(t, "40", rep.DelayVsCost[3].TrafficDelayMinutes)
		assertDecimal(t, "200", rep.DelayVsCost[3].TotalCost)
	})
}

func TestFilterEmptyCategoryEqualsPriorityOnly(t *testing.T) {
	e := enrichFixture(t, domain.PolicyExclude)

	byPriority := ApplyFilter(e.Records, domain.Filter{Priorities: []string{"High"}})
	withEmpty := ApplyFilter(e.Records, domain.Filter{Priorities: []string{"High"}, Categories: []string{}})

	assert.Equal(t, []string{"O1", "O3"}, orderIDs(byPriority))
	assert.Equal(t, orderIDs(byPriority), orderIDs(withEmpty))

	both := ApplyFilter(e.Records, domain.Filter{Priorities: []string{"High"}, Categories: []string{"Food"}})
	assert.Equal(t, []string{"O3"}, orderIDs(both))
}

func TestFilterOptionsFirstSeenOrder(t *testing.T) {
	e := enrichFixture(t, domain.PolicyExclude)

	priorities, categories := FilterOptions(e.Records)
	assert.Equal(t, []string{"High", "Low", "Medium"}, priorities)
	assert.Equal(t, []string{"Electronics", "Food"}, categories)
}

func TestDetectLeakage(t *testing.T) {
	tests := []struct {
		name   string
		policy domain.ZeroDistancePolicy
		filter domain.Filter
		want   []string
	}{
		{name: "exclude all orders", policy: domain.PolicyExclude, want: []string{"O4"}},
		{name: "zero all orders", policy: domain.PolicyZero, want: []string{"O1", "O4"}},
		{name: "exclude high priority", policy: domain.PolicyExclude, filter: domain.Filter{Priorities: []string{"High"}}, want: []string{"O1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep, err := Compute(fixtureDataset(), tt.filter, Options{ZeroDistancePolicy: tt.policy})
			require.NoError(t, err)

			got := []string{}
			for _, l := range rep.Leakage {
				got = append(got, l.OrderID)
			}
			assert.Equal(t, tt.want, got)

			// Recompute the definition independently over the filtered records.
			require.True(t, rep.HasLeakageThreshold)
			assert.True(t, rep.LeakageThreshold.Equal(rep.KPIs.MeanCostPerDistance))
			independent := []string{}
			for _, r := range rep.Records {
				if r.HasCostPerDistance && r.CostPerDistance.GreaterThan(rep.LeakageThreshold) {
					independent = append(independent, r.OrderID)
				}
			}
			assert.Equal(t, independent, got)
		})
	}
}

func TestDetectLeakageRowFields(t *testing.T) {
	rep, err := Compute(fixtureDataset(), domain.Filter{}, Options{})
	require.NoError(t, err)

	require.Len(t, rep.Leakage, 1)
	l := rep.Leakage[0]
	assert.Equal(t, "O4", l.OrderID)
	assert.Equal(t, "C", l.Route)
	assertDecimal(t, "20", l.CostPerKM)
	assertDecimal(t, "40", l.TrafficDelayMinutes)
}

func TestDetectLeakageEqualValuesFlagNothing(t *testing.T) {
	records := []domain.MergedRecord{
		{Order: domain.Order{OrderID: "a"}, CostPerDistance: dec("3.3333333333333333"), HasCostPerDistance: true},
		{Order: domain.Order{OrderID: "b"}, CostPerDistance: dec("3.3333333333333333"), HasCostPerDistance: true},
		{Order: domain.Order{OrderID: "c"}, CostPerDistance: dec("3.3333333333333333"), HasCostPerDistance: true},
	}

	_, ok, rows := DetectLeakage(records)
	assert.True(t, ok)
	assert.Empty(t, rows)
}

func TestPipelineReusesEnrichedUntilSourceChanges(t *testing.T) {
	ctx := context.Background()
	src := memsource.New(fixtureDataset())
	cache := &mapCache{}
	p := NewPipeline(src, cache, Options{})

	_, err := p.Report(ctx, domain.Filter{})
	require.NoError(t, err)
	_, err = p.Report(ctx, domain.Filter{Priorities: []string{"High"}})
	require.NoError(t, err)
	assert.Equal(t, 1, src.Loads())

	src.Replace(scenarioDataset(), "v2")
	rep, err := p.Report(ctx, domain.Filter{})
	require.NoError(t, err)
	assert.Equal(t, 2, src.Loads())
	assert.Len(t, rep.Records, 2)
}

func TestPipelineWithoutCacheLoadsEveryTime(t *testing.T) {
	ctx := context.Background()
	src := memsource.New(fixtureDataset())
	p := NewPipeline(src, nil, Options{})

	priorities, categories, err := p.FilterOptions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"High", "Low", "Medium"}, priorities)
	assert.Equal(t, []string{"Electronics", "Food"}, categories)

	_, err = p.Report(ctx, domain.Filter{})
	require.NoError(t, err)
	assert.Equal(t, 2, src.Loads())
}

func TestPipelinePropagatesLoadFailure(t *testing.T) {
	ds := fixtureDataset()
	ds.Routes = nil
	p := NewPipeline(memsource.New(ds), nil, Options{})

	_, err := p.Report(context.Background(), domain.Filter{})
	require.ErrorIs(t, err, domain.ErrSourceMissing)
}

type mapCache struct {
	key   string
	value *domain.Enriched
}

func (c *mapCache) Get(key string) (*domain.Enriched, bool) {
	if c.value == nil || c.key != key {
		return nil, false
	}
	return c.value, true
}

func (c *mapCache) Put(key string, e *domain.Enriched) { c.key, c.value = key, e }

func (c *mapCache) Invalidate() { c.key, c.value = "", nil }
