package services

import (
	"cost-intelligence-service/internal/adapters/memsource"
	"cost-intelligence-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinPreservesOrderCardinality(t *testing.T) {
	ds := fixtureDataset()

	j, err := Join(ds)
	require.NoError(t, err)

	require.Len(t, j.Rows, len(ds.Orders.Rows))
	for i, row := range j.Rows {
		assert.Equal(t, ds.Orders.Rows[i][0], row.Cells[0], "row %d keeps order position", i)
		assert.Len(t, row.Cells, len(j.Columns))
	}

	wantCols := append([]string{
		domain.ColOrderID, domain.ColPriority, domain.ColProductCategory,
		domain.ColRoute, domain.ColDistanceKM,
		domain.ColTrafficDelay,
	}, domain.CostColumns...)
	assert.Equal(t, wantCols, j.Columns)
}

func TestJoinFirstDuplicateWins(t *testing.T) {
	j, err := Join(fixtureDataset())
	require.NoError(t, err)

	o1 := j.Rows[0]
	assert.Equal(t, "A", o1.Cells[3])
	assert.Equal(t, "10", o1.Cells[4])
}

func TestJoinMarksUnmatchedSources(t *testing.T) {
	j, err := Join(fixtureDataset())
	require.NoError(t, err)

	assert.Empty(t, j.Rows[0].Unmatched)
	assert.Empty(t, j.Rows[2].Unmatched, "empty cells are not a missing row")
	assert.Equal(t, []string{domain.SourceRoutes, domain.SourceDelivery, domain.SourceCosts}, j.Rows[4].Unmatched)
	for _, c := range j.Rows[4].Cells[3:] {
		assert.Equal(t, "", c, "unmatched cells stay null until filled")
	}
}

func TestJoinRenamesCollidingColumns(t *testing.T) {
	ds := scenarioDataset()
	ds.Routes = memsource.NewTable(domain.SourceRoutes,
		[]string{domain.ColOrderID, domain.ColRoute, domain.ColDistanceKM, "Notes"},
		[]string{"O1", "A", "10", "route note"},
	)
	ds.Deliveries = memsource.NewTable(domain.SourceDelivery,
		[]string{domain.ColOrderID, domain.ColTrafficDelay, "Notes"},
		[]string{"O1", "3", "delivery note"},
	)

	j, err := Join(ds)
	require.NoError(t, err)

	assert.Contains(t, j.Columns, "Notes")
	assert.Contains(t, j.Columns, "Notes_delivery")
	assert.Equal(t, "delivery note", j.Rows[0].Cells[indexOf(j.Columns, "Notes_delivery")])
}

func TestJoinRejectsMissingColumn(t *testing.T) {
	ds := scenarioDataset()
	ds.Costs = memsource.NewTable(domain.SourceCosts, []string{domain.ColOrderID, domain.ColFuelCost})

	_, err := Join(ds)
	require.ErrorIs(t, err, domain.ErrMissingColumn)
}

func TestJoinRejectsNilDataset(t *testing.T) {
	_, err := Join(nil)
	require.ErrorIs(t, err, domain.ErrNilDataset)
}

func indexOf(cols []string, name string) int {
	for i, c := range cols {
		if c == name {
			return i
		}
	}
	return -1
}
