package tariff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tarifa/internal/modules/places"
)

func TestBuildCityIndex_DeduplicatesAndInjectsVirtual(t *testing.T) {
	rows := []Row{
		{Destination: "Reynosa", State: "Tamaulipas", DistanceKm: 220, Prices: fullPrices(1)},
		{Destination: "REYNOSA", State: "Tamaulipas", DistanceKm: 221, Prices: fullPrices(2)},
		{Destination: "Guadalupe", State: "Nuevo León", DistanceKm: 9, Prices: fullPrices(3)},
		{Destination: "Guadalupe", State: "Zacatecas", DistanceKm: 460, Prices: fullPrices(4)},
	}
	table, err := NewTable(rows)
	require.NoError(t, err)

	all := BuildCityIndex(table.Entries()).All()
	require.Len(t, all, 4)

	assert.Equal(t, "Reynosa", all[0].City)
	assert.Equal(t, places.NuevoLeon, all[1].State)
	assert.Equal(t, places.Zacatecas, all[2].State)

	capital := all[3]
	assert.True(t, capital.Virtual)
	assert.Equal(t, places.CiudadDeMexico, capital.State)
	assert.Equal(t, "ciudad de mexico", capital.NormalizedCity)
	assert.Contains(t, capital.Aliases, "cdmx")
	assert.True(t, capital.ManualQuote)
	assert.False(t, all[0].ManualQuote)
}

func TestBuildCityIndex_VirtualNotDuplicatedWhenTabled(t *testing.T) {
	table, err := NewTable([]Row{
		{Destination: "Ciudad de México", State: "Ciudad de México", DistanceKm: 915, Prices: fullPrices(1)},
	})
	require.NoError(t, err)

	all := BuildCityIndex(table.Entries()).All()
	require.Len(t, all, 1)
	assert.False(t, all[0].Virtual)
	assert.False(t, all[0].ManualQuote)
}

func TestSearch(t *testing.T) {
	ix := BuildCityIndex(MustDefaultTable().Entries())

	res := ix.Search("rey", "")
	require.NotEmpty(t, res)
	assert.LessOrEqual(t, len(res), MaxSearchResults)
	for _, c := range res {
		assert.Contains(t, c.NormalizedCity, "rey")
	}

	assert.Empty(t, ix.Search("r", ""))
	assert.Empty(t, ix.Search("  ", ""))
	assert.Empty(t, ix.Search("zzzz", ""))
}

func TestSearch_CapAndOrder(t *testing.T) {
	ix := BuildCityIndex(MustDefaultTable().Entries())

	// "an" appears in at least ten destinations.
	res := ix.Search("an", "")
	assert.Len(t, res, MaxSearchResults)

	var want []string
	for _, c := range ix.All() {
		if strings.Contains(c.NormalizedCity, "an") || anyContains(c.Aliases, "an") {
			want = append(want, c.City+"|"+c.State.String())
		}
	}
	require.GreaterOrEqual(t, len(want), MaxSearchResults)
	for i, c := range res {
		assert.Equal(t, want[i], c.City+"|"+c.State.String())
	}
}

func TestSearch_StateFilter(t *testing.T) {
	ix := BuildCityIndex(MustDefaultTable().Entries())

	res := ix.Search("guadalupe", "Zacatecas")
	require.Len(t, res, 1)
	assert.Equal(t, places.Zacatecas, res[0].State)

	res = ix.Search("guadalupe", "")
	assert.Len(t, res, 2)

	assert.Empty(t, ix.Search("guadalupe", "Atlantis"))
	assert.Empty(t, ix.Search("reynosa", "Nuevo León"))
}

func TestSearch_VirtualCapitalByAlias(t *testing.T) {
	ix := BuildCityIndex(MustDefaultTable().Entries())

	for _, q := range []string{"cdmx", "CDM", "México D.F.", "ciudad de mex"} {
		res := ix.Search(q, "")
		require.NotEmpty(t, res, q)
		found := false
		for _, c := range res {
			if c.Virtual && c.State == places.CiudadDeMexico {
				found = true
			}
		}
		assert.True(t, found, "query %q", q)
	}
}

func TestSearch_Deterministic(t *testing.T) {
	ix := BuildCityIndex(MustDefaultTable().Entries())
	first := ix.Search("ci", "")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ix.Search("ci", ""))
	}
}

func TestSearch_ResultsAreCopies(t *testing.T) {
	ix := BuildCityIndex(MustDefaultTable().Entries())
	res := ix.Search("cdmx", "")
	require.NotEmpty(t, res)
	res[0].Aliases[0] = "changed"

	again := ix.Search("cdmx", "")
	assert.Equal(t, "cdmx", again[0].Aliases[0])
}

func anyContains(values []string, q string) bool {
	for _, v := range values {
		if strings.Contains(v, q) {
			return true
		}
	}
	return false
}
