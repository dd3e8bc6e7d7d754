// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package stats

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/affectations/pkg/types"
)

func rec(rank int, city string) types.Record {
	return types.Record{Rank: rank, Specialty: types.SpecialtyBiology, City: city}
}

func TestAggregate_Global(t *testing.T) {
	records := []types.Record{rec(1, "Lyon"), rec(5, "Lyon"), rec(10, "Caen")}

	res := Aggregate(records, 5)

	assert.Equal(t, 3, res.Global.Total)
	assert.Equal(t, 2, res.Global.Remaining)
	assert.Equal(t, "66.7", fmt.Sprintf("%.1f", res.Global.Percentage))
	assert.Equal(t, records, res.Records)
	assert.Equal(t, 5, res.FromRank)
}

func TestAggregate_PerCity(t *testing.T) {
	records := []types.Record{
		rec(3, "Paris"), rec(40, "Lyon"), rec(52, "Paris"),
		rec(60, "Brest"), rec(75, "Paris"), rec(12, "Lyon"),
	}

	res := Aggregate(records, 50)

	require.Len(t, res.PerCity, 3)
	assert.Equal(t, types.NewCityYearStat(2, 3), res.PerCity["Paris"])
	assert.Equal(t, types.NewCityYearStat(0, 2), res.PerCity["Lyon"])
	assert.Equal(t, types.NewCityYearStat(1, 1), res.PerCity["Brest"])
	assert.Equal(t, []string{"Brest", "Lyon", "Paris"}, res.Cities())
	assert.InDelta(t, 0, res.PerCity["Lyon"].Percentage, 1e-9)
	assert.InDelta(t, 100, res.PerCity["Brest"].Percentage, 1e-9)
}

func TestAggregate_ThresholdIsInclusive(t *testing.T) {
	res := Aggregate([]types.Record{rec(99, "Nice"), rec(100, "Nice")}, 100)
	assert.Equal(t, 1, res.Global.Remaining)
}

func TestAggregate_Empty(t *testing.T) {
	res := Aggregate(nil, 10)

	assert.Equal(t, 0, res.Global.Total)
	assert.True(t, math.IsNaN(res.Global.Percentage))
	assert.Empty(t, res.PerCity)
	assert.Equal(t, 0, res.LastRank())

	_, ok := res.Summary(2024)
	assert.False(t, ok)
}

func TestSummary(t *testing.T) {
	res := Aggregate([]types.Record{rec(1, "Lyon"), rec(5, "Lyon"), rec(10, "Caen")}, 5)

	row, ok := res.Summary(2024)
	require.True(t, ok)
	assert.Equal(t, 2024, row.Year)
	assert.Equal(t, 3, row.Total)
	assert.Equal(t, 2, row.Remaining)
	assert.Equal(t, 10, row.LastRank)
	assert.InDelta(t, 200.0/3, row.Percentage, 1e-9)
}

func TestFilterSpecialty(t *testing.T) {
	records := []types.Record{
		rec(1, "Lyon"),
		{Rank: 2, Specialty: types.SpecialtyPharmacy, City: "Caen"},
		rec(3, "Nice"),
	}

	got := FilterSpecialty(records, types.SpecialtyBiology)
	assert.Equal(t, []types.Record{rec(1, "Lyon"), rec(3, "Nice")}, got)

	assert.Empty(t, FilterSpecialty(records, types.Specialty("chirurgie")))
}
