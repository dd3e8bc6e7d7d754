// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package stats aggregates the placement records of one year into global and
// per-city counts relative to a rank threshold.
package stats

import (
	"github.com/pdiddy/affectations/internal/order"
	"github.com/pdiddy/affectations/pkg/types"
)

// Result is the aggregation of one year's records.
type Result struct {
	// Records are the aggregated records, in document order.
	Records []types.Record

	// FromRank is the threshold: a record is remaining when Rank >= FromRank.
	FromRank int

	Global  types.CityYearStat
	PerCity map[string]types.CityYearStat
}

// FilterSpecialty returns the records of specialty, preserving order.
func FilterSpecialty(records []types.Record, specialty types.Specialty) []types.Record {
	var out []types.Record
	for _, r := range records {
		if r.Specialty == specialty {
			out = append(out, r)
		}
	}
	return out
}

// Aggregate counts records globally and per city. The global stat of an
// empty record list has a zero total and a NaN percentage.
func Aggregate(records []types.Record, fromRank int) Result {
	type counts struct{ remaining, total int }

	perCity := make(map[string]*counts)
	var global counts
	for _, r := range records {
		c, ok := perCity[r.City]
		if !ok {
			c = &counts{}
			perCity[r.City] = c
		}
		c.total++
		global.total++
		if r.Rank >= fromRank {
			c.remaining++
			global.remaining++
		}
	}

	res := Result{
		Records:  records,
		FromRank: fromRank,
		Global:   types.NewCityYearStat(global.remaining, global.total),
		PerCity:  make(map[string]types.CityYearStat, len(perCity)),
	}
	for city, c := range perCity {
		res.PerCity[city] = types.NewCityYearStat(c.remaining, c.total)
	}
	return res
}

// Cities returns the cities of the result in French collation order.
func (r Result) Cities() []string {
	return order.Keys(r.PerCity)
}

// LastRank returns the rank of the last record, or zero when there is none.
func (r Result) LastRank() int {
	if len(r.Records) == 0 {
		return 0
	}
	return r.Records[len(r.Records)-1].Rank
}

// Summary returns the summary row of year. It reports false when there are
// no records, since a summary needs a positive total.
func (r Result) Summary(year int) (types.SummaryRow, bool) {
	if r.Global.Total == 0 {
		return types.SummaryRow{}, false
	}
	return types.SummaryRow{
		Year:       year,
		Total:      r.Global.Total,
		Remaining:  r.Global.Remaining,
		Percentage: r.Global.Percentage,
		LastRank:   r.LastRank(),
	}, true
}
