// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history holds the multi-year statistics persisted between runs.
// A Snapshot is loaded in full, the current year is merged into it, and the
// whole snapshot is written back; the package itself does no I/O.
package history

import (
	"github.com/pdiddy/affectations/internal/order"
	"github.com/pdiddy/affectations/pkg/types"
)

// Snapshot is the in-memory form of every year processed so far: per-city
// statistics by year and one summary row per year.
type Snapshot struct {
	Cities  map[string]map[int]types.CityYearStat
	Summary map[int]types.SummaryRow
}

// NewSnapshot returns an empty snapshot.
func NewSnapshot() Snapshot {
	return Snapshot{
		Cities:  make(map[string]map[int]types.CityYearStat),
		Summary: make(map[int]types.SummaryRow),
	}
}

// Clone returns a deep copy of s.
func (s Snapshot) Clone() Snapshot {
	out := NewSnapshot()
	for city, years := range s.Cities {
		cp := make(map[int]types.CityYearStat, len(years))
		for y, st := range years {
			cp[y] = st
		}
		out.Cities[city] = cp
	}
	for y, row := range s.Summary {
		out.Summary[y] = row
	}
	return out
}

// Set records the stat of city for year, replacing any previous value.
func (s Snapshot) Set(city string, year int, st types.CityYearStat) {
	years, ok := s.Cities[city]
	if !ok {
		years = make(map[int]types.CityYearStat)
		s.Cities[city] = years
	}
	years[year] = st
}

// MergeYear returns a copy of s in which year carries perCity and summary.
// Existing values for that year are overwritten; no city or year is ever
// removed, so merging the same year twice is the same as merging it once.
func (s Snapshot) MergeYear(year int, perCity map[string]types.CityYearStat, summary types.SummaryRow) Snapshot {
	out := s.Clone()
	for city, st := range perCity {
		out.Set(city, year, st)
	}
	summary.Year = year
	out.Summary[year] = summary
	return out
}

// Years returns every year that has per-city data, ascending.
func (s Snapshot) Years() []int {
	seen := make(map[int]struct{})
	for _, years := range s.Cities {
		for y := range years {
			seen[y] = struct{}{}
		}
	}
	return sortedYears(seen)
}

// SummaryYears returns the years of the summary table, ascending.
func (s Snapshot) SummaryYears() []int {
	return sortedYears(s.Summary)
}

// CityNames returns every city with data, in French collation order.
func (s Snapshot) CityNames() []string {
	return order.Keys(s.Cities)
}

// Stat returns the stat of city for year.
func (s Snapshot) Stat(city string, year int) (types.CityYearStat, bool) {
	st, ok := s.Cities[city][year]
	return st, ok
}
