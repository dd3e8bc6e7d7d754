// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "math"

// CityYearStat holds the placement counts for one city (or globally) in one
// year. A placement is "remaining" when its rank is at or above the rank
// threshold of the run.
type CityYearStat struct {
	Remaining  int     `json:"remaining" yaml:"remaining"`
	Total      int     `json:"total" yaml:"total"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
}

// NewCityYearStat builds a stat and derives its percentage. A zero total has
// no meaningful percentage and yields NaN.
func NewCityYearStat(remaining, total int) CityYearStat {
	return CityYearStat{
		Remaining:  remaining,
		Total:      total,
		Percentage: Percentage(remaining, total),
	}
}

// Valid reports whether the stat satisfies 0 <= Remaining <= Total and Total > 0.
func (s CityYearStat) Valid() bool {
	return s.Total > 0 && s.Remaining >= 0 && s.Remaining <= s.Total
}

// Percentage returns part/total*100, or NaN when total is zero.
func Percentage(part, total int) float64 {
	if total == 0 {
		return math.NaN()
	}
	return float64(part) / float64(total) * 100
}

// SummaryRow is the global outcome of one processed year.
type SummaryRow struct {
	Year       int     `json:"year" yaml:"year"`
	Total      int     `json:"total" yaml:"total"`
	Remaining  int     `json:"remaining" yaml:"remaining"`
	Percentage float64 `json:"percentage" yaml:"percentage"`

	// LastRank is the rank of the last record of the year. Zero means the
	// value is unknown (rows written before the column existed).
	LastRank int `json:"last_rank,omitempty" yaml:"last_rank,omitempty"`
}

// EvolutionMetrics summarises how a city's remaining-place percentage moved
// across the years on record.
type EvolutionMetrics struct {
	// AverageEvolution is the mean year-over-year percentage change.
	AverageEvolution float64 `json:"average_evolution" yaml:"average_evolution"`

	// RecentTrend is the percentage change across the last three years on record.
	RecentTrend float64 `json:"recent_trend" yaml:"recent_trend"`

	MinRemaining int `json:"min_remaining" yaml:"min_remaining"`
	MaxRemaining int `json:"max_remaining" yaml:"max_remaining"`

	// Volatility is the population standard deviation of the yearly changes.
	Volatility float64 `json:"volatility" yaml:"volatility"`

	// StabilityScore is higher for steadier cities. It is not clamped and
	// can be negative.
	StabilityScore float64 `json:"stability_score" yaml:"stability_score"`
}
