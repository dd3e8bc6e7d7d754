// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"math"

	"github.com/pdiddy/affectations/pkg/types"
)

// recentWindow is the number of most recent years used for the trend.
const recentWindow = 3

// Evolution derives the evolution metrics of city. It reports false when the
// city has fewer than two years on record.
//
// Years are taken in ascending order and only where the city has data: a gap
// year is skipped, so the change across the gap counts as a single step.
func (s Snapshot) Evolution(city string) (types.EvolutionMetrics, bool) {
	byYear := s.Cities[city]
	if len(byYear) < 2 {
		return types.EvolutionMetrics{}, false
	}

	years := sortedYears(byYear)
	percentages := make([]float64, len(years))
	remaining := make([]int, len(years))
	for i, y := range years {
		percentages[i] = byYear[y].Percentage
		remaining[i] = byYear[y].Remaining
	}

	changes := make([]float64, len(percentages)-1)
	for i := 1; i < len(percentages); i++ {
		changes[i-1] = percentages[i] - percentages[i-1]
	}

	avg := mean(changes)
	minRem, maxRem := extrema(remaining)
	volatility := stddev(changes, avg)

	return types.EvolutionMetrics{
		AverageEvolution: avg,
		RecentTrend:      recentTrend(percentages),
		MinRemaining:     minRem,
		MaxRemaining:     maxRem,
		Volatility:       volatility,
		StabilityScore:   stabilityScore(volatility, avg, minRem, maxRem),
	}, true
}

// EvolutionAll returns the metrics of every city with at least two years.
func (s Snapshot) EvolutionAll() map[string]types.EvolutionMetrics {
	out := make(map[string]types.EvolutionMetrics)
	for city := range s.Cities {
		if m, ok := s.Evolution(city); ok {
			out[city] = m
		}
	}
	return out
}

func recentTrend(percentages []float64) float64 {
	recent := percentages
	if len(recent) > recentWindow {
		recent = recent[len(recent)-recentWindow:]
	}
	if len(recent) < 2 {
		return 0
	}
	return recent[len(recent)-1] - recent[0]
}

// stabilityScore penalises volatility, drift, and spread of the remaining
// counts. The spread term is zero when no year had any remaining place.
func stabilityScore(volatility, avg float64, minRem, maxRem int) float64 {
	spread := 0.0
	if maxRem != 0 {
		spread = math.Abs(float64(maxRem-minRem)) / float64(maxRem) * 20
	}
	return 100 - (volatility*10 + math.Abs(avg)*2 + spread)
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// stddev is the population standard deviation of xs around m.
func stddev(xs []float64, m float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var acc float64
	for _, x := range xs {
		acc += (x - m) * (x - m)
	}
	return math.Sqrt(acc / float64(len(xs)))
}

func extrema(xs []int) (lo, hi int) {
	lo, hi = xs[0], xs[0]
	for _, x := range xs[1:] {
		lo = min(lo, x)
		hi = max(hi, x)
	}
	return lo, hi
}
