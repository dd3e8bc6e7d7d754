// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import "sort"

func sortedYears[V any](m map[int]V) []int {
	years := make([]int, 0, len(m))
	for y := range m {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}
