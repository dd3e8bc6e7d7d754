// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package order sorts city names the way every report lists them: French
// collation, so accented names sort with their base letter.
package order

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Cities sorts names in French collation order ("Besançon" before
// "Bordeaux", "Saint-Étienne" among the S).
func Cities(names []string) {
	c := collate.New(language.French)
	sort.SliceStable(names, func(i, j int) bool {
		return c.CompareString(names[i], names[j]) < 0
	})
}

// Keys returns the keys of m in French collation order.
func Keys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	Cities(names)
	return names
}
