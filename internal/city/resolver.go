// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package city

import "strings"

// Paris is returned for AP-HP facilities, whose descriptions rarely spell
// out the city on its own.
const Paris = "Paris"

// aphpAlias is the facility name checked before the city list.
const aphpAlias = "Assistance publique-hôpitaux de Paris"

// DefaultCities is the built-in list of university hospital cities, in match
// order.
var DefaultCities = []string{
	"Paris",
	"Montpellier",
	"Toulouse",
	"Lyon",
	"Marseille",
	"Lille",
	"Bordeaux",
	"Strasbourg",
	"Nantes",
	"Rennes",
	"Rouen",
	"Nancy",
	"Reims",
	"Dijon",
	"Poitiers",
	"Clermont-Ferrand",
	"Besançon",
	"Amiens",
	"Grenoble",
	"Tours",
	"Angers",
	"Saint-Étienne",
	"Caen",
	"Limoges",
	"Nice",
	"Brest",
}

// Resolver maps record text to a known city.
type Resolver struct {
	cities *Set
}

// NewResolver returns a resolver over DefaultCities followed by extra.
func NewResolver(extra ...string) *Resolver {
	s := NewSet(DefaultCities...)
	for _, c := range extra {
		s.Add(strings.TrimSpace(c))
	}
	return &Resolver{cities: s}
}

// Resolve returns the first known city contained in text. The AP-HP alias
// always resolves to Paris.
func (r *Resolver) Resolve(text string) (string, bool) {
	if strings.Contains(text, aphpAlias) {
		return Paris, true
	}
	for _, c := range r.cities.names {
		if strings.Contains(text, c) {
			return c, true
		}
	}
	return "", false
}

// Add registers a new city at the end of the match order. It reports whether
// the city was new.
func (r *Resolver) Add(name string) bool {
	return r.cities.Add(strings.TrimSpace(name))
}

// Cities returns the known cities in match order.
func (r *Resolver) Cities() []string {
	return r.cities.Names()
}
