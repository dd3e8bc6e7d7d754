// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the affectations pipeline:
// placement records extracted from the yearly PDF, the per-city and per-year
// statistics derived from them, and the run configuration.
package types

// Specialty names a medical specialty as it appears verbatim in the source
// document.
type Specialty string

const (
	SpecialtyBiology  Specialty = "biologie médicale"
	SpecialtyPharmacy Specialty = "pharmacie hospitalière"
)

// Specialties lists the recognised specialties in match order. A line that
// mentions both is attributed to the first.
var Specialties = []Specialty{SpecialtyBiology, SpecialtyPharmacy}

// Record is one ranked candidate's placement: the rank, the specialty, and
// the city of the assigned post.
type Record struct {
	// Rank is the candidate's position in the national ranking (1-based).
	Rank int `json:"rank" yaml:"rank"`

	// Specialty is the specialty phrase found in the record line.
	Specialty Specialty `json:"specialty" yaml:"specialty"`

	// City is the resolved city name (one of the known cities).
	City string `json:"city" yaml:"city"`
}
