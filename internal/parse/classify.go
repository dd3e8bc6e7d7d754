// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/affectations/pkg/types"
)

// CityResolver finds the city named in a record line.
type CityResolver interface {
	Resolve(text string) (string, bool)
}

// Outcome tells why Classify accepted or rejected a line.
type Outcome int

const (
	// Accepted means the line produced a record.
	Accepted Outcome = iota
	// NotARecord means the line lacks the ordinal prefix or the final period.
	NotARecord
	// NoSpecialty means the line names none of the known specialties.
	NoSpecialty
	// NoCity means the line looks like a record but names no known city.
	NoCity
)

// Classifier decides whether a logical line is a placement record.
type Classifier struct {
	cities CityResolver
	log    *zap.Logger
}

// NewClassifier returns a classifier resolving cities with r. Unresolved
// cities are reported on log; a nil log discards them.
func NewClassifier(r CityResolver, log *zap.Logger) *Classifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &Classifier{cities: r, log: log}
}

// Classify extracts a record from line. Lines that are not records are
// rejected silently, except for record lines whose city is unknown: those are
// logged so the city list can be extended.
func (c *Classifier) Classify(line string) (types.Record, Outcome) {
	m := ordinalPrefix.FindStringSubmatch(line)
	if m == nil || !strings.HasSuffix(line, ".") {
		return types.Record{}, NotARecord
	}

	rank, err := strconv.Atoi(m[1])
	if err != nil {
		// Only reachable for digit runs that overflow an int.
		return types.Record{}, NotARecord
	}

	specialty, ok := findSpecialty(line)
	if !ok {
		return types.Record{}, NoSpecialty
	}

	city, ok := c.cities.Resolve(line)
	if !ok {
		c.log.Warn("city not found in record line", zap.Int("rank", rank), zap.String("line", line))
		return types.Record{}, NoCity
	}

	return types.Record{Rank: rank, Specialty: specialty, City: city}, Accepted
}

func findSpecialty(line string) (types.Specialty, bool) {
	for _, s := range types.Specialties {
		if strings.Contains(line, string(s)) {
			return s, true
		}
	}
	return "", false
}
