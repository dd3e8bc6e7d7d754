// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCities(t *testing.T) {
	names := []string{"Saint-Étienne", "Strasbourg", "Besançon", "Brest", "Amiens", "Saint-Denis", "Bordeaux"}
	Cities(names)
	assert.Equal(t, []string{"Amiens", "Besançon", "Bordeaux", "Brest", "Saint-Denis", "Saint-Étienne", "Strasbourg"}, names)
}

func TestKeys(t *testing.T) {
	m := map[string]int{"Lyon": 1, "Caen": 2, "Évry": 3, "Amiens": 4}
	assert.Equal(t, []string{"Amiens", "Caen", "Évry", "Lyon"}, Keys(m))
	assert.Empty(t, Keys(map[string]int{}))
}
