// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/affectations/internal/history"
	"github.com/pdiddy/affectations/pkg/types"
)

// ExportCity holds the history of one city for export.
type ExportCity struct {
	City      string                  `json:"city" yaml:"city"`
	Years     []ExportYear            `json:"years" yaml:"years"`
	Evolution *types.EvolutionMetrics `json:"evolution,omitempty" yaml:"evolution,omitempty"`
}

// ExportYear is one year of a city's history.
type ExportYear struct {
	Year               int `json:"year" yaml:"year"`
	types.CityYearStat `yaml:",inline"`
}

// ExportDocument is the full history written by ExportYAML and ExportJSON.
type ExportDocument struct {
	Cities  []ExportCity       `json:"cities" yaml:"cities"`
	Summary []types.SummaryRow `json:"summary" yaml:"summary"`
}

// NewExportDocument flattens snap into cities in collation order, each with
// its years ascending and its evolution metrics when it has two years or more.
func NewExportDocument(snap history.Snapshot) ExportDocument {
	doc := ExportDocument{
		Cities:  []ExportCity{},
		Summary: []types.SummaryRow{},
	}
	for _, city := range snap.CityNames() {
		ec := ExportCity{City: city}
		for _, y := range snap.Years() {
			if st, ok := snap.Stat(city, y); ok {
				ec.Years = append(ec.Years, ExportYear{Year: y, CityYearStat: st})
			}
		}
		if m, ok := snap.Evolution(city); ok {
			ec.Evolution = &m
		}
		doc.Cities = append(doc.Cities, ec)
	}
	for _, y := range snap.SummaryYears() {
		doc.Summary = append(doc.Summary, snap.Summary[y])
	}
	return doc
}

// ExportYAML writes the history to historique.yaml in dir and returns the path.
func ExportYAML(snap history.Snapshot, dir string) (string, error) {
	data, err := yaml.Marshal(NewExportDocument(snap))
	if err != nil {
		return "", fmt.Errorf("marshaling YAML: %w", err)
	}
	path := filepath.Join(dir, ExportBase+".yaml")
	return path, writeFileAtomic(path, data)
}

// ExportJSON writes the history to historique.json in dir and returns the path.
func ExportJSON(snap history.Snapshot, dir string) (string, error) {
	data, err := json.MarshalIndent(NewExportDocument(snap), "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling JSON: %w", err)
	}
	path := filepath.Join(dir, ExportBase+".json")
	return path, writeFileAtomic(path, data)
}
