// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ExtractionBackend identifies the PDF text extraction implementation.
type ExtractionBackend string

const (
	BackendLedongthuc ExtractionBackend = "ledongthuc"
	BackendDslipak    ExtractionBackend = "dslipak"
	BackendPdftotext  ExtractionBackend = "pdftotext"
)

// AnalysisConfig holds the settings of an analysis run.
type AnalysisConfig struct {
	// InputDir holds the yearly source documents (affectations_<year>.pdf).
	InputDir string `json:"input_dir" yaml:"input_dir" mapstructure:"input_dir"`

	// OutputDir receives the text reports, the CSV history, and the workbook.
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`

	// Specialty selects which records are aggregated (default "biologie médicale").
	Specialty Specialty `json:"specialty" yaml:"specialty" mapstructure:"specialty"`

	// Backend selects the text extractor: ledongthuc, dslipak, or pdftotext.
	Backend ExtractionBackend `json:"backend" yaml:"backend" mapstructure:"backend"`

	// PdftotextPath is the pdftotext binary used by the pdftotext backend.
	PdftotextPath string `json:"pdftotext_path" yaml:"pdftotext_path" mapstructure:"pdftotext_path"`

	// Cities lists city names appended to the built-in list, in match order.
	Cities []string `json:"cities,omitempty" yaml:"cities,omitempty" mapstructure:"cities"`

	// LogLevel is the zap level name (debug, info, warn, error).
	LogLevel string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
}

// DefaultAnalysisConfig returns the settings used when neither a config file
// nor flags override them.
func DefaultAnalysisConfig() AnalysisConfig {
	return AnalysisConfig{
		InputDir:      "input",
		OutputDir:     "output",
		Specialty:     SpecialtyBiology,
		Backend:       BackendLedongthuc,
		PdftotextPath: "pdftotext",
		LogLevel:      "info",
	}
}
