// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract reads the text of a PDF document with pluggable backends.
// Only the text order matters to the rest of the pipeline; layout, fonts,
// and tables are ignored.
package extract

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/pdiddy/affectations/pkg/types"
)

var (
	// ErrNoText is returned when a document yields no text at all.
	ErrNoText = errors.New("no text extracted from PDF")

	// ErrUnknownBackend is returned by New for an unsupported backend name.
	ErrUnknownBackend = errors.New("unknown extraction backend")
)

// Extractor returns the plain text of the PDF at path, one physical line per
// line of output.
type Extractor interface {
	Extract(ctx context.Context, path string) (string, error)
}

// New returns the extractor selected by cfg.Backend. An empty backend selects
// ledongthuc.
func New(cfg types.AnalysisConfig) (Extractor, error) {
	switch cfg.Backend {
	case types.BackendLedongthuc, "":
		return &LedongthucExtractor{}, nil
	case types.BackendDslipak:
		return &DslipakExtractor{}, nil
	case types.BackendPdftotext:
		return NewPdftotextExtractor(cfg.PdftotextPath), nil
	default:
		return nil, fmt.Errorf("%w: %q (use ledongthuc, dslipak, or pdftotext)", ErrUnknownBackend, cfg.Backend)
	}
}

// normalize composes accents (NFC) so that "é" written as "e" plus a
// combining accent matches the specialty and city names, and turns page
// breaks into line breaks.
func normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\f", "\n")
	return norm.NFC.String(text)
}

func checkText(text, path string) (string, error) {
	text = normalize(text)
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%s: %w", path, ErrNoText)
	}
	return text, nil
}
