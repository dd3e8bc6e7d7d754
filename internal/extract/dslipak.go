// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"context"
	"fmt"
	"strings"

	dpdf "github.com/dslipak/pdf"
)

// DslipakExtractor extracts text page by page with github.com/dslipak/pdf.
type DslipakExtractor struct{}

// Extract implements Extractor.
func (e *DslipakExtractor) Extract(ctx context.Context, path string) (string, error) {
	r, err := dpdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening PDF %s: %w", path, err)
	}

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := pageText(i, func() []glyph {
			texts := p.Content().Text
			glyphs := make([]glyph, len(texts))
			for j, t := range texts {
				glyphs[j] = glyph{y: t.Y, s: t.S}
			}
			return glyphs
		})
		if err != nil {
			return "", fmt.Errorf("extracting %s: %w", path, err)
		}
		b.WriteString(text)
		b.WriteString("\n")
	}

	return checkText(b.String(), path)
}
