// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"context"
	"fmt"
	"strings"

	lpdf "github.com/ledongthuc/pdf"
)

// LedongthucExtractor extracts text page by page with github.com/ledongthuc/pdf.
type LedongthucExtractor struct{}

// Extract implements Extractor.
func (e *LedongthucExtractor) Extract(ctx context.Context, path string) (string, error) {
	f, r, err := lpdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening PDF %s: %w", path, err)
	}
	defer f.Close()

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
