// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"math"
	"strings"
)

// lineTolerance is the vertical distance, in points, under which two glyphs
// belong to the same physical line.
const lineTolerance = 1.0

// glyph is one shown character and its baseline.
type glyph struct {
	y float64
	s string
}

// joinLines concatenates glyphs in content-stream order and starts a new line
// whenever the baseline moves.
func joinLines(glyphs []glyph) string {
	var b strings.Builder
	for i, g := range glyphs {
		if i > 0 && math.Abs(g.y-glyphs[i-1].y) > lineTolerance {
			b.WriteByte('\n')
		}
		b.WriteString(g.s)
	}
	return b.String()
}

// pageText runs content and joins its glyphs. Both PDF libraries panic on
// malformed content streams; the panic is returned as an error.
func pageText(page int, content func() []glyph) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("page %d: malformed content: %v", page, r)
		}
	}()
	return joinLines(content()), nil
}
