// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"go.uber.org/zap"

	"github.com/pdiddy/affectations/pkg/types"
)

// Result holds the records found in a document and the counts of the lines
// that were examined.
type Result struct {
	Records []types.Record

	// Lines is the number of logical lines after reconstruction.
	Lines int

	// Unresolved counts record lines dropped because no city matched.
	Unresolved int
}

// Parser runs reconstruction and classification over a whole document.
type Parser struct {
	classifier *Classifier
	log        *zap.Logger
}

// NewParser returns a parser resolving cities with r.
func NewParser(r CityResolver, log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{classifier: NewClassifier(r, log), log: log}
}

// Parse returns the records of text in document order.
func (p *Parser) Parse(text string) Result {
	lines := Reconstruct(text)
	res := Result{Lines: len(lines)}

	for _, line := range lines {
		rec, outcome := p.classifier.Classify(line)
		switch outcome {
		case Accepted:
			res.Records = append(res.Records, rec)
		case NoCity:
			res.Unresolved++
		}
	}

	p.log.Info("document parsed",
		zap.Int("lines", res.Lines),
		zap.Int("records", len(res.Records)),
		zap.Int("unresolved", res.Unresolved),
	)
	return res
}
