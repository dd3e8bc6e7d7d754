// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package parse turns the raw text of a yearly placement document into
// placement records. Records in the document start with an ordinal number and
// end with a period, but the text extractor wraps them over several physical
// lines; Reconstruct joins the fragments back into logical lines before
// Classifier inspects them.
package parse

import (
	"regexp"
	"strings"
)

// ordinalPrefix matches the leading "12. " or "12 " of a record line.
var ordinalPrefix = regexp.MustCompile(`^(\d+)\.?\s+`)

// Reconstruct splits text into logical lines. A physical line starting with
// an ordinal opens a new logical line; other lines are appended to the one
// under construction. A logical line is closed as soon as it ends with a
// period. Blank lines are dropped and nothing else is lost: an unterminated
// line at the end of the text is returned as is.
//
// Text met outside any record (headings, page footers) becomes a logical line
// of its own. Such lines have no ordinal prefix and never classify as records.
func Reconstruct(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var (
		lines   []string
		current string
	)
	flush := func() {
		if current != "" {
			lines = append(lines, current)
			current = ""
		}
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		switch {
		case ordinalPrefix.MatchString(line):
			flush()
			current = line
		case current == "":
			current = line
		case strings.HasSuffix(current, " "):
			current += line
		default:
			current += " " + line
		}

		if strings.HasSuffix(current, ".") {
			flush()
		}
	}
	flush()

	return lines
}
