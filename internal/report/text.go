// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pdiddy/affectations/internal/stats"
	"github.com/pdiddy/affectations/pkg/types"
)

// WriteText renders the yearly text report: every record, the global
// statistics, then the statistics of each city.
func WriteText(w io.Writer, year int, specialty types.Specialty, res stats.Result) error {
	var b strings.Builder

	title := fmt.Sprintf("Analyse des affectations en %s - Année %d", specialty, year)
	fmt.Fprintf(&b, "%s\n%s\n\n", title, strings.Repeat("=", 42))

	b.WriteString("Liste des affectations :\n")
	b.WriteString("------------------------\n")
	for _, r := range res.Records {
		fmt.Fprintf(&b, "%d - %s\n", r.Rank, r.City)
	}
	b.WriteString("\n")

	b.WriteString("Statistiques globales :\n")
	b.WriteString("----------------------\n")
	fmt.Fprintf(&b, "Total des places: %d\n", res.Global.Total)
	fmt.Fprintf(&b, "Places restantes: %d\n", res.Global.Remaining)
	fmt.Fprintf(&b, "Pourcentage restant: %s\n\n", percent(res.Global.Percentage, 2))
	b.WriteString(strings.Repeat("-", 40) + "\n\n\n")

	fmt.Fprintf(&b, "Statistiques par ville à partir du rang %d :\n", res.FromRank)
	b.WriteString(strings.Repeat("-", 40) + "\n")
	for _, city := range res.Cities() {
		st := res.PerCity[city]
		fmt.Fprintf(&b, "%s:\n", city)
		fmt.Fprintf(&b, "  Total des places: %d\n", st.Total)
		fmt.Fprintf(&b, "  Places restantes: %d / %d\n", st.Remaining, st.Total)
		fmt.Fprintf(&b, "  Pourcentage restant: %s\n\n", percent(st.Percentage, 2))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// SaveText writes the text report of year into dir and returns its path.
func SaveText(dir string, year int, specialty types.Specialty, res stats.Result) (string, error) {
	var buf bytes.Buffer
	if err := WriteText(&buf, year, specialty, res); err != nil {
		return "", err
	}
	path := filepath.Join(dir, TextFile(year))
	if err := writeFileAtomic(path, buf.Bytes()); err != nil {
		return "", err
	}
	return path, nil
}
