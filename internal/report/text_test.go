// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/affectations/internal/stats"
	"github.com/pdiddy/affectations/pkg/types"
)

func records(entries ...any) []types.Record {
	var out []types.Record
	for i := 0; i+1 < len(entries); i += 2 {
		out = append(out, types.Record{
			Rank:      entries[i].(int),
			Specialty: types.SpecialtyBiology,
			City:      entries[i+1].(string),
		})
	}
	return out
}

func TestWriteText(t *testing.T) {
	res := stats.Aggregate(records(10, "Lyon", 50, "Caen", 60, "Lyon"), 50)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, 2024, types.SpecialtyBiology, res))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out,
		"Analyse des affectations en biologie médicale - Année 2024\n"+strings.Repeat("=", 42)+"\n"))
	assert.Contains(t, out, "10 - Lyon\n50 - Caen\n60 - Lyon\n")
	assert.Contains(t, out, "Total des places: 3\n")
	assert.Contains(t, out, "Places restantes: 2\n")
	assert.Contains(t, out, "Pourcentage restant: 66.67%\n")
	assert.Contains(t, out, "Statistiques par ville à partir du rang 50 :\n")
	assert.Contains(t, out, "Lyon:\n  Total des places: 2\n  Places restantes: 1 / 2\n  Pourcentage restant: 50.00%\n")

	caen := strings.Index(out, "Caen:\n")
	lyon := strings.Index(out, "Lyon:\n")
	require.NotEqual(t, -1, caen)
	assert.Less(t, caen, lyon, "cities are listed in collation order")
}

func TestWriteText_NoRecords(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, 2024, types.SpecialtyBiology, stats.Aggregate(nil, 1)))

	assert.Contains(t, buf.String(), "Total des places: 0\n")
	assert.Contains(t, buf.String(), "Pourcentage restant: -\n")
	assert.NotContains(t, buf.String(), "NaN")
}

func TestSaveText(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "output")
	res := stats.Aggregate(records(1, "Brest"), 1)

	path, err := SaveText(dir, 2023, types.SpecialtyBiology, res)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "resultats_2023.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "1 - Brest\n")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files are left behind")
}
