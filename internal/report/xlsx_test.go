// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/affectations/internal/stats"
)

func cellValues(t *testing.T, path, sheet string, cells ...string) []string {
	t.Helper()
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	out := make([]string, len(cells))
	for i, c := range cells {
		out[i], err = f.GetCellValue(sheet, c)
		require.NoError(t, err)
	}
	return out
}

func TestWorkbook_Update(t *testing.T) {
	path := filepath.Join(t.TempDir(), WorkbookFile)
	wb := NewWorkbook(path, nil)

	require.NoError(t, wb.Update(2023, stats.Aggregate(records(10, "Lyon", 60, "Lyon", 70, "Caen"), 50)))
	require.NoError(t, wb.Update(2024, stats.Aggregate(records(55, "Lyon", 60, "Lyon", 10, "Brest"), 50)))

	assert.Equal(t,
		[]string{"Ville", "2023", "2024"},
		cellValues(t, path, StatsSheet, "A1", "B1", "C1"))

	tests := []struct {
		city string
		row  string
		y23  string
		y24  string
	}{
		{"Brest", "2", "-", "0/1\n(0.0%)"},
		{"Caen", "3", "1/1\n(100.0%)", "-"},
		{"Lyon", "4", "1/2\n(50.0%)", "2/2\n(100.0%)"},
	}
	for _, tt := range tests {
		t.Run(tt.city, func(t *testing.T) {
			assert.Equal(t,
				[]string{tt.city, tt.y23, tt.y24},
				cellValues(t, path, StatsSheet, "A"+tt.row, "B"+tt.row, "C"+tt.row))
		})
	}

	assert.Equal(t,
		[]string{"Année", "Total Places", "Places Restantes", "Pourcentage Restant"},
		cellValues(t, path, SummarySheet, "A1", "B1", "C1", "D1"))
	assert.Equal(t,
		[]string{"2023", "3", "2", "66.7%"},
		cellValues(t, path, SummarySheet, "A2", "B2", "C2", "D2"))
	assert.Equal(t,
		[]string{"2024", "3", "2", "66.7%"},
		cellValues(t, path, SummarySheet, "A3", "B3", "C3", "D3"))
}

func TestWorkbook_RerunOverwritesYear(t *testing.T) {
	path := filepath.Join(t.TempDir(), WorkbookFile)
	wb := NewWorkbook(path, nil)

	require.NoError(t, wb.Update(2024, stats.Aggregate(records(10, "Lyon"), 50)))
	require.NoError(t, wb.Update(2023, stats.Aggregate(records(60, "Lyon"), 50)))
	require.NoError(t, wb.Update(2024, stats.Aggregate(records(70, "Lyon", 80, "Lyon"), 50)))

	assert.Equal(t,
		[]string{"2024", "2023", ""},
		cellValues(t, path, StatsSheet, "B1", "C1", "D1"), "existing year columns keep their position")
	assert.Equal(t,
		[]string{"2/2\n(100.0%)", "1/1\n(100.0%)"},
		cellValues(t, path, StatsSheet, "B2", "C2"))

	assert.Equal(t,
		[]string{"2023", "2024", "2", ""},
		cellValues(t, path, SummarySheet, "A2", "A3", "B3", "A4"), "summary rows are sorted by year")
}

func TestWorkbook_EmptyResultKeepsSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), WorkbookFile)
	wb := NewWorkbook(path, nil)

	require.NoError(t, wb.Update(2023, stats.Aggregate(records(60, "Lyon"), 50)))
	require.NoError(t, wb.Update(2024, stats.Aggregate(nil, 50)))

	assert.Equal(t,
		[]string{"2024", "-"},
		cellValues(t, path, StatsSheet, "C1", "C2"))
	assert.Equal(t,
		[]string{"2023", ""},
		cellValues(t, path, SummarySheet, "A2", "A3"))
}
