// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strconv"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/pdiddy/affectations/internal/order"
	"github.com/pdiddy/affectations/internal/stats"
)

// Sheet names of the workbook.
const (
	StatsSheet   = "Statistiques par ville"
	SummarySheet = "Résumé global"
)

var workbookSummaryHeader = summaryHeader[:4]

// Workbook maintains the multi-year spreadsheet. Each update reads the
// existing file, merges one year into it, and rewrites it.
type Workbook struct {
	Path string
	log  *zap.Logger
}

// NewWorkbook returns a workbook stored at path. A nil log discards
// diagnostics.
func NewWorkbook(path string, log *zap.Logger) *Workbook {
	if log == nil {
		log = zap.NewNop()
	}
	return &Workbook{Path: path, log: log}
}

// statsGrid is the content of the per-city sheet: year headers in column
// order and, per city, the cell text under each header.
type statsGrid struct {
	years []string
	cells map[string]map[string]string
}

// summaryGrid holds the rows of the summary sheet keyed by year.
type summaryGrid map[int][]any

// Update merges the results of year into the workbook. The year column is
// found by its header text and appended when absent. Cities without records
// this year get "-" in that column. The summary row of year is replaced.
func (wb *Workbook) Update(year int, res stats.Result) error {
	grid, summary, err := wb.load()
	if err != nil {
		return err
	}

	col := strconv.Itoa(year)
	if !slices.Contains(grid.years, col) {
		grid.years = append(grid.years, col)
	}
	for city := range res.PerCity {
		if _, ok := grid.cells[city]; !ok {
			grid.cells[city] = make(map[string]string)
		}
	}
	for city, byYear := range grid.cells {
		st, ok := res.PerCity[city]
		if !ok {
			byYear[col] = missing
			continue
		}
		byYear[col] = fmt.Sprintf("%d/%d\n(%s)", st.Remaining, st.Total, percent(st.Percentage, 1))
	}

	if row, ok := res.Summary(year); ok {
		summary[year] = []any{row.Year, row.Total, row.Remaining, percent(row.Percentage, 1)}
	}

	return wb.write(grid, summary)
}

// load reads the existing workbook, or returns empty grids when there is none.
func (wb *Workbook) load() (statsGrid, summaryGrid, error) {
	grid := statsGrid{cells: make(map[string]map[string]string)}
	summary := make(summaryGrid)

	if _, err := os.Stat(wb.Path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return grid, summary, nil
		}
		return grid, summary, fmt.Errorf("checking %s: %w", wb.Path, err)
	}

	f, err := excelize.OpenFile(wb.Path)
	if err != nil {
		return grid, summary, fmt.Errorf("opening %s: %w", wb.Path, err)
	}
	defer f.Close()

	if rows, err := f.GetRows(StatsSheet); err != nil {
		wb.log.Debug("workbook sheet unreadable", zap.String("sheet", StatsSheet), zap.Error(err))
	} else if len(rows) > 0 {
		header := rows[0]
		if len(header) > 1 {
			grid.years = append(grid.years, header[1:]...)
		}
		for _, row := range rows[1:] {
			if len(row) == 0 || row[0] == "" {
				continue
			}
			byYear := make(map[string]string)
			for i := 1; i < len(row) && i < len(header); i++ {
				if row[i] != "" {
					byYear[header[i]] = row[i]
				}
			}
			grid.cells[row[0]] = byYear
		}
	}

	if rows, err := f.GetRows(SummarySheet); err != nil {
		wb.log.Debug("workbook sheet unreadable", zap.String("sheet", SummarySheet), zap.Error(err))
	} else {
		for _, row := range rows {
			if len(row) == 0 {
				continue
			}
			y, err := strconv.Atoi(row[0])
			if err != nil {
				if row[0] != workbookSummaryHeader[0] {
					wb.log.Debug("skipping unreadable summary row", zap.Strings("row", row))
				}
				continue
			}
			values := []any{y}
			for _, cell := range row[1:min(len(row), len(workbookSummaryHeader))] {
				if n, err := strconv.Atoi(cell); err == nil {
					values = append(values, n)
				} else {
					values = append(values, cell)
				}
			}
			summary[y] = values
		}
	}

	return grid, summary, nil
}

func (wb *Workbook) write(grid statsGrid, summary summaryGrid) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", StatsSheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}
	if _, err := f.NewSheet(SummarySheet); err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}
	if idx, err := f.GetSheetIndex(StatsSheet); err == nil {
		f.SetActiveSheet(idx)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D3D3D3"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	cellStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	if err != nil {
		return fmt.Errorf("creating cell style: %w", err)
	}

	set := func(sheet string, col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	// Per-city sheet.
	set(StatsSheet, 1, 1, cityHeader)
	for i, y := range grid.years {
		set(StatsSheet, i+2, 1, y)
	}
	cities := order.Keys(grid.cells)
	for r, city := range cities {
		set(StatsSheet, 1, r+2, city)
		for i, y := range grid.years {
			v, ok := grid.cells[city][y]
			if !ok {
				v = missing
			}
			set(StatsSheet, i+2, r+2, v)
		}
	}
	lastCol, _ := excelize.ColumnNumberToName(len(grid.years) + 1)
	_ = f.SetCellStyle(StatsSheet, "A1", lastCol+"1", headerStyle)
	_ = f.SetColWidth(StatsSheet, "A", "A", 20)
	if len(grid.years) > 0 {
		_ = f.SetColWidth(StatsSheet, "B", lastCol, 15)
		if len(cities) > 0 {
			bottom, _ := excelize.CoordinatesToCellName(len(grid.years)+1, len(cities)+1)
			_ = f.SetCellStyle(StatsSheet, "B2", bottom, cellStyle)
		}
	}

	// Summary sheet, sorted by year.
	for i, h := range workbookSummaryHeader {
		set(SummarySheet, i+1, 1, h)
	}
	years := make([]int, 0, len(summary))
	for y := range summary {
		years = append(years, y)
	}
	slices.Sort(years)
	for r, y := range years {
		for c, v := range summary[y] {
			set(SummarySheet, c+1, r+2, v)
		}
	}
	_ = f.SetCellStyle(SummarySheet, "A1", "D1", headerStyle)
	_ = f.SetColWidth(SummarySheet, "A", "A", 10)
	_ = f.SetColWidth(SummarySheet, "B", "C", 15)
	_ = f.SetColWidth(SummarySheet, "D", "D", 20)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	if err := writeFileAtomic(wb.Path, buf.Bytes()); err != nil {
		return err
	}
	wb.log.Debug("workbook written",
		zap.String("path", wb.Path), zap.Int("cities", len(cities)), zap.Int("years", len(grid.years)))
	return nil
}
