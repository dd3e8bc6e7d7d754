// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/affectations/internal/history"
	"github.com/pdiddy/affectations/pkg/types"
)

const cityHeader = "Ville"

// evolutionHeaders are the trailing metric columns of the per-city file.
var evolutionHeaders = []string{
	"Evolution moyenne (%/an)",
	"Tendance sur 3 ans (%)",
	"Min places restantes",
	"Max places restantes",
	"Volatilité",
	"Score stabilité",
}

var summaryHeader = []string{
	"Année",
	"Total Places",
	"Places Restantes",
	"Pourcentage Restant",
	"Dernier Rang",
}

// CSVStore loads and persists the history as two CSV files in Dir.
type CSVStore struct {
	Dir string
	log *zap.Logger
}

// NewCSVStore returns a store over dir. A nil log discards diagnostics.
func NewCSVStore(dir string, log *zap.Logger) *CSVStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &CSVStore{Dir: dir, log: log}
}

// StatsPath returns the path of the per-city statistics file.
func (s *CSVStore) StatsPath() string { return filepath.Join(s.Dir, StatsFile) }

// SummaryPath returns the path of the global summary file.
func (s *CSVStore) SummaryPath() string { return filepath.Join(s.Dir, SummaryFile) }

// Load reads both files into a snapshot. Missing files yield an empty
// snapshot; unreadable values are skipped rather than failing the load.
func (s *CSVStore) Load() (history.Snapshot, error) {
	snap := history.NewSnapshot()

	rows, err := readCSV(s.StatsPath())
	if err != nil {
		return snap, err
	}
	s.loadStats(snap, rows)

	rows, err = readCSV(s.SummaryPath())
	if err != nil {
		return snap, err
	}
	s.loadSummary(snap, rows)

	return snap, nil
}

// Save rewrites both files from snap: cities in collation order, years
// ascending, evolution metrics appended to each city row.
func (s *CSVStore) Save(snap history.Snapshot) error {
	if err := writeCSV(s.StatsPath(), statsRecords(snap)); err != nil {
		return err
	}
	return writeCSV(s.SummaryPath(), summaryRecords(snap))
}

// --- per-city statistics ---

// statsSchema locates the year columns of a per-city header. Later schemas
// are older formats.
type statsSchema struct {
	name string
	// yearsEnd returns the index one past the last year column.
	yearsEnd func(header []string) (int, bool)
}

var statsSchemas = []statsSchema{
	{name: "years+evolution", yearsEnd: yearsBeforeEvolution},
	{name: "years", yearsEnd: func(header []string) (int, bool) { return len(header), true }},
}

func yearsBeforeEvolution(header []string) (int, bool) {
	i := slices.IndexFunc(header, func(h string) bool {
		return slices.Contains(evolutionHeaders, h)
	})
	return i, i > 0
}

// yearColumn maps a column index to the year it holds.
type yearColumn struct {
	index int
	year  int
}

func parseStatsHeader(header []string) ([]yearColumn, string) {
	for _, schema := range statsSchemas {
		end, ok := schema.yearsEnd(header)
		if !ok {
			continue
		}
		var cols []yearColumn
		for i := 1; i < end; i++ {
			y, err := strconv.Atoi(header[i])
			if err != nil {
				continue
			}
			cols = append(cols, yearColumn{index: i, year: y})
		}
		return cols, schema.name
	}
	return nil, ""
}

func (s *CSVStore) loadStats(snap history.Snapshot, rows [][]string) {
	if len(rows) == 0 {
		return
	}
	cols, schema := parseStatsHeader(rows[0])
	s.log.Debug("loading city statistics", zap.String("schema", schema), zap.Int("years", len(cols)))

	for _, row := range rows[1:] {
		if len(row) == 0 || row[0] == "" {
			continue
		}
		city := row[0]
		for _, c := range cols {
			if c.index >= len(row) {
				break
			}
			st, ok := parseStatCell(row[c.index])
			if !ok {
				if row[c.index] != missing && row[c.index] != "" {
					s.log.Debug("skipping unreadable cell",
						zap.String("city", city), zap.Int("year", c.year), zap.String("value", row[c.index]))
				}
				continue
			}
			snap.Set(city, c.year, st)
		}
	}
}

// parseStatCell reads "remaining/total".
func parseStatCell(cell string) (types.CityYearStat, bool) {
	rem, tot, ok := strings.Cut(cell, "/")
	if !ok {
		return types.CityYearStat{}, false
	}
	r, err1 := strconv.Atoi(strings.TrimSpace(rem))
	t, err2 := strconv.Atoi(strings.TrimSpace(tot))
	if err1 != nil || err2 != nil {
		return types.CityYearStat{}, false
	}
	st := types.NewCityYearStat(r, t)
	return st, st.Valid()
}

func statsRecords(snap history.Snapshot) [][]string {
	years := snap.Years()
	evolution := snap.EvolutionAll()

	header := []string{cityHeader}
	for _, y := range years {
		header = append(header, strconv.Itoa(y))
	}
	header = append(header, evolutionHeaders...)

	records := [][]string{header}
	for _, city := range snap.CityNames() {
		row := []string{city}
		for _, y := range years {
			if st, ok := snap.Stat(city, y); ok {
				row = append(row, fmt.Sprintf("%d/%d", st.Remaining, st.Total))
			} else {
				row = append(row, missing)
			}
		}
		if m, ok := evolution[city]; ok {
			row = append(row,
				fixed(m.AverageEvolution, 1),
				fixed(m.RecentTrend, 1),
				strconv.Itoa(m.MinRemaining),
				strconv.Itoa(m.MaxRemaining),
				fixed(m.Volatility, 2),
				fixed(m.StabilityScore, 1),
			)
		} else {
			for range evolutionHeaders {
				row = append(row, missing)
			}
		}
		records = append(records, row)
	}
	return records
}

// --- global summary ---

// summaryRowParsers read one summary row, newest format first. Files written
// before the last-rank column existed have four fields.
var summaryRowParsers = []func([]string) (types.SummaryRow, bool){
	parseSummaryWithLastRank,
	parseSummaryRow,
}

func parseSummaryWithLastRank(fields []string) (types.SummaryRow, bool) {
	if len(fields) < 5 {
		return types.SummaryRow{}, false
	}
	row, ok := parseSummaryRow(fields[:4])
	if !ok {
		return row, false
	}
	last, err := strconv.Atoi(fields[4])
	if err != nil || last <= 0 {
		return row, false
	}
	row.LastRank = last
	return row, true
}

func parseSummaryRow(fields []string) (types.SummaryRow, bool) {
	if len(fields) < 4 {
		return types.SummaryRow{}, false
	}
	year, err1 := strconv.Atoi(fields[0])
	total, err2 := strconv.Atoi(fields[1])
	remaining, err3 := strconv.Atoi(fields[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return types.SummaryRow{}, false
	}
	if !types.NewCityYearStat(remaining, total).Valid() {
		return types.SummaryRow{}, false
	}
	pct, err := strconv.ParseFloat(strings.TrimSuffix(fields[3], "%"), 64)
	if err != nil {
		pct = types.Percentage(remaining, total)
	}
	return types.SummaryRow{Year: year, Total: total, Remaining: remaining, Percentage: pct}, true
}

func (s *CSVStore) loadSummary(snap history.Snapshot, rows [][]string) {
	for i, fields := range rows {
		if i == 0 && len(fields) > 0 && fields[0] == summaryHeader[0] {
			continue
		}
		var (
			row types.SummaryRow
			ok  bool
		)
		for _, parse := range summaryRowParsers {
			if row, ok = parse(fields); ok {
				break
			}
		}
		if !ok {
			s.log.Debug("skipping unreadable summary row", zap.Strings("fields", fields))
			continue
		}
		snap.Summary[row.Year] = row
	}
}

func summaryRecords(snap history.Snapshot) [][]string {
	records := [][]string{summaryHeader}
	for _, y := range snap.SummaryYears() {
		row := snap.Summary[y]
		last := missing
		if row.LastRank > 0 {
			last = strconv.Itoa(row.LastRank)
		}
		records = append(records, []string{
			strconv.Itoa(row.Year),
			strconv.Itoa(row.Total),
			strconv.Itoa(row.Remaining),
			fixed(row.Percentage, 1),
			last,
		})
	}
	return records
}

// --- file helpers ---

// readCSV returns the trimmed fields of every non-empty line of path, or nil
// when the file does not exist.
func readCSV(path string) ([][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	for _, row := range rows {
		for i := range row {
			row[i] = strings.TrimSpace(row[i])
		}
	}
	return rows, nil
}

func writeCSV(path string, records [][]string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return writeFileAtomic(path, buf.Bytes())
}
