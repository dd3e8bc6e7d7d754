// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs one yearly analysis: extract the document text,
// parse and aggregate the records, write the text report, and merge the year
// into the persisted history and workbook.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/pdiddy/affectations/internal/city"
	"github.com/pdiddy/affectations/internal/extract"
	"github.com/pdiddy/affectations/internal/history"
	"github.com/pdiddy/affectations/internal/parse"
	"github.com/pdiddy/affectations/internal/report"
	"github.com/pdiddy/affectations/internal/stats"
	"github.com/pdiddy/affectations/pkg/types"
)

var (
	// ErrInputNotFound is returned when the document of the requested year
	// does not exist. Nothing is written in that case.
	ErrInputNotFound = errors.New("input document not found")

	// ErrInvalidArgs is returned for a non-positive year or rank.
	ErrInvalidArgs = errors.New("year and rank must be positive integers")
)

// HistoryStore loads and persists the multi-year history.
type HistoryStore interface {
	Load() (history.Snapshot, error)
	Save(history.Snapshot) error
}

// WorkbookUpdater merges one year into the spreadsheet report.
type WorkbookUpdater interface {
	Update(year int, res stats.Result) error
}

// Analyzer holds the collaborators of an analysis run.
type Analyzer struct {
	Config    types.AnalysisConfig
	Extractor extract.Extractor
	Resolver  parse.CityResolver
	Store     HistoryStore
	Workbook  WorkbookUpdater
	Log       *zap.Logger
}

// Summary describes the outcome of a run.
type Summary struct {
	Year     int
	FromRank int
	Input    string

	// Pages is zero when the page count could not be read.
	Pages int

	Lines      int
	Records    int
	Unresolved int
	Global     types.CityYearStat
	Cities     int

	TextReport string

	// HistoryUpdated is false when the year had no records for the specialty.
	HistoryUpdated bool
}

// InputPath returns the expected location of the document of year.
func InputPath(dir string, year int) string {
	return filepath.Join(dir, fmt.Sprintf("affectations_%d.pdf", year))
}

// NewAnalyzer wires the default collaborators for cfg: the configured
// extraction backend, the built-in cities plus cfg.Cities, and the CSV and
// workbook stores in the output directory.
func NewAnalyzer(cfg types.AnalysisConfig, log *zap.Logger) (*Analyzer, error) {
	if log == nil {
		log = zap.NewNop()
	}
	ex, err := extract.New(cfg)
	if err != nil {
		return nil, err
	}
	return &Analyzer{
		Config:    cfg,
		Extractor: ex,
		Resolver:  city.NewResolver(cfg.Cities...),
		Store:     report.NewCSVStore(cfg.OutputDir, log),
		Workbook:  report.NewWorkbook(filepath.Join(cfg.OutputDir, report.WorkbookFile), log),
		Log:       log,
	}, nil
}

// Run analyses the document of year with remaining places counted from
// fromRank, writes every output, and prints progress to w.
func (a *Analyzer) Run(ctx context.Context, year, fromRank int, w io.Writer) (Summary, error) {
	sum := Summary{Year: year, FromRank: fromRank}
	if year <= 0 || fromRank <= 0 {
		return sum, fmt.Errorf("%w: got year %d, rank %d", ErrInvalidArgs, year, fromRank)
	}
	log := a.Log
	if log == nil {
		log = zap.NewNop()
	}
	specialty := a.Config.Specialty
	if specialty == "" {
		specialty = types.SpecialtyBiology
	}

	sum.Input = InputPath(a.Config.InputDir, year)
	if _, err := os.Stat(sum.Input); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return sum, fmt.Errorf("%s: %w", sum.Input, ErrInputNotFound)
		}
		return sum, fmt.Errorf("checking %s: %w", sum.Input, err)
	}
	fmt.Fprintf(w, "Analyzing %s (%s, from rank %d)\n", sum.Input, specialty, fromRank)

	if pages, err := extract.PageCount(sum.Input); err != nil {
		log.Warn("page count unavailable", zap.String("path", sum.Input), zap.Error(err))
	} else {
		sum.Pages = pages
		log.Debug("document inspected", zap.String("path", sum.Input), zap.Int("pages", pages))
	}

	text, err := a.Extractor.Extract(ctx, sum.Input)
	if err != nil {
		return sum, fmt.Errorf("extracting text: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return sum, err
	}

	parsed := parse.NewParser(a.Resolver, log).Parse(text)
	records := stats.FilterSpecialty(parsed.Records, specialty)
	res := stats.Aggregate(records, fromRank)

	sum.Lines = parsed.Lines
	sum.Records = len(records)
	sum.Unresolved = parsed.Unresolved
	sum.Global = res.Global
	sum.Cities = len(res.PerCity)
	fmt.Fprintf(w, "  %d lines, %d records (%d unresolved city)\n", sum.Lines, sum.Records, sum.Unresolved)

	sum.TextReport, err = report.SaveText(a.Config.OutputDir, year, specialty, res)
	if err != nil {
		return sum, fmt.Errorf("writing text report: %w", err)
	}
	fmt.Fprintf(w, "  wrote %s\n", sum.TextReport)

	if err := ctx.Err(); err != nil {
		return sum, err
	}

	row, ok := res.Summary(year)
	if !ok {
		log.Warn("no records for specialty, history left unchanged",
			zap.Int("year", year), zap.String("specialty", string(specialty)))
		fmt.Fprintf(w, "  no %s records, history not updated\n", specialty)
		return sum, nil
	}

	snap, err := a.Store.Load()
	if err != nil {
		return sum, fmt.Errorf("loading history: %w", err)
	}
	if err := a.Store.Save(snap.MergeYear(year, res.PerCity, row)); err != nil {
		return sum, fmt.Errorf("saving history: %w", err)
	}
	if err := a.Workbook.Update(year, res); err != nil {
		return sum, fmt.Errorf("updating workbook: %w", err)
	}
	sum.HistoryUpdated = true

	fmt.Fprintf(w, "  %d/%d places remaining (%.2f%%) across %d cities\n",
		res.Global.Remaining, res.Global.Total, res.Global.Percentage, sum.Cities)
	log.Info("analysis complete",
		zap.Int("year", year),
		zap.Int("records", sum.Records),
		zap.Int("remaining", res.Global.Remaining),
		zap.Int("cities", sum.Cities),
	)
	return sum, nil
}
