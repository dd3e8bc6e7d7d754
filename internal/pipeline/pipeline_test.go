// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/affectations/internal/report"
	"github.com/pdiddy/affectations/pkg/types"
)

const sampleText = `Arrêté du 1er octobre portant affectation
1. Mme A, biologie médicale, CHU de Lyon.
2. M. B, pharmacie hospitalière, Nice.
3. Mme C, biologie médicale,
CHU de Caen.
4. M. D, biologie médicale, Hospices civils de Lyon.
5. Mme E, biologie médicale, CHU de Cayenne.
`

type fakeExtractor struct {
	text  string
	err   error
	calls int
}

func (f *fakeExtractor) Extract(_ context.Context, _ string) (string, error) {
	f.calls++
	return f.text, f.err
}

// testSetup returns an analyzer over a temporary input and output directory
// with a placeholder document for each of years.
func testSetup(t *testing.T, ex *fakeExtractor, years ...int) (*Analyzer, types.AnalysisConfig) {
	t.Helper()
	root := t.TempDir()
	cfg := types.DefaultAnalysisConfig()
	cfg.InputDir = filepath.Join(root, "input")
	cfg.OutputDir = filepath.Join(root, "output")

	require.NoError(t, os.MkdirAll(cfg.InputDir, 0o755))
	for _, y := range years {
		require.NoError(t, os.WriteFile(InputPath(cfg.InputDir, y), []byte("not a real pdf"), 0o644))
	}

	a, err := NewAnalyzer(cfg, nil)
	require.NoError(t, err)
	a.Extractor = ex
	return a, cfg
}

func TestRun(t *testing.T) {
	a, cfg := testSetup(t, &fakeExtractor{text: sampleText}, 2024, 2025)

	var out bytes.Buffer
	sum, err := a.Run(context.Background(), 2024, 3, &out)
	require.NoError(t, err)

	assert.Equal(t, 3, sum.Records)
	assert.Equal(t, 1, sum.Unresolved)
	assert.Equal(t, types.NewCityYearStat(2, 3), sum.Global)
	assert.Equal(t, 2, sum.Cities)
	assert.Zero(t, sum.Pages, "placeholder document has no readable page count")
	assert.True(t, sum.HistoryUpdated)
	assert.Contains(t, out.String(), "2/3 places remaining (66.67%) across 2 cities")

	for _, name := range []string{
		"resultats_2024.txt",
		report.StatsFile,
		report.SummaryFile,
		report.WorkbookFile,
	} {
		assert.FileExists(t, filepath.Join(cfg.OutputDir, name))
	}

	_, err = a.Run(context.Background(), 2025, 4, &out)
	require.NoError(t, err)

	snap, err := report.NewCSVStore(cfg.OutputDir, nil).Load()
	require.NoError(t, err)
	assert.Equal(t, []int{2024, 2025}, snap.Years())
	assert.Equal(t, []int{2024, 2025}, snap.SummaryYears())
	assert.Equal(t, 4, snap.Summary[2025].LastRank)

	lyon, ok := snap.Stat("Lyon", 2025)
	require.True(t, ok)
	assert.Equal(t, types.NewCityYearStat(1, 2), lyon)
	caen, ok := snap.Stat("Caen", 2025)
	require.True(t, ok)
	assert.Equal(t, types.NewCityYearStat(0, 1), caen)
}

func TestRun_Rerun(t *testing.T) {
	a, cfg := testSetup(t, &fakeExtractor{text: sampleText}, 2024)

	var out bytes.Buffer
	_, err := a.Run(context.Background(), 2024, 3, &out)
	require.NoError(t, err)
	first, err := os.ReadFile(filepath.Join(cfg.OutputDir, report.StatsFile))
	require.NoError(t, err)

	_, err = a.Run(context.Background(), 2024, 3, &out)
	require.NoError(t, err)
	second, err := os.ReadFile(filepath.Join(cfg.OutputDir, report.StatsFile))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second), "re-running a year leaves the history unchanged")
}

func TestRun_MissingInput(t *testing.T) {
	ex := &fakeExtractor{text: sampleText}
	a, cfg := testSetup(t, ex)

	_, err := a.Run(context.Background(), 2024, 3, &bytes.Buffer{})
	require.ErrorIs(t, err, ErrInputNotFound)
	assert.Zero(t, ex.calls)
	assert.NoDirExists(t, cfg.OutputDir, "nothing is written")
}

func TestRun_InvalidArgs(t *testing.T) {
	tests := []struct {
		name       string
		year, rank int
	}{
		{"zero year", 0, 10},
		{"negative rank", 2024, -1},
		{"zero rank", 2024, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := testSetup(t, &fakeExtractor{text: sampleText}, 2024)
			_, err := a.Run(context.Background(), tt.year, tt.rank, &bytes.Buffer{})
			assert.ErrorIs(t, err, ErrInvalidArgs)
		})
	}
}

func TestRun_ExtractionFailure(t *testing.T) {
	boom := errors.New("boom")
	a, cfg := testSetup(t, &fakeExtractor{err: boom}, 2024)

	_, err := a.Run(context.Background(), 2024, 3, &bytes.Buffer{})
	require.ErrorIs(t, err, boom)
	assert.NoDirExists(t, cfg.OutputDir)
}

func TestRun_NoRecords(t *testing.T) {
	text := "1. M. B, pharmacie hospitalière, Nice.\n"
	a, cfg := testSetup(t, &fakeExtractor{text: text}, 2024)

	var out bytes.Buffer
	sum, err := a.Run(context.Background(), 2024, 1, &out)
	require.NoError(t, err)

	assert.False(t, sum.HistoryUpdated)
	assert.FileExists(t, filepath.Join(cfg.OutputDir, "resultats_2024.txt"))
	assert.NoFileExists(t, filepath.Join(cfg.OutputDir, report.StatsFile))
	assert.NoFileExists(t, filepath.Join(cfg.OutputDir, report.WorkbookFile))
	assert.True(t, strings.Contains(out.String(), "history not updated"))
}

func TestRun_Cancelled(t *testing.T) {
	a, cfg := testSetup(t, &fakeExtractor{text: sampleText}, 2024)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Run(ctx, 2024, 3, &bytes.Buffer{})
	require.ErrorIs(t, err, context.Canceled)
	assert.NoDirExists(t, cfg.OutputDir)
}

func TestRun_OtherSpecialty(t *testing.T) {
	a, _ := testSetup(t, &fakeExtractor{text: sampleText}, 2024)
	a.Config.Specialty = types.SpecialtyPharmacy

	sum, err := a.Run(context.Background(), 2024, 1, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Records)
	assert.Equal(t, types.NewCityYearStat(1, 1), sum.Global)
}

func TestNewAnalyzer_UnknownBackend(t *testing.T) {
	cfg := types.DefaultAnalysisConfig()
	cfg.Backend = "nope"
	_, err := NewAnalyzer(cfg, nil)
	assert.Error(t, err)
}
