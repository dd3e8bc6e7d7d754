// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report writes the outputs of an analysis run: the yearly text
// report, the CSV history (per-city statistics and global summary), the
// spreadsheet, and YAML/JSON exports of the history. Every file is rewritten
// in full on each run.
package report

import (
	"fmt"
	"os"
	"path/filepath"
)

// Output file names, relative to the output directory.
const (
	StatsFile    = "statistiques_par_ville.csv"
	SummaryFile  = "resume_global.csv"
	WorkbookFile = "statistiques_internat.xlsx"
	ExportBase   = "historique"
)

// TextFile returns the name of the text report of year.
func TextFile(year int) string {
	return fmt.Sprintf("resultats_%d.txt", year)
}

// writeFileAtomic writes data to a temporary file next to path and renames it
// over path, so readers never observe a half-written file.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", path, err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
