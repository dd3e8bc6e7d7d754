// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
)

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunPiped(ctx context.Context, name string, args []string, stdout, stderr io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) RunPiped(ctx context.Context, name string, args []string, stdout, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

// PdftotextExtractor runs the poppler pdftotext binary and reads the text it
// writes to stdout.
type PdftotextExtractor struct {
	bin  string
	exec executor
}

// NewPdftotextExtractor returns an extractor running bin (default "pdftotext").
func NewPdftotextExtractor(bin string) *PdftotextExtractor {
	if bin == "" {
		bin = "pdftotext"
	}
	return &PdftotextExtractor{bin: bin, exec: &osExecutor{}}
}

// Extract implements Extractor.
func (e *PdftotextExtractor) Extract(ctx context.Context, path string) (string, error) {
	if _, err := e.exec.LookPath(e.bin); err != nil {
		return "", fmt.Errorf("%s not found on PATH: %w", e.bin, err)
	}

	// pdftotext -enc UTF-8 -eol unix <path> -
	args := []string{"-enc", "UTF-8", "-eol", "unix", path, "-"}
	var out, errb bytes.Buffer
	if err := e.exec.RunPiped(ctx, e.bin, args, &out, &errb); err != nil {
		if msg := bytes.TrimSpace(errb.Bytes()); len(msg) > 0 {
			return "", fmt.Errorf("running %s on %s: %w: %s", e.bin, path, err, msg)
		}
		return "", fmt.Errorf("running %s on %s: %w", e.bin, path, err)
	}

	return checkText(out.String(), path)
}
