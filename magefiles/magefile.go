//go:build mage

// Package main contains Mage build targets for affectations developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// projectDirs lists the working directories the CLI expects.
var projectDirs = []string{
	"input",
	"output",
}

// Init creates the input and output directories.
func Init() error {
	for _, dir := range projectDirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		fmt.Println("  ", dir)
	}
	fmt.Println("Project directories initialized.")
	return nil
}

const (
	binDir  = "bin"
	binName = "affectations"
	cmdPkg  = "./cmd/affectations"
)

var binPath = filepath.Join(binDir, binName)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	ldflags := "-X main.version=" + version
	if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", binPath, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", binPath)
	return nil
}

// Test runs the unit tests of every package.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Analyze builds the CLI and analyses input/affectations_<year>.pdf from rank.
func Analyze(year, rank string) error {
	mg.SerialDeps(Init, Build)
	return sh.RunV(binPath, year, rank)
}

// Export builds the CLI and writes output/historique.yaml.
func Export() error {
	mg.Deps(Build)
	return sh.RunV(binPath, "export", "--format", "yaml")
}

// Clean removes the built binary.
func Clean() error {
	return sh.Rm(binDir)
}
