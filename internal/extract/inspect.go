// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

var disableConfigDir sync.Once

// PageCount reads the page tree of the PDF at path with pdfcpu. It fails on
// files that are not well-formed PDFs.
func PageCount(path string) (int, error) {
	disableConfigDir.Do(api.DisableConfigDir)

	n, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading page count of %s: %w", path, err)
	}
	return n, nil
}
