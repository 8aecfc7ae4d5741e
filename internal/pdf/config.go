// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pdf

import (
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

var disableConfigDir sync.Once

// newConfiguration returns a fresh pdfcpu configuration for one operation.
// pdfcpu mutates the configuration it is given, so it is never shared
// between requests. The on-disk pdfcpu config directory is disabled: the
// server must not write into the user's home directory.
func newConfiguration() *model.Configuration {
	disableConfigDir.Do(api.DisableConfigDir)
	return model.NewDefaultConfiguration()
}

// PageCount returns the number of pages in a PDF document.
func PageCount(content []byte) (int, error) {
	return api.PageCount(newReader(content), newConfiguration())
}

// PageDims returns the media box dimensions of every page, in points.
func PageDims(content []byte) ([]types.Dim, error) {
	return api.PageDims(newReader(content), newConfiguration())
}
