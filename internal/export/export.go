// Package export serializes the current state of a record store into the
// upload formats the stock marketplaces accept.
package export

import (
	"errors"
	"path/filepath"
	"strings"
)

// ErrEmptyInput is returned when export is requested with zero records.
// A header-only file could be mistaken for a successful export, so the
// formatters refuse to produce one.
var ErrEmptyInput = errors.New("nothing to export")

// DefaultFilename is the Shutterstock upload file name.
const DefaultFilename = "shutterstock_content_upload.csv"

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// epsName swaps the file extension for .eps. Adobe Stock and iStock
// uploads reference the vector master, not the preview image.
func epsName(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename)) + ".eps"
}
