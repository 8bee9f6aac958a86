// Package format provides input format detection for the replot library.
package format

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Format represents a supported document format.
type Format int

const (
	// Unknown indicates an unrecognized format. Unknown inputs are read
	// as plain operator text.
	Unknown Format = iota
	// PDF indicates a PDF document (binary container).
	PDF
	// PostScript indicates a PostScript or Encapsulated PostScript
	// document (plain text).
	PostScript
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PDF:
		return "PDF"
	case PostScript:
		return "PostScript"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case PDF:
		return ".pdf"
	case PostScript:
		return ".ps"
	default:
		return ""
	}
}

// Detect determines file format from the filename extension. Extension
// dispatch is the primary mechanism: only .pdf files are treated as
// binary containers, everything else is read as text.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return PDF
	case ".ps", ".eps", ".epsf":
		return PostScript
	default:
		return Unknown
	}
}

// DetectFromMagic checks leading bytes to determine format. This is more
// reliable than extension-based detection for misnamed files. Returns
// Unknown if the format cannot be determined from magic bytes alone.
func DetectFromMagic(data []byte) Format {
	if len(data) < 4 {
		return Unknown
	}

	// PDF magic: %PDF
	if bytes.HasPrefix(data, []byte("%PDF")) {
		return PDF
	}

	// PostScript magic: %!PS (EPS files start with %!PS-Adobe-x.y EPSF-z.w)
	if bytes.HasPrefix(data, []byte("%!PS")) {
		return PostScript
	}

	return Unknown
}
