package replot

import (
	"fmt"
	"strings"
)

// WarningCode identifies a class of non-fatal extraction problem.
type WarningCode int

const (
	// WarnNoContent means no decodable vector content was found in the
	// document. Typical for scanned papers, where the plot is a raster
	// image rather than vector instructions.
	WarnNoContent WarningCode = iota

	// WarnNoDataSegments means paths were assembled but every segment
	// fell at or under the decoration threshold, so no data points
	// survive classification.
	WarnNoDataSegments
)

// Warning describes a non-fatal problem encountered during extraction.
// Extraction continues past warnings; they exist so callers can tell an
// empty result from a silent failure.
type Warning struct {
	Code    WarningCode
	Message string
}

// String returns the warning message.
func (w Warning) String() string {
	return w.Message
}

// FormatWarnings joins warnings into a single human-readable string.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.Message
	}
	return strings.Join(parts, "; ")
}

// warnf appends a formatted warning to the extractor.
func (e *Extractor) warnf(code WarningCode, format string, args ...any) {
	e.warnings = append(e.warnings, Warning{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	})
}
