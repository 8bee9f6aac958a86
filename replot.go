// Package replot recovers (X, Y) numeric data series from the vector
// drawing instructions embedded in PDF, PostScript, and EPS plots. It is
// aimed at researchers reconstructing lost datasets from published
// figures: the path operators a plotting library emitted are parsed back
// into poly-lines, short decorative strokes (axes, ticks, frames) are
// discarded, and the surviving curves can be calibrated from page
// coordinates into physical units.
//
// Basic usage:
//
//	result, warnings, err := replot.Open("figure3.pdf").Extract()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", replot.FormatWarnings(warnings))
//	}
//
// With calibration:
//
//	n, _, err := replot.Open("figure3.eps").
//	    Calibrate(0, 100, 0.01, 100).
//	    LogY().
//	    WriteFile("figure3.txt")
package replot

// Open prepares an Extractor for the document at filename. The file is
// not read until a terminal operation runs.
//
// Example:
//
//	result, warnings, err := replot.Open("figure3.pdf").Extract()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	bounds := replot.Must(replot.Open("figure3.pdf").PageBounds())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustExtract wraps a terminal operation returning (T, []Warning, error)
// and panics if the error is non-nil, discarding warnings.
//
// Example:
//
//	result := replot.MustExtract(replot.Open("figure3.pdf").Extract())
func MustExtract[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
