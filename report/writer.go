// Package report serializes extracted data points to the two-column text
// format consumed by plotting and fitting tools.
package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/tsawler/replot/calibrate"
	"github.com/tsawler/replot/vector"
)

// Write emits a header block followed by one "x y" line per point, six
// fractional digits, with a blank line after each segment so gnuplot-style
// readers treat segments as separate series. source names the input file
// for the provenance line; spec, when non-nil, describes the calibration
// already applied to the points. It returns the number of points written.
func Write(w io.Writer, segments []vector.Segment, source string, spec *calibrate.Spec) (int, error) {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# Data extracted from %s\n", source)

	if spec != nil {
		fmt.Fprintf(bw, "# Calibrated using: X[%g:%g] Y[%g:%g]\n",
			spec.XMin, spec.XMax, spec.YMin, spec.YMax)
		if spec.LogX {
			fmt.Fprintln(bw, "# X-Axis: Logarithmic")
		}
		if spec.LogY {
			fmt.Fprintln(bw, "# Y-Axis: Logarithmic")
		}
		fmt.Fprintln(bw, "# Column 1: X (calibrated) Column 2: Y (calibrated)")
	} else {
		fmt.Fprintln(bw, "# Column 1: X (raw coord) Column 2: Y (raw coord)")
	}

	total := 0
	for _, seg := range segments {
		for _, p := range seg {
			fmt.Fprintf(bw, "%.6f %.6f\n", p.X, p.Y)
			total++
		}
		fmt.Fprintln(bw)
	}

	if err := bw.Flush(); err != nil {
		return 0, fmt.Errorf("writing report: %w", err)
	}
	return total, nil
}
