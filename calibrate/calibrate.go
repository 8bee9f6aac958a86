// Package calibrate maps page coordinates onto user-supplied physical
// axis bounds, linearly or logarithmically per axis.
package calibrate

import (
	"fmt"
	"math"

	"github.com/tsawler/replot/vector"
)

// Spec holds the physical bounds of the plot axes plus an independent
// scale mode per axis. The four bounds are all-or-nothing: supplying some
// but not all of them is a caller error, checked before extraction starts
// rather than defaulted silently.
type Spec struct {
	XMin, XMax float64
	YMin, YMax float64
	LogX, LogY bool
}

// Validate checks the caller contract. A logarithmic axis is undefined for
// non-positive bounds, so that configuration fails here instead of
// producing NaN output later.
func (s Spec) Validate() error {
	if s.LogX && (s.XMin <= 0 || s.XMax <= 0) {
		return fmt.Errorf("log scale requires positive X bounds, got [%g:%g]", s.XMin, s.XMax)
	}
	if s.LogY && (s.YMin <= 0 || s.YMax <= 0) {
		return fmt.Errorf("log scale requires positive Y bounds, got [%g:%g]", s.YMin, s.YMax)
	}
	return nil
}

// Convert maps value from the observed page range [pageMin, pageMax] onto
// the physical range [userMin, userMax].
//
// A degenerate page axis (pageMin == pageMax) maps every value to userMin;
// that is the documented policy for plots with no extent on an axis, not
// an error. The normalized position is intentionally not clamped to [0,1]
// so that values outside the observed bounding box stay on the same line.
func Convert(value, pageMin, pageMax, userMin, userMax float64, logScale bool) (float64, error) {
	if pageMax == pageMin {
		return userMin, nil
	}

	norm := (value - pageMin) / (pageMax - pageMin)

	if logScale {
		if userMin <= 0 || userMax <= 0 {
			return 0, fmt.Errorf("log scale requires positive bounds, got [%g:%g]", userMin, userMax)
		}
		logMin := math.Log10(userMin)
		logMax := math.Log10(userMax)
		return math.Pow(10, norm*(logMax-logMin)+logMin), nil
	}

	return norm*(userMax-userMin) + userMin, nil
}

// Apply calibrates a single page-coordinate point against the observed
// page bounds. Each axis is converted independently with its own mode.
func (s Spec) Apply(p vector.Point, b vector.Bounds) (vector.Point, error) {
	x, err := Convert(p.X, b.XMin, b.XMax, s.XMin, s.XMax, s.LogX)
	if err != nil {
		return vector.Point{}, fmt.Errorf("x axis: %w", err)
	}
	y, err := Convert(p.Y, b.YMin, b.YMax, s.YMin, s.YMax, s.LogY)
	if err != nil {
		return vector.Point{}, fmt.Errorf("y axis: %w", err)
	}
	return vector.Point{X: x, Y: y}, nil
}
