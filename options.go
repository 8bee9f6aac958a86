package replot

// ExtractOptions holds configuration for an extraction run.
type ExtractOptions struct {
	// Calibration bounds. calibrated is set once Calibrate has been
	// called; the log flags are only consulted when it is, matching the
	// all-or-nothing calibration contract.
	xMin, xMax float64
	yMin, yMax float64
	calibrated bool
	logX       bool
	logY       bool
}

// defaultOptions returns the default extraction options: raw page
// coordinates, no calibration.
func defaultOptions() ExtractOptions {
	return ExtractOptions{}
}

// clone creates a copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	return o
}
