package replot

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tsawler/replot/calibrate"
	"github.com/tsawler/replot/format"
	"github.com/tsawler/replot/reader"
	"github.com/tsawler/replot/report"
	"github.com/tsawler/replot/vector"
)

// Extractor provides a fluent interface for recovering data points from a
// plot document. Each configuration method returns a new Extractor
// instance, making chains safe to fork and reuse.
type Extractor struct {
	// Source
	filename string

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// Result holds the outcome of an extraction run.
type Result struct {
	// Data contains the segments the classifier kept, in drawing order,
	// calibrated into physical units when calibration was configured.
	Data []vector.Segment

	// RawCount is the total number of segments assembled before
	// classification; Discarded is how many of them were dropped as
	// decoration (axes, ticks, frames).
	RawCount  int
	Discarded int

	// PageBounds is the page-coordinate bounding box over every
	// coordinate seen in the operator stream. Invalid when the document
	// contained no coordinates.
	PageBounds vector.Bounds

	// Calibrated reports whether Data is in physical units rather than
	// raw page coordinates.
	Calibrated bool
}

// PointCount returns the total number of data points across all kept
// segments.
func (r *Result) PointCount() int {
	n := 0
	for _, seg := range r.Data {
		n += len(seg)
	}
	return n
}

// clone creates a copy of the Extractor so configuration chains stay
// immutable.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		options:  e.options.clone(),
		err:      e.err,
		warnings: append([]Warning(nil), e.warnings...),
	}
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Calibrate supplies the physical values of the plot's axis limits, so
// page coordinates are mapped into data units. All four bounds travel
// together; there is no partial calibration.
//
// Example:
//
//	result, _, err := replot.Open("fig.pdf").Calibrate(0, 100, -5, 5).Extract()
func (e *Extractor) Calibrate(xMin, xMax, yMin, yMax float64) *Extractor {
	newExt := e.clone()
	newExt.options.xMin = xMin
	newExt.options.xMax = xMax
	newExt.options.yMin = yMin
	newExt.options.yMax = yMax
	newExt.options.calibrated = true
	return newExt
}

// LogX marks the X axis as logarithmic. The flag only takes effect
// together with Calibrate; without bounds there is nothing to map.
//
// Example:
//
//	result, _, err := replot.Open("fig.eps").Calibrate(1, 1e4, 0, 1).LogX().Extract()
func (e *Extractor) LogX() *Extractor {
	newExt := e.clone()
	newExt.options.logX = true
	return newExt
}

// LogY marks the Y axis as logarithmic. The flag only takes effect
// together with Calibrate.
func (e *Extractor) LogY() *Extractor {
	newExt := e.clone()
	newExt.options.logY = true
	return newExt
}

// ============================================================================
// Terminal Operations (execute extraction and return results)
// ============================================================================

// Extract runs the full pipeline: read the document, assemble path
// segments, classify out decorations, and calibrate if configured.
//
// Returns the result, any warnings encountered during processing, and an
// error if extraction failed. Warnings indicate non-fatal issues (e.g. a
// PDF with no decodable vector streams) where the run completed but the
// result may be empty.
func (e *Extractor) Extract() (*Result, []Warning, error) {
	result, err := e.run()
	if err != nil {
		return nil, e.warnings, err
	}
	return result, e.warnings, nil
}

// Segments returns the data segments that survived classification, in
// drawing order, calibrated when calibration was configured.
func (e *Extractor) Segments() ([]vector.Segment, []Warning, error) {
	result, err := e.run()
	if err != nil {
		return nil, e.warnings, err
	}
	return result.Data, e.warnings, nil
}

// Points returns every data point across all kept segments, flattened in
// drawing order. Segment boundaries are lost; use Segments to keep them.
func (e *Extractor) Points() ([]vector.Point, []Warning, error) {
	result, err := e.run()
	if err != nil {
		return nil, e.warnings, err
	}
	points := make([]vector.Point, 0, result.PointCount())
	for _, seg := range result.Data {
		points = append(points, seg...)
	}
	return points, e.warnings, nil
}

// RawSegments returns every assembled segment, including decorations,
// in raw page coordinates. Useful for inspecting what a document actually
// draws before the classifier and calibration get involved.
func (e *Extractor) RawSegments() ([]vector.Segment, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	content, err := e.readContent()
	if err != nil {
		return nil, e.warnings, err
	}

	segments, _ := vector.Assemble(vector.Tokenize(content))
	return segments, e.warnings, nil
}

// PageBounds returns the page-coordinate bounding box of the document's
// vector content.
func (e *Extractor) PageBounds() (vector.Bounds, error) {
	if e.err != nil {
		return vector.Bounds{}, e.err
	}

	content, err := e.readContent()
	if err != nil {
		return vector.Bounds{}, err
	}

	_, bounds := vector.Assemble(vector.Tokenize(content))
	return bounds, nil
}

// WriteFile extracts and writes the data points to path in two-column
// text format. It returns the number of points written.
//
// Example:
//
//	n, warnings, err := replot.Open("fig.pdf").
//	    Calibrate(0, 100, -1, 1).
//	    WriteFile("fig.txt")
func (e *Extractor) WriteFile(path string) (int, []Warning, error) {
	result, err := e.run()
	if err != nil {
		return 0, e.warnings, err
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, e.warnings, fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	var spec *calibrate.Spec
	if result.Calibrated {
		spec, _ = e.calibrationSpec()
	}

	n, err := report.Write(f, result.Data, filepath.Base(e.filename), spec)
	if err != nil {
		return 0, e.warnings, err
	}
	return n, e.warnings, nil
}

// ============================================================================
// Internal helpers
// ============================================================================

// run executes the extraction pipeline.
func (e *Extractor) run() (*Result, error) {
	if e.err != nil {
		return nil, e.err
	}

	spec, err := e.calibrationSpec()
	if err != nil {
		return nil, err
	}

	content, err := e.readContent()
	if err != nil {
		return nil, err
	}

	segments, bounds := vector.Assemble(vector.Tokenize(content))
	data, discarded := vector.Classify(segments)

	if len(data) == 0 && len(segments) > 0 {
		e.warnf(WarnNoDataSegments,
			"all %d segments classified as decoration; no data curves found", len(segments))
	}

	if spec != nil {
		calibrated := make([]vector.Segment, len(data))
		for si, seg := range data {
			mapped := make(vector.Segment, len(seg))
			for pi, p := range seg {
				mapped[pi], err = spec.Apply(p, bounds)
				if err != nil {
					return nil, err
				}
			}
			calibrated[si] = mapped
		}
		data = calibrated
	}

	return &Result{
		Data:       data,
		RawCount:   len(segments),
		Discarded:  discarded,
		PageBounds: bounds,
		Calibrated: spec != nil,
	}, nil
}

// readContent opens the document and returns its operator text, warning
// when a binary container yields nothing decodable.
func (e *Extractor) readContent() (string, error) {
	r, err := reader.Open(e.filename)
	if err != nil {
		return "", err
	}

	content := r.Content()
	if content == "" && r.Format() == format.PDF {
		e.warnf(WarnNoContent,
			"no vector data streams found in %s; file may contain rasterized images", e.filename)
	}
	return content, nil
}

// calibrationSpec builds and validates the calibration spec, or returns
// nil when no calibration was configured.
func (e *Extractor) calibrationSpec() (*calibrate.Spec, error) {
	if !e.options.calibrated {
		return nil, nil
	}

	spec := &calibrate.Spec{
		XMin: e.options.xMin,
		XMax: e.options.xMax,
		YMin: e.options.yMin,
		YMax: e.options.yMax,
		LogX: e.options.logX,
		LogY: e.options.logY,
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid calibration: %w", err)
	}
	return spec, nil
}
