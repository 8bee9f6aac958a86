// Command replot extracts (X, Y) data points from vector plots saved as
// PDF, PostScript, or EPS files and writes them to a two-column text file.
//
// Raw extraction (page coordinates):
//
//	replot figure3.pdf
//
// Linear calibration, mapping X to [0, 100] and Y to [-5, 5]:
//
//	replot -xmin 0 -xmax 100 -ymin -5 -ymax 5 figure3.pdf
//
// Logarithmic Y axis:
//
//	replot -xmin 0 -xmax 50 -ymin 0.01 -ymax 100 -logy figure3.eps
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tsawler/replot"
	"github.com/tsawler/replot/calibrate"
	"github.com/tsawler/replot/report"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("replot", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: replot [flags] file.{pdf,ps,eps}")
		fmt.Fprintln(fs.Output(), "\nExtract X Y data points from vector plots.")
		fmt.Fprintln(fs.Output(), "\nFlags:")
		fs.PrintDefaults()
	}

	xMin := fs.Float64("xmin", 0, "physical value of the left plot edge")
	xMax := fs.Float64("xmax", 0, "physical value of the right plot edge")
	yMin := fs.Float64("ymin", 0, "physical value of the bottom plot edge")
	yMax := fs.Float64("ymax", 0, "physical value of the top plot edge")
	logX := fs.Bool("logx", false, "X axis is logarithmic")
	logY := fs.Bool("logy", false, "Y axis is logarithmic")
	out := fs.String("out", "", "output file (default: input name with .txt extension)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("expected exactly one input file, got %d", fs.NArg())
	}
	filename := fs.Arg(0)

	// The four bounds are all-or-nothing: watching which flags were
	// actually set distinguishes an explicit 0 from an absent bound.
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	boundCount := 0
	for _, name := range []string{"xmin", "xmax", "ymin", "ymax"} {
		if set[name] {
			boundCount++
		}
	}
	if boundCount != 0 && boundCount != 4 {
		return fmt.Errorf("for calibration you must provide all four bounds: -xmin, -xmax, -ymin, -ymax")
	}

	ext := replot.Open(filename)
	var spec *calibrate.Spec
	if boundCount == 4 {
		ext = ext.Calibrate(*xMin, *xMax, *yMin, *yMax)
		if *logX {
			ext = ext.LogX()
		}
		if *logY {
			ext = ext.LogY()
		}
		spec = &calibrate.Spec{
			XMin: *xMin, XMax: *xMax,
			YMin: *yMin, YMax: *yMax,
			LogX: *logX, LogY: *logY,
		}
	}

	outPath := *out
	if outPath == "" {
		outPath = strings.TrimSuffix(filename, filepath.Ext(filename)) + ".txt"
	}

	fmt.Fprintf(stdout, "Reading from: %s\n", filename)

	result, warnings, err := ext.Extract()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}

	if b := result.PageBounds; b.Valid {
		fmt.Fprintf(stdout, "Detected Page Bounds: X[%.1f:%.1f] Y[%.1f:%.1f]\n",
			b.XMin, b.XMax, b.YMin, b.YMax)
	}
	fmt.Fprintf(stdout, "Filtered out %d short segments (grid/axes).\n", result.Discarded)

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	n, err := report.Write(f, result.Data, filepath.Base(filename), spec)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Done. Wrote %d points to '%s'\n", n, outPath)
	return nil
}
