// Package vector implements the core extraction engine: it tokenizes
// page-description operator text, assembles poly-line path segments with a
// small state machine, tracks the page-coordinate bounding box, and
// separates data curves from short decorative strokes.
//
// The engine understands the operator vocabulary that plotting libraries
// (Matplotlib, Gnuplot, and friends) actually emit for line art: absolute
// and relative move/line operators, the PDF rectangle operator, and the
// stroke/close family. Everything else in the stream (fills, color, font
// and clipping operators) carries no coordinate data and is ignored.
package vector
