// Package reader opens plot documents and produces the operator text the
// extraction engine consumes. It is the only place that knows there are
// two kinds of source: binary PDF containers, whose content streams must
// be located and decoded, and PostScript/EPS files, which are operator
// text already. Either way the engine downstream sees one flat text blob.
package reader

import (
	"fmt"
	"os"

	"github.com/tsawler/replot/contentstream"
	"github.com/tsawler/replot/format"
)

// Reader holds a loaded document and its detected format.
type Reader struct {
	filename string
	format   format.Format
	data     []byte
}

// Open reads the document at filename. A missing or unreadable file is a
// fatal error; everything past this point is best-effort.
func Open(filename string) (*Reader, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return NewReader(filename, data), nil
}

// NewReader wraps already-loaded document bytes. The format is detected
// from the filename extension, falling back to magic bytes for files with
// unhelpful names.
func NewReader(filename string, data []byte) *Reader {
	f := format.Detect(filename)
	if f == format.Unknown {
		f = format.DetectFromMagic(data)
	}
	return &Reader{
		filename: filename,
		format:   f,
		data:     data,
	}
}

// Filename returns the path the reader was opened with.
func (r *Reader) Filename() string {
	return r.filename
}

// Format returns the detected document format.
func (r *Reader) Format() format.Format {
	return r.format
}

// Content returns the operator text of the document. For PDF containers
// the embedded content streams are located and decoded; an undecodable
// container yields empty text, which the caller treats as "no vector
// content found" rather than an error. Everything else is returned as-is:
// PostScript and unrecognized files are already operator text.
func (r *Reader) Content() string {
	if r.format == format.PDF {
		return contentstream.Extract(r.data)
	}
	return string(r.data)
}
