package contentstream

import (
	"bytes"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/tsawler/replot/internal/filters"
)

var (
	streamKeyword    = []byte("stream")
	endstreamKeyword = []byte("endstream")
)

// Extract scans raw PDF bytes for stream blocks, decodes each one it can,
// and returns the concatenated operator text. Streams that fail every
// decode attempt are skipped; if nothing is decodable the result is empty.
func Extract(data []byte) string {
	var sections []string

	pos := 0
	for {
		idx := bytes.Index(data[pos:], streamKeyword)
		if idx < 0 {
			break
		}
		start := pos + idx
		pos = start + len(streamKeyword)

		// Skip matches that are the tail of an "endstream" keyword.
		if start >= 3 && bytes.Equal(data[start-3:start], []byte("end")) {
			continue
		}

		// The stream body begins after the EOL following the keyword.
		body := pos
		for body < len(data) && (data[body] == '\r' || data[body] == '\n') {
			body++
		}

		end := bytes.Index(data[body:], endstreamKeyword)
		if end < 0 {
			break
		}
		block := trimTrailingEOL(data[body : body+end])
		pos = body + end + len(endstreamKeyword)

		if text, ok := decodeStream(block); ok {
			sections = append(sections, text)
		}
	}

	return strings.Join(sections, "\n")
}

// decodeStream tries the decode filters in order of likelihood and reports
// whether the block yielded usable operator text.
func decodeStream(block []byte) (string, bool) {
	// FlateDecode is what every plotting library emits.
	if decompressed, err := filters.FlateDecode(block); err == nil {
		return decodeLatin1(decompressed), true
	}

	// ASCII85, possibly wrapping Flate.
	if decoded, err := filters.ASCII85Decode(block); err == nil {
		if decompressed, err := filters.FlateDecode(decoded); err == nil {
			return decodeLatin1(decompressed), true
		}
		if text := decodeLatin1(decoded); looksLikeVectorText(text) {
			return text, true
		}
	}

	// ASCIIHex, possibly wrapping Flate.
	if decoded, err := filters.ASCIIHexDecode(block); err == nil {
		if decompressed, err := filters.FlateDecode(decoded); err == nil {
			return decodeLatin1(decompressed), true
		}
	}

	// Maybe the stream is uncompressed operator text already.
	if text := decodeLatin1(block); looksLikeVectorText(text) {
		return text, true
	}

	return "", false
}

// looksLikeVectorText reports whether text plausibly contains path
// construction operators. Used to keep uncompressed vector streams while
// discarding binary payloads such as images and font programs.
func looksLikeVectorText(text string) bool {
	return strings.Contains(text, " m") ||
		strings.Contains(text, " l") ||
		strings.Contains(text, " re")
}

// decodeLatin1 converts stream bytes to text one byte per rune. Latin-1
// maps every byte, so stray binary never aborts the decode.
func decodeLatin1(data []byte) string {
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return string(data)
	}
	return string(decoded)
}

// trimTrailingEOL removes the EOL that separates the stream body from the
// endstream keyword.
func trimTrailingEOL(block []byte) []byte {
	for len(block) > 0 {
		last := block[len(block)-1]
		if last != '\r' && last != '\n' {
			break
		}
		block = block[:len(block)-1]
	}
	return block
}
