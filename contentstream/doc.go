// Package contentstream locates and decodes the content streams embedded
// in a PDF file without parsing the PDF object graph. It scans the raw
// bytes for stream ... endstream blocks, attempts the decode filters that
// plotting libraries actually emit (Flate, optionally ASCII85 or ASCIIHex
// wrapped), and returns the concatenated operator text.
//
// The package is deliberately best-effort: a stream that cannot be decoded
// is skipped, and a file with no decodable streams yields empty text. The
// caller treats empty text as "no vector content found", not as an error.
package contentstream
