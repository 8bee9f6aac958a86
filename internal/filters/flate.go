package filters

import (
	"bytes"
	"compress/flate"
	"compress/zlib"
	"fmt"
	"io"
)

// FlateDecode decompresses Flate compressed data. Streams written by
// plotting libraries normally carry a zlib header, but some generators
// emit raw deflate data, so a headerless decode is attempted before
// giving up.
func FlateDecode(data []byte) ([]byte, error) {
	decompressed, zerr := zlibDecompress(data)
	if zerr == nil {
		return decompressed, nil
	}

	decompressed, ferr := rawDeflateDecompress(data)
	if ferr == nil {
		return decompressed, nil
	}

	return nil, fmt.Errorf("flate decode failed: %w", zerr)
}

// zlibDecompress decompresses data that starts with a zlib header.
func zlibDecompress(data []byte) ([]byte, error) {
	reader, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create zlib reader: %w", err)
	}
	defer reader.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, reader); err != nil {
		return nil, fmt.Errorf("failed to decompress: %w", err)
	}

	return buf.Bytes(), nil
}

// rawDeflateDecompress decompresses headerless deflate data.
func rawDeflateDecompress(data []byte) ([]byte, error) {
	reader := flate.NewReader(bytes.NewReader(data))
	defer reader.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, reader); err != nil {
		return nil, fmt.Errorf("failed to decompress: %w", err)
	}

	return buf.Bytes(), nil
}
