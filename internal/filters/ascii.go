package filters

import (
	"bytes"
	"fmt"
)

// ASCIIHexDecode decodes ASCII hexadecimal encoded data. Each pair of hex
// digits represents one byte; whitespace is ignored and > marks end of data.
// An odd trailing digit is treated as if followed by 0.
func ASCIIHexDecode(data []byte) ([]byte, error) {
	var result bytes.Buffer

	var pending byte
	havePending := false

	for _, c := range data {
		if isWhitespace(c) {
			continue
		}
		if c == '>' {
			break
		}

		v, err := hexDigitToByte(c)
		if err != nil {
			return nil, err
		}

		if havePending {
			result.WriteByte((pending << 4) | v)
			havePending = false
		} else {
			pending = v
			havePending = true
		}
	}

	if havePending {
		result.WriteByte(pending << 4)
	}

	return result.Bytes(), nil
}

// ASCII85Decode decodes base-85 encoded data. Each group of 5 characters
// (! through u) represents 4 bytes; 'z' is shorthand for four zero bytes
// and ~> marks end of data. A final short group is padded with 'u' before
// decoding, per the PostScript specification.
func ASCII85Decode(data []byte) ([]byte, error) {
	var result bytes.Buffer

	i := 0
	for i < len(data) {
		c := data[i]

		if isWhitespace(c) {
			i++
			continue
		}

		if c == '~' && i+1 < len(data) && data[i+1] == '>' {
			break
		}

		if c == 'z' {
			result.Write([]byte{0, 0, 0, 0})
			i++
			continue
		}

		// Collect up to 5 base-85 digits.
		digits := make([]byte, 0, 5)
		for len(digits) < 5 && i < len(data) {
			c = data[i]
			if isWhitespace(c) {
				i++
				continue
			}
			if c == '~' && i+1 < len(data) && data[i+1] == '>' {
				break
			}
			if c < '!' || c > 'u' {
				return nil, fmt.Errorf("invalid ASCII85 character: %c", c)
			}
			digits = append(digits, c-'!')
			i++
		}

		if len(digits) == 0 {
			break
		}
		if len(digits) == 1 {
			return nil, fmt.Errorf("truncated ASCII85 group")
		}

		numBytes := len(digits) - 1
		for len(digits) < 5 {
			digits = append(digits, 84) // pad with 'u'
		}

		value := uint32(0)
		for _, d := range digits {
			value = value*85 + uint32(d)
		}

		for j := 0; j < numBytes; j++ {
			result.WriteByte(byte(value >> (24 - j*8)))
		}
	}

	return result.Bytes(), nil
}

// hexDigitToByte converts a hexadecimal character to its numeric value.
func hexDigitToByte(c byte) (byte, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	default:
		return 0, fmt.Errorf("invalid hex digit: %c", c)
	}
}

// isWhitespace reports whether c is a PDF whitespace character.
func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f' || c == 0
}
