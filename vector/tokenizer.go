package vector

import "strings"

// Tokenize splits raw operator text into an ordered sequence of
// whitespace-delimited tokens. Everything from a % comment marker to the
// end of its physical line is removed before splitting, so DSC comments
// and inline remarks never reach the assembler.
func Tokenize(text string) []string {
	var tokens []string

	for _, line := range strings.Split(text, "\n") {
		if i := strings.IndexByte(line, '%'); i >= 0 {
			line = line[:i]
		}
		tokens = append(tokens, strings.Fields(line)...)
	}

	return tokens
}
