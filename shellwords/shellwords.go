// Package shellwords splits a command line into an argument vector for
// direct execution.
package shellwords

import "strings"

// Split tokenizes s on spaces, honoring single and double quotes. Either
// quote character toggles a quoted region in which spaces do not split;
// the quote characters themselves are dropped from the tokens. The two
// quote styles are interchangeable and do not nest, and backslash escapes
// are not interpreted. An unbalanced quote absorbs the remainder of the
// string into the current token.
//
// An empty or all-space input yields an empty vector, which callers must
// treat as a configuration error: there is no executable to resolve.
func Split(s string) []string {
	args := make([]string, 0, 8)

	var current strings.Builder

	inQuote := false

	for _, c := range s {
		switch {
		case c == '"' || c == '\'':
			inQuote = !inQuote
		case c == ' ' && !inQuote:
			if current.Len() > 0 {
				args = append(args, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(c)
		}
	}

	if current.Len() > 0 {
		args = append(args, current.String())
	}

	return args
}
