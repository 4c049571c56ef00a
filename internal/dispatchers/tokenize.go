package dispatchers

import (
	"errors"
	"strings"
)

var errUnbalancedQuote = errors.New("unbalanced quote")

// Tokenize splits an input line into a lowercased command name and its
// arguments. Quoted segments (single or double) form a single token
// with the quotes stripped. When quoting is malformed the line degrades
// to plain whitespace splitting instead of failing.
func Tokenize(line string) (string, []string) {
	tokens, err := splitQuoted(line)
	if err != nil {
		tokens = strings.Fields(line)
	}
	if len(tokens) == 0 {
		return "", []string{}
	}
	return strings.ToLower(tokens[0]), tokens[1:]
}

func splitQuoted(line string) ([]string, error) {
	var tokens []string
	var buf strings.Builder
	var quote rune
	inToken := false

	flush := func() {
		if inToken {
			tokens = append(tokens, buf.String())
			buf.Reset()
			inToken = false
		}
	}

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				buf.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
			inToken = true
		case r == ' ' || r == '\t':
			flush()
		default:
			buf.WriteRune(r)
			inToken = true
		}
	}

	if quote != 0 {
		return nil, errUnbalancedQuote
	}
	flush()
	return tokens, nil
}
