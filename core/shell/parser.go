package shell

import "strings"

// Split breaks an input line into its semicolon-delimited sub-commands.
// A trailing or doubled semicolon yields an empty fragment, which
// tokenizes to nothing and dispatches as a no-op.
func Split(line string) []string {
	return strings.Split(line, ";")
}

// Fields breaks one sub-command into its tokens.
//
// A double quote toggles the in-quotes state and is kept in the token,
// it's never stripped. A space outside quotes ends the current token;
// runs of spaces produce no empty tokens. Every other character, and a
// space inside quotes, is appended to the current token. An unbalanced
// quote is not an error; the scan completes with whatever state remains.
func Fields(command string) []string {
	var (
		tokens   []string
		token    strings.Builder
		inQuotes bool
	)

	for _, c := range command {
		switch {
		case c == '"':
			inQuotes = !inQuotes
			token.WriteRune(c)
		case c == ' ' && !inQuotes:
			if token.Len() > 0 {
				tokens = append(tokens, token.String())
				token.Reset()
			}
		default:
			token.WriteRune(c)
		}
	}

	if token.Len() > 0 {
		tokens = append(tokens, token.String())
	}
	return tokens
}
