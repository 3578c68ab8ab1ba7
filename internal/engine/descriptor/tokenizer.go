package descriptor

import "strings"

// token is one bracketed placeholder occurrence inside a template
type token struct {
	// Name is the content between the brackets
	Name string
	// Literal is the exact bracketed form, kept for substitution matching
	Literal string
}

// scanTokens returns every token occurrence in order. Empty brackets "[]"
// are not tokens and are left to render as literal text.
func scanTokens(s string) []token {
	var tokens []token
	for i := 0; i < len(s); {
		open := strings.IndexByte(s[i:], '[')
		if open < 0 {
			break
		}
		open += i
		closing := strings.IndexByte(s[open+1:], ']')
		if closing < 0 {
			break
		}
		closing += open + 1

		name := s[open+1 : closing]
		if name != "" {
			tokens = append(tokens, token{
				Name:    name,
				Literal: s[open : closing+1],
			})
		}
		i = closing + 1
	}
	return tokens
}

// uniqueTokenNames deduplicates scanned tokens preserving first-occurrence order
func uniqueTokenNames(tokens []token) []string {
	if len(tokens) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tokens))
	names := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if _, ok := seen[t.Name]; ok {
			continue
		}
		seen[t.Name] = struct{}{}
		names = append(names, t.Name)
	}
	return names
}
