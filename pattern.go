package lexicon

import (
	"strconv"
	"strings"
	"unicode"
)

// PatternToken is one element of a parsed sentence pattern: either a
// literal word or a <TypeA|TypeB> word-type alternation. Exactly one of
// Literal and Types is set.
type PatternToken struct {
	Literal string
	Types   []WordType
}

// ParsePattern tokenizes a pattern string. Plain words become literal
// tokens; angle-bracketed segments list word-type alternatives
// separated by "|". Unknown type names inside a bracket are ignored,
// and a bracket with no known types yields no token at all.
func ParsePattern(pattern string) []PatternToken {
	var tokens []PatternToken
	var current strings.Builder

	flush := func() {
		if w := strings.TrimSpace(current.String()); w != "" {
			tokens = append(tokens, PatternToken{Literal: w})
		}
		current.Reset()
	}

	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		switch ch := runes[i]; {
		case ch == '<':
			flush()
			j := i + 1
			for j < len(runes) && runes[j] != '>' {
				j++
			}
			var types []WordType
			for _, name := range strings.Split(string(runes[i+1:j]), "|") {
				if wt, ok := WordTypeByName(strings.TrimSpace(name)); ok {
					types = append(types, wt)
				}
			}
			if len(types) > 0 {
				tokens = append(tokens, PatternToken{Types: types})
			}
			i = j
		case unicode.IsSpace(ch):
			flush()
		default:
			current.WriteRune(ch)
		}
	}
	flush()
	return tokens
}

// MatchesToken reports whether a single word satisfies a pattern token.
// A literal must match exactly; a type token matches when any database
// entry for the word carries one of the required types.
func (db *Database) MatchesToken(word string, tok PatternToken) bool {
	if tok.Literal != "" {
		return word == tok.Literal
	}
	for _, e := range db.Entries(word) {
		for _, wt := range tok.Types {
			if e.WordType == wt {
				return true
			}
		}
	}
	return false
}

// MatchTokens reports whether words satisfies the pattern
// token-for-token. The lengths must match exactly.
func (db *Database) MatchTokens(words []string, tokens []PatternToken) bool {
	if len(words) != len(tokens) {
		return false
	}
	for i, w := range words {
		if !db.MatchesToken(w, tokens[i]) {
			return false
		}
	}
	return true
}

// ApplyTemplate substitutes $1..$n placeholders in template with the
// matched words. Higher indices are substituted first so $10 is not
// clobbered by $1.
func ApplyTemplate(words []string, template string) string {
	out := template
	for i := len(words); i >= 1; i-- {
		out = strings.ReplaceAll(out, "$"+strconv.Itoa(i), words[i-1])
	}
	return out
}
