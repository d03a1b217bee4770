package lexicon

// ValidWord reports whether s is a clean dictionary word: at least two
// characters, ASCII letters with at most one hyphen and one apostrophe,
// no leading apostrophe, no leading capital. This drops dialectal forms
// like 'Arry, proper nouns, numerals and symbols.
func ValidWord(s string) bool {
	if len(s) < 2 {
		return false
	}
	if s[0] == '\'' {
		return false
	}
	if s[0] >= 'A' && s[0] <= 'Z' {
		return false
	}
	hyphens, apostrophes := 0, 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z':
		case c == '-':
			hyphens++
		case c == '\'':
			apostrophes++
		default:
			return false
		}
	}
	return hyphens <= 1 && apostrophes <= 1
}
