package lexicon

import "strings"

// WordType is the grammatical category of a word group.
type WordType string

const (
	Verb      WordType = "Verb"
	Noun      WordType = "Noun"
	Adjective WordType = "Adjective"
	Adverb    WordType = "Adverb"

	// The builder never emits the types below. They appear in
	// hand-extended databases and in pattern alternations.
	Pronoun      WordType = "Pronoun"
	Preposition  WordType = "Preposition"
	Conjunction  WordType = "Conjunction"
	Interjection WordType = "Interjection"
	Determiner   WordType = "Determiner"
)

// posMap maps UniMorph part-of-speech tags to word types. Tags outside
// the map (PROPN, AUX, the catch-all, ...) drop the record.
var posMap = map[string]WordType{
	"V":   Verb,
	"N":   Noun,
	"ADJ": Adjective,
	"ADV": Adverb,
}

// ResolvePOS extracts the part-of-speech tag (the first ;-delimited
// segment) from a feature bundle and maps it to a WordType.
func ResolvePOS(feats string) (WordType, bool) {
	tag, _, _ := strings.Cut(feats, ";")
	wt, ok := posMap[tag]
	return wt, ok
}

// wordTypes maps every word-type label back to its WordType, including
// the types the builder never emits.
var wordTypes = map[string]WordType{
	"Verb":         Verb,
	"Noun":         Noun,
	"Adjective":    Adjective,
	"Adverb":       Adverb,
	"Pronoun":      Pronoun,
	"Preposition":  Preposition,
	"Conjunction":  Conjunction,
	"Interjection": Interjection,
	"Determiner":   Determiner,
}

// WordTypeByName maps a word-type label (e.g. "Noun") to its WordType.
func WordTypeByName(name string) (WordType, bool) {
	wt, ok := wordTypes[name]
	return wt, ok
}

// Word is one word group: a lemma under a single word type together
// with all of its accepted surface forms. Forms are sorted, unique, and
// always include the lemma itself.
type Word struct {
	Lemma    string   `json:"lemma"`
	WordType WordType `json:"word_type"`
	Forms    []string `json:"forms"`
}

// Pattern is a sentence pattern consumed by the rule engine. The
// builder always writes an empty pattern list.
type Pattern struct {
	Name     string `json:"name"`
	Pattern  string `json:"pattern"`
	Template string `json:"template"`
	Priority int    `json:"priority"`
	Enabled  bool   `json:"enabled"`
}

// Database is the full word database: word groups plus sentence
// patterns, with an in-memory lookup index rebuilt on load.
type Database struct {
	Words    []Word    `json:"words"`
	Patterns []Pattern `json:"patterns"`

	// formIndex maps every surface form to its lemma; byLemma maps a
	// lemma to its entries (one per word type).
	formIndex map[string]string
	byLemma   map[string][]*Word
}
