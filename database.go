package lexicon

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Save writes the database to path as UTF-8 JSON with 2-space
// indentation. Non-ASCII characters are written as-is, not escaped.
func (db *Database) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(db); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// Load reads a database produced by Save and rebuilds its lookup index.
func Load(path string) (*Database, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	db := &Database{}
	if err := json.Unmarshal(data, db); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if db.Patterns == nil {
		db.Patterns = []Pattern{}
	}
	db.rebuildIndex()
	return db, nil
}

// rebuildIndex maps every surface form to its lemma and every lemma to
// its entries. A form shared by several lemmas resolves to one of them.
func (db *Database) rebuildIndex() {
	db.formIndex = make(map[string]string)
	db.byLemma = make(map[string][]*Word)
	for i := range db.Words {
		w := &db.Words[i]
		db.formIndex[w.Lemma] = w.Lemma
		db.byLemma[w.Lemma] = append(db.byLemma[w.Lemma], w)
		for _, f := range w.Forms {
			db.formIndex[f] = w.Lemma
		}
	}
}

// Entries returns all word groups sharing the lemma that the given
// surface form resolves to, or nil when the form is unknown.
func (db *Database) Entries(form string) []*Word {
	lemma, ok := db.formIndex[form]
	if !ok {
		return nil
	}
	return db.byLemma[lemma]
}

// ByLemma returns the word groups for an exact lemma.
func (db *Database) ByLemma(lemma string) []*Word {
	return db.byLemma[lemma]
}

// SortedPatterns returns the enabled patterns, highest priority first.
func (db *Database) SortedPatterns() []Pattern {
	out := make([]Pattern, 0, len(db.Patterns))
	for _, p := range db.Patterns {
		if p.Enabled {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority > out[j].Priority
	})
	return out
}
