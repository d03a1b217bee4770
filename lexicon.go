// Package lexicon builds and queries the word database consumed by the
// simple-prolog rule engine. It ingests a UniMorph-style TSV lexicon
// (lemma, inflected form, feature bundle) and produces a normalized JSON
// database of word groups keyed by lemma and word type, with deduplicated
// surface forms.
package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// groupKey identifies a word group. One lemma may appear under several
// word types (e.g. "run" as both Verb and Noun).
type groupKey struct {
	lemma    string
	wordType WordType
}

// Builder accumulates word groups from TSV lexicon records.
type Builder struct {
	// groups maps (lemma, word type) → set of accepted surface forms.
	groups map[groupKey]map[string]struct{}
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{groups: make(map[groupKey]map[string]struct{})}
}

// ReadFile ingests a TSV lexicon file.
func (b *Builder) ReadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open lexicon: %w", err)
	}
	defer f.Close()
	return b.Read(f)
}

// Read ingests TSV lexicon records from r. Each line carries three
// tab-separated fields: lemma, inflected form, and a ;-delimited feature
// bundle whose first segment is the part-of-speech tag. Blank lines and
// lines that do not split into exactly three fields are skipped.
func (b *Builder) Read(r io.Reader) error {
	sc := bufio.NewScanner(r)
	// The default 64KB token limit would abort the whole run on one
	// oversized line; raise it so such lines flow through the normal
	// per-record filtering instead.
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 3 {
			continue
		}
		b.add(fields[0], fields[1], fields[2])
	}
	return sc.Err()
}

// add applies the acceptance pipeline to a single record. An invalid
// lemma or unmapped part-of-speech tag drops the whole record; an
// invalid form only drops the form itself.
func (b *Builder) add(lemma, form, feats string) {
	if !ValidWord(lemma) {
		return
	}
	wt, ok := ResolvePOS(feats)
	if !ok {
		return
	}
	key := groupKey{lemma, wt}
	forms := b.groups[key]
	if forms == nil {
		forms = make(map[string]struct{})
		b.groups[key] = forms
	}
	forms[lemma] = struct{}{}
	if ValidWord(form) {
		forms[form] = struct{}{}
	}
}

// Len returns the number of word groups accumulated so far.
func (b *Builder) Len() int {
	return len(b.groups)
}

// Build produces the output database: word groups sorted by
// (lemma, word type) with each forms set sorted. The pattern list starts
// empty; patterns are authored by hand afterwards.
func (b *Builder) Build() *Database {
	db := &Database{
		Words:    make([]Word, 0, len(b.groups)),
		Patterns: []Pattern{},
	}
	for key, set := range b.groups {
		forms := make([]string, 0, len(set))
		for f := range set {
			forms = append(forms, f)
		}
		sort.Strings(forms)
		db.Words = append(db.Words, Word{
			Lemma:    key.lemma,
			WordType: key.wordType,
			Forms:    forms,
		})
	}
	sort.Slice(db.Words, func(i, j int) bool {
		if db.Words[i].Lemma != db.Words[j].Lemma {
			return db.Words[i].Lemma < db.Words[j].Lemma
		}
		return db.Words[i].WordType < db.Words[j].WordType
	})
	db.rebuildIndex()
	return db
}
