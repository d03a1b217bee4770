package lexicon

import (
	"path/filepath"
	"testing"
)

func TestLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	built := buildFrom(t,
		"run\truns\tV;3;SG",
		"run\tran\tV;PST",
		"run\truns\tN;PL",
		"dog\tdogs\tN;PL",
	)

	path := filepath.Join(dir, "db.json")
	if err := built.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	db, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(db.Words) != len(built.Words) {
		t.Fatalf("loaded %d groups, want %d", len(db.Words), len(built.Words))
	}
	for i := range db.Words {
		if db.Words[i].Lemma != built.Words[i].Lemma ||
			db.Words[i].WordType != built.Words[i].WordType {
			t.Errorf("words[%d] = (%s, %s), want (%s, %s)",
				i, db.Words[i].Lemma, db.Words[i].WordType,
				built.Words[i].Lemma, built.Words[i].WordType)
		}
	}

	// A surface form resolves to every group of its lemma.
	entries := db.Entries("ran")
	if len(entries) != 2 {
		t.Fatalf("Entries('ran') returned %d groups, want 2 (Verb and Noun)", len(entries))
	}
	for _, e := range entries {
		if e.Lemma != "run" {
			t.Errorf("Entries('ran') lemma = %q, want run", e.Lemma)
		}
	}
}

func TestEntriesUnknownForm(t *testing.T) {
	db := buildFrom(t, "dog\tdogs\tN;PL")
	if got := db.Entries("cat"); got != nil {
		t.Errorf("Entries('cat') = %v, want nil", got)
	}
}

func TestByLemma(t *testing.T) {
	db := buildFrom(t,
		"run\truns\tV;3;SG",
		"run\truns\tN;PL",
	)
	if got := len(db.ByLemma("run")); got != 2 {
		t.Errorf("ByLemma('run') returned %d groups, want 2", got)
	}
	// An inflected form is not a lemma key.
	if got := db.ByLemma("runs"); got != nil {
		t.Errorf("ByLemma('runs') = %v, want nil", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("Load of missing file returned nil error")
	}
}

func TestSortedPatterns(t *testing.T) {
	db := &Database{
		Patterns: []Pattern{
			{Name: "low", Pattern: "<Noun>", Template: "noun($1)", Priority: 1, Enabled: true},
			{Name: "off", Pattern: "<Verb>", Template: "verb($1)", Priority: 9, Enabled: false},
			{Name: "high", Pattern: "<Noun> <Verb>", Template: "does($1, $2)", Priority: 5, Enabled: true},
		},
	}
	got := db.SortedPatterns()
	if len(got) != 2 {
		t.Fatalf("got %d patterns, want 2 (disabled excluded)", len(got))
	}
	if got[0].Name != "high" || got[1].Name != "low" {
		t.Errorf("pattern order = [%s %s], want [high low]", got[0].Name, got[1].Name)
	}
}

func TestLoadedExtendedWordTypes(t *testing.T) {
	dir := t.TempDir()
	db := &Database{
		Words: []Word{
			{Lemma: "he", WordType: Pronoun, Forms: []string{"he", "him"}},
		},
		Patterns: []Pattern{},
	}
	path := filepath.Join(dir, "db.json")
	if err := db.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	entries := loaded.Entries("him")
	if len(entries) != 1 || entries[0].WordType != Pronoun {
		t.Errorf("Entries('him') = %v, want one Pronoun entry", entries)
	}
}
