// Command server exposes a built word database as a JSON REST API.
//
// Endpoints:
//
//	GET /api/lookup?form=<word>
//	GET /api/words?lemma=<lemma>
//	GET /api/patterns
package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"

	"github.com/rs/cors"

	lexicon "github.com/simple-prolog/lexicon"
)

// ---- JSON response types ------------------------------------------------

type lookupResponse struct {
	Form    string         `json:"form"`
	Entries []lexicon.Word `json:"entries"`
}

type wordsResponse struct {
	Lemma   string         `json:"lemma"`
	Entries []lexicon.Word `json:"entries"`
}

type patternsResponse struct {
	Patterns []lexicon.Pattern `json:"patterns"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func toEntriesJSON(entries []*lexicon.Word) []lexicon.Word {
	out := make([]lexicon.Word, 0, len(entries))
	for _, e := range entries {
		out = append(out, *e)
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ---- handlers -----------------------------------------------------------

func handleLookup(db *lexicon.Database) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		form := r.URL.Query().Get("form")
		if form == "" {
			writeError(w, http.StatusBadRequest, "missing 'form' query parameter")
			return
		}
		entries := db.Entries(form)
		status := http.StatusOK
		if len(entries) == 0 {
			status = http.StatusNotFound
		}
		writeJSON(w, status, lookupResponse{
			Form:    form,
			Entries: toEntriesJSON(entries),
		})
	}
}

func handleWords(db *lexicon.Database) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		lemma := r.URL.Query().Get("lemma")
		if lemma == "" {
			writeError(w, http.StatusBadRequest, "missing 'lemma' query parameter")
			return
		}
		entries := db.ByLemma(lemma)
		status := http.StatusOK
		if len(entries) == 0 {
			status = http.StatusNotFound
		}
		writeJSON(w, status, wordsResponse{
			Lemma:   lemma,
			Entries: toEntriesJSON(entries),
		})
	}
}

func handlePatterns(db *lexicon.Database) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		writeJSON(w, http.StatusOK, patternsResponse{Patterns: db.SortedPatterns()})
	}
}

// ---- main ---------------------------------------------------------------

func main() {
	dbPath := flag.String("db", "prolog_database.json", "path to the word database")
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	log.Printf("loading database from %s …", *dbPath)
	db, err := lexicon.Load(*dbPath)
	if err != nil {
		log.Fatalf("failed to load database: %v", err)
	}
	log.Printf("loaded %d word groups, %d patterns", len(db.Words), len(db.Patterns))

	mux := http.NewServeMux()
	mux.HandleFunc("/api/lookup", handleLookup(db))
	mux.HandleFunc("/api/words", handleWords(db))
	mux.HandleFunc("/api/patterns", handlePatterns(db))

	handler := cors.Default().Handler(mux)

	log.Printf("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
