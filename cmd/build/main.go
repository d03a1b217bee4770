// Command build converts a UniMorph-style TSV lexicon into the JSON
// word database consumed by the rule engine.
//
// Usage:
//
//	build [-config lexicon.yaml] [-input eng.tsv] [-output prolog_database.json]
package main

import (
	"flag"
	"fmt"
	"log"

	lexicon "github.com/simple-prolog/lexicon"
)

func main() {
	configPath := flag.String("config", "lexicon.yaml", "path to YAML config file")
	input := flag.String("input", "", "input TSV lexicon (overrides config)")
	output := flag.String("output", "", "output JSON database (overrides config)")
	flag.Parse()

	cfg, err := lexicon.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *input != "" {
		cfg.Input = *input
	}
	if *output != "" {
		cfg.Output = *output
	}

	b := lexicon.NewBuilder()
	if err := b.ReadFile(cfg.Input); err != nil {
		log.Fatalf("read lexicon: %v", err)
	}
	db := b.Build()
	if err := db.Save(cfg.Output); err != nil {
		log.Fatalf("write database: %v", err)
	}
	fmt.Printf("Saved %s with %d word groups.\n", cfg.Output, len(db.Words))
}
