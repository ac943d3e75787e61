package main

import (
	"flag"
	"fmt"
	"log"

	"latexlearn"
)

// Seeds and inspects the sqlite question catalog used by the webserver and
// the CLI quiz.
func main() {
	var (
		dbPath     = flag.String("db", "./catalog.db", "Catalog database path")
		curriculum = flag.String("curriculum", "", "Directory of YAML topic packs to merge before seeding")
		seed       = flag.Bool("seed", false, "Write the built-in catalog (plus packs) into the database")
		list       = flag.Bool("list", false, "List stored topics and question counts")
		verbose    = flag.Bool("verbose", false, "Enable verbose debugging output")
	)

	flag.Parse()

	latexlearn.SetVerbose(*verbose)

	if !*seed && !*list {
		log.Fatal("Nothing to do. Use -seed and/or -list.")
	}

	db, err := latexlearn.OpenCatalogDB(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open catalog database: %v", err)
	}
	defer db.Close()

	if err := db.CreateTables(); err != nil {
		log.Fatalf("Failed to create tables: %v", err)
	}

	if *seed {
		catalog := latexlearn.BuiltinCatalog()
		if *curriculum != "" {
			if err := catalog.LoadDir(*curriculum); err != nil {
				log.Fatalf("Failed to load curriculum packs: %v", err)
			}
		}
		if err := db.SaveCatalog(catalog); err != nil {
			log.Fatalf("Failed to save catalog: %v", err)
		}
		total := 0
		for _, qs := range catalog.Questions {
			total += len(qs)
		}
		log.Printf("Seeded %s with %d topics, %d questions", *dbPath, len(catalog.Topics), total)
	}

	if *list {
		catalog, err := db.LoadCatalog()
		if err != nil {
			log.Fatalf("Failed to load catalog: %v", err)
		}
		counts, err := db.TopicCounts()
		if err != nil {
			log.Fatalf("Failed to count questions: %v", err)
		}
		for _, t := range catalog.Topics {
			fmt.Printf("%-24s %d questions\n", t.Name, counts[t.Name])
		}
	}
}
