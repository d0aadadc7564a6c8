// Command localedb manages the bbolt locale database. The seed
// command writes the built-in locale bundles into a database file,
// which the server then serves with LOCALE_STORE=bolt.
package main

import (
	"flag"
	"log"

	"github.com/hlynes/personagen/locale"
)

func main() {
	var dbPath string
	var command string

	flag.StringVar(&dbPath, "db", "locales.db", "Path to the locale database file")
	flag.StringVar(&command, "command", "seed", "Command: seed, list")
	flag.Parse()

	store, err := locale.OpenBolt(dbPath)
	if err != nil {
		log.Fatalf("Failed to open %s: %v", dbPath, err)
	}
	defer store.Close()

	switch command {
	case "seed":
		seed(store, dbPath)
	case "list":
		list(store)
	default:
		log.Fatalf("Unknown command: %s (use: seed, list)", command)
	}
}

func seed(store *locale.BoltStore, path string) {
	for _, b := range locale.Builtin() {
		if err := store.SaveBundle(b); err != nil {
			log.Fatalf("Failed to save locale %s: %v", b.Code, err)
		}
		log.Printf("Saved %s (%s): %d first names, %d last names, %d cities",
			b.Code, b.Name, len(b.FirstNames), len(b.LastNames), len(b.Cities))
	}
	log.Printf("Seeded %s", path)
}

func list(store *locale.BoltStore) {
	infos, err := store.Locales()
	if err != nil {
		log.Fatalf("Failed to list locales: %v", err)
	}
	if len(infos) == 0 {
		log.Println("No locales found (run with -command seed first)")
		return
	}
	for _, info := range infos {
		log.Printf("%s\t%s", info.Code, info.Name)
	}
}
