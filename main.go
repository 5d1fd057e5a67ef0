package main

import (
	"embed"
	"flag"
	"log"
	"time"

	"railhand/internal/persistence"
	"railhand/internal/server"
)

//go:embed web/static
var static embed.FS

func main() {
	port := flag.Int("port", 8080, "server port")
	dbPath := flag.String("db", "railhand.db", "path to the snapshot database")
	seed := flag.Uint64("seed", 0, "rng seed for new games (0 = time-based)")
	flag.Parse()

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	store, err := persistence.Open(*dbPath)
	if err != nil {
		// Saves are best-effort; run without them rather than refuse to start.
		log.Printf("snapshot store unavailable, continuing without saves: %v", err)
		store = nil
	} else {
		defer store.Close()
	}

	srv := server.New(*port, static, store, *seed)
	if err := srv.Start(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
