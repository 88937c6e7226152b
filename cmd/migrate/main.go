// Command migrate runs schema operations for the Newsroom API.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"newsroom/internal/config"
	"newsroom/internal/database"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func usage() error {
	return fmt.Errorf("usage: go run ./cmd/migrate <up|down>")
}

func run() error {
	flag.Parse()
	if flag.NArg() < 1 {
		return usage()
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(flag.Arg(0))) {
	case "up":
		if err := database.Migrate(db); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		log.Println("schema applied")
	case "down":
		if err := database.Drop(db); err != nil {
			return fmt.Errorf("drop failed: %w", err)
		}
		log.Println("schema dropped")
	default:
		return usage()
	}
	return nil
}
