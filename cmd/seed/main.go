// Command seed populates the Newsroom database with demo data.
package main

import (
	"flag"
	"log"

	"newsroom/internal/config"
	"newsroom/internal/database"
	"newsroom/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 20, "Number of users to create")
	numArticles := flag.Int("articles", 60, "Number of articles to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Printf("Target: %d users, %d articles, clean=%v", *numUsers, *numArticles, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumUsers:    *numUsers,
		NumArticles: *numArticles,
		ShouldClean: *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
