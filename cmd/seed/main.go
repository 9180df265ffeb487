// Command main runs the database seeder for dead-poets.
package main

import (
	"flag"
	"log"

	"github.com/Shiven1412/dead-poets/internal/config"
	"github.com/Shiven1412/dead-poets/internal/database"
	"github.com/Shiven1412/dead-poets/internal/seed"

	"github.com/joho/godotenv"
)

func main() {
	numUsers := flag.Int("users", 25, "Number of users to create")
	numPoems := flag.Int("poems", 100, "Number of poems to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	_ = godotenv.Load()

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
		NumPoems:    *numPoems,
		ShouldClean: *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done. Seeded users share the password: Password123")
}
