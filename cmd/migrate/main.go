package main

import (
	"log"

	"github.com/fittogether/backend/config"
	"github.com/fittogether/backend/internal/database"
)

// Runs schema migrations and exits. The API server also migrates on
// startup; this command exists for deploy pipelines that migrate first.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("All migrations applied successfully.")
}
