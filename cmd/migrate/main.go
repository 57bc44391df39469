package main

import (
	"database/sql"
	"flag"
	"log"
	"os"

	"mca-underwriting/internal/config"
	"mca-underwriting/internal/database"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// Standalone migration runner for deploy pipelines where the API container
// must not hold DDL privileges.
func main() {
	var (
		seed   = flag.Bool("seed", false, "load seed data after migrating")
		status = flag.Bool("status", false, "print migration status and exit")
	)
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	runner := database.NewMigrationRunner(db)

	if err := runner.WaitForDatabase(); err != nil {
		log.Fatalf("database not ready: %v", err)
	}

	if *status {
		version, dirty, err := runner.GetMigrationStatus()
		if err != nil {
			log.Fatalf("failed to get migration status: %v", err)
		}
		log.Printf("migration status - version: %d, dirty: %v", version, dirty)
		return
	}

	if err := runner.RunMigrations(); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	if *seed {
		// LoadSeeds is gated on the same env flag the API uses
		os.Setenv("SEED_DATABASE", "true")
		if err := runner.LoadSeeds(); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
	}

	log.Println("migrations applied")
}
