package main

import (
	"log"

	"travel_wonders_go/config"
	"travel_wonders_go/db"
	"travel_wonders_go/models"
	"travel_wonders_go/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	if err := db.Initialize(cfg.DBPath, cfg.Environment, cfg.TursoDatabaseURL, cfg.TursoAuthToken); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.AutoMigrate(
		&models.Country{},
		&models.Wonder{},
		&models.WonderTag{},
		&models.Hike{},
		&models.Attraction{},
		&models.Specialist{},
		&models.SpecialistCountry{},
		&models.Trip{},
		&models.TripDate{},
		&models.CountryCombination{},
		&models.CombinationCountry{},
		&models.BestCombination{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := services.SeedContent(db.DB); err != nil {
		log.Fatalf("Failed to seed content: %v", err)
	}
}
