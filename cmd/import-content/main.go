package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"travel_wonders_go/config"
	"travel_wonders_go/db"
	"travel_wonders_go/models"
	"travel_wonders_go/services"
)

func main() {
	templateOut := flag.String("template", "", "write an empty import template to this path and exit")
	flag.Parse()

	if *templateOut != "" {
		buf, err := services.GenerateContentTemplate()
		if err != nil {
			log.Fatalf("Failed to generate template: %v", err)
		}
		if err := os.WriteFile(*templateOut, buf.Bytes(), 0644); err != nil {
			log.Fatalf("Failed to write template: %v", err)
		}
		fmt.Printf("Template written to %s\n", *templateOut)
		return
	}

	if flag.NArg() != 1 {
		log.Fatal("Usage: import-content [-template out.xlsx] <content.xlsx>")
	}

	// Load configuration
	cfg := config.Load()

	// Initialize database
	if err := db.Initialize(cfg.DBPath, cfg.Environment, cfg.TursoDatabaseURL, cfg.TursoAuthToken); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.AutoMigrate(&models.Country{}, &models.Wonder{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	file, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatalf("Failed to open file: %v", err)
	}
	defer file.Close()

	result, err := services.ImportContentFromExcel(db.DB, file)
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	fmt.Println()
	fmt.Println("✓ Import finished")
	fmt.Printf("  Processed: %d\n", result.TotalProcessed)
	fmt.Printf("  Imported:  %d\n", result.SuccessCount)
	fmt.Printf("  Failed:    %d\n", result.FailedCount)
	for _, e := range result.Errors {
		fmt.Printf("  - %s\n", e)
	}
}
