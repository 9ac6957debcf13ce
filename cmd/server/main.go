package main

import (
	"log"

	"travel_wonders_go/config"
	"travel_wonders_go/db"
	"travel_wonders_go/handlers"
	"travel_wonders_go/middleware"
	"travel_wonders_go/models"
	"travel_wonders_go/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
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

	// Initialize asset storage (R2 or local fallback)
	services.InitializeAssets(cfg)

	// Wire the content pipeline: raw item store, relation resolver and the
	// optional remote curated API in front of it
	handlers.Items = services.NewDBItemStore(db.DB)
	handlers.Content = services.BuildContentSource(cfg, db.DB)

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	e.Use(middleware.Locale(cfg))

	e.GET("/health", handlers.HealthHandler)
	e.GET("/assets/*", handlers.GetAssetHandler)

	api := e.Group("/api")
	{
		api.GET("/countries", handlers.ListCountriesHandler)
		api.GET("/countries/:slug", handlers.GetCountryHandler)
		api.GET("/countries/:slug/guide.pdf", handlers.GetCountryGuideHandler)
		api.GET("/wonders/:slug", handlers.GetWonderHandler)
		api.GET("/specialists", handlers.ListSpecialistsHandler)
		api.GET("/specialists/:slug", handlers.GetSpecialistHandler)
		api.POST("/specialists/:slug/inquiry", handlers.CreateInquiryHandler)
		api.GET("/country-combinations/:slug", handlers.GetCombinationHandler)
		api.GET("/items/:collection", handlers.GetItemsHandler)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
