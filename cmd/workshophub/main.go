package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/workshophub-dev/workshophub/db"
	"github.com/workshophub-dev/workshophub/internal/auth"
	"github.com/workshophub-dev/workshophub/internal/calendar"
	"github.com/workshophub-dev/workshophub/internal/config"
	"github.com/workshophub-dev/workshophub/internal/geocoding"
	"github.com/workshophub-dev/workshophub/internal/handlers"
	"github.com/workshophub-dev/workshophub/internal/router"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()

	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if err := auth.InitJWTSecret(cfg.JWTSecret); err != nil {
		log.Fatalf("Failed to initialize JWT secret: %v", err)
	}

	if err := db.ConnectDatabase(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Schema must be in place before the first request is served.
	if err := db.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	handlers.InitBridges(
		calendar.NewService(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL),
		geocoding.NewClient(geocoding.DefaultBaseURL, cfg.MapsAPIKey),
	)

	r := router.NewRouter()

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
