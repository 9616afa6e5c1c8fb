// main.go
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/CoolMentorK/TravelEase/config"
	"github.com/CoolMentorK/TravelEase/handlers"
)

func main() {
	log.Println("Starting TravelEase Backend Application...")

	// Optional .env for local overrides; config reads the variables.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment overrides from .env")
	}

	configPath := "config/config.yaml"
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configPath = "../config/config.yaml"
		if _, errFallback := os.Stat(configPath); os.IsNotExist(errFallback) {
			log.Fatalf("Config file not found at default paths. Error: %v", errFallback)
		}
	}

	if err := config.LoadConfig(configPath); err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	log.Printf("Configuration loaded. Server port: %s, dataset: %s",
		config.AppConfig.Server.Port, config.AppConfig.Dataset.LocalPath)

	// --- Setup HTTP routes ---
	mux := http.NewServeMux()

	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if _, err := os.Stat(config.AppConfig.Dataset.LocalPath); err != nil {
			http.Error(w, `{"status": "error", "message": "dataset file not available"}`, http.StatusInternalServerError)
			log.Printf("Health check failed: dataset stat error: %v", err)
			return
		}
		fmt.Fprintln(w, `{"status": "ok", "message": "TravelEase backend is healthy"}`)
	})

	mux.HandleFunc("/api/itinerary/suggest", handlers.SuggestItineraryHandler)

	// Admin routes for managing the destinations dataset
	mux.HandleFunc("/api/admin/refresh-dataset", handlers.RefreshDatasetHandler)
	mux.HandleFunc("/api/admin/dataset/info", handlers.DatasetInfoHandler)

	// The front-end client is served from a different origin, so the
	// whole /api surface goes through CORS middleware.
	corsMiddleware := cors.Handler(cors.Options{
		AllowedOrigins: config.AppConfig.Server.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	})

	serverAddr := ":" + config.AppConfig.Server.Port
	log.Printf("Server starting on http://localhost%s\n", serverAddr)
	if err := http.ListenAndServe(serverAddr, corsMiddleware(mux)); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
