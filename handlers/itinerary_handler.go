// handlers/itinerary_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/CoolMentorK/TravelEase/config"
	"github.com/CoolMentorK/TravelEase/models"
	"github.com/CoolMentorK/TravelEase/recommender"
)

const (
	defaultDays   = 1
	defaultBudget = 100.0
)

// Helper to respond with JSON
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Error marshalling JSON response: %v", err)
		http.Error(w, `{"error":"Failed to marshal JSON response"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// Helper to respond with an error
func respondWithError(w http.ResponseWriter, code int, message string) {
	log.Printf("API Error %d: %s", code, message)
	respondWithJSON(w, code, map[string]string{"error": message})
}

// SuggestItineraryHandler handles itinerary suggestion requests.
// Expects POST to /api/itinerary/suggest with JSON body:
// {"location": "...", "interests": ["..."], "days": 2, "budget": 250, "suitable_for": "families"}
// days defaults to 1 and budget to 100 when absent.
func SuggestItineraryHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if r.Method != http.MethodPost {
		respondWithError(w, http.StatusMethodNotAllowed, "Only POST method is allowed")
		return
	}

	var req models.SuggestItineraryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	defer r.Body.Close()

	location := strings.TrimSpace(req.Location)
	if location == "" {
		respondWithError(w, http.StatusBadRequest, "Location is required")
		return
	}
	if len(req.Interests) == 0 {
		respondWithError(w, http.StatusBadRequest, "At least one interest is required")
		return
	}

	days := defaultDays
	if req.Days != nil {
		days = *req.Days
	}
	budget := defaultBudget
	if req.Budget != nil {
		budget = *req.Budget
	}

	log.Printf("Handler: Received itinerary request for %s (%d day(s), budget %.2f)\n", location, days, budget)

	result, err := recommender.Recommend(recommender.Input{
		Location:    location,
		Interests:   req.Interests,
		Days:        days,
		Budget:      budget,
		SuitableFor: strings.TrimSpace(req.SuitableFor),
		DatasetPath: config.AppConfig.Dataset.LocalPath,
	})
	if err != nil {
		switch {
		case errors.Is(err, models.ErrValidation), errors.Is(err, models.ErrNoMatch):
			respondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, os.ErrNotExist):
			respondWithError(w, http.StatusInternalServerError, err.Error())
		default:
			respondWithError(w, http.StatusInternalServerError, "Internal server error: "+err.Error())
		}
		return
	}

	numActivities := 0
	for _, day := range result.Itinerary {
		numActivities += len(day.Activities)
	}

	respondWithJSON(w, http.StatusOK, models.SuggestItineraryResponse{
		Itinerary: result.Itinerary,
		Summary:   result.Summary,
		Metadata: models.ResponseMetadata{
			NumActivities:    numActivities,
			ProcessingTimeMs: float64(time.Since(start).Microseconds()) / 1000.0,
		},
	})
}
