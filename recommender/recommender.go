// recommender/recommender.go
package recommender

import (
	"fmt"
	"log"
	"strings"

	"github.com/CoolMentorK/TravelEase/catalog"
	"github.com/CoolMentorK/TravelEase/models"
	"github.com/CoolMentorK/TravelEase/utils"
)

const (
	// maxHoursPerDay caps how much scheduled activity fits in one day.
	maxHoursPerDay = 8.0

	costWeight     = 0.6
	distanceWeight = 0.4

	// budgetEpsilon absorbs float noise when comparing a candidate's
	// cost against the per-day budget ceiling.
	budgetEpsilon = 1e-10
)

// Input holds the parameters for one itinerary recommendation.
type Input struct {
	Location    string
	Interests   []string
	Days        int
	Budget      float64
	SuitableFor string
	DatasetPath string
}

// Recommend builds a day-by-day itinerary from the destinations catalog.
// The dataset is re-read and re-normalized on every call; the whole
// computation is request-scoped with no shared state.
//
// Failures wrap models.ErrValidation (bad input), models.ErrSchema
// (bad dataset), or models.ErrNoMatch (nothing survives filtering).
func Recommend(in Input) (*models.ItineraryResult, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	cat, err := catalog.Load(in.DatasetPath)
	if err != nil {
		return nil, err
	}

	interests := make([]string, 0, len(in.Interests))
	for _, interest := range in.Interests {
		interests = append(interests, utils.NormalizeToken(interest))
	}
	suitableFor := utils.NormalizeToken(in.SuitableFor)

	candidates, err := filterCandidates(cat.Activities, interests, suitableFor)
	if err != nil {
		return nil, err
	}

	scored := scoreCandidates(candidates)

	maxCostPerDay := in.Budget / float64(in.Days)
	maxTotalDuration := float64(in.Days) * maxHoursPerDay
	scored = applyCeilings(scored, maxCostPerDay, maxTotalDuration)
	if len(scored) == 0 {
		return nil, fmt.Errorf("%w: no activities match the given criteria after budget/time filtering; try increasing your budget or days", models.ErrNoMatch)
	}

	attractions, restaurants := partitionPools(scored)
	log.Printf("Recommender: %d candidates for %s (%d attractions, %d restaurants) over %d day(s)\n",
		len(scored), in.Location, len(attractions), len(restaurants), in.Days)

	plans, summary := packItinerary(attractions, restaurants, in.Days, maxCostPerDay)
	return &models.ItineraryResult{Itinerary: plans, Summary: summary}, nil
}

func validateInput(in Input) error {
	if strings.TrimSpace(in.Location) == "" {
		return fmt.Errorf("%w: location must be a non-empty string", models.ErrValidation)
	}
	if len(in.Interests) == 0 {
		return fmt.Errorf("%w: interests must be a non-empty list of strings", models.ErrValidation)
	}
	if in.Days <= 0 {
		return fmt.Errorf("%w: days must be a positive integer", models.ErrValidation)
	}
	if in.Budget <= 0 {
		return fmt.Errorf("%w: budget must be a positive number", models.ErrValidation)
	}
	return nil
}
