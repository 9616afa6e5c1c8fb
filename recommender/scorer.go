// recommender/scorer.go
package recommender

import (
	"sort"

	"github.com/CoolMentorK/TravelEase/models"
)

// scoredActivity is a candidate annotated with its request-scoped
// normalized columns and desirability score. Lower score is preferred
// (cheaper and closer).
type scoredActivity struct {
	models.ActivityRecord
	CostNorm     float64
	DistanceNorm float64
	Score        float64
}

// scoreCandidates annotates every candidate with min-max normalized cost
// and distance plus the weighted score.
func scoreCandidates(candidates []models.ActivityRecord) []scoredActivity {
	costs := make([]float64, len(candidates))
	distances := make([]float64, len(candidates))
	for i, a := range candidates {
		costs[i] = a.CostUSD
		distances[i] = a.DistanceFromPreviousKm
	}

	costNorms := normalizeColumn(costs)
	distanceNorms := normalizeColumn(distances)

	scored := make([]scoredActivity, len(candidates))
	for i, a := range candidates {
		scored[i] = scoredActivity{
			ActivityRecord: a,
			CostNorm:       costNorms[i],
			DistanceNorm:   distanceNorms[i],
			Score:          costWeight*costNorms[i] + distanceWeight*distanceNorms[i],
		}
	}
	return scored
}

// normalizeColumn min-max normalizes values into [0,1]. A column where
// every value is equal normalizes to all zeros rather than dividing by
// zero.
func normalizeColumn(values []float64) []float64 {
	norms := make([]float64, len(values))
	if len(values) == 0 {
		return norms
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if max == min {
		return norms
	}

	for i, v := range values {
		norms[i] = (v - min) / (max - min)
	}
	return norms
}

// applyCeilings drops candidates that could never fit a single day's
// budget or the whole trip's time. The epsilon only pads the cost
// comparison; the duration ceiling is exact.
func applyCeilings(scored []scoredActivity, maxCostPerDay, maxTotalDuration float64) []scoredActivity {
	var kept []scoredActivity
	for _, s := range scored {
		if s.CostUSD <= maxCostPerDay+budgetEpsilon && s.DurationHours <= maxTotalDuration {
			kept = append(kept, s)
		}
	}
	return kept
}

// partitionPools splits candidates into the attraction pool (category
// contains "attraction" or "nightlife") and the restaurant pool
// (category contains "restaurant"), each sorted ascending by score.
// A record whose category mentions both lands in both pools.
func partitionPools(scored []scoredActivity) (attractions, restaurants []scoredActivity) {
	for _, s := range scored {
		if s.IsAttraction() {
			attractions = append(attractions, s)
		}
		if s.IsRestaurant() {
			restaurants = append(restaurants, s)
		}
	}
	sort.SliceStable(attractions, func(i, j int) bool { return attractions[i].Score < attractions[j].Score })
	sort.SliceStable(restaurants, func(i, j int) bool { return restaurants[i].Score < restaurants[j].Score })
	return attractions, restaurants
}
