// recommender/packer.go
package recommender

import (
	"sort"

	"github.com/CoolMentorK/TravelEase/models"
)

// packItinerary greedily assembles one DayPlan per day from the sorted
// pools. Each day first tries the fixed slot order attraction,
// restaurant, attraction, restaurant, then fills remaining time and
// budget from both pools in score order. Selection is tracked in two
// exclusion sets keyed by name — one for attractions, one for
// restaurants — so a name used on any day is never reused for the rest
// of the trip. The per-day budget is budget/days for every day; unspent
// budget does not roll over.
func packItinerary(attractions, restaurants []scoredActivity, days int, maxCostPerDay float64) ([]models.DayPlan, models.Summary) {
	usedAttractions := make(map[string]struct{})
	usedRestaurants := make(map[string]struct{})

	combined := make([]scoredActivity, 0, len(attractions)+len(restaurants))
	combined = append(combined, attractions...)
	combined = append(combined, restaurants...)
	sort.SliceStable(combined, func(i, j int) bool { return combined[i].Score < combined[j].Score })

	plans := make([]models.DayPlan, 0, days)
	var totalCost, totalDuration float64

	for day := 1; day <= days; day++ {
		dayActivities := []models.PlannedActivity{}
		dayCost := 0.0
		dayDuration := 0.0

		slots := []struct {
			pool []scoredActivity
			used map[string]struct{}
		}{
			{attractions, usedAttractions},
			{restaurants, usedRestaurants},
			{attractions, usedAttractions},
			{restaurants, usedRestaurants},
		}
		for _, slot := range slots {
			picked, ok := pickActivity(slot.pool, slot.used, maxHoursPerDay-dayDuration, maxCostPerDay-dayCost)
			if !ok {
				continue
			}
			dayActivities = append(dayActivities, toPlanned(picked))
			dayCost += picked.CostUSD
			dayDuration += picked.DurationHours
		}

		// Fill pass: every remaining candidate in score order gets one
		// chance; a candidate that does not fit is skipped, not a stop.
		for _, option := range combined {
			if _, ok := usedAttractions[option.Name]; ok {
				continue
			}
			if _, ok := usedRestaurants[option.Name]; ok {
				continue
			}
			if dayDuration+option.DurationHours > maxHoursPerDay || dayCost+option.CostUSD > maxCostPerDay {
				continue
			}
			dayActivities = append(dayActivities, toPlanned(option))
			if option.IsRestaurant() {
				usedRestaurants[option.Name] = struct{}{}
			} else {
				usedAttractions[option.Name] = struct{}{}
			}
			dayCost += option.CostUSD
			dayDuration += option.DurationHours
		}

		plans = append(plans, models.DayPlan{Day: day, Activities: dayActivities})
		totalCost += dayCost
		totalDuration += dayDuration
	}

	summary := models.Summary{
		TotalCostUSD:       totalCost,
		TotalDistanceKm:    0,
		TotalDurationHours: totalDuration,
	}
	return plans, summary
}

// pickActivity takes the best-scoring activity from pool that is not yet
// in used and fits the remaining time and budget, marking it used. ok is
// false when nothing in the pool fits.
func pickActivity(pool []scoredActivity, used map[string]struct{}, remainingDuration, remainingBudget float64) (scoredActivity, bool) {
	for _, a := range pool {
		if _, taken := used[a.Name]; taken {
			continue
		}
		if remainingDuration >= a.DurationHours && remainingBudget >= a.CostUSD {
			used[a.Name] = struct{}{}
			return a, true
		}
	}
	return scoredActivity{}, false
}

func toPlanned(a scoredActivity) models.PlannedActivity {
	return models.PlannedActivity{
		Name:            a.Name,
		Category:        a.Category,
		Description:     a.Description,
		CostUSD:         a.CostUSD,
		Address:         a.Address,
		Notes:           a.Notes,
		DurationHours:   a.DurationHours,
		OpeningHours:    a.OpeningHours,
		BestTimeToVisit: a.BestTimeToVisit,
	}
}
