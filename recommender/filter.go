// recommender/filter.go
package recommender

import (
	"fmt"

	"github.com/CoolMentorK/TravelEase/models"
)

// filterCandidates narrows the catalog to records matching the caller's
// interests and demographic. If the strict match comes up empty the
// constraints are relaxed in order: interests only, then demographic
// only. interests and suitableFor must already be normalized; an empty
// suitableFor means no demographic constraint.
func filterCandidates(activities []models.ActivityRecord, interests []string, suitableFor string) ([]models.ActivityRecord, error) {
	matchesInterests := func(a models.ActivityRecord) bool {
		for _, interest := range interests {
			if a.HasTag(interest) {
				return true
			}
		}
		return false
	}
	matchesSuitableFor := func(a models.ActivityRecord) bool {
		return a.SuitableForGroup(suitableFor)
	}

	var candidates []models.ActivityRecord
	if suitableFor != "" {
		candidates = selectWhere(activities, func(a models.ActivityRecord) bool {
			return matchesInterests(a) && matchesSuitableFor(a)
		})
	} else {
		candidates = selectWhere(activities, matchesInterests)
	}

	if len(candidates) == 0 {
		candidates = selectWhere(activities, matchesInterests)
	}
	if len(candidates) == 0 && suitableFor != "" {
		candidates = selectWhere(activities, matchesSuitableFor)
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: no activities match the given criteria; try broadening your interests or suitable_for", models.ErrNoMatch)
	}
	return candidates, nil
}

func selectWhere(activities []models.ActivityRecord, keep func(models.ActivityRecord) bool) []models.ActivityRecord {
	var result []models.ActivityRecord
	for _, a := range activities {
		if keep(a) {
			result = append(result, a)
		}
	}
	return result
}
