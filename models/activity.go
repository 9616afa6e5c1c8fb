// models/activity.go
package models

import "strings"

// ActivityRecord represents one row of the destinations catalog after
// normalization. Tags and SuitableFor are lowercase, space-free tokens
// split from the comma-separated source columns. CostUSD is already
// resolved from the heterogeneous raw representations ("Free", "$10-$20",
// "$12.50", plain numbers) by the catalog loader.
type ActivityRecord struct {
	Name            string
	Category        string
	Description     string
	Address         string
	Notes           string
	OpeningHours    string
	BestTimeToVisit string

	Tags        []string
	SuitableFor []string

	DurationHours          float64
	CostUSD                float64
	DistanceFromPreviousKm float64
}

// HasTag reports whether tag is an exact element of the record's tag set.
func (a ActivityRecord) HasTag(tag string) bool {
	for _, t := range a.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// SuitableForGroup reports whether group is an exact element of the
// record's suitable_for set.
func (a ActivityRecord) SuitableForGroup(group string) bool {
	for _, s := range a.SuitableFor {
		if s == group {
			return true
		}
	}
	return false
}

// IsAttraction reports whether the record belongs to the attraction pool
// (category contains "attraction" or "nightlife", case-insensitive).
func (a ActivityRecord) IsAttraction() bool {
	category := strings.ToLower(a.Category)
	return strings.Contains(category, "attraction") || strings.Contains(category, "nightlife")
}

// IsRestaurant reports whether the record belongs to the restaurant pool
// (category contains "restaurant", case-insensitive).
func (a ActivityRecord) IsRestaurant() bool {
	return strings.Contains(strings.ToLower(a.Category), "restaurant")
}
