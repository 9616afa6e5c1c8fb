package models

import "testing"

func TestCategoryPools(t *testing.T) {
	cases := []struct {
		category     string
		isAttraction bool
		isRestaurant bool
	}{
		{"Attraction", true, false},
		{"Tourist Attraction", true, false},
		{"NIGHTLIFE", true, false},
		{"Restaurant", false, true},
		{"Rooftop restaurant & nightlife", true, true},
		{"Spa", false, false},
	}
	for _, c := range cases {
		a := ActivityRecord{Category: c.category}
		if got := a.IsAttraction(); got != c.isAttraction {
			t.Errorf("IsAttraction(%q) = %v, want %v", c.category, got, c.isAttraction)
		}
		if got := a.IsRestaurant(); got != c.isRestaurant {
			t.Errorf("IsRestaurant(%q) = %v, want %v", c.category, got, c.isRestaurant)
		}
	}
}

func TestSetMembership(t *testing.T) {
	a := ActivityRecord{
		Tags:        []string{"history", "localfood"},
		SuitableFor: []string{"families", "seniors"},
	}
	if !a.HasTag("history") {
		t.Error("expected exact tag match")
	}
	if a.HasTag("hist") {
		t.Error("substring must not match a tag")
	}
	if !a.SuitableForGroup("families") {
		t.Error("expected exact suitable_for match")
	}
	if a.SuitableForGroup("family") {
		t.Error("substring must not match a suitable_for group")
	}
}
