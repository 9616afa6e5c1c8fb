package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/CoolMentorK/TravelEase/models"
)

func TestParseCost(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"Free", 0, true},
		{" free ", 0, true},
		{"FREE", 0, true},
		{"$10-$20", 15, true},
		{"$10 - $20", 15, true},
		{"10-20", 15, true},
		{"$12.50", 12.5, true},
		{"12.5", 12.5, true},
		{"0", 0, true},
		{"abc", 0, false},
		{"", 0, false},
		{"$10-abc", 0, false},
		{"$-5", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseCost(c.in)
		if ok != c.ok {
			t.Errorf("ParseCost(%q) ok = %v, want %v", c.in, ok, c.ok)
			continue
		}
		if ok && got != c.want {
			t.Errorf("ParseCost(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseNormalizesRows(t *testing.T) {
	data := `name,category,tags,description,duration_hours,cost_usd,suitable_for,address/location
Museum,Attraction,"History, Culture",Old museum,2,$12.50,"Families, Seniors",12 Museum Way
Free Walk,Attraction,history,Guided walk,1.5,Free,families,Old Town
Jazz Club,Nightlife,music,Live sets,3,$15-$25,couples,5 Pier Rd
Broken Cost,Attraction,history,Bad cost,2,abc,families,Nowhere
Broken Duration,Attraction,history,Bad duration,soon,10,families,Nowhere
`
	cat, err := Parse(strings.NewReader(data))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cat.RowsRead != 5 {
		t.Errorf("rows read = %d, want 5", cat.RowsRead)
	}
	if cat.RowsDropped != 2 {
		t.Errorf("rows dropped = %d, want 2", cat.RowsDropped)
	}
	if len(cat.Activities) != 3 {
		t.Fatalf("activities = %d, want 3", len(cat.Activities))
	}

	museum := cat.Activities[0]
	if museum.CostUSD != 12.5 {
		t.Errorf("museum cost = %v, want 12.5", museum.CostUSD)
	}
	if !reflect.DeepEqual(museum.Tags, []string{"history", "culture"}) {
		t.Errorf("museum tags = %v", museum.Tags)
	}
	if !reflect.DeepEqual(museum.SuitableFor, []string{"families", "seniors"}) {
		t.Errorf("museum suitable_for = %v", museum.SuitableFor)
	}
	// address/location must have been renamed to address
	if museum.Address != "12 Museum Way" {
		t.Errorf("museum address = %q, want %q", museum.Address, "12 Museum Way")
	}

	if cat.Activities[1].CostUSD != 0 {
		t.Errorf("free walk cost = %v, want 0", cat.Activities[1].CostUSD)
	}
	if cat.Activities[2].CostUSD != 20 {
		t.Errorf("jazz club cost = %v, want 20 (range average)", cat.Activities[2].CostUSD)
	}
}

func TestParseTrimsHeaderWhitespace(t *testing.T) {
	data := " name , category ,tags,description,duration_hours,cost_usd,suitable_for\n" +
		"Museum,Attraction,history,Old museum,2,10,families\n"
	cat, err := Parse(strings.NewReader(data))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(cat.Activities) != 1 || cat.Activities[0].Name != "Museum" {
		t.Fatalf("activities = %+v, want one Museum", cat.Activities)
	}
}

func TestParseMissingRequiredColumn(t *testing.T) {
	data := "name,category,tags,description,duration_hours,suitable_for\n" +
		"Museum,Attraction,history,Old museum,2,families\n"
	_, err := Parse(strings.NewReader(data))
	if err == nil {
		t.Fatal("expected schema error for missing cost_usd")
	}
	if !errors.Is(err, models.ErrSchema) {
		t.Errorf("error = %v, want ErrSchema", err)
	}
	if !strings.Contains(err.Error(), "cost_usd") {
		t.Errorf("error should name the missing column, got %q", err.Error())
	}
}

func TestParseSynthesizesOptionalColumns(t *testing.T) {
	data := "name,category,tags,description,duration_hours,cost_usd,suitable_for\n" +
		"Museum,Attraction,history,Old museum,2,10,families\n"
	cat, err := Parse(strings.NewReader(data))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	a := cat.Activities[0]
	if a.Address != "" || a.OpeningHours != "" || a.BestTimeToVisit != "" || a.Notes != "" {
		t.Errorf("optional text columns should default to empty, got %+v", a)
	}
	if a.DistanceFromPreviousKm != 0 {
		t.Errorf("missing distance should default to 0, got %v", a.DistanceFromPreviousKm)
	}
}

func TestParseDropsMissingClassifiers(t *testing.T) {
	data := "name,category,tags,description,duration_hours,cost_usd,suitable_for\n" +
		"No Tags,Attraction,,Some place,2,10,families\n" +
		"No Suitable,Attraction,history,Some place,2,10,\n" +
		"Kept,Attraction,history,Some place,2,10,families\n"
	cat, err := Parse(strings.NewReader(data))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(cat.Activities) != 1 || cat.Activities[0].Name != "Kept" {
		t.Fatalf("activities = %+v, want only Kept", cat.Activities)
	}
	if cat.RowsDropped != 2 {
		t.Errorf("rows dropped = %d, want 2", cat.RowsDropped)
	}
}

func TestParseUnparseableDistanceIsKept(t *testing.T) {
	data := "name,category,tags,description,duration_hours,cost_usd,suitable_for,distance_from_previous_km\n" +
		"Museum,Attraction,history,Old museum,2,10,families,unknown\n"
	cat, err := Parse(strings.NewReader(data))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(cat.Activities) != 1 {
		t.Fatalf("activities = %d, want 1 (distance is optional)", len(cat.Activities))
	}
	if cat.Activities[0].DistanceFromPreviousKm != 0 {
		t.Errorf("distance = %v, want 0", cat.Activities[0].DistanceFromPreviousKm)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	if err == nil {
		t.Fatal("expected error for missing dataset file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want wrapped os.ErrNotExist", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "destinations.csv")
	data := "name,category,tags,description,duration_hours,cost_usd,suitable_for\n" +
		"Museum,Attraction,history,Old museum,2,10,families\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	cat, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cat.Activities) != 1 {
		t.Fatalf("activities = %d, want 1", len(cat.Activities))
	}
}
