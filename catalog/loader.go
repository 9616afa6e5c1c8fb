// catalog/loader.go
package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/CoolMentorK/TravelEase/models"
	"github.com/CoolMentorK/TravelEase/utils"
	"github.com/jszwec/csvutil"
)

// rawActivity mirrors one dataset row before type coercion. The numeric
// columns stay strings here because the source data mixes plain numbers,
// "$" amounts, "$lo-$hi" ranges, and "Free".
type rawActivity struct {
	Name                   string `csv:"name"`
	Category               string `csv:"category"`
	Tags                   string `csv:"tags"`
	Description            string `csv:"description"`
	DurationHours          string `csv:"duration_hours"`
	CostUSD                string `csv:"cost_usd"`
	SuitableFor            string `csv:"suitable_for"`
	DistanceFromPreviousKm string `csv:"distance_from_previous_km"`
	Address                string `csv:"address"`
	OpeningHours           string `csv:"opening_hours"`
	BestTimeToVisit        string `csv:"best_time_to_visit"`
	Notes                  string `csv:"notes"`
}

var requiredColumns = []string{
	"name", "category", "tags", "description",
	"duration_hours", "cost_usd", "suitable_for",
}

// Catalog is the normalized activity set for one load, plus row counters
// for the admin dataset-info endpoint.
type Catalog struct {
	Activities  []models.ActivityRecord
	RowsRead    int
	RowsDropped int
}

// Load reads and normalizes the dataset CSV at datasetPath. The catalog
// is rebuilt from the file on every call; nothing is cached between
// requests.
func Load(datasetPath string) (*Catalog, error) {
	file, err := os.Open(datasetPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %s: %w", datasetPath, err)
	}
	defer file.Close()

	return Parse(file)
}

// Parse decodes CSV catalog data from r. Column names are trimmed and the
// legacy "address/location" column is renamed to "address" before the
// required-column check. Missing optional columns leave their fields at
// zero values (empty text, distance 0). Rows whose cost or duration is
// unparseable, or whose tags or suitable_for classifiers are missing,
// are dropped.
func Parse(r io.Reader) (*Catalog, error) {
	csvReader := csv.NewReader(r)

	header, err := csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset header: %w", err)
	}
	for i, col := range header {
		name := strings.TrimSpace(col)
		if name == "address/location" {
			name = "address"
		}
		header[i] = name
	}
	for _, col := range requiredColumns {
		if !utils.HasElement(header, col) {
			return nil, fmt.Errorf("%w: dataset missing required column: %s", models.ErrSchema, col)
		}
	}

	// Passing the normalized header means csvutil maps columns by our
	// cleaned names and treats every remaining record as data.
	decoder, err := csvutil.NewDecoder(csvReader, header...)
	if err != nil {
		return nil, fmt.Errorf("failed to create CSV decoder: %w", err)
	}

	cat := &Catalog{}
	for {
		var row rawActivity
		if err := decoder.Decode(&row); err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("failed to decode dataset row: %w", err)
		}
		cat.RowsRead++

		record, ok := normalizeRow(row)
		if !ok {
			cat.RowsDropped++
			continue
		}
		cat.Activities = append(cat.Activities, record)
	}

	log.Printf("Catalog: loaded %d activities (%d of %d rows dropped as unusable)\n",
		len(cat.Activities), cat.RowsDropped, cat.RowsRead)
	return cat, nil
}

// normalizeRow coerces a raw row into an ActivityRecord. ok is false for
// rows that must be dropped: unparseable cost or duration, or a missing
// tags/suitable_for classifier.
func normalizeRow(row rawActivity) (models.ActivityRecord, bool) {
	cost, ok := ParseCost(row.CostUSD)
	if !ok {
		return models.ActivityRecord{}, false
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(row.DurationHours), 64)
	if err != nil {
		return models.ActivityRecord{}, false
	}

	tags := utils.SplitSet(row.Tags)
	suitableFor := utils.SplitSet(row.SuitableFor)
	if len(tags) == 0 || len(suitableFor) == 0 {
		return models.ActivityRecord{}, false
	}

	// Distance is optional; anything unparseable counts as 0.
	distance := 0.0
	if v, err := strconv.ParseFloat(strings.TrimSpace(row.DistanceFromPreviousKm), 64); err == nil {
		distance = v
	}

	return models.ActivityRecord{
		Name:                   row.Name,
		Category:               row.Category,
		Description:            row.Description,
		Address:                row.Address,
		Notes:                  row.Notes,
		OpeningHours:           row.OpeningHours,
		BestTimeToVisit:        row.BestTimeToVisit,
		Tags:                   tags,
		SuitableFor:            suitableFor,
		DurationHours:          duration,
		CostUSD:                cost,
		DistanceFromPreviousKm: distance,
	}, true
}

// ParseCost resolves a raw cost cell into a dollar amount. It accepts
// plain numbers, "$" amounts, "$lo-$hi" ranges (averaged), and "free"
// (case/space-insensitive, worth 0). ok is false when the value is
// unparseable, which drops the row.
func ParseCost(raw string) (float64, bool) {
	val := strings.ToLower(strings.TrimSpace(raw))
	if val == "free" {
		return 0, true
	}
	val = strings.ReplaceAll(val, "$", "")

	if strings.Contains(val, "-") {
		parts := strings.SplitN(val, "-", 2)
		low, errLow := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		high, errHigh := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if errLow != nil || errHigh != nil {
			return 0, false
		}
		return (low + high) / 2, true
	}

	v, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
