// handlers/admin_handler.go
package handlers

import (
	"fmt"
	"net/http"

	"github.com/CoolMentorK/TravelEase/catalog"
	"github.com/CoolMentorK/TravelEase/config"
	"github.com/CoolMentorK/TravelEase/models"
)

// RefreshDatasetHandler handles requests to re-download the destinations
// dataset from the configured source URL.
// Expects POST requests to /api/admin/refresh-dataset.
func RefreshDatasetHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondWithError(w, http.StatusMethodNotAllowed, "Only POST method is allowed")
		return
	}

	if config.AppConfig.Dataset.SourceURL == "" {
		respondWithError(w, http.StatusBadRequest, "No dataset source URL is configured")
		return
	}

	localPath, err := catalog.RefreshDataset()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to refresh dataset: %v", err))
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Dataset refresh completed successfully.",
		"path":    localPath,
	})
}

// DatasetInfoHandler reports load statistics for the configured dataset.
// Expects GET requests to /api/admin/dataset/info.
func DatasetInfoHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "Only GET method is allowed")
		return
	}

	datasetPath := config.AppConfig.Dataset.LocalPath
	cat, err := catalog.Load(datasetPath)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to load dataset: %v", err))
		return
	}

	info := buildDatasetInfo(datasetPath, cat)
	respondWithJSON(w, http.StatusOK, info)
}

func buildDatasetInfo(datasetPath string, cat *catalog.Catalog) models.DatasetInfo {
	info := models.DatasetInfo{
		Path:        datasetPath,
		RowsRead:    cat.RowsRead,
		RowsDropped: cat.RowsDropped,
		Activities:  len(cat.Activities),
	}
	for _, a := range cat.Activities {
		switch {
		case a.IsAttraction():
			info.Attractions++
		case a.IsRestaurant():
			info.Restaurants++
		default:
			info.Uncategorized++
		}
	}
	return info
}
