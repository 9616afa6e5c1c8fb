// catalog/downloader.go
package catalog

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/CoolMentorK/TravelEase/config"
)

// DownloadFile downloads a file from a URL and saves it to a local path.
// It returns an error if any step fails.
func DownloadFile(url string, localSavePath string) error {
	log.Printf("Attempting to download dataset from URL: %s to local path: %s\n", url, localSavePath)

	client := http.Client{
		Timeout: 30 * time.Second,
	}

	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make GET request to %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to download file from %s: received status code %d", url, resp.StatusCode)
	}

	dir := filepath.Dir(localSavePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	outFile, err := os.Create(localSavePath)
	if err != nil {
		return fmt.Errorf("failed to create local file %s: %w", localSavePath, err)
	}
	defer outFile.Close()

	if _, err := io.Copy(outFile, resp.Body); err != nil {
		return fmt.Errorf("failed to copy downloaded content to %s: %w", localSavePath, err)
	}

	log.Printf("Successfully downloaded %s to %s\n", url, localSavePath)
	return nil
}

// RefreshDataset downloads the destinations CSV from the URL configured
// in dataset.source_url and saves it to the configured local path.
// It returns the local path of the downloaded file or an error.
func RefreshDataset() (string, error) {
	sourceURL := config.AppConfig.Dataset.SourceURL
	localPath := config.AppConfig.Dataset.LocalPath

	if sourceURL == "" {
		return "", fmt.Errorf("dataset source URL is not configured")
	}
	if localPath == "" {
		return "", fmt.Errorf("local save path for dataset is not configured")
	}

	if err := DownloadFile(sourceURL, localPath); err != nil {
		return "", fmt.Errorf("failed to refresh dataset: %w", err)
	}
	return localPath, nil
}
