// config/config.go
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port           string   `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type DatasetConfig struct {
	LocalPath string `yaml:"local_path"`
	SourceURL string `yaml:"source_url"`
}

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Dataset DatasetConfig `yaml:"dataset"`
}

var AppConfig Config

// LoadConfig reads configuration from the given YAML file, then applies
// environment-variable overrides (PORT, DATASET_PATH, DATASET_SOURCE_URL,
// ALLOWED_ORIGINS) and defaults for anything still unset. Environment
// values may come from a .env file loaded by main.
func LoadConfig(configPath string) error {
	file, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	AppConfig = Config{}
	if err := yaml.Unmarshal(file, &AppConfig); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyEnvOverrides()
	applyDefaults()
	return nil
}

func applyEnvOverrides() {
	if port := os.Getenv("PORT"); port != "" {
		AppConfig.Server.Port = port
	}
	if path := os.Getenv("DATASET_PATH"); path != "" {
		AppConfig.Dataset.LocalPath = path
	}
	if url := os.Getenv("DATASET_SOURCE_URL"); url != "" {
		AppConfig.Dataset.SourceURL = url
	}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		var parsed []string
		for _, origin := range strings.Split(origins, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				parsed = append(parsed, trimmed)
			}
		}
		if len(parsed) > 0 {
			AppConfig.Server.AllowedOrigins = parsed
		}
	}
}

func applyDefaults() {
	if AppConfig.Server.Port == "" {
		AppConfig.Server.Port = "5000"
	}
	if len(AppConfig.Server.AllowedOrigins) == 0 {
		AppConfig.Server.AllowedOrigins = []string{"http://localhost:3000"}
	}
	if AppConfig.Dataset.LocalPath == "" {
		AppConfig.Dataset.LocalPath = "data/destinations.csv"
	}
}
