package config

import "os"

// E2EConfig holds configuration for the browser e2e suite
type E2EConfig struct {
	BaseURL  string
	Headless bool
}

// LoadE2EConfig loads e2e suite configuration from environment variables.
// Set E2E_HEADLESS=false to watch the browser while debugging a test.
func LoadE2EConfig() E2EConfig {
	baseURL := os.Getenv("E2E_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	return E2EConfig{
		BaseURL:  baseURL,
		Headless: os.Getenv("E2E_HEADLESS") != "false",
	}
}
