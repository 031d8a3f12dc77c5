package config

import "os"

// ServerConfig holds storefront server configuration
type ServerConfig struct {
	Port        string
	TemplateDir string
	StaticDir   string
}

// LoadServerConfig loads server configuration from environment variables
func LoadServerConfig() ServerConfig {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // Default to port 8080
	}

	templateDir := os.Getenv("TEMPLATE_DIR")
	if templateDir == "" {
		templateDir = "templates"
	}

	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "static"
	}

	return ServerConfig{
		Port:        port,
		TemplateDir: templateDir,
		StaticDir:   staticDir,
	}
}
