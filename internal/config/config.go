// Package config reads the configuration from the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/text/currency"
)

var DefaultCategories = []string{"Living", "Savings", "Investments", "Insurance", "Lifestyle", "Giving"}

type Config struct {
	Port    string
	GinMode string

	// LogFormat is "human" or "json". Empty selects by gin mode.
	LogFormat string

	// Base URL the API is reachable at, e.g. https://example.com/api
	APIURL *url.URL

	CORSAllowOrigins []string
	EnablePprof      bool

	// Requests must carry a bearer token if set
	AuthRequired bool

	DataDir string
	DBFile  string

	DefaultCurrency string
	Categories      []string
}

// LoadEnvFile loads a .env file from the working directory if one exists.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		GinMode:          getEnv("GIN_MODE", gin.ReleaseMode),
		LogFormat:        getEnv("LOG_FORMAT", ""),
		CORSAllowOrigins: getEnvList("CORS_ALLOW_ORIGINS", nil),
		EnablePprof:      getEnvBool("ENABLE_PPROF", false),
		AuthRequired:     getEnvBool("AUTH_REQUIRED", false),
		DataDir:          getEnv("DATA_DIR", filepath.Join(".", "data")),
		DBFile:           getEnv("DB_FILE", "allotment.db"),
		DefaultCurrency:  strings.ToUpper(getEnv("DEFAULT_CURRENCY", "SGD")),
		Categories:       getEnvList("CATEGORIES", DefaultCategories),
	}

	apiURL, err := url.Parse(getEnv("API_URL", fmt.Sprintf("http://localhost:%s", cfg.Port)))
	if err != nil {
		return nil, fmt.Errorf("environment variable API_URL must be a valid URL: %w", err)
	}
	cfg.APIURL = apiURL

	return cfg, nil
}

// Validate returns an error listing every invalid setting.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		problems = append(problems, fmt.Sprintf("invalid GIN_MODE '%s'", c.GinMode))
	}

	switch c.LogFormat {
	case "", "human", "json":
	default:
		problems = append(problems, fmt.Sprintf("invalid LOG_FORMAT '%s': must be 'human' or 'json'", c.LogFormat))
	}

	if c.APIURL == nil || c.APIURL.Scheme == "" || c.APIURL.Host == "" {
		problems = append(problems, "API_URL must be an absolute URL")
	}

	if _, err := currency.ParseISO(c.DefaultCurrency); err != nil {
		problems = append(problems, fmt.Sprintf("invalid DEFAULT_CURRENCY '%s': must be an ISO 4217 code", c.DefaultCurrency))
	}

	if len(c.Categories) == 0 {
		problems = append(problems, "CATEGORIES must contain at least one category")
	}

	seen := make(map[string]bool, len(c.Categories))
	for _, category := range c.Categories {
		if seen[strings.ToLower(category)] {
			problems = append(problems, fmt.Sprintf("category '%s' is configured more than once", category))
		}
		seen[strings.ToLower(category)] = true
	}

	if c.DBFile == "" {
		problems = append(problems, "DB_FILE cannot be empty")
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}

	return nil
}

// DSN returns the sqlite data source name.
func (c *Config) DSN() string {
	return filepath.Join(c.DataDir, c.DBFile)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// getEnvList reads a comma separated list. Empty elements are dropped.
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var list []string
	for _, element := range strings.Split(value, ",") {
		if element = strings.TrimSpace(element); element != "" {
			list = append(list, element)
		}
	}

	return list
}
