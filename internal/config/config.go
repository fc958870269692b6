package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// DefaultAPIHost is the Fantastic.jobs RapidAPI host used when nothing else is configured.
	DefaultAPIHost = "fantastic.p.rapidapi.com"
	DefaultPort    = 8000
)

// Config holds everything the server reads from the environment.
type Config struct {
	APIKey       string
	APIHost      string
	BaseURL      string
	Port         int
	DatabaseURL  string
	DatabaseName string
	GinMode      string
	LogLevel     string
}

// LoadEnvFile loads key=value pairs from path into the process environment.
// A missing file is not an error; variables already set are left untouched.
func LoadEnvFile(path string) error {
	if path == "" {
		path = ".env"
	}
	err := godotenv.Load(path)
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Load reads the configuration from environment variables.
func Load() Config {
	return Config{
		APIKey:       envString("FANTASTIC_RAPIDAPI_KEY", ""),
		APIHost:      envString("FANTASTIC_RAPIDAPI_HOST", DefaultAPIHost),
		BaseURL:      strings.TrimRight(envString("FANTASTIC_BASE_URL", ""), "/"),
		Port:         envInt("PORT", DefaultPort),
		DatabaseURL:  envString("DATABASE_URL", ""),
		DatabaseName: envString("DATABASE_NAME", ""),
		GinMode:      envString("GIN_MODE", "debug"),
		LogLevel:     envString("LOG_LEVEL", "info"),
	}
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

func envString(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func envInt(key string, fallback int) int {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
