package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"FANTASTIC_RAPIDAPI_KEY", "FANTASTIC_RAPIDAPI_HOST", "FANTASTIC_BASE_URL",
		"PORT", "DATABASE_URL", "DATABASE_NAME", "GIN_MODE", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.APIKey != "" {
		t.Fatalf("APIKey = %q, want empty", cfg.APIKey)
	}
	if cfg.APIHost != DefaultAPIHost {
		t.Fatalf("APIHost = %q, want %q", cfg.APIHost, DefaultAPIHost)
	}
	if cfg.Port != DefaultPort {
		t.Fatalf("Port = %d, want %d", cfg.Port, DefaultPort)
	}
	if cfg.Addr() != ":8000" {
		t.Fatalf("Addr() = %q, want :8000", cfg.Addr())
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("FANTASTIC_RAPIDAPI_KEY", "secret")
	t.Setenv("FANTASTIC_RAPIDAPI_HOST", "active-jobs-db.p.rapidapi.com")
	t.Setenv("FANTASTIC_BASE_URL", "http://localhost:9999/")
	t.Setenv("PORT", "9090")

	cfg := Load()
	if cfg.APIKey != "secret" {
		t.Fatalf("APIKey = %q, want secret", cfg.APIKey)
	}
	if cfg.APIHost != "active-jobs-db.p.rapidapi.com" {
		t.Fatalf("APIHost = %q", cfg.APIHost)
	}
	if cfg.BaseURL != "http://localhost:9999" {
		t.Fatalf("BaseURL = %q, want trailing slash trimmed", cfg.BaseURL)
	}
	if cfg.Port != 9090 {
		t.Fatalf("Port = %d, want 9090", cfg.Port)
	}
}

func TestLoadInvalidPortFallsBack(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	if got := Load().Port; got != DefaultPort {
		t.Fatalf("Port = %d, want %d", got, DefaultPort)
	}
}

func TestLoadEnvFile(t *testing.T) {
	t.Run("missing file is ignored", func(t *testing.T) {
		if err := LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")); err != nil {
			t.Fatalf("LoadEnvFile() error = %v", err)
		}
	})

	t.Run("values are loaded", func(t *testing.T) {
		t.Setenv("DATABASE_NAME", "")
		os.Unsetenv("DATABASE_NAME")

		path := filepath.Join(t.TempDir(), ".env")
		if err := os.WriteFile(path, []byte("DATABASE_NAME=jobs\n"), 0o644); err != nil {
			t.Fatalf("write env file: %v", err)
		}
		if err := LoadEnvFile(path); err != nil {
			t.Fatalf("LoadEnvFile() error = %v", err)
		}
		if got := os.Getenv("DATABASE_NAME"); got != "jobs" {
			t.Fatalf("DATABASE_NAME = %q, want jobs", got)
		}
	})
}
