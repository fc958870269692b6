package auth

import (
	"strings"

	"github.com/nalin-pixel/job-aggregator/internal/config"
)

// Credentials identify the caller to a RapidAPI-hosted provider.
type Credentials struct {
	APIKey  string
	APIHost string
}

// Resolve picks the effective key and host for one request.
// A non-empty request value wins over the configured default.
func Resolve(requestKey, requestHost *string, defaults Credentials) Credentials {
	creds := Credentials{
		APIKey:  pick(requestKey, defaults.APIKey),
		APIHost: pick(requestHost, defaults.APIHost),
	}
	if creds.APIHost == "" {
		creds.APIHost = config.DefaultAPIHost
	}
	return creds
}

// HasKey reports whether an upstream call can be made at all.
func (c Credentials) HasKey() bool {
	return c.APIKey != ""
}

// Headers returns the forwarding headers for the upstream request.
func (c Credentials) Headers() map[string]string {
	return map[string]string{
		"X-RapidAPI-Key":  c.APIKey,
		"X-RapidAPI-Host": c.APIHost,
		"Accept":          "application/json",
	}
}

func pick(override *string, fallback string) string {
	if override != nil {
		if v := strings.TrimSpace(*override); v != "" {
			return v
		}
	}
	return fallback
}
