package auth

import (
	"testing"

	"github.com/nalin-pixel/job-aggregator/internal/config"
)

func strPtr(s string) *string { return &s }

func TestResolve(t *testing.T) {
	defaults := Credentials{APIKey: "env-key", APIHost: "env.p.rapidapi.com"}

	cases := []struct {
		name     string
		key      *string
		host     *string
		defaults Credentials
		want     Credentials
	}{
		{"request wins", strPtr("req-key"), strPtr("req.host"), defaults, Credentials{"req-key", "req.host"}},
		{"nil falls back", nil, nil, defaults, defaults},
		{"empty falls back", strPtr(""), strPtr("  "), defaults, defaults},
		{"default host when unset", nil, nil, Credentials{}, Credentials{APIHost: config.DefaultAPIHost}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Resolve(tc.key, tc.host, tc.defaults)
			if got != tc.want {
				t.Fatalf("Resolve() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestHeaders(t *testing.T) {
	creds := Credentials{APIKey: "k", APIHost: "h"}
	headers := creds.Headers()
	if headers["X-RapidAPI-Key"] != "k" || headers["X-RapidAPI-Host"] != "h" {
		t.Fatalf("unexpected headers: %v", headers)
	}
	if headers["Accept"] != "application/json" {
		t.Fatalf("Accept = %q", headers["Accept"])
	}
	if !creds.HasKey() {
		t.Fatal("HasKey() = false, want true")
	}
	if (Credentials{}).HasKey() {
		t.Fatal("HasKey() = true for empty credentials")
	}
}
