package services

import "strings"

// Provider identifies which upstream job API a request targets.
type Provider string

const (
	// ProviderRich is the Fantastic.jobs multi-filter API.
	ProviderRich Provider = "rich"
	// ProviderNarrow is the Active Jobs DB "modified ATS" feed.
	ProviderNarrow Provider = "narrow"
)

const narrowHostMarker = "active-jobs-db"

// narrowEndpoint is the only feed the narrow provider exposes to us.
const narrowEndpoint = "/modified-ats-24h"

var richEndpoints = map[string]string{
	"7d":       "/jobs/7d",
	"24h":      "/jobs/24h",
	"hourly":   "/jobs/hourly",
	"backfill": "/jobs/6m",
	"expired":  "/jobs/expired",
	"modified": "/jobs/modified",
}

// Detect classifies an API host. Any host containing the Active Jobs DB
// marker is narrow, everything else (including "") is rich.
func Detect(apiHost string) Provider {
	host := strings.ToLower(strings.TrimSpace(apiHost))
	if strings.Contains(host, narrowHostMarker) {
		return ProviderNarrow
	}
	return ProviderRich
}

// ResolveEndpoint returns the upstream path for the provider and time window.
func ResolveEndpoint(p Provider, timeWindow string) string {
	if p == ProviderNarrow {
		return narrowEndpoint
	}
	if path, ok := richEndpoints[timeWindow]; ok {
		return path
	}
	return richEndpoints["7d"]
}
