package services

import "testing"

func TestDetect(t *testing.T) {
	cases := []struct {
		host string
		want Provider
	}{
		{"active-jobs-db.p.rapidapi.com", ProviderNarrow},
		{"  ACTIVE-JOBS-DB.p.rapidapi.com ", ProviderNarrow},
		{"eu.Active-Jobs-DB-proxy.internal", ProviderNarrow},
		{"fantastic.p.rapidapi.com", ProviderRich},
		{"active-jobs.p.rapidapi.com", ProviderRich},
		{"", ProviderRich},
	}

	for _, tc := range cases {
		if got := Detect(tc.host); got != tc.want {
			t.Fatalf("Detect(%q) = %q, want %q", tc.host, got, tc.want)
		}
	}
}

func TestResolveEndpoint(t *testing.T) {
	cases := []struct {
		provider Provider
		window   string
		want     string
	}{
		{ProviderRich, "7d", "/jobs/7d"},
		{ProviderRich, "24h", "/jobs/24h"},
		{ProviderRich, "hourly", "/jobs/hourly"},
		{ProviderRich, "backfill", "/jobs/6m"},
		{ProviderRich, "expired", "/jobs/expired"},
		{ProviderRich, "modified", "/jobs/modified"},
		{ProviderRich, "unknown_value", "/jobs/7d"},
		{ProviderRich, "", "/jobs/7d"},
		{ProviderRich, "24H", "/jobs/7d"},
		{ProviderNarrow, "24h", "/modified-ats-24h"},
		{ProviderNarrow, "backfill", "/modified-ats-24h"},
	}

	for _, tc := range cases {
		if got := ResolveEndpoint(tc.provider, tc.window); got != tc.want {
			t.Fatalf("ResolveEndpoint(%q, %q) = %q, want %q", tc.provider, tc.window, got, tc.want)
		}
	}
}
