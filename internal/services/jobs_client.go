package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds the single upstream call made per search.
const DefaultTimeout = 30 * time.Second

var rateLimitPrefixes = []string{"x-ratelimit", "ratelimit"}

// wrapperKeys are tried in order when the upstream wraps its job list in an object.
var wrapperKeys = []string{"results", "jobs", "data"}

// JobsClient talks to the RapidAPI job providers.
type JobsClient struct {
	httpClient *http.Client
}

// NewJobsClient returns a client whose requests give up after timeout.
func NewJobsClient(timeout time.Duration) *JobsClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &JobsClient{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchJobs issues one GET to endpoint and returns the normalized job list
// together with any rate-limit headers the upstream sent.
func (c *JobsClient) FetchJobs(ctx context.Context, endpoint string, headers map[string]string, params Query) ([]json.RawMessage, map[string]string, error) {
	target := endpoint
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, nil, &NetworkError{URL: endpoint, Err: err}
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, &NetworkError{URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	rateLimits := RateLimitHeaders(resp.Header)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, rateLimits, &NetworkError{URL: endpoint, Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, rateLimits, &UpstreamError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
			URL:        endpoint,
			Params:     params,
			RateLimits: rateLimits,
		}
	}

	jobs, err := NormalizeJobs(body)
	if err != nil {
		return nil, rateLimits, &NetworkError{URL: endpoint, Err: err}
	}
	return jobs, rateLimits, nil
}

// RateLimitHeaders collects x-ratelimit-* and ratelimit-* headers keyed by
// their lower-cased name.
func RateLimitHeaders(h http.Header) map[string]string {
	out := map[string]string{}
	for name, values := range h {
		lower := strings.ToLower(name)
		for _, prefix := range rateLimitPrefixes {
			if strings.HasPrefix(lower, prefix) {
				out[lower] = strings.Join(values, ", ")
				break
			}
		}
	}
	return out
}

// NormalizeJobs extracts the job list from an upstream payload. A bare array
// is the list itself; an object is searched for the first non-empty array
// under results, jobs, then data. Anything else yields an empty list.
func NormalizeJobs(body []byte) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if !json.Valid(trimmed) {
		return nil, fmt.Errorf("malformed upstream JSON")
	}

	jobs := []json.RawMessage{}
	switch {
	case bytes.HasPrefix(trimmed, []byte("[")):
		if err := json.Unmarshal(trimmed, &jobs); err != nil {
			return nil, fmt.Errorf("decode job list: %w", err)
		}
	case bytes.HasPrefix(trimmed, []byte("{")):
		var wrapped map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &wrapped); err != nil {
			return nil, fmt.Errorf("decode payload: %w", err)
		}
		for _, key := range wrapperKeys {
			var list []json.RawMessage
			if err := json.Unmarshal(wrapped[key], &list); err != nil || len(list) == 0 {
				continue
			}
			jobs = list
			break
		}
	}
	return jobs, nil
}
