package services

import "fmt"

// UpstreamError is a non-2xx answer from the job API.
type UpstreamError struct {
	StatusCode int
	Body       string
	URL        string
	Params     Query
	RateLimits map[string]string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream API error: status %d from %s", e.StatusCode, e.URL)
}

// NetworkError covers transport failures and unreadable upstream payloads.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error calling %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ValidationError is returned for request values the provider cannot accept.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
