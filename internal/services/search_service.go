package services

import (
	"context"
	"encoding/json"

	"github.com/nalin-pixel/job-aggregator/internal/auth"
	"github.com/nalin-pixel/job-aggregator/internal/config"
	"github.com/nalin-pixel/job-aggregator/internal/dtos"
	"github.com/rs/zerolog"
)

// MissingKeyNote is returned instead of jobs when no API key is available.
const MissingKeyNote = "Add your API key to fetch live jobs."

// JobFetcher performs the upstream call. JobsClient is the real implementation.
type JobFetcher interface {
	FetchJobs(ctx context.Context, endpoint string, headers map[string]string, params Query) ([]json.RawMessage, map[string]string, error)
}

// SearchService turns a search request into one upstream call.
type SearchService struct {
	Fetcher  JobFetcher
	Defaults auth.Credentials
	// BaseURL replaces "https://<host>" when set, e.g. to point at a mock.
	BaseURL string
	Logger  zerolog.Logger
}

// NewSearchService takes default credentials and the base URL from cfg.
func NewSearchService(cfg config.Config, fetcher JobFetcher, logger zerolog.Logger) *SearchService {
	return &SearchService{
		Fetcher: fetcher,
		Defaults: auth.Credentials{
			APIKey:  cfg.APIKey,
			APIHost: cfg.APIHost,
		},
		BaseURL: cfg.BaseURL,
		Logger:  logger.With().Str("component", "search").Logger(),
	}
}

// Search runs one normalized search against the resolved provider.
func (s *SearchService) Search(ctx context.Context, req dtos.SearchRequest) (*dtos.SearchResponse, error) {
	creds := auth.Resolve(req.APIKey, req.APIHost, s.Defaults)
	provider := Detect(creds.APIHost)

	if err := ValidateParams(req, provider); err != nil {
		return nil, err
	}

	endpoint := s.baseURL(creds.APIHost) + ResolveEndpoint(provider, req.Window())
	params := BuildParams(req, provider)

	log := s.Logger.With().
		Str("provider", string(provider)).
		Str("endpoint", endpoint).
		Strs("params", params.Keys()).
		Logger()

	if !creds.HasKey() {
		log.Info().Msg("no API key configured, skipping upstream call")
		return &dtos.SearchResponse{
			Jobs:       []json.RawMessage{},
			Count:      0,
			RateLimits: map[string]string{},
			Provider:   string(provider),
			Fallback: &dtos.Fallback{
				Note:     MissingKeyNote,
				Endpoint: endpoint,
				Params:   params,
			},
		}, nil
	}

	log.Debug().Msg("calling upstream")
	jobs, rateLimits, err := s.Fetcher.FetchJobs(ctx, endpoint, creds.Headers(), params)
	if err != nil {
		log.Warn().Err(err).Msg("upstream search failed")
		return nil, err
	}
	if jobs == nil {
		jobs = []json.RawMessage{}
	}
	if rateLimits == nil {
		rateLimits = map[string]string{}
	}

	log.Info().Int("count", len(jobs)).Msg("upstream search succeeded")
	return &dtos.SearchResponse{
		Jobs:       jobs,
		Count:      len(jobs),
		RateLimits: rateLimits,
		Provider:   string(provider),
	}, nil
}

func (s *SearchService) baseURL(host string) string {
	if s.BaseURL != "" {
		return s.BaseURL
	}
	return "https://" + host
}
