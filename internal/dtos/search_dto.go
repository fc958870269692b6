package dtos

import "encoding/json"

// SearchRequest is the normalized body of POST /api/search.
// Every field is optional; time_window defaults to "7d".
type SearchRequest struct {
	TimeWindow string `json:"time_window"`

	// Credential override, mainly for setup before env vars are configured
	APIKey  *string `json:"api_key"`
	APIHost *string `json:"api_host"`

	TitleFilter                 *string `json:"title_filter"`
	AdvancedTitleFilter         *string `json:"advanced_title_filter"`
	LocationFilter              *string `json:"location_filter"`
	DescriptionFilter           *string `json:"description_filter"`
	OrganizationFilter          *string `json:"organization_filter"`
	OrganizationExclusionFilter *string `json:"organization_exclusion_filter"`
	AdvancedOrganizationFilter  *string `json:"advanced_organization_filter"`
	Source                      *string `json:"source"`
	Remote                      *string `json:"remote"`
	IncludeAI                   *bool   `json:"include_ai"`

	AIEmploymentTypeFilter       *string `json:"ai_employment_type_filter"`
	AIWorkArrangementFilter      *string `json:"ai_work_arrangement_filter"`
	AITaxonomiesAFilter          *string `json:"ai_taxonomies_a_filter"`
	AITaxonomiesAPrimaryFilter   *string `json:"ai_taxonomies_a_primary_filter"`
	AITaxonomiesAExclusionFilter *string `json:"ai_taxonomies_a_exclusion_filter"`
	AIHasSalary                  *string `json:"ai_has_salary"`
	AIExperienceLevelFilter      *string `json:"ai_experience_level_filter"`
	AIVisaSponsorshipFilter      *string `json:"ai_visa_sponsorship_filter"`

	IncludeLI                         *bool   `json:"include_li"`
	LIOrganizationSlugFilter          *string `json:"li_organization_slug_filter"`
	LIOrganizationSlugExclusionFilter *string `json:"li_organization_slug_exclusion_filter"`
	LIIndustryFilter                  *string `json:"li_industry_filter"`
	LIOrganizationSpecialtiesFilter   *string `json:"li_organization_specialties_filter"`
	LIOrganizationDescriptionFilter   *string `json:"li_organization_description_filter"`

	// Limit and Offset keep whatever JSON scalar the client sent (number,
	// string or null) so the narrow provider can coerce bad input.
	Limit  any `json:"limit"`
	Offset any `json:"offset"`

	DateFilter      *string `json:"date_filter"`
	DescriptionType *string `json:"description_type"`
}

// Window returns the requested time window, defaulting to "7d".
func (r SearchRequest) Window() string {
	if r.TimeWindow == "" {
		return "7d"
	}
	return r.TimeWindow
}

// SearchResponse is the uniform result of a search.
type SearchResponse struct {
	Jobs       []json.RawMessage `json:"jobs"`
	Count      int               `json:"count"`
	RateLimits map[string]string `json:"rate_limits"`
	Provider   string            `json:"provider"`

	*Fallback
}

// Fallback describes the upstream call that would have been made when no
// API key is available.
type Fallback struct {
	Note     string         `json:"note"`
	Endpoint string         `json:"endpoint"`
	Params   map[string]any `json:"params"`
}

// ErrorResponse wraps error details the same way for every failure kind.
type ErrorResponse struct {
	Detail ErrorDetail `json:"detail"`
}

// ErrorDetail carries the failure fields; status and text are always present.
type ErrorDetail struct {
	Message    string            `json:"message"`
	Status     int               `json:"status"`
	Text       string            `json:"text"`
	Error      string            `json:"error,omitempty"`
	Endpoint   string            `json:"endpoint,omitempty"`
	Params     map[string]any    `json:"params,omitempty"`
	RateLimits map[string]string `json:"rate_limits,omitempty"`
}

// DiagnosticResponse is the body of GET /test.
type DiagnosticResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}
