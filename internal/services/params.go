package services

import (
	"fmt"
	"math"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/nalin-pixel/job-aggregator/internal/dtos"
)

const (
	minLimit           = 10
	maxLimit           = 100
	defaultNarrowLimit = maxLimit
)

// Query is the upstream query parameter set, keyed by parameter name.
type Query map[string]any

// Encode renders the query as a URL query string. url.Values.Encode sorts
// the keys, so equal queries encode identically.
func (q Query) Encode() string {
	values := url.Values{}
	for key, value := range q {
		values.Set(key, formatValue(value))
	}
	return values.Encode()
}

// Keys returns the parameter names in sorted order.
func (q Query) Keys() []string {
	keys := make([]string, 0, len(q))
	for key := range q {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

type paramMapper func(req dtos.SearchRequest) Query

var mappers = map[Provider]paramMapper{
	ProviderRich:   richParams,
	ProviderNarrow: narrowParams,
}

// BuildParams maps a search request onto the query parameters the provider accepts.
func BuildParams(req dtos.SearchRequest, p Provider) Query {
	mapper, ok := mappers[p]
	if !ok {
		mapper = richParams
	}
	return mapper(req)
}

// ValidateParams rejects pagination values the provider would refuse.
// The narrow provider coerces instead, so it never fails.
func ValidateParams(req dtos.SearchRequest, p Provider) error {
	if p == ProviderNarrow {
		return nil
	}
	if present(req.Limit) {
		limit, ok := toInt(req.Limit)
		if !ok {
			return &ValidationError{Field: "limit", Message: "limit must be an integer"}
		}
		if limit < minLimit || limit > maxLimit {
			return &ValidationError{Field: "limit", Message: fmt.Sprintf("limit must be between %d and %d", minLimit, maxLimit)}
		}
	}
	if present(req.Offset) {
		offset, ok := toInt(req.Offset)
		if !ok {
			return &ValidationError{Field: "offset", Message: "offset must be an integer"}
		}
		if offset < 0 {
			return &ValidationError{Field: "offset", Message: "offset must be non-negative"}
		}
	}
	return nil
}

func richParams(req dtos.SearchRequest) Query {
	return collect(req, func(string) bool { return true })
}

var narrowAllowed = map[string]bool{
	"limit":            true,
	"offset":           true,
	"description_type": true,
}

func narrowParams(req dtos.SearchRequest) Query {
	q := collect(req, func(name string) bool { return narrowAllowed[name] })

	limit, ok := coerceInt(q["limit"])
	if !ok {
		limit = defaultNarrowLimit
	}
	q["limit"] = min(max(limit, minLimit), maxLimit)

	offset, ok := coerceInt(q["offset"])
	if !ok || offset < 0 {
		offset = 0
	}
	q["offset"] = offset

	if _, ok := q["description_type"]; !ok {
		q["description_type"] = "text"
	}
	return q
}

type param struct {
	name  string
	value any
}

// passThrough lists every forwardable field in a stable order.
func passThrough(req dtos.SearchRequest) []param {
	return []param{
		str("title_filter", req.TitleFilter),
		str("advanced_title_filter", req.AdvancedTitleFilter),
		str("location_filter", req.LocationFilter),
		str("description_filter", req.DescriptionFilter),
		str("organization_filter", req.OrganizationFilter),
		str("organization_exclusion_filter", req.OrganizationExclusionFilter),
		str("advanced_organization_filter", req.AdvancedOrganizationFilter),
		str("source", req.Source),
		str("remote", req.Remote),
		flag("include_ai", req.IncludeAI),
		str("ai_employment_type_filter", req.AIEmploymentTypeFilter),
		str("ai_work_arrangement_filter", req.AIWorkArrangementFilter),
		str("ai_taxonomies_a_filter", req.AITaxonomiesAFilter),
		str("ai_taxonomies_a_primary_filter", req.AITaxonomiesAPrimaryFilter),
		str("ai_taxonomies_a_exclusion_filter", req.AITaxonomiesAExclusionFilter),
		str("ai_has_salary", req.AIHasSalary),
		str("ai_experience_level_filter", req.AIExperienceLevelFilter),
		str("ai_visa_sponsorship_filter", req.AIVisaSponsorshipFilter),
		flag("include_li", req.IncludeLI),
		str("li_organization_slug_filter", req.LIOrganizationSlugFilter),
		str("li_organization_slug_exclusion_filter", req.LIOrganizationSlugExclusionFilter),
		str("li_industry_filter", req.LIIndustryFilter),
		str("li_organization_specialties_filter", req.LIOrganizationSpecialtiesFilter),
		str("li_organization_description_filter", req.LIOrganizationDescriptionFilter),
		{name: "limit", value: req.Limit},
		{name: "offset", value: req.Offset},
		str("date_filter", req.DateFilter),
		str("description_type", req.DescriptionType),
	}
}

func collect(req dtos.SearchRequest, allowed func(name string) bool) Query {
	q := Query{}
	for _, p := range passThrough(req) {
		if allowed(p.name) && present(p.value) {
			q[p.name] = p.value
		}
	}
	return q
}

func str(name string, v *string) param {
	if v == nil {
		return param{name: name}
	}
	return param{name: name, value: *v}
}

func flag(name string, v *bool) param {
	if v == nil {
		return param{name: name}
	}
	return param{name: name, value: *v}
}

// present is false only for unset values and empty strings; false is kept.
func present(v any) bool {
	if v == nil {
		return false
	}
	if s, ok := v.(string); ok && s == "" {
		return false
	}
	return true
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) {
			return 0, false
		}
		return clampFloat(n), true
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// coerceInt is toInt but truncates fractional numbers instead of rejecting them.
func coerceInt(v any) (int, bool) {
	if n, ok := v.(float64); ok && !math.IsNaN(n) && !math.IsInf(n, 0) {
		return clampFloat(n), true
	}
	return toInt(v)
}

// clampFloat converts n to int, saturating at the int32 range. Converting an
// out-of-range float directly is implementation-defined.
func clampFloat(n float64) int {
	switch {
	case n > math.MaxInt32:
		return math.MaxInt32
	case n < math.MinInt32:
		return math.MinInt32
	default:
		return int(n)
	}
}

func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}
