package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nalin-pixel/job-aggregator/internal/config"
	"github.com/nalin-pixel/job-aggregator/internal/dtos"
	"github.com/nalin-pixel/job-aggregator/internal/services"
	"github.com/rs/zerolog"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(cfg config.Config) *gin.Engine {
	logger := zerolog.Nop()
	svc := services.NewSearchService(cfg, services.NewJobsClient(time.Second), logger)
	return NewRouter(logger, NewSearchHandler(svc, logger), NewDiagnosticHandler(nil, cfg))
}

func postSearch(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSearchWithoutCredentials(t *testing.T) {
	router := newTestRouter(config.Config{APIHost: config.DefaultAPIHost})

	rec := postSearch(t, router, `{"time_window":"hourly","title_filter":"go"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body=%s", rec.Code, rec.Body)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if string(raw["jobs"]) != "[]" || string(raw["count"]) != "0" {
		t.Fatalf("jobs=%s count=%s", raw["jobs"], raw["count"])
	}
	if note, ok := raw["note"]; !ok || string(note) == "null" {
		t.Fatalf("note missing: %s", rec.Body)
	}
	if string(raw["endpoint"]) != `"https://fantastic.p.rapidapi.com/jobs/hourly"` {
		t.Fatalf("endpoint = %s", raw["endpoint"])
	}
}

func TestSearchProxiesUpstream(t *testing.T) {
	var gotQuery string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		if r.URL.Path != "/jobs/24h" {
			t.Errorf("path = %s, want /jobs/24h", r.URL.Path)
		}
		w.Header().Set("X-RateLimit-Requests-Remaining", "41")
		w.Write([]byte(`[{"id":1},{"id":2}]`))
	}))
	defer upstream.Close()

	router := newTestRouter(config.Config{APIKey: "k", APIHost: config.DefaultAPIHost, BaseURL: upstream.URL})
	rec := postSearch(t, router, `{"time_window":"24h","location_filter":"Berlin","include_ai":false,"limit":20}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body=%s", rec.Code, rec.Body)
	}

	var resp dtos.SearchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Count != 2 || len(resp.Jobs) != 2 {
		t.Fatalf("count = %d, jobs = %d", resp.Count, len(resp.Jobs))
	}
	if resp.RateLimits["x-ratelimit-requests-remaining"] != "41" {
		t.Fatalf("rate_limits = %v", resp.RateLimits)
	}
	if resp.Provider != "rich" {
		t.Fatalf("provider = %q", resp.Provider)
	}
	if resp.Fallback != nil {
		t.Fatalf("unexpected fallback fields: %+v", resp.Fallback)
	}
	if gotQuery != "include_ai=false&limit=20&location_filter=Berlin" {
		t.Fatalf("upstream query = %q", gotQuery)
	}
}

func TestSearchMirrorsUpstreamStatus(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RateLimit-Requests-Remaining", "0")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte("Too many requests, slow down"))
	}))
	defer upstream.Close()

	router := newTestRouter(config.Config{APIKey: "k", APIHost: config.DefaultAPIHost, BaseURL: upstream.URL})
	rec := postSearch(t, router, `{}`)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}

	var resp dtos.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Detail.Text != "Too many requests, slow down" {
		t.Fatalf("detail.text = %q", resp.Detail.Text)
	}
	if resp.Detail.Status != http.StatusTooManyRequests || resp.Detail.Message != "Upstream API error" {
		t.Fatalf("detail = %+v", resp.Detail)
	}
	if resp.Detail.Endpoint != upstream.URL+"/jobs/7d" {
		t.Fatalf("detail.endpoint = %q", resp.Detail.Endpoint)
	}
	if resp.Detail.RateLimits["x-ratelimit-requests-remaining"] != "0" {
		t.Fatalf("detail.rate_limits = %v", resp.Detail.RateLimits)
	}
}

func TestSearchUpstreamErrorKeepsEmptyText(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer upstream.Close()

	router := newTestRouter(config.Config{APIKey: "k", APIHost: config.DefaultAPIHost, BaseURL: upstream.URL})
	rec := postSearch(t, router, `{}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}

	var resp map[string]map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if string(resp["detail"]["text"]) != `""` {
		t.Fatalf("detail.text = %s, want empty string; body=%s", resp["detail"]["text"], rec.Body)
	}
	if string(resp["detail"]["status"]) != "500" {
		t.Fatalf("detail.status = %s, want 500", resp["detail"]["status"])
	}
}

func TestSearchNetworkErrorIsBadGateway(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	target := upstream.URL
	upstream.Close()

	router := newTestRouter(config.Config{APIKey: "k", APIHost: config.DefaultAPIHost, BaseURL: target})
	rec := postSearch(t, router, `{}`)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}

	var resp dtos.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Detail.Message != "Network error" || resp.Detail.Status != http.StatusBadGateway || resp.Detail.Error == "" {
		t.Fatalf("detail = %+v", resp.Detail)
	}
}

func TestSearchMalformedUpstreamJSONIsBadGateway(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>maintenance</html>"))
	}))
	defer upstream.Close()

	router := newTestRouter(config.Config{APIKey: "k", APIHost: config.DefaultAPIHost, BaseURL: upstream.URL})
	if rec := postSearch(t, router, `{}`); rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
}

func TestSearchRejectsBadBody(t *testing.T) {
	router := newTestRouter(config.Config{APIHost: config.DefaultAPIHost})

	if rec := postSearch(t, router, `{"time_window":`); rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if rec := postSearch(t, router, `{"limit":500}`); rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

func TestWriteErrorUnknown(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	h := NewSearchHandler(nil, zerolog.Nop())
	h.writeError(c, errors.New("boom"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}
