package httpapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobmatch-engine/internal/catalog"
	"jobmatch-engine/internal/config"
	"jobmatch-engine/internal/domain"
	"jobmatch-engine/internal/httpapi"
	"jobmatch-engine/internal/rank"
)

type fixture struct {
	deps    httpapi.Deps
	handler http.Handler
}

func newFixture(t *testing.T, mutate ...func(*httpapi.Deps)) fixture {
	t.Helper()
	c, err := catalog.New(catalog.Seed()...)
	require.NoError(t, err)

	d := httpapi.Deps{
		Catalog: c,
		Matcher: rank.NewMatcher(c, rank.WithLogger(zerolog.Nop())),
		Log:     zerolog.Nop(),
	}
	for _, fn := range mutate {
		fn(&d)
	}
	return fixture{deps: d, handler: httpapi.NewHandler(d)}
}

func (f fixture) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[httpapi.APIError](t, rec).Error.Code
}

func TestHealth(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[map[string]any](t, rec)
	assert.Equal(t, true, body["ok"])
	assert.EqualValues(t, 12, body["jobs"])
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestNewHandler_ExtraRoutesShareMiddleware(t *testing.T) {
	called := false
	h := httpapi.NewHandler(newFixture(t).deps, httpapi.Route{
		Pattern: "/shutdown",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			called = true
			httpapi.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/shutdown", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequestIDIsEchoed(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/jobs/NOPE-1", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "req-42", decode[httpapi.APIError](t, rec).Error.RequestID)
}

func TestJobs_ListAndGet(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/jobs", "")
	require.Equal(t, http.StatusOK, rec.Code)
	jobs := decode[[]domain.Job](t, rec)
	assert.Len(t, jobs, 12)
	assert.Equal(t, "RED-456", jobs[0].ID)

	rec = f.do(t, http.MethodGet, "/jobs/UBER-789", "")
	require.Equal(t, http.StatusOK, rec.Code)
	j := decode[domain.Job](t, rec)
	assert.Equal(t, "Uber", j.Company)
	assert.Equal(t, &domain.SalaryRange{Min: 155000, Max: 240000}, j.SalaryRange)

	rec = f.do(t, http.MethodGet, "/jobs/NOPE-1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", errorCode(t, rec))
}

func TestJobs_Create(t *testing.T) {
	f := newFixture(t)

	body := `{"id":"ACME-1","title":"Product Designer","company":"Acme","location":"Remote",
	          "salaryRange":{"min":100000,"max":150000},"requiredSkills":["Figma"]}`
	rec := f.do(t, http.MethodPost, "/jobs", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "ACME-1", decode[domain.Job](t, rec).ID)
	assert.Equal(t, 13, f.deps.Catalog.Len())

	rec = f.do(t, http.MethodPost, "/jobs", body)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "conflict", errorCode(t, rec))

	rec = f.do(t, http.MethodPost, "/jobs", `{"id":"ACME-2","title":"Designer","location":"Remote"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation_error", errorCode(t, rec))

	rec = f.do(t, http.MethodPost, "/jobs", `{"id":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad_request", errorCode(t, rec))
}

func TestMethodNotAllowed(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodDelete, "/jobs", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "GET, POST", rec.Header().Get("Allow"))
}

func TestFilters(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/filters", "")
	require.Equal(t, http.StatusOK, rec.Code)
	all := decode[map[string][]string](t, rec)
	assert.Len(t, all, len(catalog.Fields))
	assert.Equal(t, []string{"Contract", "Full-Time"}, all["employment_type"])

	rec = f.do(t, http.MethodGet, "/filters?field=company_size", "")
	require.Equal(t, http.StatusOK, rec.Code)
	one := decode[struct {
		Field  string   `json:"field"`
		Values []string `json:"values"`
	}](t, rec)
	assert.Equal(t, "company_size", one.Field)
	assert.Contains(t, one.Values, "10000+ Employees")

	rec = f.do(t, http.MethodGet, "/filters?field=mood", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation_error", errorCode(t, rec))
}

type recommendBody struct {
	Recommendations []domain.Recommendation `json:"recommendations"`
	TotalCount      int                     `json:"total_count"`
}

func TestRecommend(t *testing.T) {
	f := newFixture(t)

	body := `{"skills":["figma"],"titles":["Product Designer"],"locations":["Remote in USA"],"minSalary":150000}`
	rec := f.do(t, http.MethodPost, "/recommend?limit=3", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	got := decode[recommendBody](t, rec)
	require.Len(t, got.Recommendations, 3)
	assert.Equal(t, 3, got.TotalCount)
	for i := 0; i+1 < len(got.Recommendations); i++ {
		assert.GreaterOrEqual(t, got.Recommendations[i].MatchScore, got.Recommendations[i+1].MatchScore)
	}
	assert.Len(t, got.Recommendations[0].Breakdown, len(rank.Criteria))
}

func (f fixture) postForm(t *testing.T, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=utf-8")
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func TestRecommend_FormBody(t *testing.T) {
	f := newFixture(t)

	form := url.Values{
		"skills":    {"figma", "Sketch"},
		"titles":    {"Product Designer"},
		"locations": {"Remote in USA"},
		"minSalary": {"150000"},
		"submit":    {"Find jobs"},
	}
	rec := f.postForm(t, "/recommend?limit=3", form)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	fromForm := decode[recommendBody](t, rec)

	body := `{"skills":["figma","Sketch"],"titles":["Product Designer"],"locations":["Remote in USA"],"minSalary":150000}`
	rec = f.do(t, http.MethodPost, "/recommend?limit=3", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	fromJSON := decode[recommendBody](t, rec)

	require.Len(t, fromForm.Recommendations, 3)
	assert.Equal(t, fromJSON, fromForm)
}

func TestRecommend_FormBadInput(t *testing.T) {
	f := newFixture(t)

	rec := f.postForm(t, "/recommend", url.Values{"minSalary": {"lots"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad_request", errorCode(t, rec))

	rec = f.postForm(t, "/recommend", url.Values{"minSalary": {"-5"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation_error", errorCode(t, rec))
}

func TestRecommend_BadInput(t *testing.T) {
	f := newFixture(t)

	cases := []struct {
		name, target, body, code string
	}{
		{"empty body", "/recommend", "", "bad_request"},
		{"bad json", "/recommend", "{", "bad_request"},
		{"unknown field", "/recommend", `{"mood":"happy"}`, "bad_request"},
		{"bad limit", "/recommend?limit=ten", `{}`, "bad_request"},
		{"negative limit", "/recommend?limit=-1", `{}`, "bad_request"},
		{"negative salary", "/recommend", `{"minSalary":-5}`, "validation_error"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := f.do(t, http.MethodPost, c.target, c.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, c.code, errorCode(t, rec))
		})
	}
}

type failingSource struct{}

func (failingSource) Jobs(ctx context.Context) ([]domain.Job, error) {
	return nil, assert.AnError
}

func TestRecommend_SourceFailure(t *testing.T) {
	f := newFixture(t, func(d *httpapi.Deps) {
		d.Matcher = rank.NewMatcher(failingSource{}, rank.WithLogger(zerolog.Nop()))
	})

	rec := f.do(t, http.MethodPost, "/recommend", `{}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal_error", errorCode(t, rec))
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}

func TestWeights(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/weights", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0.30, decode[map[string]float64](t, rec)["skills"])

	rec = f.do(t, http.MethodPut, "/weights", `{"skills":0.5,"title":0.3}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation_error", errorCode(t, rec))

	rec = f.do(t, http.MethodPut, "/weights", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodPut, "/weights", `{"skills":0.7,"title":0.3}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got := decode[map[string]float64](t, rec)
	assert.Equal(t, 0.7, got["skills"])
	assert.Equal(t, 0.0, got["salary"])
	assert.Equal(t, 0.7, f.deps.Matcher.Weights()[rank.Skills])
}

func TestWeights_Persisted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, config.SaveAtomic(path, config.Default()))

	f := newFixture(t, func(d *httpapi.Deps) {
		d.UserCfgPath = path
		d.PersistWeights = true
	})

	rec := f.do(t, http.MethodPut, "/weights", `{"salary":1}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1.0, cfg.Matching.Weights["salary"])
	assert.Equal(t, 0.0, cfg.Matching.Weights["skills"])
}

func TestRateLimit(t *testing.T) {
	f := newFixture(t, func(d *httpapi.Deps) {
		d.Limiter = httpapi.NewClientLimiter(0.001, 2)
	})

	assert.Equal(t, http.StatusOK, f.do(t, http.MethodGet, "/health", "").Code)
	assert.Equal(t, http.StatusOK, f.do(t, http.MethodGet, "/health", "").Code)

	rec := f.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "rate_limited", errorCode(t, rec))
}

func TestCorsPreflight(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodOptions, "/recommend", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRecover(t *testing.T) {
	h := httpapi.Chain(
		http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") }),
		httpapi.RequestID,
		httpapi.Recover(zerolog.Nop()),
	)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal_error", errorCode(t, rec))
}
