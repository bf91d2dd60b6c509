package httpapi

import "net/http"

// NewMux registers every route without middleware.
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	hh := HealthHandler{Catalog: d.Catalog}
	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: hh.Health,
	}))

	// Jobs
	jh := JobsHandler{Catalog: d.Catalog, Log: d.Log}
	mux.HandleFunc("/jobs", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:  jh.List,
		http.MethodPost: jh.Create,
	}))
	mux.HandleFunc("/jobs/", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.GetByPath, // expects /jobs/{id}
	}))

	fh := FiltersHandler{Catalog: d.Catalog}
	mux.HandleFunc("/filters", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: fh.Get,
	}))

	// Matching
	rh := RecommendHandler{Matcher: d.Matcher}
	mux.HandleFunc("/recommend", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: rh.Recommend,
	}))

	wh := WeightsHandler{
		Matcher:     d.Matcher,
		UserCfgPath: d.UserCfgPath,
		Persist:     d.PersistWeights,
		Log:         d.Log,
	}
	mux.HandleFunc("/weights", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: wh.Get,
		http.MethodPut: wh.Put,
	}))

	return mux
}

// Route is an extra endpoint mounted by the caller, such as /shutdown.
type Route struct {
	Pattern string
	Handler http.HandlerFunc
}

// NewHandler is NewMux plus any extra routes, behind the standard
// middleware chain.
func NewHandler(d Deps, extra ...Route) http.Handler {
	mux := NewMux(d)
	for _, rt := range extra {
		mux.HandleFunc(rt.Pattern, rt.Handler)
	}
	return Chain(mux,
		RequestID,
		Recover(d.Log),
		AccessLog(d.Log),
		RateLimit(d.Limiter),
		Cors,
	)
}
