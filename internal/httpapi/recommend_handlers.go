package httpapi

import (
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"jobmatch-engine/internal/domain"
	"jobmatch-engine/internal/rank"
)

type RecommendHandler struct {
	Matcher *rank.Matcher
}

type recommendResponse struct {
	Recommendations []domain.Recommendation `json:"recommendations"`
	TotalCount      int                     `json:"total_count"`
}

func (h RecommendHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			WriteError(w, r, http.StatusBadRequest, "bad_request", "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	var prefs domain.Preferences
	if isForm(r) {
		p, err := decodePreferencesForm(w, r)
		if err != nil {
			WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid form: "+err.Error())
			return
		}
		prefs = p
	} else if err := decodeBody(r, &prefs); err != nil {
		badRequest(w, r, err)
		return
	}

	recs, err := h.Matcher.Recommend(r.Context(), prefs, limit)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, recommendResponse{Recommendations: recs, TotalCount: len(recs)})
}

func isForm(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "application/x-www-form-urlencoded"
}

// decodePreferencesForm reads repeated fields named after the JSON keys,
// e.g. skills=Figma&skills=Sketch&minSalary=150000. Other fields are ignored.
func decodePreferencesForm(w http.ResponseWriter, r *http.Request) (domain.Preferences, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		return domain.Preferences{}, err
	}
	f := r.PostForm

	p := domain.Preferences{
		Skills:       f["skills"],
		Titles:       f["titles"],
		Locations:    f["locations"],
		Industries:   f["industries"],
		CompanySizes: f["companySizes"],
		Values:       f["values"],
	}
	if s := strings.TrimSpace(f.Get("minSalary")); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return p, fmt.Errorf("minSalary %q is not an integer", s)
		}
		p.MinSalary = n
	}
	return p, nil
}
