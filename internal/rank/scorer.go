package rank

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"jobmatch-engine/internal/domain"
)

var ErrMalformedJob = errors.New("malformed job")

type Scorer interface {
	Score(prefs domain.Preferences, job domain.Job) (Result, error)
}

// Result holds the raw sub-scores for one job, each in [0, 1], and their
// weighted sum.
type Result struct {
	Total float64
	Subs  map[Criterion]float64
}

// MatchScore is the total on a 0-100 scale, rounded half to even.
func (r Result) MatchScore() int {
	return percent(r.Total)
}

func (r Result) Breakdown() map[string]int {
	out := make(map[string]int, len(r.Subs))
	for c, v := range r.Subs {
		out[string(c)] = percent(v)
	}
	return out
}

func percent(v float64) int {
	return int(math.RoundToEven(v * 100))
}

// WeightedScorer scores one job against one preference set.
// Preferences are expected to be normalized already.
type WeightedScorer struct {
	Weights  Weights
	Synonyms *Synonyms
}

func (s WeightedScorer) Score(prefs domain.Preferences, job domain.Job) (res Result, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: job %q: %v", ErrMalformedJob, job.ID, rec)
		}
	}()

	if strings.TrimSpace(job.ID) == "" {
		return Result{}, fmt.Errorf("%w: missing id", ErrMalformedJob)
	}

	subs := map[Criterion]float64{
		Skills:      matchSkills(prefs.Skills, job.RequiredSkills),
		Title:       matchTitles(s.Synonyms, prefs.Titles, job.Title),
		Location:    matchLocations(prefs.Locations, job.Location),
		Industry:    matchIndustries(prefs.Industries, job.Industry),
		CompanySize: matchCompanySize(prefs.CompanySizes, job.CompanySize),
		Values:      matchValues(prefs.Values, job.ValuesPromoted),
		Salary:      matchSalary(prefs.MinSalary, job.SalaryRange),
	}

	total := 0.0
	for _, c := range Criteria {
		total += subs[c] * s.Weights[c]
	}
	return Result{Total: total, Subs: subs}, nil
}
