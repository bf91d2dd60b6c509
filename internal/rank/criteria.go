package rank

import (
	"strings"

	"jobmatch-engine/internal/domain"
)

type Criterion string

const (
	Skills      Criterion = "skills"
	Title       Criterion = "title"
	Location    Criterion = "location"
	Industry    Criterion = "industry"
	CompanySize Criterion = "company_size"
	Values      Criterion = "values"
	Salary      Criterion = "salary"
)

// Criteria is every scoring dimension in evaluation order.
var Criteria = []Criterion{Skills, Title, Location, Industry, CompanySize, Values, Salary}

const (
	neutralScore = 0.5

	partialSkillCredit    = 0.7
	partialTitleCredit    = 0.8
	partialLocationCredit = 0.8
	partialIndustryCredit = 0.7

	// salaryGap is how far outside a posted range a minimum salary may fall
	// and still earn partial credit.
	salaryGap          = 20000
	belowRangeCredit   = 0.8
	aboveRangeCredit   = 0.6
	remoteLocationWord = "remote"
)

func norm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func normAll(xs []string) []string {
	out := make([]string, 0, len(xs))
	for _, x := range xs {
		out = append(out, norm(x))
	}
	return out
}

func containsEither(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func matchSkills(preferred, jobSkills []string) float64 {
	if len(preferred) == 0 {
		return neutralScore
	}
	if len(jobSkills) == 0 {
		return 0
	}

	have := normAll(jobSkills)
	exact := make(map[string]bool, len(have))
	for _, s := range have {
		exact[s] = true
	}

	matches := 0.0
	for _, p := range normAll(preferred) {
		if exact[p] {
			matches++
			continue
		}
		for _, s := range have {
			if containsEither(p, s) {
				matches += partialSkillCredit
				break
			}
		}
	}
	return min(matches/float64(len(preferred)), 1.0)
}

func matchTitles(syn *Synonyms, preferred []string, jobTitle string) float64 {
	if len(preferred) == 0 {
		return neutralScore
	}
	job := norm(jobTitle)
	if job == "" {
		return 0
	}

	best := 0.0
	for _, p := range normAll(preferred) {
		if p == job {
			return 1.0
		}
		best = max(best, syn.Score(p, job))
		if containsEither(p, job) {
			best = max(best, partialTitleCredit)
		}
	}
	return best
}

// matchLocations scans preferences in order and stops at the first hit, so an
// earlier partial match shadows a later exact one.
func matchLocations(preferred []string, jobLocation string) float64 {
	if len(preferred) == 0 {
		return neutralScore
	}
	job := norm(jobLocation)
	if job == "" {
		return 0
	}

	for _, p := range normAll(preferred) {
		switch {
		case p == job:
			return 1.0
		case strings.Contains(p, remoteLocationWord) && strings.Contains(job, remoteLocationWord):
			return 1.0
		case containsEither(p, job):
			return partialLocationCredit
		}
	}
	return 0
}

func matchIndustries(preferred []string, jobIndustry string) float64 {
	if len(preferred) == 0 {
		return neutralScore
	}
	job := norm(jobIndustry)
	if job == "" {
		return 0
	}

	for _, p := range normAll(preferred) {
		if p == job {
			return 1.0
		}
		if containsEither(p, job) {
			return partialIndustryCredit
		}
	}
	return 0
}

// matchCompanySize is strict equality only; "51-200" does not partially
// match "51-200 Employees".
func matchCompanySize(preferred []string, jobSize string) float64 {
	if len(preferred) == 0 {
		return neutralScore
	}
	job := norm(jobSize)
	if job == "" {
		return 0
	}

	for _, p := range normAll(preferred) {
		if p == job {
			return 1.0
		}
	}
	return 0
}

func matchValues(preferred, jobValues []string) float64 {
	if len(preferred) == 0 {
		return neutralScore
	}
	if len(jobValues) == 0 {
		return 0
	}

	have := make(map[string]bool, len(jobValues))
	for _, v := range normAll(jobValues) {
		have[v] = true
	}

	matches := 0
	for _, p := range normAll(preferred) {
		if have[p] {
			matches++
		}
	}
	return float64(matches) / float64(len(preferred))
}

func matchSalary(minSalary int, r *domain.SalaryRange) float64 {
	if minSalary == 0 {
		return 1.0
	}
	if !r.Valid() {
		return 0
	}

	switch {
	case r.Contains(minSalary):
		return 1.0
	case minSalary < r.Min && r.Min-minSalary <= salaryGap:
		return belowRangeCredit
	case minSalary > r.Max && minSalary-r.Max <= salaryGap:
		return aboveRangeCredit
	}
	return 0
}
