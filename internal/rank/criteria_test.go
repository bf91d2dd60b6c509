package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobmatch-engine/internal/domain"
)

func TestMatchSkills(t *testing.T) {
	cases := []struct {
		name      string
		preferred []string
		job       []string
		want      float64
	}{
		{"no preference is neutral", nil, []string{"Figma"}, 0.5},
		{"job without skills", []string{"figma"}, nil, 0},
		{"exact ignores case", []string{"figma"}, []string{"Sketch", "Figma"}, 1},
		{"preferred inside job skill", []string{"fig"}, []string{"Figma"}, 0.7},
		{"job skill inside preferred", []string{"figma prototyping"}, []string{"Figma"}, 0.7},
		{"half matched", []string{"figma", "cobol"}, []string{"Figma"}, 0.5},
		{"exact and partial", []string{"user research", "research"}, []string{"User Research"}, 0.85},
		{"nothing in common", []string{"cobol"}, []string{"Figma", "Sketch"}, 0},
		{"partial counts once per preferred skill", []string{"design"}, []string{"UI/UX Design", "Design Leadership"}, 0.7},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.want, matchSkills(c.preferred, c.job), 1e-9)
		})
	}
}

func TestMatchSkills_NeverAboveOne(t *testing.T) {
	got := matchSkills([]string{"figma", "sketch"}, []string{"Figma", "Sketch", "Figma Sketch"})
	assert.LessOrEqual(t, got, 1.0)
	assert.InDelta(t, 1.0, got, 1e-9)
}

func TestMatchTitles(t *testing.T) {
	syn := DefaultSynonyms()
	cases := []struct {
		name      string
		preferred []string
		job       string
		want      float64
	}{
		{"no preference is neutral", nil, "Product Designer", 0.5},
		{"job without title", []string{"Product Designer"}, "", 0},
		{"exact ignores case", []string{"product designer"}, "Product Designer", 1},
		{"direct synonym", []string{"UX Designer"}, "Product Designer", 0.9},
		{"reverse direct synonym", []string{"Product Designer"}, "UI Designer", 0.9},
		{"shared synonym", []string{"UI Designer"}, "UX Designer", 0.8},
		{"containment", []string{"Product Designer"}, "Senior Product Designer", 0.8},
		{"containment reversed", []string{"Senior Product Designer Lead"}, "Product Designer Lead", 0.8},
		{"no relation", []string{"Accountant"}, "UX Designer", 0},
		{"best across preferences", []string{"Accountant", "UX Designer"}, "Product Designer", 0.9},
		{"exact wins over earlier partial", []string{"Designer", "Product Designer"}, "Product Designer", 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.want, matchTitles(syn, c.preferred, c.job), 1e-9)
		})
	}
}

func TestMatchLocations(t *testing.T) {
	cases := []struct {
		name      string
		preferred []string
		job       string
		want      float64
	}{
		{"no preference is neutral", nil, "Austin, TX", 0.5},
		{"job without location", []string{"Austin"}, "", 0},
		{"exact", []string{"remote in usa"}, "Remote in USA", 1},
		{"both remote", []string{"Remote"}, "Remote in USA", 1},
		{"both remote, different wording", []string{"Fully remote (EU)"}, "Remote in USA", 1},
		{"city inside job location", []string{"San Francisco"}, "San Francisco, CA", 0.8},
		{"first partial match wins", []string{"San Francisco", "San Francisco, CA"}, "San Francisco, CA", 0.8},
		{"exact after a miss", []string{"Austin", "San Francisco, CA"}, "San Francisco, CA", 1},
		{"no match", []string{"Austin"}, "Seattle, WA", 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.want, matchLocations(c.preferred, c.job), 1e-9)
		})
	}
}

func TestMatchIndustries(t *testing.T) {
	cases := []struct {
		name      string
		preferred []string
		job       string
		want      float64
	}{
		{"no preference is neutral", nil, "Software", 0.5},
		{"job without industry", []string{"Software"}, "", 0},
		{"exact", []string{"software"}, "Software", 1},
		{"containment", []string{"Tech"}, "Technology", 0.7},
		{"first partial match wins", []string{"Tech", "Technology"}, "Technology", 0.7},
		{"exact after a miss", []string{"Finance", "Technology"}, "Technology", 1},
		{"no match", []string{"Finance"}, "Fintech", 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.want, matchIndustries(c.preferred, c.job), 1e-9)
		})
	}
}

func TestMatchCompanySize(t *testing.T) {
	assert.Equal(t, 0.5, matchCompanySize(nil, "51-200 Employees"))
	assert.Equal(t, 0.0, matchCompanySize([]string{"51-200 Employees"}, ""))
	assert.Equal(t, 1.0, matchCompanySize([]string{"51-200 employees"}, "51-200 Employees"))
	// strict equality: no partial credit
	assert.Equal(t, 0.0, matchCompanySize([]string{"51-200"}, "51-200 Employees"))
	assert.Equal(t, 1.0, matchCompanySize([]string{"10000+ Employees", "51-200 Employees"}, "51-200 Employees"))
}

func TestMatchValues(t *testing.T) {
	job := []string{"Innovation", "Work-Life Balance"}

	assert.Equal(t, 0.5, matchValues(nil, job))
	assert.Equal(t, 0.0, matchValues([]string{"Innovation"}, nil))
	assert.Equal(t, 1.0, matchValues([]string{"innovation"}, job))
	assert.Equal(t, 0.5, matchValues([]string{"Innovation", "Creativity"}, job))
	assert.Equal(t, 0.0, matchValues([]string{"Work"}, job), "values need exact matches")
}

func TestMatchSalary(t *testing.T) {
	r := &domain.SalaryRange{Min: 130000, Max: 180000}
	cases := []struct {
		name string
		min  int
		r    *domain.SalaryRange
		want float64
	}{
		{"no preference", 0, nil, 1},
		{"no range", 150000, nil, 0},
		{"malformed range", 150000, &domain.SalaryRange{Min: 200000, Max: 100000}, 0},
		{"negative range", 150000, &domain.SalaryRange{Min: -1, Max: 100000}, 0},
		{"inside", 150000, r, 1},
		{"at min", 130000, r, 1},
		{"at max", 180000, r, 1},
		{"below min within gap", 115000, r, 0.8},
		{"below min at gap", 110000, r, 0.8},
		{"below min beyond gap", 109999, r, 0},
		{"above max within gap", 190000, r, 0.6},
		{"above max at gap", 200000, r, 0.6},
		{"above max beyond gap", 200001, r, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, matchSalary(c.min, c.r))
		})
	}
}

func TestSynonyms(t *testing.T) {
	syn := NewSynonyms(map[string][]string{
		"QA Engineer":    {"Test Engineer", "quality engineer"},
		"data scientist": {"ML Engineer"},
	})

	assert.Equal(t, 0.9, syn.Score("qa engineer", "test engineer"))
	assert.Equal(t, 0.9, syn.Score("data scientist", "ml engineer"), "extra entries merge with defaults")
	assert.Equal(t, 0.9, syn.Score("data scientist", "data analyst"))
	assert.Equal(t, 0.0, syn.Score("qa engineer", "accountant"))
	assert.Equal(t, len(defaultTitleSynonyms)+1, syn.Len())

	got := syn.Lookup("QA Engineer")
	assert.Equal(t, []string{"test engineer", "quality engineer"}, got)
	got[0] = "mutated"
	assert.Equal(t, "test engineer", syn.Lookup("qa engineer")[0], "lookup returns a copy")

	var none *Synonyms
	assert.Equal(t, 0.0, none.Score("ux designer", "product designer"))
}

func TestResultRounding(t *testing.T) {
	r := Result{
		Total: 0.125,
		Subs:  map[Criterion]float64{Values: 0.125, Skills: 0.85, Title: 0.7},
	}
	// half to even: 12.5 -> 12
	assert.Equal(t, 12, r.MatchScore())
	assert.Equal(t, map[string]int{"values": 12, "skills": 85, "title": 70}, r.Breakdown())
}
