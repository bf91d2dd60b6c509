package catalog

import (
	"strings"

	"jobmatch-engine/internal/domain"
)

func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// normalizeLocation collapses whitespace and drops repeated comma-separated
// parts ("Denver, CO, denver" -> "Denver, CO").
func normalizeLocation(loc string) string {
	loc = cleanText(loc)
	if loc == "" {
		return ""
	}

	parts := strings.Split(loc, ",")
	seen := map[string]bool{}
	var out []string
	for _, p := range parts {
		p = cleanText(p)
		if p == "" {
			continue
		}
		k := strings.ToLower(p)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, p)
	}
	return strings.Join(out, ", ")
}

func cleanList(xs []string) []string {
	if xs == nil {
		return nil
	}
	out := make([]string, 0, len(xs))
	for _, x := range xs {
		if x = cleanText(x); x != "" {
			out = append(out, x)
		}
	}
	return out
}

// cleanJob tidies text from files written by hand or exported by other tools.
func cleanJob(j domain.Job) domain.Job {
	j = j.Clone()
	j.ID = strings.TrimSpace(j.ID)
	j.Title = cleanText(j.Title)
	j.Company = cleanText(j.Company)
	j.Location = normalizeLocation(j.Location)
	j.EmploymentType = cleanText(j.EmploymentType)
	j.CompanySize = cleanText(j.CompanySize)
	j.Industry = cleanText(j.Industry)
	j.RequiredSkills = cleanList(j.RequiredSkills)
	j.ValuesPromoted = cleanList(j.ValuesPromoted)
	j.ExperienceRequired = cleanText(j.ExperienceRequired)
	j.RoleLevel = cleanText(j.RoleLevel)
	return j
}
