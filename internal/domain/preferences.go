package domain

import "strings"

// Preferences is one recommendation query. Every list is treated as an
// unordered set; an empty list means "no preference".
type Preferences struct {
	Skills       []string `json:"skills"`
	Titles       []string `json:"titles"`
	Locations    []string `json:"locations"`
	Industries   []string `json:"industries"`
	CompanySizes []string `json:"companySizes"`
	Values       []string `json:"values"`
	MinSalary    int      `json:"minSalary"`
}

// Normalize trims every entry, drops blanks and drops case-insensitive
// duplicates. The receiver is not modified.
func (p Preferences) Normalize() Preferences {
	return Preferences{
		Skills:       trimList(p.Skills),
		Titles:       trimList(p.Titles),
		Locations:    trimList(p.Locations),
		Industries:   trimList(p.Industries),
		CompanySizes: trimList(p.CompanySizes),
		Values:       trimList(p.Values),
		MinSalary:    p.MinSalary,
	}
}

func (p Preferences) Validate() error {
	if p.MinSalary < 0 {
		return &ValidationError{Field: "minSalary", Message: "must be >= 0"}
	}
	return nil
}

func trimList(xs []string) []string {
	seen := map[string]bool{}
	var ys []string
	for _, x := range xs {
		x = strings.TrimSpace(x)
		if x == "" {
			continue
		}
		key := strings.ToLower(x)
		if seen[key] {
			continue
		}
		seen[key] = true
		ys = append(ys, x)
	}
	return ys
}
