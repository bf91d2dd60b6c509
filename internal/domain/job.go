package domain

import "strings"

type SalaryRange struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// Valid reports whether the range is usable for salary matching.
func (r *SalaryRange) Valid() bool {
	return r != nil && r.Min >= 0 && r.Max >= r.Min
}

func (r SalaryRange) Contains(v int) bool {
	return r.Min <= v && v <= r.Max
}

type Job struct {
	ID                 string       `json:"id" yaml:"id"`
	Title              string       `json:"title" yaml:"title"`
	Company            string       `json:"company" yaml:"company"`
	Location           string       `json:"location" yaml:"location"`
	SalaryRange        *SalaryRange `json:"salaryRange,omitempty" yaml:"salary_range,omitempty"`
	EmploymentType     string       `json:"employmentType" yaml:"employment_type"`
	CompanySize        string       `json:"companySize" yaml:"company_size"`
	Industry           string       `json:"industry" yaml:"industry"`
	RequiredSkills     []string     `json:"requiredSkills" yaml:"required_skills"`
	ValuesPromoted     []string     `json:"valuesPromoted" yaml:"values_promoted"`
	ExperienceRequired string       `json:"experienceRequired,omitempty" yaml:"experience_required,omitempty"`
	RoleLevel          string       `json:"roleLevel,omitempty" yaml:"role_level,omitempty"`
}

// Clone returns a deep copy; the catalog never hands out shared slices.
func (j Job) Clone() Job {
	out := j
	if j.SalaryRange != nil {
		sr := *j.SalaryRange
		out.SalaryRange = &sr
	}
	out.RequiredSkills = cloneStrings(j.RequiredSkills)
	out.ValuesPromoted = cloneStrings(j.ValuesPromoted)
	return out
}

// Validate checks the fields a job needs before it can enter a catalog.
func (j Job) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"id", j.ID},
		{"title", j.Title},
		{"company", j.Company},
		{"location", j.Location},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &ValidationError{Field: r.field, Message: "missing required field"}
		}
	}
	if j.SalaryRange != nil && !j.SalaryRange.Valid() {
		return &ValidationError{Field: "salaryRange", Message: "min must be >= 0 and <= max"}
	}
	return nil
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
