package domain

// Recommendation is one scored job. It is computed per request and never stored.
type Recommendation struct {
	JobID          string         `json:"jobId"`
	Title          string         `json:"title"`
	Company        string         `json:"company"`
	Location       string         `json:"location"`
	SalaryRange    *SalaryRange   `json:"salaryRange,omitempty"`
	EmploymentType string         `json:"employmentType"`
	MatchScore     int            `json:"matchScore"`
	Breakdown      map[string]int `json:"breakdown"`
	Job            Job            `json:"job"`
}

func NewRecommendation(j Job, score int, breakdown map[string]int) Recommendation {
	j = j.Clone()
	return Recommendation{
		JobID:          j.ID,
		Title:          j.Title,
		Company:        j.Company,
		Location:       j.Location,
		SalaryRange:    j.SalaryRange,
		EmploymentType: j.EmploymentType,
		MatchScore:     score,
		Breakdown:      breakdown,
		Job:            j,
	}
}
