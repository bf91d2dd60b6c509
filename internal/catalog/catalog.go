// Package catalog holds the in-memory, ordered collection of job postings.
package catalog

import (
	"context"
	"sort"
	"strings"
	"sync"

	"jobmatch-engine/internal/domain"
)

// Catalog is safe for concurrent use. Jobs go in through Add and come out
// as deep copies, so no caller can mutate a stored job.
type Catalog struct {
	mu    sync.RWMutex
	jobs  []domain.Job
	index map[string]int
}

// New builds a catalog from seed jobs, applying the same checks as Add.
func New(seed ...domain.Job) (*Catalog, error) {
	c := &Catalog{index: make(map[string]int, len(seed))}
	for _, j := range seed {
		if err := c.Add(j); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.jobs)
}

func (c *Catalog) All() []domain.Job {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Job, len(c.jobs))
	for i, j := range c.jobs {
		out[i] = j.Clone()
	}
	return out
}

// Jobs satisfies rank.Source.
func (c *Catalog) Jobs(ctx context.Context) ([]domain.Job, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.All(), nil
}

func (c *Catalog) Get(id string) (domain.Job, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.index[strings.TrimSpace(id)]
	if !ok {
		return domain.Job{}, domain.ErrNotFound
	}
	return c.jobs[i].Clone(), nil
}

// Add appends j. The id is trimmed before it is stored, so ids differing
// only in surrounding whitespace conflict. The zero Catalog is ready to use.
func (c *Catalog) Add(j domain.Job) error {
	j.ID = strings.TrimSpace(j.ID)
	if err := j.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.index == nil {
		c.index = make(map[string]int)
	}
	if _, exists := c.index[j.ID]; exists {
		return &domain.ConflictError{ID: j.ID}
	}
	c.index[j.ID] = len(c.jobs)
	c.jobs = append(c.jobs, j.Clone())
	return nil
}

// Fields lists the names accepted by UniqueValues.
var Fields = []string{
	"title",
	"company",
	"location",
	"industry",
	"company_size",
	"employment_type",
	"required_skills",
	"values_promoted",
	"experience_required",
	"role_level",
}

func fieldValues(j domain.Job, field string) ([]string, bool) {
	switch field {
	case "title":
		return []string{j.Title}, true
	case "company":
		return []string{j.Company}, true
	case "location":
		return []string{j.Location}, true
	case "industry":
		return []string{j.Industry}, true
	case "company_size":
		return []string{j.CompanySize}, true
	case "employment_type":
		return []string{j.EmploymentType}, true
	case "required_skills":
		return j.RequiredSkills, true
	case "values_promoted":
		return j.ValuesPromoted, true
	case "experience_required":
		return []string{j.ExperienceRequired}, true
	case "role_level":
		return []string{j.RoleLevel}, true
	}
	return nil, false
}

// UniqueValues returns the sorted distinct non-blank values of field across
// all jobs. List fields are flattened.
func (c *Catalog) UniqueValues(field string) ([]string, error) {
	field = strings.ToLower(strings.TrimSpace(field))
	if _, ok := fieldValues(domain.Job{}, field); !ok {
		return nil, &domain.ValidationError{Field: "field", Message: "unknown field " + field}
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := map[string]bool{}
	out := []string{}
	for _, j := range c.jobs {
		vals, _ := fieldValues(j, field)
		for _, v := range vals {
			if v == "" || seen[v] {
				continue
			}
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out, nil
}
