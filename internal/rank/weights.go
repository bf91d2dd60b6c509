package rank

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"jobmatch-engine/internal/domain"
)

const (
	weightTolerance = 0.01
	// floatSlack absorbs representation error so a sum of exactly 1.01
	// is still accepted.
	floatSlack = 1e-9
)

// Weights maps each criterion to its share of the total score.
type Weights map[Criterion]float64

func DefaultWeights() Weights {
	return Weights{
		Skills:      0.30,
		Title:       0.20,
		Location:    0.15,
		Industry:    0.10,
		CompanySize: 0.10,
		Values:      0.10,
		Salary:      0.05,
	}
}

func (w Weights) Sum() float64 {
	total := 0.0
	for _, v := range w {
		total += v
	}
	return total
}

func (w Weights) Clone() Weights {
	out := make(Weights, len(Criteria))
	for _, c := range Criteria {
		out[c] = w[c]
	}
	return out
}

// Validate rejects unknown criteria, negative or non-finite weights, and
// totals further than 0.01 from 1.0.
func (w Weights) Validate() error {
	known := make(map[Criterion]bool, len(Criteria))
	for _, c := range Criteria {
		known[c] = true
	}

	var unknown []string
	for c, v := range w {
		if !known[c] {
			unknown = append(unknown, string(c))
			continue
		}
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return &domain.ValidationError{Field: "weights." + string(c), Message: "must be a finite number >= 0"}
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return &domain.ValidationError{Field: "weights", Message: "unknown criteria: " + strings.Join(unknown, ", ")}
	}

	if total := w.Sum(); math.Abs(total-1.0) > weightTolerance+floatSlack {
		return &domain.ValidationError{Field: "weights", Message: fmt.Sprintf("must sum to 1.0, got %.4f", total)}
	}
	return nil
}

// ParseWeights converts a name-keyed map (config, JSON) into validated
// Weights. An empty map yields the defaults.
func ParseWeights(raw map[string]float64) (Weights, error) {
	if len(raw) == 0 {
		return DefaultWeights(), nil
	}
	w := make(Weights, len(raw))
	for k, v := range raw {
		w[Criterion(strings.ToLower(strings.TrimSpace(k)))] = v
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return w.Clone(), nil
}
