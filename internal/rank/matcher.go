package rank

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync/atomic"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"jobmatch-engine/internal/domain"
	"jobmatch-engine/internal/logger"
)

const DefaultLimit = 20

// Source supplies the jobs to rank. A Source error fails the whole request.
type Source interface {
	Jobs(ctx context.Context) ([]domain.Job, error)
}

type Matcher struct {
	source       Source
	weights      atomic.Pointer[Weights]
	synonyms     *Synonyms
	log          zerolog.Logger
	parallelism  int
	defaultLimit int
}

type Option func(*Matcher)

// WithWeights sets the initial weights. They must already be valid; use
// ParseWeights or Weights.Validate first.
func WithWeights(w Weights) Option {
	return func(m *Matcher) {
		c := w.Clone()
		m.weights.Store(&c)
	}
}

func WithSynonyms(s *Synonyms) Option {
	return func(m *Matcher) { m.synonyms = s }
}

func WithLogger(l zerolog.Logger) Option {
	return func(m *Matcher) { m.log = l }
}

// WithParallelism bounds concurrent per-job scoring. n <= 0 means GOMAXPROCS.
func WithParallelism(n int) Option {
	return func(m *Matcher) { m.parallelism = n }
}

func WithDefaultLimit(n int) Option {
	return func(m *Matcher) {
		if n > 0 {
			m.defaultLimit = n
		}
	}
}

func NewMatcher(src Source, opts ...Option) *Matcher {
	m := &Matcher{
		source:       src,
		synonyms:     DefaultSynonyms(),
		log:          logger.Logger,
		defaultLimit: DefaultLimit,
	}
	WithWeights(DefaultWeights())(m)
	for _, opt := range opts {
		opt(m)
	}
	if m.parallelism <= 0 {
		m.parallelism = runtime.GOMAXPROCS(0)
	}
	m.log = m.log.With().Str("component", "matcher").Logger()
	return m
}

// ConfigureWeights replaces the weight set used by every later Recommend
// call. Criteria left out get weight 0.
func (m *Matcher) ConfigureWeights(w Weights) error {
	if err := w.Validate(); err != nil {
		return err
	}
	c := w.Clone()
	m.weights.Store(&c)
	m.log.Info().Interface("weights", c).Msg("weights updated")
	return nil
}

func (m *Matcher) Weights() Weights {
	return m.weights.Load().Clone()
}

func (m *Matcher) scorer() WeightedScorer {
	return WeightedScorer{Weights: *m.weights.Load(), Synonyms: m.synonyms}
}

// Score scores a single job with the current weights.
func (m *Matcher) Score(prefs domain.Preferences, job domain.Job) (Result, error) {
	if err := prefs.Validate(); err != nil {
		return Result{}, err
	}
	return m.scorer().Score(prefs.Normalize(), job)
}

// Recommend scores every job from the source and returns at most limit
// results, best first. Jobs scoring 0 are dropped. Ties keep source order.
// limit <= 0 uses the configured default.
func (m *Matcher) Recommend(ctx context.Context, prefs domain.Preferences, limit int) ([]domain.Recommendation, error) {
	if err := prefs.Validate(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = m.defaultLimit
	}

	jobs, err := m.source.Jobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("load jobs: %w", err)
	}
	m.log.Debug().Int("jobs", len(jobs)).Msg("evaluating jobs against preferences")
	if len(jobs) == 0 {
		m.log.Warn().Msg("no jobs available")
		return []domain.Recommendation{}, nil
	}

	prefs = prefs.Normalize()
	sc := m.scorer()

	// Each goroutine owns one slot, so slot order is source order.
	slots := make([]*domain.Recommendation, len(jobs))
	var skipped atomic.Int64

	var g errgroup.Group
	g.SetLimit(m.parallelism)
	for i := range jobs {
		if ctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			job := jobs[i]
			res, err := sc.Score(prefs, job)
			if err != nil {
				skipped.Add(1)
				m.log.Error().Err(err).Str("job_id", job.ID).Msg("scoring failed, skipping job")
				return nil
			}
			score := res.MatchScore()
			if score <= 0 {
				return nil
			}
			rec := domain.NewRecommendation(job, score, res.Breakdown())
			slots[i] = &rec
			return nil
		})
	}
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]domain.Recommendation, 0, len(slots))
	for _, r := range slots {
		if r != nil {
			out = append(out, *r)
		}
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].MatchScore > out[b].MatchScore
	})

	m.log.Debug().
		Int("scored", len(out)).
		Int64("skipped", skipped.Load()).
		Int("limit", limit).
		Msg("generated recommendations")

	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
