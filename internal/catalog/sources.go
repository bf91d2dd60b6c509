package catalog

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"jobmatch-engine/internal/domain"
	"jobmatch-engine/internal/store"
)

// Sources names where start-up jobs come from.
type Sources struct {
	Builtin    bool
	SeedPath   string
	SQLitePath string
}

// FromSources builds a catalog from the built-in seed, then the YAML seed
// file, then the SQLite file. Text fields are whitespace-normalized. A job
// whose id was already loaded by an earlier source is skipped with a
// warning; any other invalid job fails the load.
func FromSources(ctx context.Context, src Sources, log zerolog.Logger) (*Catalog, error) {
	c, _ := New()

	add := func(origin string, jobs []domain.Job) error {
		added := 0
		for _, j := range jobs {
			j = cleanJob(j)
			err := c.Add(j)
			switch {
			case err == nil:
				added++
			case domain.IsConflict(err):
				log.Warn().Str("source", origin).Str("job_id", j.ID).Msg("duplicate job id, skipping")
			default:
				return fmt.Errorf("%s: %w", origin, err)
			}
		}
		log.Info().Str("source", origin).Int("added", added).Msg("catalog source loaded")
		return nil
	}

	if src.Builtin {
		if err := add("builtin", Seed()); err != nil {
			return nil, err
		}
	}

	if src.SeedPath != "" {
		jobs, err := LoadYAML(src.SeedPath)
		if err != nil {
			return nil, err
		}
		if err := add(src.SeedPath, jobs); err != nil {
			return nil, err
		}
	}

	if src.SQLitePath != "" {
		db, err := store.Open(src.SQLitePath)
		if err != nil {
			return nil, err
		}
		defer db.Close()

		jobs, err := store.ListJobs(ctx, db.Pool)
		if err != nil {
			return nil, err
		}
		if err := add(src.SQLitePath, jobs); err != nil {
			return nil, err
		}
	}

	return c, nil
}
