// Command jobmatch ranks the job catalog against preferences given as flags.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"jobmatch-engine/internal/catalog"
	"jobmatch-engine/internal/config"
	"jobmatch-engine/internal/domain"
	"jobmatch-engine/internal/logger"
	"jobmatch-engine/internal/rank"
	"jobmatch-engine/internal/store"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	configPath string
	prefs      domain.Preferences
	limit      int
	asJSON     bool
	catalogDB  string
	exportDB   string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := pflag.NewFlagSet("jobmatch", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVarP(&o.configPath, "config", "c", "", "config file (defaults apply when empty)")
	fs.StringArrayVar(&o.prefs.Skills, "skill", nil, "preferred skill (repeatable)")
	fs.StringArrayVar(&o.prefs.Titles, "title", nil, "preferred job title (repeatable)")
	fs.StringArrayVar(&o.prefs.Locations, "location", nil, "preferred location (repeatable)")
	fs.StringArrayVar(&o.prefs.Industries, "industry", nil, "preferred industry (repeatable)")
	fs.StringArrayVar(&o.prefs.CompanySizes, "company-size", nil, "preferred company size (repeatable)")
	fs.StringArrayVar(&o.prefs.Values, "value", nil, "preferred company value (repeatable)")
	fs.IntVar(&o.prefs.MinSalary, "min-salary", 0, "minimum acceptable salary")
	fs.IntVarP(&o.limit, "limit", "n", 0, "max results (0 uses matching.default_limit)")
	fs.BoolVar(&o.asJSON, "json", false, "print JSON instead of a table")
	fs.StringVar(&o.catalogDB, "catalog-db", "", "also load jobs from this SQLite file")
	fs.StringVar(&o.exportDB, "export-db", "", "write the loaded catalog to this SQLite file and exit")

	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if o.limit < 0 {
		return o, errors.New("--limit must be >= 0")
	}
	return o, nil
}

func loadConfig(path string) (config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return cfg, fmt.Errorf("load config %s: %w", path, err)
		}
	}
	config.ApplyEnv(&cfg)
	cfg, vr := config.NormalizeAndValidate(cfg)
	return cfg, vr.Err()
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	o, err := parseFlags(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, "jobmatch:", err)
		return 2
	}

	cfg, err := loadConfig(o.configPath)
	if err != nil {
		fmt.Fprintln(stderr, "jobmatch:", err)
		return 1
	}
	// Logs go to stderr so stdout stays machine-readable.
	logger.InitWriter(cfg.Logger, stderr)

	if o.catalogDB != "" {
		cfg.Catalog.SQLitePath = o.catalogDB
	}
	cat, err := catalog.FromSources(ctx, catalog.Sources{
		Builtin:    cfg.Catalog.BuiltinSeed,
		SeedPath:   cfg.Catalog.SeedPath,
		SQLitePath: cfg.Catalog.SQLitePath,
	}, logger.Component("catalog"))
	if err != nil {
		logger.Error().Err(err).Msg("catalog load failed")
		return 1
	}

	if o.exportDB != "" {
		if err := export(ctx, o.exportDB, cat.All(), stdout); err != nil {
			logger.Error().Err(err).Str("path", o.exportDB).Msg("export failed")
			return 1
		}
		return 0
	}

	weights, err := rank.ParseWeights(cfg.Matching.Weights)
	if err != nil {
		logger.Error().Err(err).Msg("weights invalid")
		return 1
	}
	m := rank.NewMatcher(cat,
		rank.WithWeights(weights),
		rank.WithSynonyms(rank.NewSynonyms(cfg.Matching.TitleSynonyms)),
		rank.WithParallelism(cfg.Matching.Parallelism),
		rank.WithDefaultLimit(cfg.Matching.DefaultLimit),
		rank.WithLogger(logger.Logger),
	)

	recs, err := m.Recommend(ctx, o.prefs, o.limit)
	if err != nil {
		if domain.IsValidation(err) {
			fmt.Fprintln(stderr, "jobmatch:", err)
			return 2
		}
		logger.Error().Err(err).Msg("recommend failed")
		return 1
	}

	if o.asJSON {
		err = printJSON(stdout, recs)
	} else {
		err = printTable(stdout, recs)
	}
	if err != nil {
		logger.Error().Err(err).Msg("write output failed")
		return 1
	}
	return 0
}

func export(ctx context.Context, path string, jobs []domain.Job, out io.Writer) error {
	db, err := store.Open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	added, err := store.InsertJobs(ctx, db.Pool, jobs)
	if err != nil {
		return err
	}
	total, err := store.CountJobs(ctx, db.Pool)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "exported %d new jobs to %s (%d total)\n", added, path, total)
	return err
}

func printJSON(w io.Writer, recs []domain.Recommendation) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{
		"recommendations": recs,
		"total_count":     len(recs),
	})
}

func printTable(w io.Writer, recs []domain.Recommendation) error {
	if len(recs) == 0 {
		_, err := fmt.Fprintln(w, "no matching jobs")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SCORE\tID\tTITLE\tCOMPANY\tLOCATION\tSALARY")
	for _, r := range recs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			r.MatchScore, r.JobID, r.Title, r.Company, r.Location, salaryText(r.SalaryRange))
	}
	return tw.Flush()
}

func salaryText(r *domain.SalaryRange) string {
	if r == nil {
		return "-"
	}
	return fmt.Sprintf("%dk-%dk", r.Min/1000, r.Max/1000)
}
