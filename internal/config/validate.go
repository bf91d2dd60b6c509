package config

import (
	"errors"
	"fmt"
	"net"
	"runtime"
	"strings"

	"jobmatch-engine/internal/rank"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// Err folds every error into one, or returns nil.
func (v Validation) Err() error {
	if v.OK() {
		return nil
	}
	return errors.New("config validation failed:\n- " + joinLines(v.Errors))
}

// NormalizeAndValidate returns a normalized copy plus every problem found.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	out.App.Addr = strings.TrimSpace(out.App.Addr)
	out.Logger.Level = strings.ToLower(strings.TrimSpace(out.Logger.Level))
	out.Logger.Format = strings.ToLower(strings.TrimSpace(out.Logger.Format))

	if len(out.Matching.TitleSynonyms) > 0 {
		syn := make(map[string][]string, len(out.Matching.TitleSynonyms))
		for title, alts := range out.Matching.TitleSynonyms {
			key := strings.ToLower(strings.TrimSpace(title))
			if key == "" {
				res.addErr("matching.title_synonyms has an empty title")
				continue
			}
			syn[key] = append(syn[key], trimList(alts)...)
		}
		out.Matching.TitleSynonyms = syn
	}

	// app
	if out.App.Addr == "" {
		res.addErr("app.addr is required")
	} else if _, _, err := net.SplitHostPort(out.App.Addr); err != nil {
		res.addErr("app.addr %q is not host:port", out.App.Addr)
	}
	if strings.TrimSpace(out.App.DataDir) == "" {
		res.addErr("app.data_dir is required")
	}

	// logger
	switch out.Logger.Format {
	case "", "json", "pretty":
	default:
		res.addErr("logger.format must be json or pretty, got %q", out.Logger.Format)
	}
	switch out.Logger.Level {
	case "", "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
	default:
		res.addErr("logger.level %q is not a known level", out.Logger.Level)
	}

	// http
	if out.HTTP.RatePerSec < 0 {
		res.addErr("http.rate_per_sec must be >= 0")
	} else if out.HTTP.RatePerSec == 0 {
		res.addWarn("http.rate_per_sec is 0; request limiting is disabled.")
	} else if out.HTTP.Burst < 1 {
		res.addErr("http.burst must be >= 1 when rate limiting is on")
	}
	if out.HTTP.ReadHeaderTimeoutSeconds <= 0 {
		res.addErr("http.read_header_timeout_seconds must be > 0")
	}

	// matching
	if out.Matching.DefaultLimit <= 0 {
		res.addErr("matching.default_limit must be > 0")
	}
	if out.Matching.Parallelism < 0 {
		res.addErr("matching.parallelism must be >= 0")
	} else if n := runtime.GOMAXPROCS(0); out.Matching.Parallelism > 4*n {
		res.addWarn("matching.parallelism is %d on %d CPUs; extra workers only add scheduling overhead.", out.Matching.Parallelism, n)
	}
	if _, err := rank.ParseWeights(out.Matching.Weights); err != nil {
		res.addErr("matching.weights: %v", err)
	}

	// catalog
	out.Catalog.SeedPath = strings.TrimSpace(out.Catalog.SeedPath)
	out.Catalog.SQLitePath = strings.TrimSpace(out.Catalog.SQLitePath)
	if !out.Catalog.BuiltinSeed && out.Catalog.SeedPath == "" && out.Catalog.SQLitePath == "" {
		res.addWarn("catalog has no sources; the engine starts with no jobs.")
	}

	return out, res
}

func Validate(cfg Config) error {
	_, res := NormalizeAndValidate(cfg)
	return res.Err()
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

func joinLines(lines []string) string {
	return strings.Join(lines, "\n- ")
}
