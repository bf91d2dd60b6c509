package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvAddr      = "JOBMATCH_ADDR"
	EnvLogLevel  = "JOBMATCH_LOG_LEVEL"
	EnvDataDir   = "JOBMATCH_DATA_DIR"
	EnvCatalogDB = "JOBMATCH_CATALOG_DB"
)

// LoadDotEnv loads each .env file that exists. Variables already set in the
// environment win.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return err
		}
		if err := godotenv.Load(p); err != nil {
			return err
		}
	}
	return nil
}

// ApplyEnv overlays JOBMATCH_* variables on cfg. Blank values are ignored.
func ApplyEnv(cfg *Config) {
	if v, ok := lookup(EnvAddr); ok {
		cfg.App.Addr = v
	}
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.Logger.Level = v
	}
	if v, ok := lookup(EnvDataDir); ok {
		cfg.App.DataDir = v
	}
	if v, ok := lookup(EnvCatalogDB); ok {
		cfg.Catalog.SQLitePath = v
	}
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}
