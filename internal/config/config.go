package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"jobmatch-engine/internal/logger"
)

const DefaultAddr = "127.0.0.1:38471"

type AppConfig struct {
	Addr    string `yaml:"addr"`
	DataDir string `yaml:"data_dir"`
}

type HTTPConfig struct {
	// RatePerSec <= 0 disables request limiting.
	RatePerSec               float64 `yaml:"rate_per_sec"`
	Burst                    int     `yaml:"burst"`
	ReadHeaderTimeoutSeconds int     `yaml:"read_header_timeout_seconds"`
}

type MatchingConfig struct {
	DefaultLimit   int                 `yaml:"default_limit"`
	Parallelism    int                 `yaml:"parallelism"`
	PersistWeights bool                `yaml:"persist_weights"`
	Weights        map[string]float64  `yaml:"weights,omitempty"`
	TitleSynonyms  map[string][]string `yaml:"title_synonyms,omitempty"`
}

// CatalogConfig lists where start-up jobs come from. Sources are applied in
// order: built-in seed, YAML seed file, SQLite file.
type CatalogConfig struct {
	BuiltinSeed bool   `yaml:"builtin_seed"`
	SeedPath    string `yaml:"seed_path"`
	SQLitePath  string `yaml:"sqlite_path"`
}

type Config struct {
	App      AppConfig      `yaml:"app"`
	Logger   logger.Config  `yaml:"logger"`
	HTTP     HTTPConfig     `yaml:"http"`
	Matching MatchingConfig `yaml:"matching"`
	Catalog  CatalogConfig  `yaml:"catalog"`
}

// Default is the configuration used for any key a file leaves out.
// Weights stay nil so a file that names some criteria does not inherit the
// others.
func Default() Config {
	return Config{
		App:    AppConfig{Addr: DefaultAddr, DataDir: "."},
		Logger: logger.Config{Level: "info", Format: "json"},
		HTTP: HTTPConfig{
			RatePerSec:               20,
			Burst:                    40,
			ReadHeaderTimeoutSeconds: 5,
		},
		Matching: MatchingConfig{DefaultLimit: 20},
		Catalog:  CatalogConfig{BuiltinSeed: true},
	}
}

func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
