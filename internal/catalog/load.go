package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"jobmatch-engine/internal/domain"
)

// SeedFile is the on-disk shape of a YAML seed file.
type SeedFile struct {
	Jobs []domain.Job `yaml:"jobs"`
}

func LoadYAML(path string) ([]domain.Job, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed %s: %w", path, err)
	}

	var sf SeedFile
	if err := yaml.Unmarshal(b, &sf); err != nil {
		return nil, fmt.Errorf("parse seed %s: %w", path, err)
	}
	return sf.Jobs, nil
}
