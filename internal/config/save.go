package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"
)

// SaveAtomic validates cfg and replaces the file at path, keeping the previous
// version as path.bak. Writers are serialized through an flock on path.lock.
func SaveAtomic(path string, cfg Config) error {
	if err := Validate(cfg); err != nil {
		return err
	}
	unlock, err := lockFile(path)
	if err != nil {
		return err
	}
	defer unlock()
	return write(path, cfg)
}

// Update loads the file at path, applies fn and saves the result. The lock is
// held across the whole read-modify-write.
func Update(path string, fn func(*Config) error) error {
	unlock, err := lockFile(path)
	if err != nil {
		return err
	}
	defer unlock()

	cfg, err := Load(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	if err := fn(&cfg); err != nil {
		return err
	}
	if err := Validate(cfg); err != nil {
		return err
	}
	return write(path, cfg)
}

func lockFile(path string) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	fl := flock.New(path + ".lock")
	if err := fl.Lock(); err != nil {
		return nil, fmt.Errorf("lock %s: %w", path, err)
	}
	return func() { _ = fl.Unlock() }, nil
}

func write(path string, cfg Config) error {
	b, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	bak := path + ".bak"

	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}

	_ = os.Remove(bak)
	_ = os.Rename(path, bak)

	return os.Rename(tmp, path)
}
