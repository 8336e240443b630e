package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/gofrs/flock"
	"github.com/google/renameio/v2"
)

// Store reads and writes the config file. Writes go through a rename so a
// crash never leaves a half-written config, and a flock keeps concurrent
// codexline invocations from clobbering each other's saves.
type Store struct {
	mu   sync.Mutex
	path string
	lock *flock.Flock
}

func NewStore(pathOverride string) *Store {
	path := pathOverride
	if path == "" {
		path = DefaultPath()
	}
	return &Store{
		path: path,
		lock: flock.New(path + ".lock"),
	}
}

func (s *Store) Path() string { return s.path }

// Load returns the validated on-disk config, or the default config when no
// file exists yet.
func (s *Store) Load() (Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", s.path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", s.path, err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", s.path, err)
	}
	return cfg, nil
}

// Save validates and atomically writes cfg.
func (s *Store) Save(cfg Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("refuse to save invalid config: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config dir %s: %w", dir, err)
	}

	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("lock config: %w", err)
	}
	defer func() { _ = s.lock.Unlock() }()

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := renameio.WriteFile(s.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", s.path, err)
	}
	return nil
}

// Init writes the default config if none exists. Reports whether a file was
// created.
func (s *Store) Init() (bool, error) {
	s.mu.Lock()
	exists := false
	if _, err := os.Stat(s.path); err == nil {
		exists = true
	}
	s.mu.Unlock()
	if exists {
		return false, nil
	}
	if err := s.Save(Default()); err != nil {
		return false, err
	}
	return true, nil
}
