// Package store persists decision records to a flat JSON file.
// Records are a diagnostic trail only; decisions are never replayed from them.
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.lancet.dev/lancet/internal/core/domain"
	"go.lancet.dev/lancet/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DecisionStore = (*Store)(nil)

// Store implements ports.DecisionStore using a flat JSON file.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.DecisionRecord
}

// NewStore creates a new DecisionStore backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.DecisionRecord),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read decision store")
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		// A corrupt store is diagnostic data only, start fresh.
		s.cache = make(map[string]domain.DecisionRecord)
	}

	return nil
}

func (s *Store) save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal decision store")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for decision store")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write decision store")
	}

	return nil
}

// Get retrieves the last record for a target.
func (s *Store) Get(target string) (*domain.DecisionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.cache[target]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

// Put stores the record.
func (s *Store) Put(rec domain.DecisionRecord) error {
	s.mu.Lock()
	s.cache[rec.Target] = rec
	s.mu.Unlock()

	return s.save()
}
