//-------------------------------------------------------------------------
//
// pgEdge Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package artifacts implements fingerprint-based versioning and the
// dependency-aware regeneration orchestrator for dimension artifacts.
package artifacts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// SchemaVersion is bumped whenever an artifact's on-disk layout changes in
// a way that invalidates previously cached output.
const SchemaVersion = 1

// Record is the persisted cache metadata for one artifact.
type Record struct {
	Fingerprint   string    `json:"fingerprint"`
	OutputPath    string    `json:"output_path"`
	Rows          int64     `json:"rows"`
	SchemaVersion int       `json:"schema_version"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Store persists per-artifact fingerprints between runs as a small keyed
// JSON file. It answers "is artifact X stale?".
//
// The store fails safe: any read error (missing file, corrupt JSON,
// unknown record) is reported as stale, so the orchestrator degrades to
// rebuilding rather than reusing unknown state.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a store backed by the given JSON file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// IsFresh reports whether the named artifact can be reused. Freshness
// requires the persisted fingerprint to equal fingerprint, the persisted
// schema version to be current, AND the output file to exist on disk.
func (s *Store) IsFresh(name, fingerprint, outputPath string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return false
	}

	rec, ok := records[name]
	if !ok {
		return false
	}
	if rec.Fingerprint != fingerprint || rec.SchemaVersion != SchemaVersion {
		return false
	}
	if _, err := os.Stat(outputPath); err != nil {
		return false
	}
	return true
}

// Get returns the persisted record for an artifact, if any.
func (s *Store) Get(name string) (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return Record{}, false
	}
	rec, ok := records[name]
	return rec, ok
}

// Record persists the fingerprint and output metadata for an artifact.
// It must be called only after the output file has been fully and
// successfully written. The store file is replaced atomically so a crash
// mid-update never exposes a partial record set.
func (s *Store) Record(name, fingerprint, outputPath string, rows int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		// A corrupt store is rebuilt from scratch.
		records = make(map[string]Record)
	}

	records[name] = Record{
		Fingerprint:   fingerprint,
		OutputPath:    outputPath,
		Rows:          rows,
		SchemaVersion: SchemaVersion,
		UpdatedAt:     time.Now().UTC(),
	}

	return s.save(records)
}

func (s *Store) load() (map[string]Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	records := make(map[string]Record)
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *Store) save(records map[string]Record) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding fingerprint store: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating store directory: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing fingerprint store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("committing fingerprint store: %w", err)
	}
	return nil
}
