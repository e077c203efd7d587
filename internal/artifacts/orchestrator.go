//-------------------------------------------------------------------------
//
// pgEdge Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package artifacts

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pgEdge/pgedge-datagen/internal/config"
	"github.com/pgEdge/pgedge-datagen/internal/logging"
)

// Generator is the contract every dimension artifact generator satisfies.
// Generators write their own output file under the dims folder; the
// orchestrator decides whether they run at all.
type Generator interface {
	// Name returns the artifact name (e.g. "geography").
	Name() string

	// DependsOn returns the names of upstream artifacts whose fingerprints
	// feed this artifact's fingerprint. Upstream outputs must exist on
	// disk before Generate is called.
	DependsOn() []string

	// Params returns the resolved configuration subsection that affects
	// this artifact's output. It is hashed into the fingerprint, so every
	// value that changes the output must be reachable from it.
	Params(cfg *config.Config) any

	// OutputPath returns the artifact's output file under dimsDir.
	OutputPath(dimsDir string) string

	// Generate produces the artifact and writes it to OutputPath(dimsDir).
	// It returns the number of rows written.
	Generate(ctx context.Context, cfg *config.Config, dimsDir string) (int64, error)
}

// GenerationError wraps a generator failure with the artifact name so the
// top-level run can report which artifact aborted the orchestration.
type GenerationError struct {
	Artifact string
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("artifact %q: generation failed: %v", e.Artifact, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// DependencyError indicates that an upstream artifact required for
// fingerprinting or data lookup is missing.
type DependencyError struct {
	Artifact string
	Upstream string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("artifact %q: upstream artifact %q has no fingerprint; dependency graph is out of order",
		e.Artifact, e.Upstream)
}

// Result describes one artifact's outcome for the run.
type Result struct {
	Name        string
	Fingerprint string
	OutputPath  string
	Rows        int64
	Regenerated bool
}

// RunResult is returned to callers (packaging/CLI) after orchestration.
type RunResult struct {
	RunID     string
	Artifacts []Result
}

// Regenerated returns the names of artifacts that were rebuilt this run.
func (r *RunResult) Regenerated() []string {
	var names []string
	for _, a := range r.Artifacts {
		if a.Regenerated {
			names = append(names, a.Name)
		}
	}
	return names
}

// Orchestrator drives artifact generation in a fixed topological order,
// consulting the fingerprint store to skip artifacts whose configuration
// (and upstream fingerprints) have not changed.
//
// Orchestration is strictly sequential: the walk covers fewer than ten
// artifacts and the dependency-propagation invariant is easiest to reason
// about single-threaded.
type Orchestrator struct {
	cfg        *config.Config
	store      *Store
	generators []Generator
}

// NewOrchestrator creates an orchestrator over the given generators. The
// slice must already be in topological order; Run validates that every
// declared upstream precedes its dependents.
func NewOrchestrator(cfg *config.Config, store *Store, generators []Generator) *Orchestrator {
	return &Orchestrator{
		cfg:        cfg,
		store:      store,
		generators: generators,
	}
}

// Run executes the topological walk. A generator error aborts the whole
// run: no partial dataset is considered valid.
func (o *Orchestrator) Run(ctx context.Context) (*RunResult, error) {
	result := &RunResult{RunID: uuid.NewString()}
	dimsDir := o.cfg.DimsDir()

	// Fingerprints computed this run, keyed by artifact name. Dependents
	// hash the current upstream fingerprint, not a changed/unchanged flag.
	current := make(map[string]string, len(o.generators))

	for _, gen := range o.generators {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := gen.Name()

		upstream := make(map[string]string, len(gen.DependsOn()))
		for _, dep := range gen.DependsOn() {
			fp, ok := current[dep]
			if !ok {
				return nil, &DependencyError{Artifact: name, Upstream: dep}
			}
			upstream[dep] = fp
		}

		fp, err := Fingerprint(gen.Params(o.cfg), upstream)
		if err != nil {
			return nil, fmt.Errorf("artifact %q: %w", name, err)
		}
		current[name] = fp

		outputPath := gen.OutputPath(dimsDir)

		if o.store.IsFresh(name, fp, outputPath) {
			rec, _ := o.store.Get(name)
			logging.Info().
				Str("artifact", name).
				Msg("Artifact up-to-date; skipping regeneration")
			result.Artifacts = append(result.Artifacts, Result{
				Name:        name,
				Fingerprint: fp,
				OutputPath:  outputPath,
				Rows:        rec.Rows,
			})
			continue
		}

		logging.Info().
			Str("artifact", name).
			Str("fingerprint", fp[:12]).
			Msg("Generating artifact")

		rows, err := gen.Generate(ctx, o.cfg, dimsDir)
		if err != nil {
			return nil, &GenerationError{Artifact: name, Err: err}
		}

		// Record only after the output file is fully written.
		if err := o.store.Record(name, fp, outputPath, rows); err != nil {
			return nil, fmt.Errorf("artifact %q: recording fingerprint: %w", name, err)
		}

		logging.Info().
			Str("artifact", name).
			Int64("rows", rows).
			Msg("Artifact written")

		result.Artifacts = append(result.Artifacts, Result{
			Name:        name,
			Fingerprint: fp,
			OutputPath:  outputPath,
			Rows:        rows,
			Regenerated: true,
		})
	}

	return result, nil
}
