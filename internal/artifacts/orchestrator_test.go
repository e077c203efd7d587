package artifacts

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/pgEdge/pgedge-datagen/internal/config"
)

// fakeGenerator is a scriptable generator for orchestration tests. Its
// params come from a mutable map so tests can simulate config edits
// between runs.
type fakeGenerator struct {
	name      string
	deps      []string
	params    map[string]any
	generated *int
	fail      error
}

func (g *fakeGenerator) Name() string        { return g.name }
func (g *fakeGenerator) DependsOn() []string { return g.deps }
func (g *fakeGenerator) Params(*config.Config) any { return g.params }
func (g *fakeGenerator) OutputPath(dir string) string {
	return filepath.Join(dir, g.name+".parquet")
}

func (g *fakeGenerator) Generate(_ context.Context, _ *config.Config, dimsDir string) (int64, error) {
	if g.fail != nil {
		return 0, g.fail
	}
	if err := os.MkdirAll(dimsDir, 0o755); err != nil {
		return 0, err
	}
	if err := os.WriteFile(g.OutputPath(dimsDir), []byte(g.name), 0o644); err != nil {
		return 0, err
	}
	*g.generated++
	return 1, nil
}

func newTestSetup(t *testing.T) (*config.Config, *Store) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.OutputDir = t.TempDir()
	store := NewStore(filepath.Join(cfg.OutputDir, "fingerprints.json"))
	return cfg, store
}

func TestOrchestratorFirstRunGeneratesAll(t *testing.T) {
	cfg, store := newTestSetup(t)

	var genA, genB int
	a := &fakeGenerator{name: "geography", params: map[string]any{"rows": 10}, generated: &genA}
	b := &fakeGenerator{name: "customers", deps: []string{"geography"}, params: map[string]any{"n": 5}, generated: &genB}

	orch := NewOrchestrator(cfg, store, []Generator{a, b})
	result, err := orch.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if genA != 1 || genB != 1 {
		t.Errorf("Expected both artifacts generated, got geography=%d customers=%d", genA, genB)
	}
	if got := len(result.Regenerated()); got != 2 {
		t.Errorf("Expected 2 regenerated artifacts, got %d", got)
	}
	if result.RunID == "" {
		t.Error("RunID not set")
	}
}

func TestOrchestratorUnchangedConfigSkipsAll(t *testing.T) {
	cfg, store := newTestSetup(t)

	var genA, genB int
	a := &fakeGenerator{name: "geography", params: map[string]any{"rows": 10}, generated: &genA}
	b := &fakeGenerator{name: "customers", deps: []string{"geography"}, params: map[string]any{"n": 5}, generated: &genB}
	gens := []Generator{a, b}

	if _, err := NewOrchestrator(cfg, store, gens).Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	result, err := NewOrchestrator(cfg, store, gens).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if genA != 1 || genB != 1 {
		t.Errorf("Second run regenerated artifacts: geography=%d customers=%d", genA, genB)
	}
	if got := len(result.Regenerated()); got != 0 {
		t.Errorf("Second run reported %d regenerated artifacts, want 0", got)
	}
	// Row counts carry over from the store for skipped artifacts.
	for _, a := range result.Artifacts {
		if a.Rows != 1 {
			t.Errorf("Skipped artifact %s lost its row count: %d", a.Name, a.Rows)
		}
	}
}

func TestOrchestratorStalenessPropagation(t *testing.T) {
	cfg, store := newTestSetup(t)

	var genA, genB int
	paramsA := map[string]any{"rows": 10}
	a := &fakeGenerator{name: "geography", params: paramsA, generated: &genA}
	b := &fakeGenerator{name: "customers", deps: []string{"geography"}, params: map[string]any{"n": 5}, generated: &genB}
	gens := []Generator{a, b}

	if _, err := NewOrchestrator(cfg, store, gens).Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	// Change only the upstream's parameters. The dependent's own params
	// are untouched, but it must rebuild anyway.
	paramsA["rows"] = 20

	result, err := NewOrchestrator(cfg, store, gens).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if genA != 2 {
		t.Errorf("Upstream not regenerated after param change: %d runs", genA)
	}
	if genB != 2 {
		t.Errorf("Dependent not regenerated after upstream rebuild: %d runs", genB)
	}
	if got := len(result.Regenerated()); got != 2 {
		t.Errorf("Expected 2 regenerated artifacts, got %d", got)
	}
}

func TestOrchestratorGeneratorErrorAborts(t *testing.T) {
	cfg, store := newTestSetup(t)

	var genA, genC int
	boom := errors.New("reference table empty")
	a := &fakeGenerator{name: "geography", params: map[string]any{}, generated: &genA}
	b := &fakeGenerator{name: "customers", deps: []string{"geography"}, params: map[string]any{}, generated: new(int), fail: boom}
	c := &fakeGenerator{name: "stores", deps: []string{"geography"}, params: map[string]any{}, generated: &genC}

	_, err := NewOrchestrator(cfg, store, []Generator{a, b, c}).Run(context.Background())
	if err == nil {
		t.Fatal("Expected error, got nil")
	}

	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("Expected GenerationError, got %T: %v", err, err)
	}
	if genErr.Artifact != "customers" {
		t.Errorf("Error names artifact %q, want customers", genErr.Artifact)
	}
	if !errors.Is(err, boom) {
		t.Error("Underlying generator error not wrapped")
	}
	if genC != 0 {
		t.Error("Artifact after the failure was still generated")
	}
}

func TestOrchestratorOutOfOrderDependency(t *testing.T) {
	cfg, store := newTestSetup(t)

	// customers declares geography upstream but runs first.
	b := &fakeGenerator{name: "customers", deps: []string{"geography"}, params: map[string]any{}, generated: new(int)}
	a := &fakeGenerator{name: "geography", params: map[string]any{}, generated: new(int)}

	_, err := NewOrchestrator(cfg, store, []Generator{b, a}).Run(context.Background())
	var depErr *DependencyError
	if !errors.As(err, &depErr) {
		t.Fatalf("Expected DependencyError, got %v", err)
	}
	if depErr.Artifact != "customers" || depErr.Upstream != "geography" {
		t.Errorf("Unexpected dependency error: %v", depErr)
	}
}

func TestOrchestratorDeletedOutputRebuilds(t *testing.T) {
	cfg, store := newTestSetup(t)

	var genA int
	a := &fakeGenerator{name: "geography", params: map[string]any{}, generated: &genA}
	gens := []Generator{a}

	if _, err := NewOrchestrator(cfg, store, gens).Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := os.Remove(a.OutputPath(cfg.DimsDir())); err != nil {
		t.Fatal(err)
	}

	if _, err := NewOrchestrator(cfg, store, gens).Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if genA != 2 {
		t.Errorf("Artifact with deleted output not rebuilt: %d runs", genA)
	}
}

func ExampleRunResult_Regenerated() {
	r := &RunResult{Artifacts: []Result{
		{Name: "geography", Regenerated: true},
		{Name: "customers"},
	}}
	fmt.Println(r.Regenerated())
	// Output: [geography]
}
